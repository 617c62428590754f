package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/auctionpulse/internal/bus"
	"github.com/guttosm/auctionpulse/internal/domain/dto"
	"github.com/guttosm/auctionpulse/internal/middleware"
	"github.com/guttosm/auctionpulse/internal/service"
)

// Handler provides the HTTP handlers of the /api/v1 routes.
//
// Responsibilities:
//   - Bind and validate request bodies, path and query parameters
//   - Call the service layer with the request context
//   - Translate service and bus errors into status codes and ErrorResponse bodies
type Handler struct {
	auth       service.AuthService
	prefs      service.PreferenceService
	pricelists service.PricelistService
	data       service.AuctionDataService
}

// NewHandler constructs a Handler from its services.
func NewHandler(
	auth service.AuthService,
	prefs service.PreferenceService,
	pricelists service.PricelistService,
	data service.AuctionDataService,
) *Handler {
	return &Handler{auth: auth, prefs: prefs, pricelists: pricelists, data: data}
}

// currentUserID reads the id stored by middleware.Auth. The route group guarantees it is set.
func currentUserID(c *gin.Context) (int64, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("unauthorized", nil))
	}
	return id, ok
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name, err))
		return 0, false
	}
	return id, true
}

// respondBusError maps a bus failure: not found -> 404, user error -> 400, anything else -> 500.
func respondBusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bus.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("not found", err))
	case errors.Is(err, bus.ErrUserError):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request", err))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("upstream request failed", err))
	}
}
