package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/auctionpulse/internal/domain/dto"
	"github.com/guttosm/auctionpulse/internal/domain/models"
	"github.com/guttosm/auctionpulse/internal/service"
)

// ListPricelists godoc
// @Summary      List pricelists
// @Description  Returns the caller's pricelists for one region and realm
// @Tags         pricelists
// @Produce      json
// @Security     BearerAuth
// @Param        region  path      string  true  "Region"  example(us)
// @Param        realm   path      string  true  "Realm"   example(earthen-ring)
// @Success      200     {object}  dto.PricelistsResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/user/pricelists/region/{region}/realm/{realm} [get]
func (h *Handler) ListPricelists(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	lists, err := h.pricelists.List(c.Request.Context(), userID, c.Param("region"), c.Param("realm"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch pricelists", err))
		return
	}
	if lists == nil {
		lists = []models.Pricelist{}
	}

	c.JSON(http.StatusOK, dto.PricelistsResponse{Pricelists: lists})
}

// CreatePricelist godoc
// @Summary      Create a pricelist
// @Tags         pricelists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreatePricelistRequest  true  "Pricelist with entries"
// @Success      201   {object}  dto.PricelistResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/user/pricelists [post]
func (h *Handler) CreatePricelist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePricelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	p, err := h.pricelists.Create(c.Request.Context(), models.Pricelist{
		UserID: userID,
		Name:   req.Pricelist.Name,
		Region: req.Pricelist.Region,
		Realm:  req.Pricelist.Realm,
	}, dto.ToEntries(req.Entries))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create pricelist", err))
		return
	}

	c.JSON(http.StatusCreated, dto.PricelistResponse{Pricelist: *p})
}

// UpdatePricelist godoc
// @Summary      Update a pricelist
// @Description  Renames the pricelist and replaces its entries. Entries carrying an id are updated in place.
// @Tags         pricelists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                         true  "Pricelist id"
// @Param        body  body      dto.UpdatePricelistRequest  true  "Pricelist with entries"
// @Success      200   {object}  dto.PricelistResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/user/pricelists/{id} [put]
func (h *Handler) UpdatePricelist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePricelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	p, err := h.pricelists.Update(c.Request.Context(), userID, id, req.Pricelist.Name, dto.ToEntries(req.Entries))
	if err != nil {
		respondPricelistError(c, "failed to update pricelist", err)
		return
	}

	c.JSON(http.StatusOK, dto.PricelistResponse{Pricelist: *p})
}

// DeletePricelist godoc
// @Summary      Delete a pricelist
// @Tags         pricelists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Pricelist id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/user/pricelists/{id} [delete]
func (h *Handler) DeletePricelist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.pricelists.Delete(c.Request.Context(), userID, id); err != nil {
		respondPricelistError(c, "failed to delete pricelist", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func respondPricelistError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("pricelist not found", nil))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("pricelist belongs to another user", nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message, err))
	}
}
