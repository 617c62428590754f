package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/auctionpulse/internal/domain/dto"
	"github.com/guttosm/auctionpulse/internal/service"
)

// Register godoc
// @Summary      Register a user
// @Description  Creates an account and returns it together with a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse  "Invalid body or email taken"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/users [post]
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("email is already registered", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to register user", err))
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: *user, Token: token})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid email or password", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to log in", err))
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: *user, Token: token})
}

// GetUser godoc
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/user [get]
func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("user not found", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch user", err))
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{User: *user})
}
