package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/auctionpulse/internal/domain/dto"
	"github.com/guttosm/auctionpulse/internal/service"
)

// GetPreference godoc
// @Summary      Get preferences
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PreferenceResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/user/preferences [get]
func (h *Handler) GetPreference(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pref, err := h.prefs.Get(c.Request.Context(), userID)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("preferences not found", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch preferences", err))
		return
	}

	c.JSON(http.StatusOK, dto.PreferenceResponse{Preference: *pref})
}

// CreatePreference godoc
// @Summary      Create preferences
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.PreferenceRequest  true  "Preference"
// @Success      201   {object}  dto.PreferenceResponse
// @Failure      400   {object}  dto.ErrorResponse  "Invalid body or already exists"
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/user/preferences [post]
func (h *Handler) CreatePreference(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	pref, err := h.prefs.Create(c.Request.Context(), userID, req.CurrentRegion, req.CurrentRealm)
	if errors.Is(err, service.ErrAlreadyExists) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("preferences already exist", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create preferences", err))
		return
	}

	c.JSON(http.StatusCreated, dto.PreferenceResponse{Preference: *pref})
}

// UpdatePreference godoc
// @Summary      Update preferences
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.PreferenceRequest  true  "Preference"
// @Success      200   {object}  dto.PreferenceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/user/preferences [put]
func (h *Handler) UpdatePreference(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	pref, err := h.prefs.Update(c.Request.Context(), userID, req.CurrentRegion, req.CurrentRealm)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("preferences not found", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to update preferences", err))
		return
	}

	c.JSON(http.StatusOK, dto.PreferenceResponse{Preference: *pref})
}
