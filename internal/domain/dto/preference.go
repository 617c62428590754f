package dto

import "github.com/guttosm/auctionpulse/internal/domain/models"

// PreferenceRequest is the body of POST and PUT /api/v1/user/preferences.
type PreferenceRequest struct {
	CurrentRegion string `json:"current_region" binding:"required" example:"us"`
	CurrentRealm  string `json:"current_realm" binding:"required" example:"earthen-ring"`
}

// PreferenceResponse wraps a user's preference.
type PreferenceResponse struct {
	Preference models.Preference `json:"preference"`
}
