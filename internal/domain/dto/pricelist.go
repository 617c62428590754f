package dto

import "github.com/guttosm/auctionpulse/internal/domain/models"

// PricelistEntryRequest describes one entry of a pricelist write.
// ID is only meaningful on update, where it selects an existing entry.
type PricelistEntryRequest struct {
	ID               int64 `json:"id,omitempty" example:"31"`
	ItemID           int64 `json:"item_id" binding:"required,gt=0" example:"2447"`
	QuantityModifier int   `json:"quantity_modifier" binding:"required,min=1" example:"20"`
}

// CreatePricelistRequest is the body of POST /api/v1/user/pricelists.
type CreatePricelistRequest struct {
	Pricelist struct {
		Name   string `json:"name" binding:"required,max=255" example:"Herbs"`
		Region string `json:"region" binding:"required" example:"us"`
		Realm  string `json:"realm" binding:"required" example:"earthen-ring"`
	} `json:"pricelist" binding:"required"`
	Entries []PricelistEntryRequest `json:"entries" binding:"dive"`
}

// UpdatePricelistRequest is the body of PUT /api/v1/user/pricelists/:id.
type UpdatePricelistRequest struct {
	Pricelist struct {
		Name string `json:"name" binding:"required,max=255" example:"Herbs"`
	} `json:"pricelist" binding:"required"`
	Entries []PricelistEntryRequest `json:"entries" binding:"dive"`
}

// PricelistResponse wraps a single pricelist.
type PricelistResponse struct {
	Pricelist models.Pricelist `json:"pricelist"`
}

// PricelistsResponse wraps a user's pricelists for one realm.
type PricelistsResponse struct {
	Pricelists []models.Pricelist `json:"pricelists"`
}

// ToEntries converts request entries to domain entries.
func ToEntries(in []PricelistEntryRequest) []models.PricelistEntry {
	out := make([]models.PricelistEntry, 0, len(in))
	for _, e := range in {
		out = append(out, models.PricelistEntry{
			ID:               e.ID,
			ItemID:           models.ItemID(e.ItemID),
			QuantityModifier: e.QuantityModifier,
		})
	}
	return out
}
