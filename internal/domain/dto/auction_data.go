package dto

import (
	"encoding/json"

	"github.com/guttosm/auctionpulse/internal/domain/models"
)

// ItemIDsRequest is the body of the price-list and price-list-history endpoints.
type ItemIDsRequest struct {
	ItemIDs []int64 `json:"item_ids" example:"2447,765"`
}

// ToItemIDs converts raw ids into domain ids.
func (r ItemIDsRequest) ToItemIDs() []models.ItemID {
	out := make([]models.ItemID, len(r.ItemIDs))
	for i, id := range r.ItemIDs {
		out[i] = models.ItemID(id)
	}
	return out
}

// PriceListHistoryResponse is returned by POST .../price-list-history.
//
// Items carries item metadata exactly as the backend sent it. ItemMarketPrices is always empty.
type PriceListHistoryResponse struct {
	History            models.PriceHistory               `json:"history"`
	Items              map[models.ItemID]json.RawMessage `json:"items" swaggertype:"object"`
	ItemPriceLimits    models.ItemPriceBands             `json:"itemPriceLimits"`
	OverallPriceLimits models.PriceBand                  `json:"overallPriceLimits"`
	ItemMarketPrices   []json.RawMessage                 `json:"itemMarketPrices" swaggertype:"array,object"`
}
