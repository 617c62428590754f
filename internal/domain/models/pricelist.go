package models

import "time"

// Pricelist is a user-owned watchlist of items scoped to one region/realm.
type Pricelist struct {
	ID        int64            `json:"id" example:"7"`
	UserID    int64            `json:"user_id" example:"1"`
	Name      string           `json:"name" example:"Herbs"`
	Region    string           `json:"region" example:"us"`
	Realm     string           `json:"realm" example:"earthen-ring"`
	Entries   []PricelistEntry `json:"entries"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PricelistEntry is one watched item with its quantity multiplier.
type PricelistEntry struct {
	ID               int64  `json:"id" example:"31"`
	PricelistID      int64  `json:"pricelist_id" example:"7"`
	ItemID           ItemID `json:"item_id" example:"2447"`
	QuantityModifier int    `json:"quantity_modifier" example:"20"`
}

