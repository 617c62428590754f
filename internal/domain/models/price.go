package models

import "encoding/json"

// ItemID identifies an auctionable item.
type ItemID int64

// PriceStatistics summarizes buyout prices for one item at one point in time.
//
// Values are non-negative; zero doubles as "no data" throughout price band computation.
type PriceStatistics struct {
	MinBuyoutPer     float64 `json:"min_buyout_per" example:"1250"`
	MaxBuyoutPer     float64 `json:"max_buyout_per" example:"4800"`
	AverageBuyoutPer float64 `json:"average_buyout_per" example:"2100.5"`
	MedianBuyoutPer  float64 `json:"median_buyout_per" example:"1900"`
	Volume           float64 `json:"volume" example:"320"`
}

// ItemPriceHistory maps a unix timestamp (seconds) to the statistics observed at that time.
type ItemPriceHistory map[int64]PriceStatistics

// PriceHistory maps item ids to their per-timestamp statistics.
type PriceHistory map[ItemID]ItemPriceHistory

// PriceBand is an estimated reasonable price range for an item.
type PriceBand struct {
	Lower float64 `json:"lower" example:"1250"`
	Upper float64 `json:"upper" example:"3900"`
}

// ItemPriceBands maps item ids to their computed bands.
type ItemPriceBands map[ItemID]PriceBand

// PriceListHistory is the assembled answer for a set of items over the lookback window.
//
// Items holds item metadata as the backend sent it.
type PriceListHistory struct {
	History     PriceHistory
	Items       map[ItemID]json.RawMessage
	ItemBands   ItemPriceBands
	OverallBand PriceBand
}
