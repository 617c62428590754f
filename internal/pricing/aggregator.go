// Package pricing derives smoothed price bands from historical auction statistics.
//
// The Aggregator is pure: it holds no mutable state and may be shared between goroutines.
package pricing

import (
	"sort"
	"time"

	"github.com/guttosm/auctionpulse/internal/domain/models"
)

const (
	// LookbackWindow is the span of history considered for band computation.
	LookbackWindow = 14 * 24 * time.Hour

	// MaxWindow caps the moving window; shorter series use their full length.
	MaxWindow = 4
)

// Aggregator computes per-item and overall price bands.
type Aggregator struct {
	filter Filter
}

// NewAggregator builds an Aggregator around filter. A nil filter selects the 2-sigma
// Bollinger filter.
func NewAggregator(filter Filter) *Aggregator {
	if filter == nil {
		filter = NewBollingerFilter()
	}
	return &Aggregator{filter: filter}
}

// Compute returns a band for every id in itemIDs plus the overall band across them.
// Items missing from history, or with no observations, get a {0, 0} band.
func (a *Aggregator) Compute(itemIDs []models.ItemID, history models.PriceHistory) (models.ItemPriceBands, models.PriceBand) {
	bands := make(models.ItemPriceBands, len(itemIDs))
	for _, id := range itemIDs {
		bands[id] = a.ItemBand(history[id])
	}
	return bands, OverallBand(itemIDs, bands)
}

// ItemBand computes the band of a single item from its timestamped statistics.
//
// lower is the smallest non-zero rolling mean, upper the largest non-zero upper band value.
func (a *Aggregator) ItemBand(history models.ItemPriceHistory) models.PriceBand {
	series := minBuyoutSeries(history)
	if len(series) == 0 {
		return models.PriceBand{}
	}

	points := a.filter.Bands(series, min(MaxWindow, len(series)))

	var lower, upper reducer
	for _, p := range points {
		if !p.Defined {
			continue
		}
		lower.min(p.Mid)
		upper.max(p.Upper)
	}
	return models.PriceBand{Lower: lower.value, Upper: upper.value}
}

// OverallBand reduces per-item bands: the minimum non-zero lower and the maximum upper.
func OverallBand(itemIDs []models.ItemID, bands models.ItemPriceBands) models.PriceBand {
	var lower, upper reducer
	for _, id := range itemIDs {
		b := bands[id]
		lower.min(b.Lower)
		upper.max(b.Upper)
	}
	return models.PriceBand{Lower: lower.value, Upper: upper.value}
}

// minBuyoutSeries returns min_buyout_per values ordered by timestamp ascending.
func minBuyoutSeries(history models.ItemPriceHistory) []float64 {
	if len(history) == 0 {
		return nil
	}

	timestamps := make([]int64, 0, len(history))
	for ts := range history {
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	series := make([]float64, len(timestamps))
	for i, ts := range timestamps {
		series[i] = history[ts].MinBuyoutPer
	}
	return series
}

// reducer folds values into a min or max, ignoring zeros. Its zero value reports 0.
type reducer struct {
	value float64
	seen  bool
}

func (r *reducer) min(v float64) {
	if v == 0 {
		return
	}
	if !r.seen || v < r.value {
		r.value, r.seen = v, true
	}
}

func (r *reducer) max(v float64) {
	if v == 0 {
		return
	}
	if !r.seen || v > r.value {
		r.value, r.seen = v, true
	}
}
