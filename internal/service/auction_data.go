package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/auctionpulse/internal/bus"
	"github.com/guttosm/auctionpulse/internal/domain/models"
	"github.com/guttosm/auctionpulse/internal/logger"
	"github.com/guttosm/auctionpulse/internal/metrics"
	"github.com/guttosm/auctionpulse/internal/pricing"
)

// AuctionsQuery selects one page of a realm's auctions.
type AuctionsQuery struct {
	Region        string
	Realm         string
	Page          int
	Count         int
	SortKind      string
	SortDirection string
	OwnerFilters  []string
	ItemFilters   []models.ItemID
}

// AuctionDataService answers read queries from the backend over the message bus.
//
// Payloads the gateway does not interpret are returned as raw JSON.
type AuctionDataService interface {
	Regions(ctx context.Context) (json.RawMessage, error)
	Realms(ctx context.Context, region string) (json.RawMessage, error)
	Auctions(ctx context.Context, q AuctionsQuery) (json.RawMessage, error)
	Owners(ctx context.Context, region, realm, query string) (json.RawMessage, error)
	QueryItems(ctx context.Context, query string) (json.RawMessage, error)
	PriceList(ctx context.Context, region, realm string, itemIDs []models.ItemID) (json.RawMessage, error)
	PriceListHistory(ctx context.Context, region, realm string, itemIDs []models.ItemID, now time.Time) (*models.PriceListHistory, error)
}

type auctionDataService struct {
	bus        bus.Requester
	aggregator *pricing.Aggregator
	cache      *expirable.LRU[string, json.RawMessage]
}

// NewAuctionDataService caches region and realm listings for ttl, up to size entries.
func NewAuctionDataService(requester bus.Requester, aggregator *pricing.Aggregator, size int, ttl time.Duration) AuctionDataService {
	if size < 1 {
		size = 1
	}
	if aggregator == nil {
		aggregator = pricing.NewAggregator(nil)
	}
	return &auctionDataService{
		bus:        requester,
		aggregator: aggregator,
		cache:      expirable.NewLRU[string, json.RawMessage](size, nil, ttl),
	}
}

// bus request bodies
type (
	regionRequest struct {
		RegionName string `json:"region_name"`
	}
	auctionsRequest struct {
		RegionName    string          `json:"region_name"`
		RealmName     string          `json:"realm_name"`
		Page          int             `json:"page"`
		Count         int             `json:"count"`
		SortKind      string          `json:"sort_kind"`
		SortDirection string          `json:"sort_direction"`
		OwnerFilters  []string        `json:"owner_filters"`
		ItemFilters   []models.ItemID `json:"item_filters"`
	}
	ownersRequest struct {
		RegionName string `json:"region_name"`
		RealmName  string `json:"realm_name"`
		Query      string `json:"query"`
	}
	itemsQueryRequest struct {
		Query string `json:"query"`
	}
	itemsRequest struct {
		ItemIDs []models.ItemID `json:"item_ids"`
	}
	priceListRequest struct {
		RegionName string          `json:"region_name"`
		RealmName  string          `json:"realm_name"`
		ItemIDs    []models.ItemID `json:"item_ids"`
	}
	priceListHistoryRequest struct {
		RegionName  string          `json:"region_name"`
		RealmName   string          `json:"realm_name"`
		ItemIDs     []models.ItemID `json:"item_ids"`
		LowerBounds int64           `json:"lower_bounds"`
		UpperBounds int64           `json:"upper_bounds"`
	}
)

func (s *auctionDataService) Regions(ctx context.Context) (json.RawMessage, error) {
	return s.cached(ctx, bus.SubjectRegions, "", nil)
}

func (s *auctionDataService) Realms(ctx context.Context, region string) (json.RawMessage, error) {
	return s.cached(ctx, bus.SubjectStatus, region, regionRequest{RegionName: region})
}

func (s *auctionDataService) Auctions(ctx context.Context, q AuctionsQuery) (json.RawMessage, error) {
	return s.raw(ctx, bus.SubjectAuctions, auctionsRequest{
		RegionName:    q.Region,
		RealmName:     q.Realm,
		Page:          q.Page,
		Count:         q.Count,
		SortKind:      q.SortKind,
		SortDirection: q.SortDirection,
		OwnerFilters:  nonNil(q.OwnerFilters),
		ItemFilters:   nonNil(q.ItemFilters),
	}, true)
}

func (s *auctionDataService) Owners(ctx context.Context, region, realm, query string) (json.RawMessage, error) {
	return s.raw(ctx, bus.SubjectOwners, ownersRequest{RegionName: region, RealmName: realm, Query: query}, false)
}

func (s *auctionDataService) QueryItems(ctx context.Context, query string) (json.RawMessage, error) {
	return s.raw(ctx, bus.SubjectItemsQuery, itemsQueryRequest{Query: query}, false)
}

func (s *auctionDataService) PriceList(ctx context.Context, region, realm string, itemIDs []models.ItemID) (json.RawMessage, error) {
	return s.raw(ctx, bus.SubjectPriceList, priceListRequest{RegionName: region, RealmName: realm, ItemIDs: nonNil(itemIDs)}, true)
}

// PriceListHistory fetches history over [now-LookbackWindow, now] and item metadata concurrently,
// then derives price bands from the history. Any bus failure is returned unchanged.
func (s *auctionDataService) PriceListHistory(ctx context.Context, region, realm string, itemIDs []models.ItemID, now time.Time) (*models.PriceListHistory, error) {
	var (
		history models.PriceHistory
		items   map[models.ItemID]json.RawMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		msg, err := s.bus.Request(gctx, bus.SubjectPriceListHistory, priceListHistoryRequest{
			RegionName:  region,
			RealmName:   realm,
			ItemIDs:     itemIDs,
			LowerBounds: now.Add(-pricing.LookbackWindow).Unix(),
			UpperBounds: now.Unix(),
		})
		if err != nil {
			return err
		}
		var body struct {
			History models.PriceHistory `json:"history"`
		}
		if err := msg.DecodeGzipped(&body); err != nil {
			return err
		}
		history = body.History
		return nil
	})
	g.Go(func() error {
		msg, err := s.bus.Request(gctx, bus.SubjectItems, itemsRequest{ItemIDs: itemIDs})
		if err != nil {
			return err
		}
		var body struct {
			Items map[models.ItemID]json.RawMessage `json:"items"`
		}
		if err := msg.Decode(&body); err != nil {
			return err
		}
		items = body.Items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if history == nil {
		history = models.PriceHistory{}
	}
	if items == nil {
		items = map[models.ItemID]json.RawMessage{}
	}

	bands, overall := s.aggregator.Compute(itemIDs, history)
	metrics.PriceBandComputations.Inc()
	metrics.PriceBandItems.Observe(float64(len(itemIDs)))

	logger.Ctx(ctx).Debug().
		Str("region", region).
		Str("realm", realm).
		Int("items", len(itemIDs)).
		Float64("overall_lower", overall.Lower).
		Float64("overall_upper", overall.Upper).
		Msg("price bands computed")

	return &models.PriceListHistory{
		History:     history,
		Items:       items,
		ItemBands:   bands,
		OverallBand: overall,
	}, nil
}

// cached serves subject+key from the LRU, filling it on a miss.
func (s *auctionDataService) cached(ctx context.Context, subject, key string, body any) (json.RawMessage, error) {
	cacheKey := subject + ":" + key
	if v, ok := s.cache.Get(cacheKey); ok {
		metrics.BusCacheHitsTotal.WithLabelValues(subject).Inc()
		return v, nil
	}

	v, err := s.raw(ctx, subject, body, false)
	if err != nil {
		return nil, err
	}
	s.cache.Add(cacheKey, v)
	return v, nil
}

func (s *auctionDataService) raw(ctx context.Context, subject string, body any, gzipped bool) (json.RawMessage, error) {
	msg, err := s.bus.Request(ctx, subject, body)
	if err != nil {
		return nil, err
	}

	var out json.RawMessage
	if gzipped {
		err = msg.DecodeGzipped(&out)
	} else {
		err = msg.Decode(&out)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
