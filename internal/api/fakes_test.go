package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/guttosm/auctionpulse/internal/domain/models"
	"github.com/guttosm/auctionpulse/internal/service"
)

type fakeAuth struct {
	user     *models.User
	token    string
	err      error
	parsedID int64
	parseErr error
}

func (f *fakeAuth) Register(context.Context, string, string) (*models.User, string, error) {
	return f.user, f.token, f.err
}

func (f *fakeAuth) Login(context.Context, string, string) (*models.User, string, error) {
	return f.user, f.token, f.err
}

func (f *fakeAuth) ParseToken(string) (int64, error) { return f.parsedID, f.parseErr }

func (f *fakeAuth) CurrentUser(context.Context, int64) (*models.User, error) { return f.user, f.err }

type fakePrefs struct {
	pref *models.Preference
	err  error
}

func (f *fakePrefs) Get(context.Context, int64) (*models.Preference, error) { return f.pref, f.err }

func (f *fakePrefs) Create(context.Context, int64, string, string) (*models.Preference, error) {
	return f.pref, f.err
}

func (f *fakePrefs) Update(context.Context, int64, string, string) (*models.Preference, error) {
	return f.pref, f.err
}

type fakePricelists struct {
	lists   []models.Pricelist
	one     *models.Pricelist
	err     error
	created models.Pricelist
	entries []models.PricelistEntry
}

func (f *fakePricelists) List(context.Context, int64, string, string) ([]models.Pricelist, error) {
	return f.lists, f.err
}

func (f *fakePricelists) Create(_ context.Context, p models.Pricelist, entries []models.PricelistEntry) (*models.Pricelist, error) {
	f.created, f.entries = p, entries
	return f.one, f.err
}

func (f *fakePricelists) Update(_ context.Context, _, _ int64, _ string, entries []models.PricelistEntry) (*models.Pricelist, error) {
	f.entries = entries
	return f.one, f.err
}

func (f *fakePricelists) Delete(context.Context, int64, int64) error { return f.err }

type fakeData struct {
	raw     json.RawMessage
	history *models.PriceListHistory
	err     error
	query   service.AuctionsQuery
	itemIDs []models.ItemID
}

func (f *fakeData) Regions(context.Context) (json.RawMessage, error)        { return f.raw, f.err }
func (f *fakeData) Realms(context.Context, string) (json.RawMessage, error) { return f.raw, f.err }

func (f *fakeData) Auctions(_ context.Context, q service.AuctionsQuery) (json.RawMessage, error) {
	f.query = q
	return f.raw, f.err
}

func (f *fakeData) Owners(context.Context, string, string, string) (json.RawMessage, error) {
	return f.raw, f.err
}

func (f *fakeData) QueryItems(context.Context, string) (json.RawMessage, error) { return f.raw, f.err }

func (f *fakeData) PriceList(_ context.Context, _, _ string, ids []models.ItemID) (json.RawMessage, error) {
	f.itemIDs = ids
	return f.raw, f.err
}

func (f *fakeData) PriceListHistory(_ context.Context, _, _ string, ids []models.ItemID, _ time.Time) (*models.PriceListHistory, error) {
	f.itemIDs = ids
	return f.history, f.err
}

var (
	_ service.AuthService        = (*fakeAuth)(nil)
	_ service.PreferenceService  = (*fakePrefs)(nil)
	_ service.PricelistService   = (*fakePricelists)(nil)
	_ service.AuctionDataService = (*fakeData)(nil)
)

// services bundles the fakes; nil members get zero-value fakes.
type services struct {
	auth       *fakeAuth
	prefs      *fakePrefs
	pricelists *fakePricelists
	data       *fakeData
}

func (s services) handler() *Handler {
	if s.auth == nil {
		s.auth = &fakeAuth{parsedID: 1}
	}
	if s.prefs == nil {
		s.prefs = &fakePrefs{}
	}
	if s.pricelists == nil {
		s.pricelists = &fakePricelists{}
	}
	if s.data == nil {
		s.data = &fakeData{}
	}
	return NewHandler(s.auth, s.prefs, s.pricelists, s.data)
}
