//go:build integration
// +build integration

package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/auctionpulse/config"
	"github.com/guttosm/auctionpulse/internal/app"
	"github.com/guttosm/auctionpulse/internal/bus"
)

func startPG(t *testing.T) (dsn string, host string, port nat.Port, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "auctionpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(h string, p nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=auctionpulse sslmode=disable", h, p.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", h, mp.Port(), "auctionpulse")
	terminate = func() { _ = c.Terminate(context.Background()) }
	return dsn, h, mp, terminate
}

func startRedis(t *testing.T) (addr string, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	addr, err = c.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	return addr, func() { _ = c.Terminate(context.Background()) }
}

func openAndMigrate(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fakeBackend answers bus requests the way the auction backend does.
func fakeBackend(ctx context.Context, t *testing.T, addr string) {
	t.Helper()
	tr := bus.NewRedisTransport(redis.NewClient(&redis.Options{Addr: addr}))

	gz := func(v any) string {
		b, _ := json.Marshal(v)
		s, err := bus.EncodeGzipped(b)
		if err != nil {
			t.Errorf("gzip: %v", err)
		}
		return s
	}
	plain := func(v any) string {
		b, _ := json.Marshal(v)
		return string(b)
	}
	replies := map[string]bus.Message{
		bus.SubjectRegions: {Code: bus.CodeOK, Data: plain(map[string]any{"regions": []string{"us", "eu"}})},
		bus.SubjectItems: {Code: bus.CodeOK, Data: plain(map[string]any{
			"items": map[string]any{"2447": map[string]any{"name": "Peacebloom"}},
		})},
		bus.SubjectPriceListHistory: {Code: bus.CodeOK, Data: gz(map[string]any{
			"history": map[string]any{
				"2447": map[string]any{
					"100": map[string]any{"min_buyout_per": 10},
					"200": map[string]any{"min_buyout_per": 30},
				},
			},
		})},
		bus.SubjectOwners: {Code: bus.CodeNotFound, Error: "realm not found"},
	}

	for subject, reply := range replies {
		reqs, err := tr.Subscribe(ctx, subject)
		if err != nil {
			t.Fatalf("subscribe %s: %v", subject, err)
		}
		payload, _ := json.Marshal(reply)
		go func() {
			for raw := range reqs {
				var env struct {
					ReplyTo string `json:"reply_to"`
				}
				if json.Unmarshal(raw, &env) == nil {
					_ = tr.Publish(ctx, env.ReplyTo, payload)
				}
			}
		}()
	}
}

func call(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPI_E2E(t *testing.T) {
	dsn, host, port, termPG := startPG(t)
	defer termPG()
	db := openAndMigrate(t, dsn)
	defer db.Close()

	redisAddr, termRedis := startRedis(t)
	defer termRedis()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fakeBackend(ctx, t, redisAddr)

	p, _ := nat.ParsePort(port.Port())
	config.AppConfig = config.Config{
		Server:   config.ServerConfig{Port: "0", RateLimitRPS: 1000, RateLimitBurst: 1000},
		Postgres: config.PostgresConfig{Host: host, Port: p, User: "postgres", Password: "postgres", DBName: "auctionpulse", SSLMode: "disable"},
		Redis:    config.RedisConfig{Addr: redisAddr},
		Bus:      config.BusConfig{RequestTimeout: 5 * time.Second, CacheSize: 16, CacheTTL: time.Minute},
		Auth:     config.AuthConfig{JWTSecret: "e2e-secret", TokenTTL: time.Hour},
	}

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	if w := call(t, router, http.MethodGet, "/readyz", "", nil); w.Code != http.StatusOK {
		t.Fatalf("readyz: %d %s", w.Code, w.Body.String())
	}

	// ─── Auth ─────────────────────────────────────
	w := call(t, router, http.MethodPost, "/api/v1/users", "", map[string]string{"email": "Jane@Example.com", "password": "hunter22"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	if w := call(t, router, http.MethodPost, "/api/v1/users", "", map[string]string{"email": "jane@example.com", "password": "hunter22"}); w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: %d", w.Code)
	}
	w = call(t, router, http.MethodPost, "/api/v1/login", "", map[string]string{"email": "jane@example.com", "password": "hunter22"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var auth struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &auth)

	// ─── Preferences ──────────────────────────────
	pref := map[string]string{"current_region": "us", "current_realm": "earthen-ring"}
	if w := call(t, router, http.MethodGet, "/api/v1/user/preferences", auth.Token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("get missing preference: %d", w.Code)
	}
	if w := call(t, router, http.MethodPost, "/api/v1/user/preferences", auth.Token, pref); w.Code != http.StatusCreated {
		t.Fatalf("create preference: %d %s", w.Code, w.Body.String())
	}
	if w := call(t, router, http.MethodPost, "/api/v1/user/preferences", auth.Token, pref); w.Code != http.StatusBadRequest {
		t.Fatalf("create preference twice: %d", w.Code)
	}

	// ─── Pricelists ───────────────────────────────
	w = call(t, router, http.MethodPost, "/api/v1/user/pricelists", auth.Token, map[string]any{
		"pricelist": map[string]string{"name": "Herbs", "region": "us", "realm": "earthen-ring"},
		"entries":   []map[string]int{{"item_id": 2447, "quantity_modifier": 20}, {"item_id": 765, "quantity_modifier": 1}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create pricelist: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Pricelist struct {
			ID      int64 `json:"id"`
			Entries []struct {
				ID     int64 `json:"id"`
				ItemID int64 `json:"item_id"`
			} `json:"entries"`
		} `json:"pricelist"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if len(created.Pricelist.Entries) != 2 {
		t.Fatalf("entries not stored: %s", w.Body.String())
	}

	path := fmt.Sprintf("/api/v1/user/pricelists/%d", created.Pricelist.ID)
	w = call(t, router, http.MethodPut, path, auth.Token, map[string]any{
		"pricelist": map[string]string{"name": "Herbs and more"},
		"entries": []map[string]int64{
			{"id": created.Pricelist.Entries[0].ID, "item_id": 2447, "quantity_modifier": 5},
			{"item_id": 3820, "quantity_modifier": 2},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update pricelist: %d %s", w.Code, w.Body.String())
	}

	w = call(t, router, http.MethodGet, "/api/v1/user/pricelists/region/us/realm/earthen-ring", auth.Token, nil)
	var listed struct {
		Pricelists []struct {
			Name    string            `json:"name"`
			Entries []json.RawMessage `json:"entries"`
		} `json:"pricelists"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &listed)
	if w.Code != http.StatusOK || len(listed.Pricelists) != 1 || listed.Pricelists[0].Name != "Herbs and more" || len(listed.Pricelists[0].Entries) != 2 {
		t.Fatalf("list pricelists: %d %s", w.Code, w.Body.String())
	}

	w = call(t, router, http.MethodPost, "/api/v1/users", "", map[string]string{"email": "joe@example.com", "password": "hunter22"})
	var other struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &other)
	if w := call(t, router, http.MethodDelete, path, other.Token, nil); w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: %d", w.Code)
	}
	if w := call(t, router, http.MethodDelete, path, auth.Token, nil); w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := call(t, router, http.MethodDelete, path, auth.Token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("delete twice: %d", w.Code)
	}

	// ─── Bus-backed data ──────────────────────────
	if w := call(t, router, http.MethodGet, "/api/v1/regions", "", nil); w.Code != http.StatusOK {
		t.Fatalf("regions: %d %s", w.Code, w.Body.String())
	}
	if w := call(t, router, http.MethodGet, "/api/v1/region/us/realm/nowhere/owners", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("owners: %d %s", w.Code, w.Body.String())
	}

	w = call(t, router, http.MethodPost, "/api/v1/region/us/realm/earthen-ring/price-list-history", "", map[string][]int{"item_ids": {2447, 765}})
	if w.Code != http.StatusOK {
		t.Fatalf("price list history: %d %s", w.Code, w.Body.String())
	}
	var hist struct {
		ItemPriceLimits    map[string]struct{ Lower, Upper float64 } `json:"itemPriceLimits"`
		OverallPriceLimits struct{ Lower, Upper float64 }            `json:"overallPriceLimits"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &hist); err != nil {
		t.Fatalf("json: %v", err)
	}
	if hist.ItemPriceLimits["2447"].Lower != 20 || hist.ItemPriceLimits["2447"].Upper != 40 {
		t.Fatalf("unexpected item band %+v", hist.ItemPriceLimits["2447"])
	}
	if hist.ItemPriceLimits["765"].Lower != 0 || hist.ItemPriceLimits["765"].Upper != 0 {
		t.Fatalf("missing item should have a zero band: %+v", hist.ItemPriceLimits["765"])
	}
	if hist.OverallPriceLimits.Lower != 20 || hist.OverallPriceLimits.Upper != 40 {
		t.Fatalf("unexpected overall band %+v", hist.OverallPriceLimits)
	}
}
