package app

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"

	"github.com/guttosm/auctionpulse/config"
)

func testConfig() config.Config {
	return config.Config{
		Server:   config.ServerConfig{Port: "0", RateLimitRPS: 100, RateLimitBurst: 100},
		Postgres: config.PostgresConfig{Host: "127.0.0.1", Port: 54329, User: "x", Password: "y", DBName: "z", SSLMode: "disable"},
		Redis:    config.RedisConfig{Addr: "127.0.0.1:1"},
		Bus:      config.BusConfig{RequestTimeout: time.Second, CacheSize: 8, CacheTTL: time.Minute},
		Auth:     config.AuthConfig{JWTSecret: "secret", TokenTTL: time.Hour},
	}
}

// TestInitPostgres_InvalidHost expects ping failure.
func TestInitPostgres_InvalidHost(t *testing.T) {
	db, err := InitPostgres(testConfig())
	if err == nil {
		_ = db.Close()
		t.Fatalf("expected error connecting to invalid DB")
	}
}

// TestInitializeApp_DBFailure ensures InitializeApp returns error when DB cannot connect.
func TestInitializeApp_DBFailure(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = testConfig()

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with invalid DB config")
	}
}

func TestInitializeApp_RedisFailureClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	mock.ExpectClose()

	oldPG, oldRedis, oldCfg := postgresOpener, redisOpener, config.AppConfig
	postgresOpener = func(config.Config) (*sql.DB, error) { return db, nil }
	redisOpener = func(config.Config) (*redis.Client, error) { return nil, errors.New("redis down") }
	config.AppConfig = testConfig()
	t.Cleanup(func() { postgresOpener, redisOpener, config.AppConfig = oldPG, oldRedis, oldCfg })

	if _, _, err := InitializeApp(); err == nil {
		t.Fatalf("expected redis error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("db not closed: %v", err)
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}

	oldPG, oldRedis, oldCfg := postgresOpener, redisOpener, config.AppConfig
	postgresOpener = func(config.Config) (*sql.DB, error) { return db, nil }
	// nothing listens on port 1, so the redis readiness check fails fast
	redisOpener = func(cfg config.Config) (*redis.Client, error) {
		return redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, MaxRetries: -1}), nil
	}
	config.AppConfig = testConfig()
	t.Cleanup(func() { postgresOpener, redisOpener, config.AppConfig = oldPG, oldRedis, oldCfg })

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	cases := []struct {
		path string
		want int
	}{
		{path: "/healthz", want: http.StatusOK},
		{path: "/ping", want: http.StatusOK},
		{path: "/readyz", want: http.StatusServiceUnavailable},
		{path: "/api/v1/user", want: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("%s status=%d, want %d", tc.path, w.Code, tc.want)
		}
	}
}
