package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/classifieds-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                     8000,
			LogLevel:                 "info",
			ShutdownTimeoutSeconds:   1,
			ReadHeaderTimeoutSeconds: 1,
		},
		Auth: config.AuthConfig{
			JWTSecret:  testJWTSecret,
			BcryptCost: 4,
		},
		RateLimit: config.RateLimitConfig{LoginBurst: 1},
	}
}

func TestNewApplication_WiresHealthAgainstDatabase(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	app, err := newApplication(testConfig(), discardLogger(), db)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, map[string]string{"status": "healthy", "database": "connected"}, body)

	mock.ExpectClose()
	app.cleanup()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewApplication_RegistersCollectors(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	app, err := newApplication(testConfig(), discardLogger(), db)
	require.NoError(t, err)

	families, err := app.registry.Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	joined := strings.Join(names, " ")
	assert.Contains(t, joined, "go_sql_open_connections")
	assert.Contains(t, joined, "go_goroutines")
}

func TestNewApplication_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cfg := testConfig()
	cfg.Auth.JWTSecret = "short"

	app, err := newApplication(cfg, discardLogger(), db)

	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "failed to initialize JWT service")
}

func TestNewApplication_LoginLimiterFromConfig(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cfg := testConfig()
	cfg.RateLimit.LoginPerSecond = 0.001
	cfg.RateLimit.LoginBurst = 1

	app, err := newApplication(cfg, discardLogger(), db)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, email, password_hash FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}))

	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@x.io","password":"pw"}`))
		rec := httptest.NewRecorder()
		app.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, login())
	assert.Equal(t, http.StatusTooManyRequests, login())
}
