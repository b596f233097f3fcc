package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"parentsguide-srv/config"
	"parentsguide-srv/pkg/log"
	pkgRedis "parentsguide-srv/pkg/redis"
)

type offlineClient struct{}

func (offlineClient) Get(context.Context, string, map[string]string) ([]byte, int, error) {
	return []byte("<html></html>"), http.StatusServiceUnavailable, nil
}

type downRedis struct{ pkgRedis.IRedis }

func (downRedis) Ping(context.Context) error { return pkgRedis.ErrNotFound }

func newTestServer(t *testing.T, redis pkgRedis.IRedis) *HTTPServer {
	t.Helper()
	cfg := &config.Config{}
	cfg.Guide.AllowedAge = 12
	cfg.Guide.CacheTTL = time.Minute
	cfg.Redis.Enabled = redis != nil

	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		Config:      cfg,
		HTTPClient:  offlineClient{},
		RedisClient: redis,
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Mode: "test", Port: 8080})
	require.Error(t, err)

	cfg := &config.Config{}
	cfg.Redis.Enabled = true
	_, err = New(log.NewNop(), Config{Logger: log.NewNop(), Mode: "test", Port: 8080, Config: cfg, HTTPClient: offlineClient{}})
	require.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/live", "/ready"} {
		w := get(srv, path)
		require.Equal(t, http.StatusOK, w.Code, path)
	}

	w := get(srv, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "parentsguide_http_requests_total"))
}

func TestReadyReportsRedis(t *testing.T) {
	srv := newTestServer(t, downRedis{})

	w := get(srv, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAddonRoutesWired(t *testing.T) {
	srv := newTestServer(t, nil)

	w := get(srv, "/manifest.json")
	require.Equal(t, http.StatusOK, w.Code)
	var manifest map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &manifest))
	require.Equal(t, "com.beast.getparentsguide", manifest["id"])
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Upstream is down, so the title is degraded to the minimum age and passes the gate.
	w = get(srv, "/meta/movie/gpg-tt0910970.json")
	require.Equal(t, http.StatusOK, w.Code)
	var meta struct {
		Meta struct {
			AgeRating int    `json:"ageRating"`
			Name      string `json:"name"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
	require.Equal(t, 6, meta.Meta.AgeRating)
	require.Equal(t, "Unknown Title", meta.Meta.Name)
}
