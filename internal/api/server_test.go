package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/kvstore"
	"github.com/vfg2006/wedsync-venue-api/internal/api/handler"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/authenticating"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/incident"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/widget"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func newTestHandler(t *testing.T) (http.Handler, *authenticating.Service) {
	t.Helper()

	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"https://app.wedsync.com"}},
		Auth:   config.Auth{Secret: "segredo-de-teste"},
	}

	catalog, err := widget.NewCatalog()
	require.NoError(t, err)

	auth := authenticating.NewService(cfg)

	return NewHandler(cfg, Services{
		Authenticator: auth,
		Incidents:     incident.NewManager(kvstore.NewMemoryStore(), incident.Options{}),
		Widgets:       catalog,
		CronJobs:      handler.CronJobServices{},
	}), auth
}

func TestNewHandler_Authentication(t *testing.T) {
	h, auth := newTestHandler(t)

	token, err := auth.GenerateToken("u-1", "org-1", domain.RoleStaff, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		authHeader string
		wantStatus int
	}{
		{name: "healthcheck público", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "sem token", method: http.MethodGet, path: "/v1/widgets", wantStatus: http.StatusUnauthorized},
		{name: "token inválido", method: http.MethodGet, path: "/v1/widgets", authHeader: "Bearer abc", wantStatus: http.StatusUnauthorized},
		{name: "token válido", method: http.MethodGet, path: "/v1/widgets", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "staff na rota de admin", method: http.MethodGet, path: "/v1/cron/status", authHeader: "Bearer " + token, wantStatus: http.StatusForbidden},
		{name: "preflight", method: http.MethodOptions, path: "/v1/widgets", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "https://app.wedsync.com")
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "https://app.wedsync.com", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}
