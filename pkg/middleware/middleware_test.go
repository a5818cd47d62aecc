package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/authenticating"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

type fakeAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	log.SetupTestLogger()
	claims := &domain.Claims{UserID: "u1", OrganizationID: "org-1", Role: domain.RoleStaff}

	tests := []struct {
		name       string
		path       string
		header     string
		auth       fakeAuthenticator
		wantStatus int
	}{
		{name: "rota pública", path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "sem cabeçalho", path: "/v1/widgets", wantStatus: http.StatusUnauthorized},
		{name: "sem Bearer", path: "/v1/widgets", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "token expirado", path: "/v1/widgets", header: "Bearer abc", auth: fakeAuthenticator{err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")}, wantStatus: http.StatusUnauthorized},
		{name: "token inválido", path: "/v1/widgets", header: "Bearer abc", auth: fakeAuthenticator{err: errors.New("bad")}, wantStatus: http.StatusUnauthorized},
		{name: "token válido", path: "/v1/widgets", header: "Bearer abc", auth: fakeAuthenticator{claims: claims}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *domain.Claims
			handler := AuthMiddleware(tt.auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.auth.claims != nil {
				assert.Equal(t, claims, got)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "sem usuário", wantStatus: http.StatusUnauthorized},
		{name: "papel permitido", claims: &domain.Claims{Role: domain.RoleCoordinator}, wantStatus: http.StatusOK},
		{name: "papel negado", claims: &domain.Claims{Role: domain.RoleStaff}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOrCoordinator()(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"https://app.wedsync.com"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/v1/widgets", nil)
	req.Header.Set("Origin", "https://app.wedsync.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.wedsync.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/widgets", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	handler := LoggingMiddleware()(LogPanicMiddleware()(panicking))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/widgets", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
