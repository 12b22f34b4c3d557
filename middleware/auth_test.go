package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dosada05/tennis-cup/middleware"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-secret")

func sign(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func protected() http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return middleware.Authenticate(secret)(middleware.Authorize("organizer")(ok))
}

func serve(h http.Handler, authorization string) int {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthenticate(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, jwt.MapClaims{"role": "organizer", "exp": past}, jwt.SigningMethodHS256, secret), http.StatusUnauthorized},
		{"wrong secret", "Bearer " + sign(t, jwt.MapClaims{"role": "organizer", "exp": future}, jwt.SigningMethodHS256, []byte("other")), http.StatusUnauthorized},
		{"other role", "Bearer " + sign(t, jwt.MapClaims{"role": "viewer", "exp": future}, jwt.SigningMethodHS256, secret), http.StatusForbidden},
		{"missing role", "Bearer " + sign(t, jwt.MapClaims{"exp": future}, jwt.SigningMethodHS256, secret), http.StatusUnauthorized},
		{"organizer", "Bearer " + sign(t, jwt.MapClaims{"role": "organizer", "exp": future}, jwt.SigningMethodHS256, secret), http.StatusOK},
		{"lowercase scheme", "bearer " + sign(t, jwt.MapClaims{"role": "organizer", "exp": future}, jwt.SigningMethodHS256, secret), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(protected(), tt.header))
		})
	}
}

func TestGetUserRoleFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := middleware.GetUserRoleFromContext(req.Context())
	assert.Error(t, err)

	ctx := middleware.WithClaims(req.Context(), jwt.MapClaims{"role": "organizer"})
	role, err := middleware.GetUserRoleFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "organizer", role)

	ctx = middleware.WithClaims(req.Context(), jwt.MapClaims{"role": 7})
	_, err = middleware.GetUserRoleFromContext(ctx)
	assert.Error(t, err)
}
