package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(201, RoleMentor, 7, 0)
	require.NoError(t, err)

	claims, err := ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(201), claims.AccountID)
	assert.Equal(t, string(RoleMentor), claims.Role)
	assert.Equal(t, uint64(7), claims.MentorID)
	assert.Zero(t, claims.StartupID)
}

func TestValidToken_Garbage(t *testing.T) {
	_, err := ValidToken("not.a.token")
	require.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	logger := zap.NewNop()

	var captured *Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = SessionFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(logger)(next)

	t.Run("valid bearer token reaches the handler", func(t *testing.T) {
		token, err := GenerateToken(101, RoleStartup, 0, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/startup/requests", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, uint64(101), captured.AccountID)
		assert.True(t, captured.IsStartup())
		assert.Equal(t, uint64(1), captured.StartupID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/startup/requests", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/startup/requests", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := GenerateToken(101, RoleStartup, 0, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/startup/requests", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
