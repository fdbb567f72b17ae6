package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insightflo-backend/pkg/response"
	"insightflo-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPublicPaths    = []string{"/api/v1/auth/signin", "/api/v1/news/search"}
	testProtectedPaths = []string{"/api/v1/news/personalized", "/api/v1/auth/profile"}
)

func testRouter(issuer *token.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthGate(issuer, testPublicPaths, testProtectedPaths))

	echo := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":    c.GetString(ContextUserID),
			"userEmail": c.GetString(ContextUserEmail),
		})
	}
	r.GET("/api/v1/news/personalized", echo)
	r.GET("/api/v1/news/search", echo)
	r.GET("/api/v1/auth/profile", echo)
	r.GET("/api/v1/health", echo)
	return r
}

func newGateIssuer() *token.Issuer {
	return token.NewIssuer(token.Config{
		AccessSecret:  "access-test-secret",
		RefreshSecret: "refresh-test-secret",
		Issuer:        "insightflo-api",
		Audience:      "insightflo-app",
		AccessTTL:     time.Hour,
	})
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAuthGateMissingHeader(t *testing.T) {
	r := testRouter(newGateIssuer())

	w := doRequest(r, "/api/v1/news/personalized", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", env.Error.Code)
}

func TestAuthGateRejections(t *testing.T) {
	issuer := newGateIssuer()
	r := testRouter(issuer)

	foreign := token.NewIssuer(token.Config{
		AccessSecret:  "other-secret",
		RefreshSecret: "other-refresh",
		Issuer:        "insightflo-api",
		Audience:      "insightflo-app",
		AccessTTL:     time.Hour,
	})
	foreignPair, err := foreign.Issue("user-1", "a@b.com")
	require.NoError(t, err)

	pair, err := issuer.Issue("user-1", "a@b.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "malformed header", header: "Token abc"},
		{name: "bare token without scheme", header: pair.AccessToken},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "foreign signature", header: "Bearer " + foreignPair.AccessToken},
		{name: "refresh token on protected route", header: "Bearer " + pair.RefreshToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, "/api/v1/news/personalized", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			// Every rejection carries the same code; the cause stays server-side.
			env := decodeEnvelope(t, w)
			require.NotNil(t, env.Error)
			assert.Equal(t, "AUTHENTICATION_REQUIRED", env.Error.Code)
		})
	}
}

func TestAuthGateValidToken(t *testing.T) {
	issuer := newGateIssuer()
	r := testRouter(issuer)

	pair, err := issuer.Issue("user-1", "a@b.com")
	require.NoError(t, err)

	w := doRequest(r, "/api/v1/news/personalized", "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["userID"])
	assert.Equal(t, "a@b.com", body["userEmail"])
}

func TestAuthGatePublicPath(t *testing.T) {
	r := testRouter(newGateIssuer())

	w := doRequest(r, "/api/v1/news/search", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthGateUnlistedPathPassesThrough(t *testing.T) {
	r := testRouter(newGateIssuer())

	w := doRequest(r, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthGatePublicCheckedBeforeProtected(t *testing.T) {
	issuer := newGateIssuer()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// The public entry lexically overlaps the protected prefix and must win.
	r.Use(AuthGate(issuer, []string{"/api/v1/news/personalized/preview"}, []string{"/api/v1/news/personalized"}))
	r.GET("/api/v1/news/personalized/preview", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := doRequest(r, "/api/v1/news/personalized/preview", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
