package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/ticket-ledger/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokens *jwt.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware(), JWTAuthMiddleware(tokens))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetString(ContextOperatorID),
			"email": c.GetString(ContextOperatorEmail),
		})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := jwt.NewTokenService("secret", time.Hour)
	valid, _, err := tokens.Issue(jwt.Claims{Subject: "op-1", Email: "desk@example.com", Role: "operator"})
	require.NoError(t, err)
	expired, _, err := jwt.NewTokenService("secret", -time.Hour).Issue(jwt.Claims{Subject: "op-1"})
	require.NoError(t, err)
	foreign, _, err := jwt.NewTokenService("other", time.Hour).Issue(jwt.Claims{Subject: "op-1"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: `"email":"desk@example.com"`},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header is required"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "must start with Bearer"},
		{name: "expired token", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "foreign signature", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "garbage", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
	}

	router := newProtectedRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://desk.local"}), LoggerMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://desk.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://desk.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.local")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	r := gin.New()
	r.POST("/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"), "other clients keep their own budget")

	limiter.Cleanup()
	assert.Len(t, limiter.limiters, 2)
}
