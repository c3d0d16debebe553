package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestBidRateLimiter_ThrottlesPerClient(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, NewBidRateLimiter(0.001, 2))

	// payload errors still count against the budget
	for i := 0; i < 2; i++ {
		w, _ := perform(t, router, http.MethodPost, "/api/bids", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}

	w, resp := perform(t, router, http.MethodPost, "/api/bids", `{}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "too many bid submissions", resp["message"])

	// reads are not throttled
	w, _ = perform(t, router, http.MethodGet, "/api/auctions", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestBidRateLimiter_SeparateClients(t *testing.T) {
	t.Parallel()

	limiter := NewBidRateLimiter(0.001, 1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", limiter.Middleware, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/bids", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusNoContent, send("10.0.0.1:5000"))
	require.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5001"))
	require.Equal(t, http.StatusNoContent, send("10.0.0.2:5000"))
}

func TestRequestLoggerMiddleware_PassesThrough(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLoggerMiddleware)
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
}
