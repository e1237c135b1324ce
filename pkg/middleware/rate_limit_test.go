package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/gjaolabs/boilerplate-project-exercisetracker/pkg/metrics"
)

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	before := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))

	// two quick requests should pass
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("GET", "/ok", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	// verify metrics incremented for memory limiter
	require.Equal(t, before+2, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	// very low rate to force rejections
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	send := func(remoteAddr string) int {
		rq := httptest.NewRequest("GET", "/limited", nil)
		rq.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, rq)
		return w.Code
	}

	// first request -> allowed
	require.Equal(t, http.StatusOK, send("10.1.1.1:1000"))
	// immediate second request -> should be rate-limited
	require.Equal(t, http.StatusTooManyRequests, send("10.1.1.1:1000"))
	// a different client is tracked independently
	require.Equal(t, http.StatusOK, send("10.1.1.2:1000"))

	// wait long enough to replenish one token at 0.5 rps
	time.Sleep(2100 * time.Millisecond)
	require.Equal(t, http.StatusOK, send("10.1.1.1:1000"))
}
