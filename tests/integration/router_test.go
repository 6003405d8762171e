package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ypd-labs/cvp-lite-backend/internal/bootstrap"
)

func TestRouter_InMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "CVP Lite",
		Version:     "1.0.0",
	})

	t.Run("health reports in-memory storage", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Status   string            `json:"status"`
			Services map[string]string `json:"services"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "in-memory", resp.Services["storage"])
	})

	t.Run("questions endpoint is registered", func(t *testing.T) {
		body := bytes.NewReader([]byte(`{"student_id":"s1"}`))
		req, _ := http.NewRequest("POST", "/cvp_lite/questions", body)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("request id header is set", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})

	t.Run("request id from client is echoed", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Request-Id", "test-rid-1")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "test-rid-1", rr.Header().Get("X-Request-Id"))
	})
}

func TestRouter_WithRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:     "CVP Lite",
		Version:         "1.0.0",
		Redis:           client,
		RateLimitPerSec: 2,
	})

	t.Run("health reports redis up", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Services map[string]string `json:"services"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "redis: up", resp.Services["storage"])
	})

	t.Run("rate limit kicks in above the configured rps", func(t *testing.T) {
		codes := make([]int, 0, 4)
		for i := 0; i < 4; i++ {
			req, _ := http.NewRequest("GET", "/healthz", nil)
			req.RemoteAddr = "10.0.0.9:12345"
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)
		}

		assert.Equal(t, http.StatusOK, codes[0])
		assert.Equal(t, http.StatusOK, codes[1])
		assert.Equal(t, http.StatusTooManyRequests, codes[2])
		assert.Equal(t, http.StatusTooManyRequests, codes[3])
	})

	t.Run("rate limit counter without a ttl is repaired", func(t *testing.T) {
		// A counter that lost its expiry must not lock the client out
		key := "cvp:ratelimit:10.0.0.77"
		require.NoError(t, mr.Set(key, "1"))
		require.False(t, mr.TTL(key) > 0)

		req, _ := http.NewRequest("GET", "/healthz", nil)
		req.RemoteAddr = "10.0.0.77:23456"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, mr.TTL(key) > 0)
	})

	t.Run("profiles go through redis", func(t *testing.T) {
		body := bytes.NewReader([]byte(`{"first_name":"Asha","last_name":"Verma","grade":"10","school_name":"Springfield High","email":"asha@example.com"}`))
		req, _ := http.NewRequest("POST", "/user/setup", body)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.NotEmpty(t, mr.Keys())
	})
}
