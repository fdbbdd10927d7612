package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natsumeaurlia/projectboard/internal/board/store"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	st := store.New()
	st.Add("Website", "Build it", 10)

	router := gin.New()
	handler := NewHealthHandler("projectboard-test", "1.0.0", st)
	handler.RegisterRoutes(router)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, nethttp.StatusOK, rr.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "projectboard-test", response.Service)
	assert.Equal(t, 1, response.Projects)
}

func TestHealthCheckWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHealthHandler("projectboard-test", "1.0.0", nil).RegisterRoutes(router)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, nethttp.StatusOK, rr.Code)
}
