package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natsumeaurlia/projectboard/internal/board/store"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Projects  int       `json:"projects"`
}

type HealthHandler struct {
	serviceName string
	version     string
	store       *store.ProjectStore
}

func NewHealthHandler(serviceName, version string, st *store.ProjectStore) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       st,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	projects := 0
	if h.store != nil {
		projects = h.store.Len()
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Projects:  projects,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
