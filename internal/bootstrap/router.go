package bootstrap

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/natsumeaurlia/projectboard/internal/api/http"
	"github.com/natsumeaurlia/projectboard/internal/api/http/middleware"
	boardhttp "github.com/natsumeaurlia/projectboard/internal/board/http"
	"github.com/natsumeaurlia/projectboard/internal/board/presenter"
	"github.com/natsumeaurlia/projectboard/internal/board/service"
	"github.com/natsumeaurlia/projectboard/internal/board/store"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	AllowOrigins []string
	StaticDir    string

	Store    *store.ProjectStore
	Service  *service.BoardService
	Active   *presenter.ListPresenter
	Finished *presenter.ListPresenter
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware(dep.AllowOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	// The widget page itself; the API works without it.
	if dep.StaticDir != "" {
		r.StaticFile("/", filepath.Join(dep.StaticDir, "index.html"))
	}

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	boardHandler := boardhttp.New(dep.Service, dep.Active, dep.Finished)
	boardHandler.Register(api)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type", "X-Request-Id"},
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
