package http

import "github.com/gin-gonic/gin"

// Register attaches board routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/projects", h.create)
	rg.GET("/projects", h.list)
	rg.POST("/projects/:id/move", h.move)
	rg.GET("/board/:bucket/events", h.streamBucket)
}
