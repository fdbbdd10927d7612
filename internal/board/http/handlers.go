package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/natsumeaurlia/projectboard/internal/board/domain"
	"github.com/natsumeaurlia/projectboard/internal/board/presenter"
	"github.com/natsumeaurlia/projectboard/internal/board/service"
)

type createReq struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Manday      string `json:"manday" form:"manday"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.CreateProject(service.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Manday:      req.Manday,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.ProjectsByStatus(status)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.Projects()})
}

type moveReq struct {
	Status    string `json:"status"`
	MediaType string `json:"media_type"`
}

// move is the drop channel: the body declares the payload's media type and
// the target bucket; the path carries the dragged project id. Unknown ids
// are absorbed by the store, so the response is 200 either way.
func (h *Handler) move(c *gin.Context) {
	id := c.Param("id")

	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown status"})
		return
	}

	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = presenter.DragMediaType
	}

	if !h.presenterFor(status).HandleDrop(mediaType, id) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"ok": false, "error": "unsupported drag payload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
