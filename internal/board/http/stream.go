package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natsumeaurlia/projectboard/internal/board/domain"
	"github.com/natsumeaurlia/projectboard/internal/board/presenter"
)

const keepAliveInterval = 15 * time.Second

// bucketStream adapts one SSE connection into a presenter renderer. Render
// is called inside the store's notification round, so it must never block:
// a slow client only ever misses intermediate frames, the newest view always
// wins.
type bucketStream struct {
	frames chan []presenter.Item
}

func newBucketStream() *bucketStream {
	return &bucketStream{frames: make(chan []presenter.Item, 1)}
}

func (s *bucketStream) Render(view []presenter.Item) {
	for {
		select {
		case s.frames <- view:
			return
		default:
			select {
			case <-s.frames:
			default:
			}
		}
	}
}

// streamBucket streams one bucket's rendered view using Server-Sent Events:
// an "initial" event with the current view on connect, then a "render" event
// per notification round that reaches this presenter.
func (h *Handler) streamBucket(c *gin.Context) {
	bucket, err := domain.ParseStatus(c.Param("bucket"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown bucket"})
		return
	}
	p := h.presenterFor(bucket)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return
	}

	stream := newBucketStream()
	p.Attach(stream)
	defer p.Detach(stream)

	initial, _ := json.Marshal(gin.H{"bucket": bucket, "projects": p.View()})
	fmt.Fprintf(c.Writer, "event: initial\ndata: %s\n\n", initial)
	flusher.Flush()

	ctx := c.Request.Context()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case view := <-stream.frames:
			data, _ := json.Marshal(gin.H{"bucket": bucket, "projects": view})
			fmt.Fprintf(c.Writer, "event: render\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
