package presenter

import (
	"sync"

	"github.com/natsumeaurlia/projectboard/internal/board/domain"
	"github.com/natsumeaurlia/projectboard/internal/board/store"
)

// DragMediaType gates drop acceptance. Payloads declared under any other
// media type are rejected before the id is even read.
const DragMediaType = "text/plain"

// Item is one rendered list entry: the project's display fields with the
// effort already formatted.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Effort      string `json:"effort"`
	Description string `json:"description"`
}

// Renderer is the rendering surface for one bucket. The presenter owns the
// filtered view; the renderer owns markup and mounting.
type Renderer interface {
	Render(view []Item)
}

// ListPresenter maintains the filtered view for a single status bucket. It
// subscribes to the store at construction and pushes every updated view to
// its attached renderers.
type ListPresenter struct {
	store  *store.ProjectStore
	bucket domain.Status

	mu        sync.Mutex
	view      []Item
	renderers []Renderer
}

// New creates a presenter for the given bucket and subscribes it to the
// store. The subscription lives as long as the store does.
func New(st *store.ProjectStore, bucket domain.Status) *ListPresenter {
	p := &ListPresenter{store: st, bucket: bucket}
	st.Subscribe(p.onChange)
	return p
}

// Bucket reports which status this presenter renders.
func (p *ListPresenter) Bucket() domain.Status {
	return p.bucket
}

// Attach adds a renderer; it immediately starts receiving every view update.
func (p *ListPresenter) Attach(r Renderer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renderers = append(p.renderers, r)
}

// Detach removes a previously attached renderer.
func (p *ListPresenter) Detach(r Renderer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.renderers {
		if existing == r {
			p.renderers = append(p.renderers[:i], p.renderers[i+1:]...)
			return
		}
	}
}

// View returns the presenter's current cached view.
func (p *ListPresenter) View() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Item, len(p.view))
	copy(out, p.view)
	return out
}

// HandleDrop accepts a drag payload. Acceptance is gated only on the
// declared media type; the payload is treated as an opaque project id and
// the transition request is unconditional. The store's fan-out brings every
// presenter, this one included, up to date.
func (p *ListPresenter) HandleDrop(mediaType, payload string) bool {
	if mediaType != DragMediaType {
		return false
	}
	p.store.ChangeState(payload, p.bucket)
	return true
}

// onChange is the store listener: filter the snapshot to this bucket,
// replace the cached view, re-render.
func (p *ListPresenter) onChange(projects []domain.Project) {
	view := make([]Item, 0, len(projects))
	for _, pr := range projects {
		if pr.Status == p.bucket {
			view = append(view, Item{
				ID:          pr.ID,
				Title:       pr.Title,
				Effort:      FormatManday(pr.Manday),
				Description: pr.Description,
			})
		}
	}

	p.mu.Lock()
	p.view = view
	renderers := make([]Renderer, len(p.renderers))
	copy(renderers, p.renderers)
	p.mu.Unlock()

	for _, r := range renderers {
		r.Render(view)
	}
}
