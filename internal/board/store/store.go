package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/natsumeaurlia/projectboard/internal/board/domain"
)

// Listener receives a copy of the full project sequence after a mutation.
type Listener func(projects []domain.Project)

// ProjectStore is the single source of truth for projects and the only code
// allowed to change a project's status.
//
// Every mutation notifies all subscribed listeners synchronously, in
// subscription order, before the mutating call returns. Each listener gets
// its own snapshot, never the internal slice, so nothing a listener does to
// the slice it received can corrupt store state.
type ProjectStore struct {
	mu        sync.Mutex
	projects  []domain.Project
	listeners []Listener
}

// New creates an empty store.
func New() *ProjectStore {
	return &ProjectStore{}
}

// Subscribe registers a listener for the store's lifetime; there is no
// unsubscribe. The listener must not call back into a store mutation:
// notification rounds do not nest.
func (s *ProjectStore) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Add creates a new Active project at the end of the sequence and returns a
// copy of it. Inputs are assumed pre-validated by the caller; the store
// stores them verbatim.
func (s *ProjectStore) Add(title, description string, manday float64) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Project{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Manday:      manday,
		Status:      domain.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	s.projects = append(s.projects, p)
	s.notifyLocked()
	return p
}

// ChangeState moves the project with the given id to newStatus. An unknown
// id is absorbed silently with no notification round: drag payloads can
// outlive their referent across rapid UI churn, and a stale drop must not
// crash or churn the views. A resolved id always triggers a notification
// round, even when the status is already newStatus.
func (s *ProjectStore) ChangeState(id string, newStatus domain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Status = newStatus
			s.notifyLocked()
			return
		}
	}
}

// Len reports the number of projects in the store.
func (s *ProjectStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

// Snapshot returns a copy of the current project sequence in insertion order.
func (s *ProjectStore) Snapshot() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ProjectStore) snapshotLocked() []domain.Project {
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *ProjectStore) notifyLocked() {
	for _, fn := range s.listeners {
		fn(s.snapshotLocked())
	}
}
