package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natsumeaurlia/projectboard/internal/board/domain"
)

func TestAddCreatesActiveProject(t *testing.T) {
	s := New()

	var rounds [][]domain.Project
	s.Subscribe(func(ps []domain.Project) { rounds = append(rounds, ps) })

	p := s.Add("Website", "Build it", 10)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Website", p.Title)
	assert.Equal(t, "Build it", p.Description)
	assert.Equal(t, 10.0, p.Manday)
	assert.Equal(t, domain.StatusActive, p.Status)
	assert.False(t, p.CreatedAt.IsZero())

	require.Len(t, rounds, 1)
	require.Len(t, rounds[0], 1)
	assert.Equal(t, p, rounds[0][0])
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := s.Add("p", "desc", 1)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestEveryMutationIsOneNotificationRound(t *testing.T) {
	s := New()

	var rounds [][]domain.Project
	s.Subscribe(func(ps []domain.Project) { rounds = append(rounds, ps) })

	a := s.Add("a", "first project", 1)
	b := s.Add("b", "second project", 2)
	s.ChangeState(a.ID, domain.StatusFinished)

	// three mutations, three rounds, each a post-state snapshot
	require.Len(t, rounds, 3)
	assert.Len(t, rounds[0], 1)
	assert.Len(t, rounds[1], 2)

	require.Len(t, rounds[2], 2)
	assert.Equal(t, a.ID, rounds[2][0].ID)
	assert.Equal(t, domain.StatusFinished, rounds[2][0].Status)
	assert.Equal(t, b.ID, rounds[2][1].ID)
	assert.Equal(t, domain.StatusActive, rounds[2][1].Status)

	// earlier rounds were not retroactively mutated by the status change
	assert.Equal(t, domain.StatusActive, rounds[1][0].Status)
}

func TestListenersNotifiedInSubscriptionOrder(t *testing.T) {
	s := New()

	var order []string
	s.Subscribe(func([]domain.Project) { order = append(order, "first") })
	s.Subscribe(func([]domain.Project) { order = append(order, "second") })

	s.Add("p", "desc here", 1)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestChangeStateUnknownIDNoNotify(t *testing.T) {
	s := New()
	p := s.Add("p", "desc here", 1)

	rounds := 0
	s.Subscribe(func([]domain.Project) { rounds++ })

	s.ChangeState("no-such-id", domain.StatusFinished)

	assert.Zero(t, rounds)
	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, p, snap[0])
}

func TestChangeStateSameStatusStillNotifies(t *testing.T) {
	s := New()
	p := s.Add("p", "desc here", 1)

	rounds := 0
	s.Subscribe(func([]domain.Project) { rounds++ })

	s.ChangeState(p.ID, domain.StatusActive)

	assert.Equal(t, 1, rounds)
	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, p.ID, snap[0].ID)
	assert.Equal(t, domain.StatusActive, snap[0].Status)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.Add("p", "desc here", 1)

	snap := s.Snapshot()
	snap[0].Title = "mutated"
	snap[0].Status = domain.StatusFinished

	fresh := s.Snapshot()
	assert.Equal(t, "p", fresh[0].Title)
	assert.Equal(t, domain.StatusActive, fresh[0].Status)
}

func TestListenerSnapshotIsACopy(t *testing.T) {
	s := New()

	s.Subscribe(func(ps []domain.Project) {
		for i := range ps {
			ps[i].Title = "mutated"
		}
	})

	s.Add("p", "desc here", 1)

	assert.Equal(t, "p", s.Snapshot()[0].Title)
}
