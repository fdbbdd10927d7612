package service

import (
	"strconv"
	"strings"

	"github.com/natsumeaurlia/projectboard/internal/board/domain"
	"github.com/natsumeaurlia/projectboard/internal/board/store"
	"github.com/natsumeaurlia/projectboard/internal/board/validation"
)

// FormLimits carries the configured bounds for the add-project form.
type FormLimits struct {
	TitleMinLen       int
	TitleMaxLen       int
	DescriptionMinLen int
	MandayMax         float64
}

// ProjectInput is the raw form submission: three strings exactly as the
// form surface produced them. Nothing is trimmed before storage so the
// entered values survive verbatim.
type ProjectInput struct {
	Title       string
	Description string
	Manday      string
}

// ValidationError reports which form fields failed; its message is what the
// user sees in the blocking alert.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid input, please check: " + strings.Join(e.Fields, ", ")
}

// BoardService handles form submissions and reads over the project store.
type BoardService struct {
	store  *store.ProjectStore
	limits FormLimits
}

// New creates a board service. Zero limits fall back to the widget's
// defaults.
func New(st *store.ProjectStore, limits FormLimits) *BoardService {
	if limits.TitleMinLen == 0 {
		limits.TitleMinLen = 2
	}
	if limits.TitleMaxLen == 0 {
		limits.TitleMaxLen = 80
	}
	if limits.DescriptionMinLen == 0 {
		limits.DescriptionMinLen = 5
	}
	if limits.MandayMax == 0 {
		limits.MandayMax = 1000
	}
	return &BoardService{store: st, limits: limits}
}

// CreateProject validates the three raw form values and, if all pass, adds
// a new Active project to the store. A single failing field rejects the
// whole submission; nothing is added and the caller keeps its inputs.
func (s *BoardService) CreateProject(in ProjectInput) (domain.Project, error) {
	var failed []string

	if !validation.Validate(validation.Field{
		Value:     in.Title,
		Required:  true,
		MinLength: validation.IntPtr(s.limits.TitleMinLen),
		MaxLength: validation.IntPtr(s.limits.TitleMaxLen),
	}) {
		failed = append(failed, "title")
	}
	if !validation.Validate(validation.Field{
		Value:     in.Description,
		Required:  true,
		MinLength: validation.IntPtr(s.limits.DescriptionMinLen),
	}) {
		failed = append(failed, "description")
	}
	if !validation.Validate(validation.Field{
		Value:    in.Manday,
		Required: true,
		Min:      validation.FloatPtr(0),
		Max:      validation.FloatPtr(s.limits.MandayMax),
	}) {
		failed = append(failed, "manday")
	}

	if len(failed) > 0 {
		return domain.Project{}, &ValidationError{Fields: failed}
	}

	// Parse cannot fail here: the manday field just passed its numeric
	// checks.
	manday, err := strconv.ParseFloat(strings.TrimSpace(in.Manday), 64)
	if err != nil {
		return domain.Project{}, &ValidationError{Fields: []string{"manday"}}
	}

	return s.store.Add(in.Title, in.Description, manday), nil
}

// MoveProject requests a status transition for the given project id. Unknown
// ids are a tolerated no-op inside the store.
func (s *BoardService) MoveProject(id string, newStatus domain.Status) {
	s.store.ChangeState(id, newStatus)
}

// Projects returns a snapshot of every project in insertion order.
func (s *BoardService) Projects() []domain.Project {
	return s.store.Snapshot()
}

// ProjectsByStatus returns the snapshot filtered to one bucket, preserving
// insertion order.
func (s *BoardService) ProjectsByStatus(status domain.Status) []domain.Project {
	all := s.store.Snapshot()
	out := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
