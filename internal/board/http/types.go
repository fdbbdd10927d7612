package http

import (
	"github.com/natsumeaurlia/projectboard/internal/board/domain"
	"github.com/natsumeaurlia/projectboard/internal/board/presenter"
	"github.com/natsumeaurlia/projectboard/internal/board/service"
)

// Handler bundles the dependencies for board HTTP endpoints.
type Handler struct {
	svc      *service.BoardService
	active   *presenter.ListPresenter
	finished *presenter.ListPresenter
}

func New(svc *service.BoardService, active, finished *presenter.ListPresenter) *Handler {
	return &Handler{svc: svc, active: active, finished: finished}
}

func (h *Handler) presenterFor(status domain.Status) *presenter.ListPresenter {
	if status == domain.StatusFinished {
		return h.finished
	}
	return h.active
}
