package domain

import "time"

// Status partitions the board into its two buckets. A project is created
// Active and only ever moves between these two values; no other state is
// reachable.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// ParseStatus maps a wire value ("active", "finished") to its Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusFinished:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Project represents a single tracked project on the board.
// ID is assigned at creation and never changes; Status is the only mutable
// field and only the store is allowed to change it.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Manday      float64   `json:"manday"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
