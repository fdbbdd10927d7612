package domain

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid project status")
)
