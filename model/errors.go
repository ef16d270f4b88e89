package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned for any coordinate outside [0,width) x [0,height).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidDimension is returned when a grid is built with a non-positive width or height.
	ErrInvalidDimension = errors.New("invalid grid dimension")
)
