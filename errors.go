package blit

import "errors"

var (
	// ErrOutOfBounds is returned when a pixel is read outside a surface.
	ErrOutOfBounds = errors.New("blit: pixel out of bounds")

	// ErrInvalidLayout is returned when a channel layout cannot be packed
	// into its storage type.
	ErrInvalidLayout = errors.New("blit: invalid pixel layout")
)
