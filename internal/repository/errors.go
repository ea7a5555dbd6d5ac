package repository

import "errors"

// Common repository errors
var (
	// ErrBoardNotFound is returned when a conditional board write matches no rows
	ErrBoardNotFound = errors.New("board not found")

	// ErrListNotFound is returned when a conditional list write matches no rows
	ErrListNotFound = errors.New("list not found")

	// ErrCardNotFound is returned when a conditional card write matches no rows
	ErrCardNotFound = errors.New("card not found")
)
