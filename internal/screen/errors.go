package screen

import (
	"errors"
	"fmt"
)

// BoundsError reports a draw or erase outside the current grid. It is the only
// error a Surface returns; callers drop it.
type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	if e == nil {
		return "cell out of bounds"
	}
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

func IsBoundsError(err error) bool {
	var e *BoundsError
	return errors.As(err, &e)
}

func checkBounds(row, col, rows, cols int) error {
	if row < 0 || col < 0 || row >= rows || col >= cols {
		return &BoundsError{Row: row, Col: col, Rows: rows, Cols: cols}
	}
	return nil
}

// InitError indicates the terminal could not be opened, usually because stdout
// is not a TTY. Callers can use it to suggest the other backend.
type InitError struct {
	cause error
}

func (e *InitError) Error() string {
	if e == nil || e.cause == nil {
		return "terminal init failed"
	}
	return fmt.Sprintf("terminal init failed: %v", e.cause)
}

func (e *InitError) Unwrap() error { return e.cause }

func IsInitError(err error) bool {
	var e *InitError
	return errors.As(err, &e)
}
