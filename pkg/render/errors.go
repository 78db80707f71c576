package render

import (
	"errors"
	"fmt"
)

// ErrIO reports a failure to load a document template or persist output.
var ErrIO = errors.New("render: i/o failure")

// IOError wraps err with ErrIO and the failing operation.
func IOError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
