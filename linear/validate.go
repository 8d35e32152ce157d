package linear

import (
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// Validate checks that x and y are non-empty and of equal length.
// Emptiness is reported before a length mismatch; both are InvalidInput errors.
// op names the calling operation in the error message.
func Validate(op string, x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return errors.NewModelError(op, "x and y must be non-empty", errors.ErrEmptyData)
	}
	if len(x) != len(y) {
		return errors.NewDimensionError(op, len(x), len(y))
	}
	return nil
}
