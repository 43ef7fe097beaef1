package wireadapter

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch means a wire matrix is not rectangular.
	ErrDimensionMismatch = errors.New("matrix dimensions do not match data length")
	// ErrNumericOverflow means a wire integer does not fit its domain type.
	ErrNumericOverflow = errors.New("numeric overflow")
)

// DimensionMismatchError describes a wire matrix whose rows disagree with
// the shape inferred from the first row.
type DimensionMismatchError struct {
	Rows, Cols int
	// Values is the total number of values found across all rows.
	Values int
	// Row is the first row whose length differs from Cols.
	Row    int
	RowLen int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%v: %dx%d matrix with %d values (row %d has %d values)",
		ErrDimensionMismatch, e.Rows, e.Cols, e.Values, e.Row, e.RowLen)
}

func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

// NumericOverflowError reports a wire value that exceeds its target width.
type NumericOverflowError struct {
	Field string
	Value uint64
	Max   uint64
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("%v: %s=%d exceeds %d", ErrNumericOverflow, e.Field, e.Value, e.Max)
}

func (e *NumericOverflowError) Is(target error) bool { return target == ErrNumericOverflow }

// ItemError wraps a failure converting the detection at Index.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("detection %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
