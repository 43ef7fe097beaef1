package roundtrip

import (
	"errors"

	"github.com/banshee-data/detections/internal/detectionpb"
	"github.com/banshee-data/detections/internal/wireadapter"
)

// Process exit codes, one per failure kind.
const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitEncode    = 2
	ExitMalformed = 3
	ExitDimension = 4
	ExitOverflow  = 5
	ExitMismatch  = 6
)

// ExitCode maps a Run error to a process exit code. Errors that match no
// known kind, such as configuration failures, map to ExitUsage.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMismatch):
		return ExitMismatch
	case errors.Is(err, wireadapter.ErrDimensionMismatch):
		return ExitDimension
	case errors.Is(err, wireadapter.ErrNumericOverflow):
		return ExitOverflow
	case errors.Is(err, detectionpb.ErrMalformedMessage):
		return ExitMalformed
	case errors.Is(err, ErrEncode):
		return ExitEncode
	default:
		return ExitUsage
	}
}
