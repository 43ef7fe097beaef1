// Package testutil provides shared test utilities and fixtures.
//
// This package centralises detection fixtures so the adapter, round-trip
// and config tests exercise the same shapes.
package testutil

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/banshee-data/detections/internal/detection"
	"github.com/banshee-data/detections/internal/detectionpb"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// RaggedDetection returns a wire detection whose matrix rows have the given
// lengths. Values count up from 1 across rows.
func RaggedDetection(lengths ...int) *detectionpb.Detection {
	msg := &detectionpb.Detection{Number: 1}
	next := 1.0
	for _, n := range lengths {
		row := &detectionpb.MatrixRow{Values: make([]float64, n)}
		for i := range row.Values {
			row.Values[i] = next
			next++
		}
		msg.MatrixRows = append(msg.MatrixRows, row)
	}
	return msg
}

// RandomDetectionList builds a list of n detections with random matrices of
// up to 6x6, including zero-sized shapes. The UID is a UUID drawn from rng,
// so a seeded rng gives a reproducible list.
func RandomDetectionList(rng *rand.Rand, n int) detection.DetectionList {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		panic(err)
	}
	l := detection.DetectionList{UID: id.String()}
	for i := 0; i < n; i++ {
		rows, cols := rng.Intn(7), rng.Intn(7)
		m := detection.Zeros(rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				m.Set(r, c, rng.NormFloat64()*1e3)
			}
		}
		l.Detections = append(l.Detections, detection.Detection{
			Timestamp: 161000 + float64(i)*rng.Float64(),
			Number:    rng.Uint32(),
			X:         rng.Float64() * 100,
			Y:         rng.Float64() * 100,
			Matrix:    m,
		})
	}
	return l
}
