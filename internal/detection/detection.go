package detection

import (
	"fmt"
	"strings"
)

// Detection is a single sensor observation.
type Detection struct {
	// Timestamp in seconds. The epoch is a caller convention.
	Timestamp float64
	// Number is the sequence number assigned by the sensor.
	Number uint32
	X      float64
	Y      float64
	Matrix Matrix
}

// Equal reports whether d and other are field-wise identical, using exact
// float64 comparison for the scalars and the matrix contents.
func (d Detection) Equal(other Detection) bool {
	return d.Timestamp == other.Timestamp &&
		d.Number == other.Number &&
		d.X == other.X &&
		d.Y == other.Y &&
		d.Matrix.Equal(other.Matrix)
}

func (d Detection) String() string {
	return fmt.Sprintf("Detection{timestamp: %v, number: %d, x: %v, y: %v, matrix: %s}",
		d.Timestamp, d.Number, d.X, d.Y, d.Matrix)
}

// DetectionList is an ordered, UID-tagged sequence of detections.
type DetectionList struct {
	UID        string
	Detections []Detection
}

// Equal reports whether l and other carry the same UID and pairwise equal
// detections in the same order. A nil and an empty detection slice compare
// equal.
func (l DetectionList) Equal(other DetectionList) bool {
	if l.UID != other.UID || len(l.Detections) != len(other.Detections) {
		return false
	}
	for i := range l.Detections {
		if !l.Detections[i].Equal(other.Detections[i]) {
			return false
		}
	}
	return true
}

func (l DetectionList) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DetectionList{uid: %q, detections: [", l.UID)
	for i, d := range l.Detections {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteString("]}")
	return b.String()
}
