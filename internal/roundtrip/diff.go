package roundtrip

import (
	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/detections/internal/detection"
)

// listView and detectionView flatten the domain types into plain exported
// fields so go-cmp can report field-level differences instead of deferring
// to the Equal methods.
type listView struct {
	UID        string
	Detections []detectionView
}

type detectionView struct {
	Timestamp  float64
	Number     uint32
	X, Y       float64
	Rows, Cols int
	Values     []float64
}

func viewOf(l detection.DetectionList) listView {
	v := listView{UID: l.UID, Detections: make([]detectionView, len(l.Detections))}
	for i, d := range l.Detections {
		r, c := d.Matrix.Dims()
		v.Detections[i] = detectionView{
			Timestamp: d.Timestamp,
			Number:    d.Number,
			X:         d.X,
			Y:         d.Y,
			Rows:      r,
			Cols:      c,
			Values:    d.Matrix.RawData(),
		}
	}
	return v
}

// Diff returns a human-readable diff between two lists, or "" if go-cmp
// finds none.
func Diff(want, got detection.DetectionList) string {
	return cmp.Diff(viewOf(want), viewOf(got))
}
