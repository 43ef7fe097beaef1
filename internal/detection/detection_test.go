package detection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleList() DetectionList {
	return DetectionList{
		UID: "sensor-001",
		Detections: []Detection{
			{Timestamp: 161000.0, Number: 1, X: 10.5, Y: 20.5, Matrix: MustMatrix(2, 2, []float64{1, 2, 3, 4})},
			{Timestamp: 161001.0, Number: 2, X: 15.0, Y: 25.0, Matrix: Identity(3)},
		},
	}
}

func TestDetection_Equal(t *testing.T) {
	base := sampleList().Detections[0]

	mutations := map[string]func(d *Detection){
		"timestamp": func(d *Detection) { d.Timestamp += 1e-9 },
		"number":    func(d *Detection) { d.Number++ },
		"x":         func(d *Detection) { d.X = -d.X },
		"y":         func(d *Detection) { d.Y = 0 },
		"matrix":    func(d *Detection) { d.Matrix = Identity(2) },
	}

	assert.True(t, base.Equal(sampleList().Detections[0]))
	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			d := sampleList().Detections[0]
			mutate(&d)
			assert.False(t, base.Equal(d), "change to %s should break equality", field)
		})
	}
}

func TestDetectionList_Equal(t *testing.T) {
	a := sampleList()
	b := sampleList()
	assert.True(t, a.Equal(b))

	// go-cmp picks up the Equal method.
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}

	b.UID = "sensor-002"
	assert.False(t, a.Equal(b))

	swapped := sampleList()
	swapped.Detections[0], swapped.Detections[1] = swapped.Detections[1], swapped.Detections[0]
	assert.False(t, a.Equal(swapped), "order is significant")

	short := sampleList()
	short.Detections = short.Detections[:1]
	assert.False(t, a.Equal(short))

	assert.True(t, DetectionList{UID: "x"}.Equal(DetectionList{UID: "x", Detections: []Detection{}}))
}

func TestDetectionList_String(t *testing.T) {
	s := sampleList().String()
	assert.Contains(t, s, `uid: "sensor-001"`)
	assert.Contains(t, s, "number: 2")
	assert.Contains(t, s, "x: 10.5")
}
