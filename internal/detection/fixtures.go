package detection

// DemoUID is the sensor UID of the reference scenario.
const DemoUID = "sensor-001"

// DemoList returns the reference scenario: two detections from sensor-001,
// the first carrying [[1,2],[3,4]] and the second the 3x3 identity.
func DemoList() DetectionList {
	return DetectionList{
		UID: DemoUID,
		Detections: []Detection{
			{
				Timestamp: 161000.0,
				Number:    1,
				X:         10.5,
				Y:         20.5,
				Matrix:    MustMatrix(2, 2, []float64{1, 2, 3, 4}),
			},
			{
				Timestamp: 161001.0,
				Number:    2,
				X:         15.0,
				Y:         25.0,
				Matrix:    Identity(3),
			},
		},
	}
}
