// Package wireadapter converts detection lists between the in-memory
// domain model and the protobuf wire messages.
//
// A matrix travels as a sequence of rows. On the way back the adapter
// re-infers rows and columns from the sequence lengths and rejects input
// that is not rectangular.
package wireadapter

import (
	"errors"
	"fmt"
	"math"

	"github.com/banshee-data/detections/internal/detection"
	"github.com/banshee-data/detections/internal/detectionpb"
)

// DetectionToWire flattens d into its wire message. The message has one
// MatrixRow per matrix row, each holding a copy of that row's values.
func DetectionToWire(d detection.Detection) *detectionpb.Detection {
	rows, _ := d.Matrix.Dims()
	msg := &detectionpb.Detection{
		Timestamp: d.Timestamp,
		Number:    uint64(d.Number),
		X:         d.X,
		Y:         d.Y,
	}
	if rows > 0 {
		msg.MatrixRows = make([]*detectionpb.MatrixRow, rows)
		for i := 0; i < rows; i++ {
			msg.MatrixRows[i] = &detectionpb.MatrixRow{Values: d.Matrix.Row(i)}
		}
	}
	return msg
}

// DetectionFromWire reconstructs a detection from its wire message. A nil
// message reads as an empty detection with a 0x0 matrix.
//
// Errors match ErrDimensionMismatch when the rows have unequal lengths and
// ErrNumericOverflow when Number does not fit in uint32.
func DetectionFromWire(msg *detectionpb.Detection) (detection.Detection, error) {
	number, err := narrowUint32("number", msg.GetNumber())
	if err != nil {
		return detection.Detection{}, err
	}

	m, err := matrixFromRows(msg.GetMatrixRows())
	if err != nil {
		return detection.Detection{}, err
	}

	return detection.Detection{
		Timestamp: msg.GetTimestamp(),
		Number:    number,
		X:         msg.GetX(),
		Y:         msg.GetY(),
		Matrix:    m,
	}, nil
}

func narrowUint32(field string, v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, &NumericOverflowError{Field: field, Value: v, Max: math.MaxUint32}
	}
	return uint32(v), nil
}

func matrixFromRows(rowMsgs []*detectionpb.MatrixRow) (detection.Matrix, error) {
	rows := len(rowMsgs)
	cols := 0
	if rows > 0 {
		cols = len(rowMsgs[0].GetValues())
	}

	data := make([]float64, 0, rows*cols)
	badRow := -1
	for i, r := range rowMsgs {
		values := r.GetValues()
		if badRow < 0 && len(values) != cols {
			badRow = i
		}
		data = append(data, values...)
	}

	// Every row must hold cols values. A matching total is not enough.
	if badRow >= 0 {
		return detection.Matrix{}, &DimensionMismatchError{
			Rows:   rows,
			Cols:   cols,
			Values: len(data),
			Row:    badRow,
			RowLen: len(rowMsgs[badRow].GetValues()),
		}
	}

	return detection.NewMatrix(rows, cols, data)
}

// ListToWire flattens every detection of l, preserving order.
func ListToWire(l detection.DetectionList) *detectionpb.DetectionList {
	msg := &detectionpb.DetectionList{Uid: l.UID}
	if len(l.Detections) > 0 {
		msg.Detections = make([]*detectionpb.Detection, len(l.Detections))
		for i, d := range l.Detections {
			msg.Detections[i] = DetectionToWire(d)
		}
	}
	return msg
}

// ListFromWire reconstructs a detection list, stopping at the first
// detection that fails. The returned error is an *ItemError naming its
// index and wrapping the cause.
func ListFromWire(msg *detectionpb.DetectionList) (detection.DetectionList, error) {
	dets := msg.GetDetections()
	out := detection.DetectionList{UID: msg.GetUid()}
	if len(dets) > 0 {
		out.Detections = make([]detection.Detection, 0, len(dets))
	}
	for i, dm := range dets {
		d, err := DetectionFromWire(dm)
		if err != nil {
			return detection.DetectionList{}, &ItemError{Index: i, Err: err}
		}
		out.Detections = append(out.Detections, d)
	}
	return out, nil
}

// ListFromWireAll reconstructs every detection it can. Detections that fail
// are left out of the result, and each failure is reported as an *ItemError
// in the joined error. The error is nil only when every detection
// converted.
func ListFromWireAll(msg *detectionpb.DetectionList) (detection.DetectionList, error) {
	dets := msg.GetDetections()
	out := detection.DetectionList{UID: msg.GetUid()}
	var errs []error
	for i, dm := range dets {
		d, err := DetectionFromWire(dm)
		if err != nil {
			errs = append(errs, &ItemError{Index: i, Err: err})
			continue
		}
		out.Detections = append(out.Detections, d)
	}
	return out, errors.Join(errs...)
}

// Encode converts l to wire form and serializes it.
func Encode(l detection.DetectionList) ([]byte, error) {
	b, err := ListToWire(l).Marshal()
	if err != nil {
		return nil, fmt.Errorf("encode detection list %q: %w", l.UID, err)
	}
	return b, nil
}

// Decode parses b and reconstructs the detection list. Parse failures match
// detectionpb.ErrMalformedMessage.
func Decode(b []byte) (detection.DetectionList, error) {
	msg, err := detectionpb.Unmarshal(b)
	if err != nil {
		return detection.DetectionList{}, err
	}
	return ListFromWire(msg)
}
