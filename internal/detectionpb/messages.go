package detectionpb

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// MatrixRow is one matrix row on the wire.
type MatrixRow struct {
	Values []float64
}

func (x *MatrixRow) GetValues() []float64 {
	if x != nil {
		return x.Values
	}
	return nil
}

// Detection is the wire form of a single detection.
type Detection struct {
	Timestamp  float64
	Number     uint64
	X          float64
	Y          float64
	MatrixRows []*MatrixRow
}

func (x *Detection) GetTimestamp() float64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

func (x *Detection) GetNumber() uint64 {
	if x != nil {
		return x.Number
	}
	return 0
}

func (x *Detection) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Detection) GetY() float64 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *Detection) GetMatrixRows() []*MatrixRow {
	if x != nil {
		return x.MatrixRows
	}
	return nil
}

// DetectionList is the top-level wire message and the unit of
// serialization.
type DetectionList struct {
	Uid        string
	Detections []*Detection
}

func (x *DetectionList) GetUid() string {
	if x != nil {
		return x.Uid
	}
	return ""
}

func (x *DetectionList) GetDetections() []*Detection {
	if x != nil {
		return x.Detections
	}
	return nil
}

// Dynamic returns x as a dynamic protobuf message bound to the compiled
// schema. A nil x yields an empty message.
func (x *DetectionList) Dynamic() *dynamicpb.Message {
	m := dynamicpb.NewMessage(detectionListDesc)
	m.Set(listUIDField, protoreflect.ValueOfString(x.GetUid()))
	if dets := x.GetDetections(); len(dets) > 0 {
		list := m.Mutable(listDetectionsField).List()
		for _, d := range dets {
			elem := list.NewElement()
			d.fill(elem.Message())
			list.Append(elem)
		}
	}
	return m
}

func (x *Detection) fill(m protoreflect.Message) {
	m.Set(detTimestampField, protoreflect.ValueOfFloat64(x.GetTimestamp()))
	m.Set(detNumberField, protoreflect.ValueOfUint64(x.GetNumber()))
	m.Set(detXField, protoreflect.ValueOfFloat64(x.GetX()))
	m.Set(detYField, protoreflect.ValueOfFloat64(x.GetY()))
	if rows := x.GetMatrixRows(); len(rows) > 0 {
		list := m.Mutable(detMatrixRowsField).List()
		for _, r := range rows {
			elem := list.NewElement()
			r.fill(elem.Message())
			list.Append(elem)
		}
	}
}

func (x *MatrixRow) fill(m protoreflect.Message) {
	values := x.GetValues()
	if len(values) == 0 {
		return
	}
	list := m.Mutable(rowValuesField).List()
	for _, v := range values {
		list.Append(protoreflect.ValueOfFloat64(v))
	}
}

func detectionListFromMessage(m protoreflect.Message) *DetectionList {
	x := &DetectionList{Uid: m.Get(listUIDField).String()}
	dets := m.Get(listDetectionsField).List()
	if n := dets.Len(); n > 0 {
		x.Detections = make([]*Detection, n)
		for i := 0; i < n; i++ {
			x.Detections[i] = detectionFromMessage(dets.Get(i).Message())
		}
	}
	return x
}

func detectionFromMessage(m protoreflect.Message) *Detection {
	x := &Detection{
		Timestamp: m.Get(detTimestampField).Float(),
		Number:    m.Get(detNumberField).Uint(),
		X:         m.Get(detXField).Float(),
		Y:         m.Get(detYField).Float(),
	}
	rows := m.Get(detMatrixRowsField).List()
	if n := rows.Len(); n > 0 {
		x.MatrixRows = make([]*MatrixRow, n)
		for i := 0; i < n; i++ {
			x.MatrixRows[i] = matrixRowFromMessage(rows.Get(i).Message())
		}
	}
	return x
}

func matrixRowFromMessage(m protoreflect.Message) *MatrixRow {
	x := &MatrixRow{}
	values := m.Get(rowValuesField).List()
	if n := values.Len(); n > 0 {
		x.Values = make([]float64, n)
		for i := 0; i < n; i++ {
			x.Values[i] = values.Get(i).Float()
		}
	}
	return x
}
