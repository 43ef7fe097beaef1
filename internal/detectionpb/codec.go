package detectionpb

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/dynamicpb"
)

// ErrMalformedMessage is returned when bytes do not parse as a
// DetectionList: truncated input, bad framing, invalid field numbers or
// invalid UTF-8 in string fields. Unknown well-formed fields are skipped.
var ErrMalformedMessage = errors.New("detectionpb: malformed message")

// Fields are written in field-number order.
var marshalOptions = proto.MarshalOptions{Deterministic: true}

var jsonOptions = protojson.MarshalOptions{EmitUnpopulated: true}

// Size returns the encoded length of x in bytes.
func (x *DetectionList) Size() int {
	return marshalOptions.Size(x.Dynamic())
}

// Marshal encodes x. The returned slice has length Size().
func (x *DetectionList) Marshal() ([]byte, error) {
	m := x.Dynamic()
	buf := make([]byte, 0, marshalOptions.Size(m))
	out, err := marshalOptions.MarshalAppend(buf, m)
	if err != nil {
		return nil, fmt.Errorf("marshal detection list: %w", err)
	}
	return out, nil
}

// MarshalJSON renders x with protojson. The output is meant for humans and
// is not stable across protobuf releases.
func (x *DetectionList) MarshalJSON() ([]byte, error) {
	return jsonOptions.Marshal(x.Dynamic())
}

// Unmarshal parses b into a DetectionList. Any parse failure wraps
// ErrMalformedMessage.
func Unmarshal(b []byte) (*DetectionList, error) {
	m := dynamicpb.NewMessage(detectionListDesc)
	if err := proto.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return detectionListFromMessage(m), nil
}
