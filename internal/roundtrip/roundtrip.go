// Package roundtrip drives a detection list through encode and decode and
// checks that the result matches the original exactly.
package roundtrip

import (
	"errors"
	"fmt"
	"io"

	"github.com/banshee-data/detections/internal/detection"
	"github.com/banshee-data/detections/internal/detectionpb"
	"github.com/banshee-data/detections/internal/monitoring"
	"github.com/banshee-data/detections/internal/wireadapter"
)

var (
	ErrEncode   = errors.New("encode failed")
	ErrDecode   = errors.New("decode failed")
	ErrMismatch = errors.New("original and decoded lists differ")
)

// Options controls the progress output of Run.
type Options struct {
	// Out receives the human-readable progress lines. Nil discards them.
	Out io.Writer
	// JSON also prints the protojson form of the wire message.
	JSON bool
}

// Result holds every stage of a round trip.
type Result struct {
	Original detection.DetectionList
	Encoded  []byte
	Decoded  detection.DetectionList
}

// DemoScenario is the reference list for sensor-001: a 2×2 matrix followed
// by a 3×3 identity.
func DemoScenario() detection.DetectionList { return detection.DemoList() }

// Run encodes list, decodes the bytes and compares the outcome with list.
// The returned Result is non-nil whenever encoding succeeded.
func Run(list detection.DetectionList, opts Options) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	fmt.Fprintf(out, "Original: %v\n", list)

	msg := wireadapter.ListToWire(list)
	size := msg.Size()
	encoded, err := msg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if len(encoded) != size {
		return nil, fmt.Errorf("%w: wrote %d bytes, expected %d", ErrEncode, len(encoded), size)
	}
	monitoring.Debugf("[roundtrip] uid=%q detections=%d encoded=%dB", list.UID, len(list.Detections), len(encoded))

	fmt.Fprintf(out, "Encoded %d bytes: %v\n", len(encoded), encoded)
	if opts.JSON {
		j, err := msg.MarshalJSON()
		if err != nil {
			monitoring.Logf("[roundtrip] wire json: %v", err)
		} else {
			fmt.Fprintf(out, "Wire JSON: %s\n", j)
		}
	}

	res := &Result{Original: list, Encoded: encoded}
	res.Decoded, err = Verify(list, encoded, out)
	return res, err
}

// Verify decodes encoded and compares it with want. Decode failures wrap
// ErrDecode together with the cause, so errors.Is also matches
// detectionpb.ErrMalformedMessage and the wireadapter errors.
func Verify(want detection.DetectionList, encoded []byte, out io.Writer) (detection.DetectionList, error) {
	if out == nil {
		out = io.Discard
	}

	msg, err := detectionpb.Unmarshal(encoded)
	if err != nil {
		return detection.DetectionList{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	got, err := wireadapter.ListFromWire(msg)
	if err != nil {
		return detection.DetectionList{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	fmt.Fprintf(out, "Decoded: %v\n", got)

	if !want.Equal(got) {
		return got, fmt.Errorf("%w (-original +decoded):\n%s", ErrMismatch, Diff(want, got))
	}

	fmt.Fprintln(out, "Success! Original and Decoded lists match.")
	return got, nil
}
