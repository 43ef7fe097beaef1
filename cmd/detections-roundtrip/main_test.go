package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/detections/internal/monitoring"
	"github.com/banshee-data/detections/internal/roundtrip"
)

func muteLogger(t *testing.T) {
	t.Helper()
	original := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() {
		monitoring.Logf = original
		monitoring.SetVerbose(false)
	})
}

func TestRun_Default(t *testing.T) {
	muteLogger(t)
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)
	if code != roundtrip.ExitOK {
		t.Fatalf("run() = %d, want %d; stderr: %s", code, roundtrip.ExitOK, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Success! Original and Decoded lists match.") {
		t.Errorf("missing success line in output:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), `uid: "sensor-001"`) {
		t.Errorf("default run should use the sensor-001 scenario:\n%s", stdout.String())
	}
}

func TestRun_Scenario(t *testing.T) {
	muteLogger(t)
	path := filepath.Join(t.TempDir(), "s.json")
	body := `{"uid": "lidar-3", "detections": [{"number": 4, "matrix": [[0.5, 1.5, 2.5]]}]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-scenario", path, "-json", "-v"}, &stdout, &stderr)
	if code != roundtrip.ExitOK {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "[config] loaded 1 detections") {
		t.Errorf("debug log should go to stderr, got:\n%s", stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{`uid: "lidar-3"`, "Wire JSON: ", "Success!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_BadScenario(t *testing.T) {
	muteLogger(t)
	path := filepath.Join(t.TempDir(), "ragged.json")
	if err := os.WriteFile(path, []byte(`{"detections": [{"matrix": [[1], [2, 3]]}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-scenario", path}, &stdout, &stderr); code != roundtrip.ExitUsage {
		t.Errorf("run() = %d, want %d", code, roundtrip.ExitUsage)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no progress output, got:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "[config] invalid configuration") {
		t.Errorf("config error should be logged to stderr, got:\n%s", stderr.String())
	}

	// The process logger is restored once run returns.
	before := stderr.Len()
	monitoring.Logf("after run")
	if stderr.Len() != before {
		t.Errorf("logger still writes to the run writer after return")
	}
}

func TestRun_Usage(t *testing.T) {
	muteLogger(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"positional argument", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != roundtrip.ExitUsage {
				t.Errorf("run(%v) = %d, want %d", tt.args, code, roundtrip.ExitUsage)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != roundtrip.ExitOK {
		t.Fatalf("run(-version) = %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "detections-roundtrip ") {
		t.Errorf("unexpected version output %q", stdout.String())
	}
}
