package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/detections/internal/detection"
	"github.com/banshee-data/detections/internal/fsutil"
	"github.com/banshee-data/detections/internal/monitoring"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadScenarioConfig(t *testing.T) {
	path := writeConfig(t, "scenario.json", `{
  "uid": "radar-7",
  "detections": [
    {"timestamp": 1.5, "number": 3, "x": -1, "y": 2, "matrix": [[1, 2, 3], [4, 5, 6]]},
    {"identity": 2},
    {"matrix": [[], []]}
  ]
}`)

	cfg, err := LoadScenarioConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "radar-7", cfg.GetUID())
	require.Len(t, cfg.Detections, 3)

	l, err := cfg.DetectionList()
	require.NoError(t, err)

	first := l.Detections[0]
	assert.Equal(t, 1.5, first.Timestamp)
	assert.Equal(t, uint32(3), first.Number)
	assert.Equal(t, -1.0, first.X)
	assert.Equal(t, 2.0, first.Y)
	assert.True(t, first.Matrix.Equal(detection.MustMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})))

	assert.True(t, l.Detections[1].Matrix.Equal(detection.Identity(2)))
	assert.Zero(t, l.Detections[1].Number)

	r, c := l.Detections[2].Matrix.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 0, c)
}

func TestLoadScenarioConfig_GeneratesUID(t *testing.T) {
	original := monitoring.Logf
	defer func() { monitoring.Logf = original }()
	var logged []string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		logged = append(logged, format)
	})

	path := writeConfig(t, "anon.json", `{"detections": []}`)
	cfg, err := LoadScenarioConfig(path)
	require.NoError(t, err)

	_, err = uuid.Parse(cfg.GetUID())
	assert.NoError(t, err, "uid %q should be a UUID", cfg.GetUID())
	require.Len(t, logged, 1)
	assert.True(t, strings.HasPrefix(logged[0], "[config]"))
}

func TestLoadScenarioConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong extension", "scenario.yaml", `{}`, ".json extension"},
		{"bad json", "bad.json", `{"uid": `, "failed to parse"},
		{"ragged matrix", "ragged.json", `{"detections": [{"matrix": [[1, 2], [3]]}]}`, "detection 0"},
		{"negative identity", "neg.json", `{"detections": [{"identity": -1}]}`, "non-negative"},
		{"matrix and identity", "both.json", `{"detections": [{"identity": 2, "matrix": [[1]]}]}`, "not both"},
		{"number overflow", "big.json", `{"detections": [{"number": 4294967296}]}`, "failed to parse"},
		{"negative number", "neg-number.json", `{"detections": [{"number": -1}]}`, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.body)
			_, err := LoadScenarioConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarioConfig_MissingFile(t *testing.T) {
	_, err := LoadScenarioConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadScenarioConfigFS(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.AddFile("scenarios/mem.json", []byte(`{"uid": "mem-1", "detections": [{"number": 9, "identity": 1}]}`))

	cfg, err := LoadScenarioConfigFS(mfs, "scenarios/./mem.json")
	require.NoError(t, err)

	l, err := cfg.DetectionList()
	require.NoError(t, err)
	assert.Equal(t, "mem-1", l.UID)
	require.Len(t, l.Detections, 1)
	assert.Equal(t, uint32(9), l.Detections[0].Number)
	assert.True(t, l.Detections[0].Matrix.Equal(detection.Identity(1)))

	_, err = LoadScenarioConfigFS(mfs, "scenarios")
	assert.ErrorContains(t, err, ".json extension")

	mfs.AddFile("dir.json/inner.json", []byte("{}"))
	_, err = LoadScenarioConfigFS(mfs, "dir.json")
	assert.ErrorContains(t, err, "is a directory")
}

func TestLoadScenarioConfig_TooLarge(t *testing.T) {
	body := `{"uid": "` + strings.Repeat("x", maxFileSize) + `"}`
	path := writeConfig(t, "large.json", body)

	_, err := LoadScenarioConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestDefaultScenarioMatchesDemoList(t *testing.T) {
	cfg := MustLoadDefaultScenario()

	l, err := cfg.DetectionList()
	require.NoError(t, err)
	assert.True(t, detection.DemoList().Equal(l), "got %v", l)
}

func TestDetectionConfig_Defaults(t *testing.T) {
	var d DetectionConfig
	assert.Zero(t, d.GetTimestamp())
	assert.Zero(t, d.GetNumber())
	assert.Zero(t, d.GetX())
	assert.Zero(t, d.GetY())

	m, err := d.GetMatrix()
	require.NoError(t, err)
	assert.True(t, m.Equal(detection.Matrix{}))

	var c ScenarioConfig
	assert.Equal(t, "", c.GetUID())
}
