// Package config loads round-trip scenarios from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/banshee-data/detections/internal/detection"
	"github.com/banshee-data/detections/internal/fsutil"
	"github.com/banshee-data/detections/internal/monitoring"
)

// DefaultScenarioPath is the path to the reference scenario file. It holds
// the same list as detection.DemoList.
const DefaultScenarioPath = "config/scenario.defaults.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// ScenarioConfig describes a detection list to round-trip.
type ScenarioConfig struct {
	// UID of the source sensor. When omitted, LoadScenarioConfig assigns a
	// random UUID.
	UID        *string           `json:"uid,omitempty"`
	Detections []DetectionConfig `json:"detections,omitempty"`
}

// DetectionConfig describes one detection. Omitted scalars default to zero.
type DetectionConfig struct {
	Timestamp *float64 `json:"timestamp,omitempty"`
	Number    *uint32  `json:"number,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`

	// Matrix rows, all of the same length.
	Matrix [][]float64 `json:"matrix,omitempty"`
	// Identity, when set, uses the n×n identity instead of Matrix.
	Identity *int `json:"identity,omitempty"`
}

// LoadScenarioConfig loads a ScenarioConfig from a JSON file on disk.
// The file must have a .json extension and be under the max file size.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	return LoadScenarioConfigFS(fsutil.OSFileSystem{}, path)
}

// LoadScenarioConfigFS is LoadScenarioConfig reading through fsys.
func LoadScenarioConfigFS(fsys fsutil.FileSystem, path string) (*ScenarioConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := fsutil.ReadFileLimit(fsys, cleanPath, maxFileSize)
	if err != nil {
		return nil, err
	}

	cfg := &ScenarioConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.UID == nil || *cfg.UID == "" {
		id := uuid.NewString()
		cfg.UID = &id
		monitoring.Logf("[config] %s has no uid, using %s", cleanPath, id)
	}

	return cfg, nil
}

// MustLoadDefaultScenario loads DefaultScenarioPath, searching the current
// directory and its parents. Panics if the file cannot be loaded, intended
// for test setup.
func MustLoadDefaultScenario() *ScenarioConfig {
	candidates := []string{
		DefaultScenarioPath,
		"../" + DefaultScenarioPath,
		"../../" + DefaultScenarioPath, // from internal/config/
		"../../../" + DefaultScenarioPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadScenarioConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultScenarioPath + " - run tests from repository root")
}

// Validate checks that every matrix is rectangular and every identity size
// is non-negative.
func (c *ScenarioConfig) Validate() error {
	for i, d := range c.Detections {
		if d.Identity != nil {
			if *d.Identity < 0 {
				return fmt.Errorf("detection %d: identity must be non-negative, got %d", i, *d.Identity)
			}
			if len(d.Matrix) > 0 {
				return fmt.Errorf("detection %d: set either matrix or identity, not both", i)
			}
			continue
		}
		if _, err := detection.MatrixFromRows(d.Matrix); err != nil {
			return fmt.Errorf("detection %d: %w", i, err)
		}
	}
	return nil
}

// GetUID returns the uid or "" if unset.
func (c *ScenarioConfig) GetUID() string {
	if c.UID == nil {
		return ""
	}
	return *c.UID
}

// GetTimestamp returns the timestamp or 0.
func (d *DetectionConfig) GetTimestamp() float64 {
	if d.Timestamp == nil {
		return 0
	}
	return *d.Timestamp
}

// GetNumber returns the sequence number or 0.
func (d *DetectionConfig) GetNumber() uint32 {
	if d.Number == nil {
		return 0
	}
	return *d.Number
}

// GetX returns x or 0.
func (d *DetectionConfig) GetX() float64 {
	if d.X == nil {
		return 0
	}
	return *d.X
}

// GetY returns y or 0.
func (d *DetectionConfig) GetY() float64 {
	if d.Y == nil {
		return 0
	}
	return *d.Y
}

// GetMatrix builds the configured matrix.
func (d *DetectionConfig) GetMatrix() (detection.Matrix, error) {
	if d.Identity != nil {
		if *d.Identity < 0 {
			return detection.Matrix{}, fmt.Errorf("identity must be non-negative, got %d", *d.Identity)
		}
		return detection.Identity(*d.Identity), nil
	}
	return detection.MatrixFromRows(d.Matrix)
}

// DetectionList converts the scenario to the domain model.
func (c *ScenarioConfig) DetectionList() (detection.DetectionList, error) {
	l := detection.DetectionList{UID: c.GetUID()}
	for i := range c.Detections {
		d := &c.Detections[i]
		m, err := d.GetMatrix()
		if err != nil {
			return detection.DetectionList{}, fmt.Errorf("detection %d: %w", i, err)
		}
		l.Detections = append(l.Detections, detection.Detection{
			Timestamp: d.GetTimestamp(),
			Number:    d.GetNumber(),
			X:         d.GetX(),
			Y:         d.GetY(),
			Matrix:    m,
		})
	}
	return l, nil
}
