// Package layout turns validated room specifications into positioned
// elevation geometry: cabinet modules, fillers, a countertop slab, and the
// accessibility clearance boxes. All coordinates are inches in
// elevation view, origin at the floor on the left end of the run, x growing
// right and y growing up.
package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/draftline/draftline/pkg/geometry"
)

// FillerSide identifies which end of the run a filler closes.
type FillerSide string

// Filler sides.
const (
	SideLeft  FillerSide = "left"
	SideRight FillerSide = "right"
)

// Module is one positioned cabinet module.
type Module struct {
	// Index is the 1-based position in the run, left to right.
	Index int           `json:"index"`
	Rect  geometry.Rect `json:"rect"`
	// Depth is the cabinet depth in inches, perpendicular to the elevation.
	Depth float64 `json:"depth"`
	// Material is the casework material code.
	Material string `json:"material"`
}

// Filler is one positioned filler strip. Fillers share the modules' height
// and depth.
type Filler struct {
	Side  FillerSide    `json:"side"`
	Rect  geometry.Rect `json:"rect"`
	Depth float64       `json:"depth"`
}

// Countertop is the positioned countertop slab spanning the run.
type Countertop struct {
	Rect      geometry.Rect `json:"rect"`
	Depth     float64       `json:"depth"`
	Thickness float64       `json:"thickness"`
	Material  string        `json:"material"`
}

// ClearanceBox is a positioned accessibility envelope with its required
// depth perpendicular to the elevation.
type ClearanceBox struct {
	Rect  geometry.Rect `json:"rect"`
	Depth float64       `json:"depth"`
}

// ADABoxes holds the accessibility clearance geometry for one run, derived
// from the configured accessibility profile.
type ADABoxes struct {
	Knee ClearanceBox `json:"knee"`
	Toe  ClearanceBox `json:"toe"`
	// ClearWidth is the required approach width in inches.
	ClearWidth float64 `json:"clear_width"`
	// CounterHeight is the counter height the clearances were computed
	// against, for compliance display.
	CounterHeight float64 `json:"counter_height"`
}

// Metadata stamps a layout with everything needed to reproduce or audit it.
type Metadata struct {
	RoomID      string  `json:"room_id"`
	RunID       string  `json:"run_id"`
	GeneratedAt string  `json:"generated_at"`
	ConfigHash  string  `json:"config_hash"`
	InputHash   string  `json:"input_hash"`
	Tolerance   float64 `json:"tolerance"`
	CodeBasis   string  `json:"code_basis,omitempty"`
	Version     string  `json:"version"`
}

// Layout is the complete computed geometry for one room.
type Layout struct {
	RoomID     string        `json:"room_id"`
	Modules    []Module      `json:"modules"`
	Fillers    []Filler      `json:"fillers,omitempty"`
	Countertop Countertop    `json:"countertop"`
	ADA        *ADABoxes     `json:"ada,omitempty"`
	Bounds     geometry.Rect `json:"bounds"`
	Metadata   Metadata      `json:"metadata"`
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l *Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout, checking that the
// structural fields a consumer depends on are present.
func Unmarshal(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.RoomID == "" {
		return nil, fmt.Errorf("layout must carry a room_id")
	}
	if len(l.Modules) == 0 {
		return nil, fmt.Errorf("layout must contain modules")
	}
	return &l, nil
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l *Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
