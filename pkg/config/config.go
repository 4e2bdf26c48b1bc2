// Package config holds the engine configuration: drawing scale, standard
// casework dimensions, accessibility clearances, validation tolerances, and
// reference catalogs (hardware, edge rules). A built-in default configuration
// matches common commercial millwork practice; projects override it with a
// TOML file.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/BurntSushi/toml"

	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/geometry"
)

// ADA groups the accessibility parameters. Clearance envelopes are written
// in the drawing callout grammar (`27" H x 30" W x 17" D`) and parsed into
// typed boxes when the configuration is validated.
type ADA struct {
	KneeClear    string     `toml:"knee_clear" json:"knee_clear"`
	ToeClear     string     `toml:"toe_clear" json:"toe_clear"`
	CounterRange [2]float64 `toml:"counter_range" json:"counter_range"`
	ClearWidth   float64    `toml:"clear_width" json:"clear_width"`
}

// Tolerances groups the numeric comparison settings used by geometric checks.
type Tolerances struct {
	// LengthSum is the inclusive tolerance for the module/filler sum vs the
	// declared total length, in inches.
	LengthSum float64 `toml:"length_sum" json:"length_sum"`
	// LengthRounding is the number of decimal places reported for deltas.
	LengthRounding int `toml:"length_rounding" json:"length_rounding"`
}

// Hardware groups the default hardware catalog.
type Hardware struct {
	Defaults map[string]string `toml:"defaults" json:"defaults"`
}

// Limits groups the advisory thresholds. Rooms beyond these limits still
// validate, but produce warnings.
type Limits struct {
	ModuleWidthMin float64 `toml:"module_width_min" json:"module_width_min"`
	ModuleWidthMax float64 `toml:"module_width_max" json:"module_width_max"`
	FillerMax      float64 `toml:"filler_max" json:"filler_max"`
}

// Config is the full engine configuration. Load it with Default or LoadFile,
// then treat it as read-only; the layout engine and validator share one
// instance across goroutines.
type Config struct {
	// ScalePlan is the plan drawing scale (drawing inches per real inch).
	ScalePlan float64 `toml:"scale_plan" json:"scale_plan"`
	// CounterHeight is the default counter height in inches, used when a
	// room does not override it.
	CounterHeight float64 `toml:"counter_height" json:"counter_height"`
	// BaseDepth is the base cabinet depth in inches.
	BaseDepth float64 `toml:"base_depth" json:"base_depth"`
	// WallCabDepth is the wall cabinet depth in inches.
	WallCabDepth float64 `toml:"wall_cab_depth" json:"wall_cab_depth"`
	// CountertopThickness is the countertop slab thickness in inches.
	CountertopThickness float64 `toml:"countertop_thickness" json:"countertop_thickness"`

	ADA        ADA        `toml:"ada" json:"ada"`
	Tolerances Tolerances `toml:"tolerances" json:"tolerances"`
	Hardware   Hardware   `toml:"hardware" json:"hardware"`
	Limits     Limits     `toml:"limits" json:"limits"`

	// CodeBasis names the accessibility standard the ADA parameters follow.
	CodeBasis string `toml:"code_basis" json:"code_basis"`
	// EdgeRules is the closed set of allowed edge treatment codes.
	EdgeRules []string `toml:"edge_rules" json:"edge_rules"`
	// Materials is an optional closed catalog of material codes. When empty,
	// material codes are not checked beyond their format.
	Materials []string `toml:"materials" json:"materials,omitempty"`

	kneeClear geometry.Clearance
	toeClear  geometry.Clearance
}

// Default returns the built-in configuration, already validated.
func Default() *Config {
	cfg := &Config{
		ScalePlan:           0.25,
		CounterHeight:       36,
		BaseDepth:           24,
		WallCabDepth:        12,
		CountertopThickness: 1.5,
		ADA: ADA{
			KneeClear:    `27" H x 30" W x 17" D`,
			ToeClear:     `9" H x 30" W x 6" D`,
			CounterRange: [2]float64{28, 34},
			ClearWidth:   32,
		},
		Tolerances: Tolerances{
			LengthSum:      0.125,
			LengthRounding: 2,
		},
		Hardware: Hardware{
			Defaults: map[string]string{
				"HINGE": "BLUM-110",
				"PULL":  "SS-128",
				"SLIDE": "BLUM-563",
			},
		},
		Limits: Limits{
			ModuleWidthMin: 6,
			ModuleWidthMax: 60,
			FillerMax:      6,
		},
		CodeBasis: "ADA 2010",
		EdgeRules: []string{"MATCH_FACE", "PVC_EDGE", "SOLID_LUMBER", "RADIUS"},
	}
	if err := cfg.Validate(); err != nil {
		// The built-in defaults are covered by tests; this cannot fire at
		// runtime without a source change.
		panic(err)
	}
	return cfg
}

// LoadFile reads a TOML configuration file layered on top of the defaults,
// so a project file only needs to state what it changes. The returned
// configuration is validated.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err,
			"failed to parse config file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency and parses the
// clearance callouts. Any violation is an INVALID_CONFIG error and aborts the
// whole run; a broken configuration must never degrade into per-room noise.
func (c *Config) Validate() error {
	if c.ScalePlan <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale_plan must be positive")
	}
	if c.CounterHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "counter_height must be positive")
	}
	if c.BaseDepth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "base_depth must be positive")
	}
	if c.WallCabDepth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "wall_cab_depth must be positive")
	}
	if c.CountertopThickness <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "countertop_thickness must be positive")
	}
	if c.Tolerances.LengthSum < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "tolerances.length_sum must not be negative")
	}
	if c.Tolerances.LengthRounding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "tolerances.length_rounding must not be negative")
	}
	lo, hi := c.ADA.CounterRange[0], c.ADA.CounterRange[1]
	if lo <= 0 || hi <= 0 || lo > hi {
		return errors.New(errors.ErrCodeInvalidConfig,
			"ada.counter_range [%v, %v] is not a valid range", lo, hi)
	}
	if c.ADA.ClearWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "ada.clear_width must be positive")
	}
	if len(c.EdgeRules) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "edge_rules must not be empty")
	}

	knee, err := geometry.ParseClearance(c.ADA.KneeClear)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "ada.knee_clear")
	}
	toe, err := geometry.ParseClearance(c.ADA.ToeClear)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "ada.toe_clear")
	}
	c.kneeClear = knee
	c.toeClear = toe
	return nil
}

// KneeClearance returns the parsed knee clearance envelope. Valid after
// Validate.
func (c *Config) KneeClearance() geometry.Clearance { return c.kneeClear }

// ToeClearance returns the parsed toe clearance envelope. Valid after
// Validate.
func (c *Config) ToeClearance() geometry.Clearance { return c.toeClear }

// HasEdgeRule reports whether the given code is in the allowed edge rule set.
func (c *Config) HasEdgeRule(rule string) bool {
	for _, r := range c.EdgeRules {
		if r == rule {
			return true
		}
	}
	return false
}

// HasHardware reports whether the given key exists in the hardware catalog.
func (c *Config) HasHardware(key string) bool {
	_, ok := c.Hardware.Defaults[key]
	return ok
}

// HasMaterial reports whether the given code is in the material catalog. With
// no catalog configured every code passes.
func (c *Config) HasMaterial(code string) bool {
	if len(c.Materials) == 0 {
		return true
	}
	for _, m := range c.Materials {
		if m == code {
			return true
		}
	}
	return false
}

// Hash returns a stable fingerprint of the configuration, used to key cached
// layouts and to stamp layout metadata. JSON encoding sorts map keys, so the
// same settings always produce the same hash.
func (c *Config) Hash() string {
	data, err := json.Marshal(c)
	if err != nil {
		// Config contains only encodable types.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
