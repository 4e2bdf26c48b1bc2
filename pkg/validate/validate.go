// Package validate implements the room-level validation checks that run
// after parsing: geometric consistency, referential integrity against the
// configured catalogs, and advisory shop-practice warnings. Checks are pure
// functions from (room, config) to findings.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/draftline/draftline/pkg/config"
	"github.com/draftline/draftline/pkg/geometry"
	"github.com/draftline/draftline/pkg/schema"
)

// Geometric checks that the room's declared dimensions are mutually
// consistent: the module widths plus fillers must account for the total
// length within the configured tolerance, and any counter height override
// must fall inside the accessible range.
func Geometric(room *schema.Room, cfg *config.Config) schema.Result {
	var result schema.Result

	delta := geometry.LengthSumDelta(room.ModuleWidths,
		room.LeftFillerIn, room.RightFillerIn, room.TotalLengthIn)
	if delta > cfg.Tolerances.LengthSum {
		rounded := geometry.RoundTo(delta, cfg.Tolerances.LengthRounding)
		result.AddError(schema.FieldModuleWidths,
			fmt.Sprintf("module widths (%v) plus fillers sum to %v but total_length_in is %v (off by %v\", tolerance %v\")",
				room.ModuleWidths, room.ModuleSum()+room.FillerSum(), room.TotalLengthIn,
				rounded, cfg.Tolerances.LengthSum),
			rounded, room.RowNumber)
	}

	if room.CounterHeightIn != nil {
		h := *room.CounterHeightIn
		lo, hi := cfg.ADA.CounterRange[0], cfg.ADA.CounterRange[1]
		if h < lo || h > hi {
			result.AddError(schema.FieldCounterHeight,
				fmt.Sprintf("counter height %v\" is outside the accessible range [%v, %v] per %s",
					h, lo, hi, cfg.CodeBasis),
				h, room.RowNumber)
		}
	}

	for i, w := range room.ModuleWidths {
		if w < cfg.Limits.ModuleWidthMin {
			result.AddWarning(schema.FieldModuleWidths,
				fmt.Sprintf("module %d width %v\" is below the practical minimum %v\"",
					i+1, w, cfg.Limits.ModuleWidthMin),
				w, room.RowNumber)
		} else if w > cfg.Limits.ModuleWidthMax {
			result.AddWarning(schema.FieldModuleWidths,
				fmt.Sprintf("module %d width %v\" exceeds the practical maximum %v\"",
					i+1, w, cfg.Limits.ModuleWidthMax),
				w, room.RowNumber)
		}
	}
	if room.LeftFillerIn > cfg.Limits.FillerMax {
		result.AddWarning(schema.FieldLeftFiller,
			fmt.Sprintf("left filler %v\" exceeds the practical maximum %v\"",
				room.LeftFillerIn, cfg.Limits.FillerMax),
			room.LeftFillerIn, room.RowNumber)
	}
	if room.RightFillerIn > cfg.Limits.FillerMax {
		result.AddWarning(schema.FieldRightFiller,
			fmt.Sprintf("right filler %v\" exceeds the practical maximum %v\"",
				room.RightFillerIn, cfg.Limits.FillerMax),
			room.RightFillerIn, room.RowNumber)
	}

	return result
}

// Referential checks that the room's catalog references resolve against the
// configuration: material codes against the material catalog (when one is
// configured), edge rules against the closed edge rule set, hardware keys
// against the hardware catalog.
func Referential(room *schema.Room, cfg *config.Config) schema.Result {
	var result schema.Result

	for _, m := range []struct {
		field string
		code  string
	}{
		{schema.FieldMaterialTop, room.MaterialTop},
		{schema.FieldMaterialCasework, room.MaterialCasework},
	} {
		if m.code != "" && !cfg.HasMaterial(m.code) {
			result.AddError(m.field,
				fmt.Sprintf("material %q is not in the configured catalog (allowed: %s)",
					m.code, strings.Join(cfg.Materials, ", ")),
				m.code, room.RowNumber)
		}
	}

	if room.EdgeRule != "" && !cfg.HasEdgeRule(room.EdgeRule) {
		result.AddError(schema.FieldEdgeRule,
			fmt.Sprintf("unknown edge rule %q (allowed: %s)",
				room.EdgeRule, strings.Join(cfg.EdgeRules, ", ")),
			room.EdgeRule, room.RowNumber)
	}

	if room.HardwareDefaults != "" && !cfg.HasHardware(room.HardwareDefaults) {
		keys := make([]string, 0, len(cfg.Hardware.Defaults))
		for k := range cfg.Hardware.Defaults {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		result.AddError(schema.FieldHardwareDefaults,
			fmt.Sprintf("unknown hardware key %q (allowed: %s)",
				room.HardwareDefaults, strings.Join(keys, ", ")),
			room.HardwareDefaults, room.RowNumber)
	}

	return result
}

// Record runs all post-parse checks on one room and merges the findings.
func Record(room *schema.Room, cfg *config.Config) schema.Result {
	var result schema.Result
	result.Merge(Geometric(room, cfg))
	result.Merge(Referential(room, cfg))
	return result
}
