package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts a raw cell value into the typed value demanded by the
// field definition, checking the definition's constraints along the way. It
// returns the typed value, or a Finding describing why the value is unusable.
// A nil value with a nil finding means the optional field was left blank.
func ParseValue(raw string, def FieldDefinition, row int) (any, *Finding) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if def.Required {
			return nil, &Finding{
				Severity: SeverityError,
				Field:    def.Name,
				Message:  "required field is missing",
				Row:      row,
			}
		}
		return nil, nil
	}

	switch def.Type {
	case TypeString:
		return parseString(raw, def, row)
	case TypeNumber:
		return parseNumber(raw, def, row)
	case TypeInteger:
		return parseInteger(raw, def, row)
	case TypeBoolean:
		return parseBoolean(raw, def, row)
	case TypeNumberList:
		return parseNumberList(raw, def, row)
	default:
		return nil, &Finding{
			Severity: SeverityError,
			Field:    def.Name,
			Message:  fmt.Sprintf("unknown field type %q", def.Type),
			Value:    raw,
			Row:      row,
		}
	}
}

func parseString(raw string, def FieldDefinition, row int) (any, *Finding) {
	if def.MinLen > 0 && len(raw) < def.MinLen {
		return nil, errFinding(def, row, raw,
			fmt.Sprintf("must be at least %d characters", def.MinLen))
	}
	if def.MaxLen > 0 && len(raw) > def.MaxLen {
		return nil, errFinding(def, row, raw,
			fmt.Sprintf("must be at most %d characters", def.MaxLen))
	}
	if def.Pattern != nil && !def.Pattern.MatchString(raw) {
		return nil, errFinding(def, row, raw,
			fmt.Sprintf("does not match required pattern %s", def.Pattern))
	}
	if len(def.Enum) > 0 {
		for _, allowed := range def.Enum {
			if raw == allowed {
				return raw, nil
			}
		}
		return nil, errFinding(def, row, raw,
			fmt.Sprintf("must be one of %s", strings.Join(def.Enum, ", ")))
	}
	return raw, nil
}

func parseNumber(raw string, def FieldDefinition, row int) (any, *Finding) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errFinding(def, row, raw, "is not a number")
	}
	if f := checkRange(v, def, row, raw); f != nil {
		return nil, f
	}
	return v, nil
}

func parseInteger(raw string, def FieldDefinition, row int) (any, *Finding) {
	// "4.0" is rejected on purpose; integer columns carry counts.
	if strings.ContainsAny(raw, ".eE") {
		return nil, errFinding(def, row, raw, "is not an integer")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errFinding(def, row, raw, "is not an integer")
	}
	if f := checkRange(float64(v), def, row, raw); f != nil {
		return nil, f
	}
	return v, nil
}

func parseBoolean(raw string, def FieldDefinition, row int) (any, *Finding) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return nil, errFinding(def, row, raw,
		"is not a boolean (expected true/false, yes/no, or 1/0)")
}

func parseNumberList(raw string, def FieldDefinition, row int) (any, *Finding) {
	var values []float64
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, errFinding(def, row, raw,
			"is not a bracketed number list (e.g., '[36,30,36,42]')")
	}
	if len(values) == 0 {
		return nil, errFinding(def, row, raw, "must contain at least one value")
	}
	for i, v := range values {
		if v <= 0 {
			return nil, errFinding(def, row, raw,
				fmt.Sprintf("element %d must be positive, got %v", i+1, v))
		}
	}
	return values, nil
}

func checkRange(v float64, def FieldDefinition, row int, raw string) *Finding {
	if def.Min != nil && v < *def.Min {
		return errFinding(def, row, raw,
			fmt.Sprintf("must be at least %v", *def.Min))
	}
	if def.Max != nil && v > *def.Max {
		return errFinding(def, row, raw,
			fmt.Sprintf("must be at most %v", *def.Max))
	}
	return nil
}

func errFinding(def FieldDefinition, row int, raw, msg string) *Finding {
	return &Finding{
		Severity: SeverityError,
		Field:    def.Name,
		Message:  msg,
		Value:    raw,
		Row:      row,
	}
}

// ParseRow converts one raw row into a typed Room. Every field is parsed
// independently so a single bad cell never hides problems in its neighbors;
// the returned Result carries all findings for the row. The Room is only
// meaningful when the result passed.
func ParseRow(values map[string]string, rowNum int, sourceFile string) (Room, Result) {
	var (
		room   Room
		result Result
	)
	room.RowNumber = rowNum
	room.SourceFile = sourceFile

	for _, def := range roomSchema.Fields() {
		v, finding := ParseValue(values[def.Name], def, rowNum)
		if finding != nil {
			result.Add(*finding)
			continue
		}
		if v == nil {
			continue
		}
		assignField(&room, def.Name, v)
	}

	// Cross-field shape check: the widths list must agree with the declared
	// module count before any geometric validation can run.
	if room.NumModules > 0 && room.ModuleWidths != nil && len(room.ModuleWidths) != room.NumModules {
		result.AddError(FieldModuleWidths,
			fmt.Sprintf("has %d entries but num_modules is %d",
				len(room.ModuleWidths), room.NumModules),
			room.ModuleWidths, rowNum)
	}

	return room, result
}

func assignField(room *Room, name string, v any) {
	switch name {
	case FieldRoomID:
		room.RoomID = v.(string)
	case FieldTotalLength:
		room.TotalLengthIn = v.(float64)
	case FieldNumModules:
		room.NumModules = v.(int)
	case FieldModuleWidths:
		room.ModuleWidths = v.([]float64)
	case FieldMaterialTop:
		room.MaterialTop = v.(string)
	case FieldMaterialCasework:
		room.MaterialCasework = v.(string)
	case FieldLeftFiller:
		room.LeftFillerIn = v.(float64)
	case FieldRightFiller:
		room.RightFillerIn = v.(float64)
	case FieldHasSink:
		room.HasSink = v.(bool)
	case FieldHasRef:
		room.HasRef = v.(bool)
	case FieldCounterHeight:
		h := v.(float64)
		room.CounterHeightIn = &h
	case FieldEdgeRule:
		room.EdgeRule = v.(string)
	case FieldHardwareDefaults:
		room.HardwareDefaults = v.(string)
	case FieldNotes:
		room.Notes = v.(string)
	case FieldReferences:
		room.References = v.(string)
	}
}
