// Package schema defines the tabular room-specification schema: field
// definitions with their validation constraints, the typed Room record
// produced from one input row, and the field parser that converts raw
// string values into typed, constraint-checked values.
//
// Parsing is pure: every function is a deterministic function of its inputs
// and performs no I/O. Problems surface as Findings, collected per row into
// a Result; a Go error is never returned for record-scoped issues.
package schema

import "regexp"

// FieldType is the semantic type of a schema field.
type FieldType string

// Field types supported by the row parser.
const (
	TypeString     FieldType = "string"
	TypeNumber     FieldType = "number"
	TypeInteger    FieldType = "integer"
	TypeBoolean    FieldType = "boolean"
	TypeNumberList FieldType = "number_list" // JSON-style bracketed list, e.g. "[36,30,36,42]"
)

// FieldDefinition describes one column of the room-specification table,
// including its validation constraints. Definitions are immutable; the
// package-level schema is built once at init.
type FieldDefinition struct {
	Name        string
	Type        FieldType
	Required    bool
	Min         *float64       // inclusive lower bound for numeric types
	Max         *float64       // inclusive upper bound for numeric types
	MinLen      int            // minimum string length (0 = unset)
	MaxLen      int            // maximum string length (0 = unset)
	Pattern     *regexp.Regexp // anchored pattern for string fields
	Enum        []string       // allowed values for string fields
	Description string
}

// Schema is an ordered collection of field definitions.
type Schema struct {
	fields []FieldDefinition
	index  map[string]int
}

// New builds a schema from an ordered list of field definitions.
func New(fields []FieldDefinition) *Schema {
	s := &Schema{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

// Fields returns the field definitions in declaration order.
func (s *Schema) Fields() []FieldDefinition { return s.fields }

// Lookup returns the definition for a field name.
func (s *Schema) Lookup(name string) (FieldDefinition, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldDefinition{}, false
	}
	return s.fields[i], true
}

// Has reports whether the schema declares the given field name.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// RequiredFields returns the names of all required fields, in order.
func (s *Schema) RequiredFields() []string {
	var names []string
	for _, f := range s.fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

func fptr(v float64) *float64 { return &v }

// Room schema column names.
const (
	FieldRoomID           = "room_id"
	FieldTotalLength      = "total_length_in"
	FieldNumModules       = "num_modules"
	FieldModuleWidths     = "module_widths"
	FieldMaterialTop      = "material_top"
	FieldMaterialCasework = "material_casework"
	FieldLeftFiller       = "left_filler_in"
	FieldRightFiller      = "right_filler_in"
	FieldHasSink          = "has_sink"
	FieldHasRef           = "has_ref"
	FieldCounterHeight    = "counter_height_in"
	FieldEdgeRule         = "edge_rule"
	FieldHardwareDefaults = "hardware_defaults"
	FieldNotes            = "notes"
	FieldReferences       = "references"
)

// roomSchema is the schema for millwork room specifications.
var roomSchema = New([]FieldDefinition{
	{
		Name:        FieldRoomID,
		Type:        TypeString,
		Required:    true,
		MinLen:      1,
		MaxLen:      50,
		Pattern:     regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-_]*$`),
		Description: "Unique room identifier (e.g., 'KITCHEN-01')",
	},
	{
		Name:        FieldTotalLength,
		Type:        TypeNumber,
		Required:    true,
		Min:         fptr(1),
		Max:         fptr(1000),
		Description: "Total assembly length in inches",
	},
	{
		Name:        FieldNumModules,
		Type:        TypeInteger,
		Required:    true,
		Min:         fptr(1),
		Max:         fptr(50),
		Description: "Number of cabinet modules",
	},
	{
		Name:        FieldModuleWidths,
		Type:        TypeNumberList,
		Required:    true,
		Description: "Module widths as a JSON array (e.g., '[36,30,36,42]')",
	},
	{
		Name:        FieldMaterialTop,
		Type:        TypeString,
		Required:    true,
		MinLen:      1,
		MaxLen:      20,
		Pattern:     regexp.MustCompile(`^[A-Z0-9\-_]+$`),
		Description: "Countertop material code (e.g., 'QTZ-01')",
	},
	{
		Name:        FieldMaterialCasework,
		Type:        TypeString,
		Required:    true,
		MinLen:      1,
		MaxLen:      20,
		Pattern:     regexp.MustCompile(`^[A-Z0-9\-_]+$`),
		Description: "Casework material code (e.g., 'PLM-WHT')",
	},
	{
		Name:        FieldLeftFiller,
		Type:        TypeNumber,
		Min:         fptr(0),
		Max:         fptr(12),
		Description: "Left filler width in inches",
	},
	{
		Name:        FieldRightFiller,
		Type:        TypeNumber,
		Min:         fptr(0),
		Max:         fptr(12),
		Description: "Right filler width in inches",
	},
	{
		Name:        FieldHasSink,
		Type:        TypeBoolean,
		Description: "Whether the room has a sink",
	},
	{
		Name:        FieldHasRef,
		Type:        TypeBoolean,
		Description: "Whether the room has a refrigerator",
	},
	{
		Name:        FieldCounterHeight,
		Type:        TypeNumber,
		Min:         fptr(24),
		Max:         fptr(48),
		Description: "Counter height override in inches",
	},
	{
		Name:        FieldEdgeRule,
		Type:        TypeString,
		Description: "Edge treatment rule (checked against configured edge rules)",
	},
	{
		Name:        FieldHardwareDefaults,
		Type:        TypeString,
		Description: "Hardware defaults key (checked against configured hardware)",
	},
	{
		Name:        FieldNotes,
		Type:        TypeString,
		MaxLen:      500,
		Description: "Free-text notes",
	},
	{
		Name:        FieldReferences,
		Type:        TypeString,
		MaxLen:      100,
		Description: "Sheet/callout references (e.g., 'A3.1/2')",
	},
})

// Rooms returns the room-specification schema.
func Rooms() *Schema { return roomSchema }
