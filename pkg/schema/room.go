package schema

// Room is one typed, immutable room specification parsed from a single
// input row. It is created once by ParseRow and never mutated afterwards;
// the validator and the layout engine only read it.
type Room struct {
	// Required fields
	RoomID           string    `json:"room_id"`
	TotalLengthIn    float64   `json:"total_length_in"`
	NumModules       int       `json:"num_modules"`
	ModuleWidths     []float64 `json:"module_widths"`
	MaterialTop      string    `json:"material_top"`
	MaterialCasework string    `json:"material_casework"`

	// Optional fields
	LeftFillerIn     float64  `json:"left_filler_in,omitempty"`
	RightFillerIn    float64  `json:"right_filler_in,omitempty"`
	HasSink          bool     `json:"has_sink,omitempty"`
	HasRef           bool     `json:"has_ref,omitempty"`
	CounterHeightIn  *float64 `json:"counter_height_in,omitempty"`
	EdgeRule         string   `json:"edge_rule,omitempty"`
	HardwareDefaults string   `json:"hardware_defaults,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	References       string   `json:"references,omitempty"`

	// Provenance
	RowNumber  int    `json:"row_number,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}

// FillerSum returns the combined width of both fillers.
func (r *Room) FillerSum() float64 {
	return r.LeftFillerIn + r.RightFillerIn
}

// ModuleSum returns the sum of all module widths.
func (r *Room) ModuleSum() float64 {
	var sum float64
	for _, w := range r.ModuleWidths {
		sum += w
	}
	return sum
}
