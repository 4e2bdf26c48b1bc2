package validate

import (
	"strings"
	"testing"

	"github.com/draftline/draftline/pkg/config"
	"github.com/draftline/draftline/pkg/schema"
)

func goodRoom() schema.Room {
	return schema.Room{
		RoomID:           "KITCHEN-01",
		TotalLengthIn:    144,
		NumModules:       4,
		ModuleWidths:     []float64{36, 30, 36, 42},
		MaterialTop:      "QTZ-01",
		MaterialCasework: "PLM-WHT",
		RowNumber:        2,
	}
}

func fptr(v float64) *float64 { return &v }

func TestGeometric(t *testing.T) {
	cfg := config.Default()

	t.Run("ExactFitPasses", func(t *testing.T) {
		room := goodRoom()
		result := Geometric(&room, cfg)
		if !result.Passed() || len(result.Findings) != 0 {
			t.Errorf("unexpected findings: %v", result.Findings)
		}
	})

	t.Run("FillersCloseTheGap", func(t *testing.T) {
		room := goodRoom()
		room.ModuleWidths = []float64{36, 30, 36, 39}
		room.LeftFillerIn = 1.5
		room.RightFillerIn = 1.5
		if result := Geometric(&room, cfg); !result.Passed() {
			t.Errorf("unexpected findings: %v", result.Findings)
		}
	})

	t.Run("SumOffByTwoFeet", func(t *testing.T) {
		room := goodRoom()
		room.NumModules = 3
		room.ModuleWidths = []float64{40, 40, 40}
		result := Geometric(&room, cfg)
		if result.Passed() {
			t.Fatal("expected length sum error")
		}
		f := result.Errors()[0]
		if f.Field != schema.FieldModuleWidths {
			t.Errorf("Field = %s", f.Field)
		}
		if !strings.Contains(f.Message, "24") {
			t.Errorf("message does not report the delta: %s", f.Message)
		}
	})

	t.Run("ExactlyAtTolerancePasses", func(t *testing.T) {
		room := goodRoom()
		room.TotalLengthIn = 144.125
		if result := Geometric(&room, cfg); !result.Passed() {
			t.Errorf("sum at tolerance boundary rejected: %v", result.Findings)
		}
	})

	t.Run("JustBeyondToleranceFails", func(t *testing.T) {
		room := goodRoom()
		room.TotalLengthIn = 144.13
		if result := Geometric(&room, cfg); result.Passed() {
			t.Error("sum beyond tolerance accepted")
		}
	})

	t.Run("CounterHeightOutsideRange", func(t *testing.T) {
		room := goodRoom()
		room.CounterHeightIn = fptr(40)
		result := Geometric(&room, cfg)
		if result.Passed() {
			t.Fatal("expected counter height error")
		}
		msg := result.Errors()[0].Message
		if !strings.Contains(msg, "[28, 34]") || !strings.Contains(msg, "ADA 2010") {
			t.Errorf("message does not cite range and code basis: %s", msg)
		}
	})

	t.Run("CounterHeightInsideRange", func(t *testing.T) {
		room := goodRoom()
		room.CounterHeightIn = fptr(34)
		if result := Geometric(&room, cfg); !result.Passed() {
			t.Errorf("unexpected findings: %v", result.Findings)
		}
	})

	t.Run("NarrowModuleWarns", func(t *testing.T) {
		room := goodRoom()
		room.NumModules = 2
		room.ModuleWidths = []float64{4, 140}
		result := Geometric(&room, cfg)
		if len(result.Warnings()) != 2 {
			t.Fatalf("warnings = %v, want narrow and wide module warnings", result.Findings)
		}
		if !result.Passed() {
			t.Error("warnings should not fail the result")
		}
	})

	t.Run("WideFillerWarns", func(t *testing.T) {
		room := goodRoom()
		room.ModuleWidths = []float64{36, 30, 36, 35}
		room.LeftFillerIn = 7
		result := Geometric(&room, cfg)
		if len(result.Warnings()) != 1 {
			t.Errorf("warnings = %v, want one filler warning", result.Findings)
		}
	})
}

func TestReferential(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name     string
		mutate   func(*schema.Room)
		wantErrs int
		field    string
	}{
		{name: "NoReferences", mutate: func(r *schema.Room) {}, wantErrs: 0},
		{name: "KnownEdgeRule", mutate: func(r *schema.Room) { r.EdgeRule = "RADIUS" }, wantErrs: 0},
		{
			name:     "UnknownEdgeRule",
			mutate:   func(r *schema.Room) { r.EdgeRule = "FOO" },
			wantErrs: 1,
			field:    schema.FieldEdgeRule,
		},
		{name: "KnownHardware", mutate: func(r *schema.Room) { r.HardwareDefaults = "PULL" }, wantErrs: 0},
		{
			name:     "UnknownHardware",
			mutate:   func(r *schema.Room) { r.HardwareDefaults = "KNOB-99" },
			wantErrs: 1,
			field:    schema.FieldHardwareDefaults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := goodRoom()
			tt.mutate(&room)
			result := Referential(&room, cfg)
			if got := len(result.Errors()); got != tt.wantErrs {
				t.Fatalf("errors = %v, want %d", result.Findings, tt.wantErrs)
			}
			if tt.wantErrs > 0 && result.Errors()[0].Field != tt.field {
				t.Errorf("Field = %s, want %s", result.Errors()[0].Field, tt.field)
			}
		})
	}
}

func TestReferentialMaterialCatalog(t *testing.T) {
	t.Run("NoCatalogAcceptsAnyCode", func(t *testing.T) {
		room := goodRoom()
		room.MaterialTop = "ANYTHING-99"
		if result := Referential(&room, config.Default()); !result.Passed() {
			t.Errorf("unexpected findings without a catalog: %v", result.Findings)
		}
	})

	t.Run("CatalogRejectsUnknownCode", func(t *testing.T) {
		cfg := config.Default()
		cfg.Materials = []string{"QTZ-01", "LAM-02", "PLM-WHT"}
		room := goodRoom()
		room.MaterialCasework = "PLM-GRY"
		result := Referential(&room, cfg)
		if result.Passed() {
			t.Fatal("expected material catalog error")
		}
		f := result.Errors()[0]
		if f.Field != schema.FieldMaterialCasework {
			t.Errorf("Field = %s", f.Field)
		}
		if !strings.Contains(f.Message, "LAM-02") {
			t.Errorf("message does not cite the catalog: %s", f.Message)
		}
	})

	t.Run("CatalogAcceptsListedCodes", func(t *testing.T) {
		cfg := config.Default()
		cfg.Materials = []string{"QTZ-01", "PLM-WHT"}
		room := goodRoom()
		if result := Referential(&room, cfg); !result.Passed() {
			t.Errorf("unexpected findings: %v", result.Findings)
		}
	})
}

func TestUnknownEdgeRuleCitesAllowedSet(t *testing.T) {
	cfg := config.Default()
	room := goodRoom()
	room.EdgeRule = "FOO"
	result := Referential(&room, cfg)
	if result.Passed() {
		t.Fatal("expected edge rule error")
	}
	msg := result.Errors()[0].Message
	for _, rule := range cfg.EdgeRules {
		if !strings.Contains(msg, rule) {
			t.Errorf("message does not cite allowed rule %s: %s", rule, msg)
		}
	}
}

func TestBatch(t *testing.T) {
	cfg := config.Default()

	t.Run("MixedVerdicts", func(t *testing.T) {
		bad := goodRoom()
		bad.RoomID = "BREAK-01"
		bad.ModuleWidths = []float64{40, 40, 40}
		bad.NumModules = 3
		other := goodRoom()
		other.RoomID = "PANTRY-01"

		rows := []ParsedRow{
			{Room: goodRoom()},
			{Room: bad},
			{Room: other},
		}
		result := Batch(rows, cfg, false)

		if result.Summary.Total != 3 || result.Summary.Accepted != 2 || result.Summary.Rejected != 1 {
			t.Errorf("summary = %+v", result.Summary)
		}
		if got := result.Summary.SuccessRate; got < 0.66 || got > 0.67 {
			t.Errorf("SuccessRate = %v", got)
		}
		if result.Summary.ErrorsByField[schema.FieldModuleWidths] != 1 {
			t.Errorf("ErrorsByField = %v", result.Summary.ErrorsByField)
		}
		if got := len(result.Accepted()); got != 2 {
			t.Errorf("Accepted() returned %d rooms", got)
		}
	})

	t.Run("DuplicateIDRejectsLaterRow", func(t *testing.T) {
		rows := []ParsedRow{
			{Room: goodRoom()},
			{Room: goodRoom()},
		}
		result := Batch(rows, cfg, false)
		if !result.Outcomes[0].Accepted {
			t.Error("first occurrence rejected")
		}
		if result.Outcomes[1].Accepted {
			t.Error("duplicate accepted")
		}
		if f := result.Outcomes[1].Result.Errors()[0]; f.Field != schema.FieldRoomID {
			t.Errorf("duplicate finding on field %s", f.Field)
		}
	})

	t.Run("DuplicateStillGetsRecordChecks", func(t *testing.T) {
		second := goodRoom()
		second.RowNumber = 3
		second.EdgeRule = "FOO"
		rows := []ParsedRow{
			{Room: goodRoom()},
			{Room: second},
		}
		result := Batch(rows, cfg, false)

		errs := result.Outcomes[1].Result.Errors()
		if len(errs) != 2 {
			t.Fatalf("errors = %v, want duplicate and edge rule errors", errs)
		}
		fields := map[string]bool{}
		for _, f := range errs {
			fields[f.Field] = true
		}
		if !fields[schema.FieldRoomID] || !fields[schema.FieldEdgeRule] {
			t.Errorf("error fields = %v", fields)
		}
	})

	t.Run("DuplicateSetIsPerCall", func(t *testing.T) {
		rows := []ParsedRow{{Room: goodRoom()}}
		first := Batch(rows, cfg, false)
		second := Batch(rows, cfg, false)
		if !first.Outcomes[0].Accepted || !second.Outcomes[0].Accepted {
			t.Error("duplicate state leaked across Batch calls")
		}
	})

	t.Run("ParseErrorsRejectWithoutFurtherChecks", func(t *testing.T) {
		var parseResult schema.Result
		parseResult.AddError(schema.FieldRoomID, "required field is missing", nil, 2)
		rows := []ParsedRow{{Room: schema.Room{RowNumber: 2}, Result: parseResult}}
		result := Batch(rows, cfg, false)
		if result.Outcomes[0].Accepted {
			t.Error("row with parse errors accepted")
		}
		if got := len(result.Outcomes[0].Result.Findings); got != 1 {
			t.Errorf("findings = %v, want the parse error only", result.Outcomes[0].Result.Findings)
		}
	})

	t.Run("StrictElevatesWarnings", func(t *testing.T) {
		room := goodRoom()
		room.NumModules = 2
		room.ModuleWidths = []float64{4, 140}
		rows := []ParsedRow{{Room: room}}

		relaxed := Batch(rows, cfg, false)
		if !relaxed.Outcomes[0].Accepted {
			t.Error("warnings rejected the room without strict mode")
		}
		strict := Batch(rows, cfg, true)
		if strict.Outcomes[0].Accepted {
			t.Error("strict mode accepted a room with warnings")
		}
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		result := Batch(nil, cfg, false)
		if result.Summary.Total != 0 || result.Summary.SuccessRate != 0 {
			t.Errorf("summary = %+v", result.Summary)
		}
	})
}
