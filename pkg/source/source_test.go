package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/schema"
)

const csvHeader = "room_id,total_length_in,num_modules,module_widths,material_top,material_casework"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	t.Run("CommaDelimited", func(t *testing.T) {
		path := writeFile(t, "rooms.csv", csvHeader+"\n"+
			`KITCHEN-01,144,4,"[36,30,36,42]",QTZ-01,PLM-WHT`+"\n"+
			`BREAK-01,69,2,"[36,30]",LAM-02,PLM-WHT`+"\n")
		table, result, err := ReadCSV(path)
		if err != nil {
			t.Fatalf("ReadCSV: %v", err)
		}
		if !result.Passed() || len(result.Findings) != 0 {
			t.Errorf("unexpected header findings: %v", result.Findings)
		}
		if len(table.Rows) != 2 {
			t.Fatalf("got %d rows", len(table.Rows))
		}
		if table.Rows[0].Number != 2 || table.Rows[1].Number != 3 {
			t.Errorf("row numbers = %d, %d", table.Rows[0].Number, table.Rows[1].Number)
		}
		if got := table.Rows[0].Values["module_widths"]; got != "[36,30,36,42]" {
			t.Errorf("module_widths = %q", got)
		}
	})

	t.Run("TabDelimited", func(t *testing.T) {
		path := writeFile(t, "rooms.tsv",
			"room_id\ttotal_length_in\tnum_modules\tmodule_widths\tmaterial_top\tmaterial_casework\n"+
				"KITCHEN-01\t144\t4\t[36,30,36,42]\tQTZ-01\tPLM-WHT\n")
		table, result, err := ReadCSV(path)
		if err != nil {
			t.Fatalf("ReadCSV: %v", err)
		}
		if !result.Passed() {
			t.Errorf("unexpected findings: %v", result.Findings)
		}
		if got := table.Rows[0].Values["room_id"]; got != "KITCHEN-01" {
			t.Errorf("room_id = %q", got)
		}
	})

	t.Run("HeaderCaseInsensitive", func(t *testing.T) {
		path := writeFile(t, "rooms.csv",
			"Room_ID,Total_Length_In,Num_Modules,Module_Widths,Material_Top,Material_Casework\n"+
				`KITCHEN-01,144,4,"[36,30,36,42]",QTZ-01,PLM-WHT`+"\n")
		_, result, err := ReadCSV(path)
		if err != nil {
			t.Fatalf("ReadCSV: %v", err)
		}
		if !result.Passed() {
			t.Errorf("normalized header rejected: %v", result.Findings)
		}
	})

	t.Run("MissingRequiredColumn", func(t *testing.T) {
		path := writeFile(t, "rooms.csv",
			"room_id,total_length_in,num_modules,module_widths,material_top\n"+
				`KITCHEN-01,144,4,"[36,30,36,42]",QTZ-01`+"\n")
		_, result, err := ReadCSV(path)
		if err != nil {
			t.Fatalf("ReadCSV: %v", err)
		}
		errs := result.Errors()
		if len(errs) != 1 || errs[0].Field != schema.FieldMaterialCasework {
			t.Errorf("findings = %v, want missing material_casework error", result.Findings)
		}
	})

	t.Run("UnknownColumnWarns", func(t *testing.T) {
		path := writeFile(t, "rooms.csv", csvHeader+",color\n"+
			`KITCHEN-01,144,4,"[36,30,36,42]",QTZ-01,PLM-WHT,blue`+"\n")
		_, result, err := ReadCSV(path)
		if err != nil {
			t.Fatalf("ReadCSV: %v", err)
		}
		warnings := result.Warnings()
		if len(warnings) != 1 || warnings[0].Field != "color" {
			t.Errorf("findings = %v, want unknown column warning", result.Findings)
		}
		if !result.Passed() {
			t.Error("unknown column failed the header check")
		}
	})

	t.Run("BlankRowsSkipped", func(t *testing.T) {
		path := writeFile(t, "rooms.csv", csvHeader+"\n"+
			",,,,,\n"+
			`KITCHEN-01,144,4,"[36,30,36,42]",QTZ-01,PLM-WHT`+"\n")
		table, _, err := ReadCSV(path)
		if err != nil {
			t.Fatalf("ReadCSV: %v", err)
		}
		if len(table.Rows) != 1 {
			t.Fatalf("got %d rows, want blank row skipped", len(table.Rows))
		}
		// The surviving row keeps its file position.
		if table.Rows[0].Number != 3 {
			t.Errorf("row number = %d, want 3", table.Rows[0].Number)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
		}
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := writeFile(t, "rooms.csv", "")
		_, _, err := ReadCSV(path)
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
		}
	})
}

func TestReadXLSX(t *testing.T) {
	writeWorkbook := func(t *testing.T, rows [][]any) string {
		t.Helper()
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				t.Fatal(err)
			}
		}
		path := filepath.Join(t.TempDir(), "rooms.xlsx")
		if err := f.SaveAs(path); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("FirstSheet", func(t *testing.T) {
		path := writeWorkbook(t, [][]any{
			{"room_id", "total_length_in", "num_modules", "module_widths", "material_top", "material_casework"},
			{"KITCHEN-01", 144, 4, "[36,30,36,42]", "QTZ-01", "PLM-WHT"},
		})
		table, result, err := ReadXLSX(path)
		if err != nil {
			t.Fatalf("ReadXLSX: %v", err)
		}
		if !result.Passed() {
			t.Errorf("unexpected findings: %v", result.Findings)
		}
		if len(table.Rows) != 1 || table.Rows[0].Number != 2 {
			t.Fatalf("rows = %+v", table.Rows)
		}
		if got := table.Rows[0].Values["total_length_in"]; got != "144" {
			t.Errorf("total_length_in = %q", got)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
		}
	})
}

func TestReadDispatch(t *testing.T) {
	path := writeFile(t, "rooms.csv", csvHeader+"\n"+
		`KITCHEN-01,144,4,"[36,30,36,42]",QTZ-01,PLM-WHT`+"\n")
	table, _, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Errorf("rows = %d", len(table.Rows))
	}

	_, _, err = Read("rooms.pdf")
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want UNSUPPORTED", errors.GetCode(err))
	}
}
