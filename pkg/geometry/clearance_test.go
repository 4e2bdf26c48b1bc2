package geometry

import (
	"testing"

	"github.com/draftline/draftline/pkg/errors"
)

func TestParseClearance(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    Clearance
		wantErr bool
	}{
		{
			name: "Standard",
			spec: `27" H x 30" W x 17" D`,
			want: Clearance{Height: 27, Width: 30, Depth: 17},
		},
		{
			name: "NoInchMarks",
			spec: "27 H x 30 W x 17 D",
			want: Clearance{Height: 27, Width: 30, Depth: 17},
		},
		{
			name: "Decimals",
			spec: `27.5" H x 30" W x 17.25" D`,
			want: Clearance{Height: 27.5, Width: 30, Depth: 17.25},
		},
		{
			name: "TightSpacing",
			spec: `9"H x 30"W x 6"D`,
			want: Clearance{Height: 9, Width: 30, Depth: 6},
		},
		{
			name:    "MissingDepth",
			spec:    `9" H x 6" D`,
			wantErr: true,
		},
		{
			name:    "ReorderedTokens",
			spec:    `30" W x 27" H x 17" D`,
			wantErr: true,
		},
		{
			name:    "MissingLetterSuffix",
			spec:    `27" x 30" x 17"`,
			wantErr: true,
		},
		{
			name:    "ExtraDimension",
			spec:    `27" H x 30" W x 17" D x 5" L`,
			wantErr: true,
		},
		{
			name:    "Empty",
			spec:    "",
			wantErr: true,
		},
		{
			name:    "NotANumber",
			spec:    `tall H x wide W x deep D`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClearance(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClearance(%q) = %+v, want error", tt.spec, got)
				}
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClearance(%q): %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseClearance(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}
