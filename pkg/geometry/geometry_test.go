package geometry

import (
	"math"
	"testing"
)

func TestUnion(t *testing.T) {
	tests := []struct {
		name  string
		rects []Rect
		want  Rect
	}{
		{
			name:  "Empty",
			rects: nil,
			want:  Rect{},
		},
		{
			name:  "Single",
			rects: []Rect{{X: 1, Y: 2, Width: 3, Height: 4}},
			want:  Rect{X: 1, Y: 2, Width: 3, Height: 4},
		},
		{
			name: "SideBySide",
			rects: []Rect{
				{X: 0, Y: 0, Width: 36, Height: 34.5},
				{X: 36, Y: 0, Width: 30, Height: 34.5},
			},
			want: Rect{X: 0, Y: 0, Width: 66, Height: 34.5},
		},
		{
			name: "Stacked",
			rects: []Rect{
				{X: 0, Y: 0, Width: 66, Height: 34.5},
				{X: 0, Y: 34.5, Width: 66, Height: 1.5},
			},
			want: Rect{X: 0, Y: 0, Width: 66, Height: 36},
		},
		{
			name: "NegativeOrigin",
			rects: []Rect{
				{X: -1.5, Y: 0, Width: 1.5, Height: 34.5},
				{X: 0, Y: 0, Width: 36, Height: 34.5},
			},
			want: Rect{X: -1.5, Y: 0, Width: 37.5, Height: 34.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Union(tt.rects)
			if got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		tol     float64
		want    bool
	}{
		{name: "Equal", a: 144, b: 144, tol: 0, want: true},
		{name: "WithinTol", a: 144.1, b: 144, tol: 0.125, want: true},
		{name: "ExactlyAtTol", a: 144.125, b: 144, tol: 0.125, want: true},
		{name: "BeyondTol", a: 144.126, b: 144, tol: 0.125, want: false},
		{name: "SymmetricBelow", a: 143.875, b: 144, tol: 0.125, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.a, tt.b, tt.tol); got != tt.want {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, want %v",
					tt.a, tt.b, tt.tol, got, tt.want)
			}
		})
	}
}

func TestLengthSumDelta(t *testing.T) {
	tests := []struct {
		name    string
		widths  []float64
		left    float64
		right   float64
		total   float64
		want    float64
	}{
		{
			name:   "ExactFit",
			widths: []float64{36, 30, 36, 42},
			total:  144,
			want:   0,
		},
		{
			name:   "FillersAbsorbGap",
			widths: []float64{36, 30, 36, 39},
			left:   1.5,
			right:  1.5,
			total:  144,
			want:   0,
		},
		{
			name:   "Short",
			widths: []float64{40, 40, 40},
			total:  144,
			want:   24,
		},
		{
			name:   "Over",
			widths: []float64{72, 74},
			total:  144,
			want:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LengthSumDelta(tt.widths, tt.left, tt.right, tt.total)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LengthSumDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnitConversion(t *testing.T) {
	if got := InchesToPoints(1); got != 72 {
		t.Errorf("InchesToPoints(1) = %v, want 72", got)
	}
	if got := PointsToInches(144); got != 2 {
		t.Errorf("PointsToInches(144) = %v, want 2", got)
	}
	if got := ApplyScale(48, 0.25); got != 12 {
		t.Errorf("ApplyScale(48, 0.25) = %v, want 12", got)
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int
		want   float64
	}{
		{name: "TwoPlaces", value: 1.23456, places: 2, want: 1.23},
		{name: "RoundsUp", value: 1.235, places: 2, want: 1.24},
		{name: "ZeroPlaces", value: 1.6, places: 0, want: 2},
		{name: "NegativePlacesClamped", value: 1.6, places: -3, want: 2},
		{name: "AlreadyExact", value: 36.5, places: 2, want: 36.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundTo(tt.value, tt.places); got != tt.want {
				t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.value, tt.places, got, tt.want)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 4}

	if got := r.Right(); got != 12 {
		t.Errorf("Right() = %v, want 12", got)
	}
	if got := r.Top(); got != 7 {
		t.Errorf("Top() = %v, want 7", got)
	}
	if got := r.Center(); got != (Point{X: 7, Y: 5}) {
		t.Errorf("Center() = %+v, want {7 5}", got)
	}
	if got := r.Offset(-2, 1); got != (Rect{X: 0, Y: 4, Width: 10, Height: 4}) {
		t.Errorf("Offset() = %+v", got)
	}
}
