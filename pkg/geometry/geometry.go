// Package geometry provides pure numeric helpers for layout computation.
//
// All functions are stateless and deterministic: unit conversion between
// inches and PostScript points, drawing-scale application, tolerance-aware
// comparison, bounding-box composition over rectangles, and parsing of
// textual clearance specifications ("H x W x D") into numeric triples.
//
// Computed geometry is kept at full precision; RoundTo exists for
// display-oriented rounding by callers that present values, never for
// geometry that flows back into computation.
package geometry

import "math"

// PointsPerInch is the PostScript conversion factor (1 in = 72 pt).
const PointsPerInch = 72.0

// Point is a position in the layout plane, in inches.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle with its origin at the bottom-left
// corner, in inches.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x-coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y-coordinate of the rectangle's top edge.
func (r Rect) Top() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Offset returns a copy of the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Union computes the bounding box of the given rectangles: the minimum of
// the left/bottom edges and the maximum of the right/top edges.
// An empty input yields the zero rectangle.
func Union(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}

	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := rects[0].Right(), rects[0].Top()

	for _, r := range rects[1:] {
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.Right())
		maxY = math.Max(maxY, r.Top())
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// InchesToPoints converts inches to PostScript points.
func InchesToPoints(in float64) float64 { return in * PointsPerInch }

// PointsToInches converts PostScript points to inches.
func PointsToInches(pt float64) float64 { return pt / PointsPerInch }

// ApplyScale applies a drawing scale factor to a measurement.
func ApplyScale(value, scale float64) float64 { return value * scale }

// WithinTolerance reports whether |a−b| <= tol. The comparison is inclusive:
// a deviation exactly equal to the tolerance passes.
func WithinTolerance(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// LengthSumDelta returns the absolute difference between the assembly sum
// (module widths plus both fillers) and the declared total length.
func LengthSumDelta(moduleWidths []float64, leftFiller, rightFiller, totalLength float64) float64 {
	sum := leftFiller + rightFiller
	for _, w := range moduleWidths {
		sum += w
	}
	return math.Abs(sum - totalLength)
}

// RoundTo rounds a value to the given number of decimal places.
// Negative place counts are treated as zero.
func RoundTo(value float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
