// Package radial computes the pure geometry of a radial (pie) chart:
// proportional angular slices from an ordered labeled value set, label
// anchor placement, and point-to-slice inverse lookup for hit-testing.
// It does no drawing and has no GUI dependency.
package radial

import "math"

const (
	// MinShare is the share of the total below which a label is negligible
	// and dropped before layout. Filtering is two-pass: the total is
	// recomputed over the survivors, so negligible labels consume no
	// angular width, label space, or hit-test area.
	MinShare = 0.01

	// MinLabelAngle is the angular width (15 degrees) a slice needs before
	// its label is drawn inline. Narrower slices reveal their label through
	// the hover tooltip instead.
	MinLabelAngle = math.Pi / 12
)

// Datum is one labeled magnitude of a ValueSet.
type Datum struct {
	Label string
	Value float64
}

// ValueSet is an ordered label-to-magnitude mapping; order of appearance
// defines the angular order of the resulting slices.
type ValueSet []Datum

// Slice is one angular wedge covering [StartAngle, EndAngle) in radians,
// with the 24-bit RGB color assigned from the ramp.
type Slice struct {
	Label      string
	StartAngle float64
	EndAngle   float64
	Color      uint32
}

// Width returns the slice's angular width in radians.
func (s Slice) Width() float64 { return s.EndAngle - s.StartAngle }

// LabelPlacement is the anchor of one slice label. X is already shifted
// left by half the rendered text width so the text centers on the slice's
// bisecting angle. Visible reports whether the slice is wide enough for an
// inline label.
type LabelPlacement struct {
	Label   string
	X       float64
	Y       float64
	Visible bool
}

// Geometry locates the chart disc in logical (unscaled) coordinates.
type Geometry struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// GeometryFor derives the disc for a surface of the given logical
// dimensions, keeping margin free around the disc. The radius clamps at
// zero for degenerate surfaces.
func GeometryFor(width, height, margin float64) Geometry {
	r := math.Min(width, height)/2 - margin
	if r < 0 {
		r = 0
	}
	return Geometry{CenterX: width / 2, CenterY: height / 2, Radius: r}
}

// usable reports whether a magnitude may take part in layout. Negative and
// non-finite values are dropped rather than propagated into angles.
func usable(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ComputeSlices converts values into contiguous slices partitioning
// [0, 2π). Labels below MinShare of the total are dropped first and the
// total recomputed over the survivors before widths are assigned. Slice
// colors ramp linearly from colorFrom to colorTo across the survivor
// sequence. An empty, all-zero or fully filtered set yields nil.
func ComputeSlices(values ValueSet, colorFrom, colorTo uint32) []Slice {
	total := 0.0
	for _, d := range values {
		if usable(d.Value) {
			total += d.Value
		}
	}
	if total <= 0 {
		return nil
	}
	survivors := make(ValueSet, 0, len(values))
	subtotal := 0.0
	for _, d := range values {
		if !usable(d.Value) || d.Value/total < MinShare {
			continue
		}
		survivors = append(survivors, d)
		subtotal += d.Value
	}
	if subtotal <= 0 {
		return nil
	}
	out := make([]Slice, 0, len(survivors))
	angle := 0.0
	for i, d := range survivors {
		width := 2 * math.Pi * d.Value / subtotal
		out = append(out, Slice{
			Label:      d.Label,
			StartAngle: angle,
			EndAngle:   angle + width,
			Color:      Lerp(colorFrom, colorTo, float64(i)/float64(len(survivors))),
		})
		angle += width
	}
	return out
}

// Boundaries returns the cumulative end-angle table used for inverse angle
// lookup. It is only valid for the slice sequence it was computed from and
// goes stale as soon as that sequence is recomputed.
func Boundaries(slices []Slice) []float64 {
	if len(slices) == 0 {
		return nil
	}
	out := make([]float64, len(slices))
	for i, s := range slices {
		out[i] = s.EndAngle
	}
	return out
}

// ComputeLabelPlacements anchors every slice label at half-radius along the
// slice's bisecting angle, x-centered using textWidth (which may be nil
// when no centering is wanted). Only slices wider than MinLabelAngle are
// marked Visible.
func ComputeLabelPlacements(slices []Slice, geom Geometry, textWidth func(string) float64) []LabelPlacement {
	if len(slices) == 0 {
		return nil
	}
	out := make([]LabelPlacement, 0, len(slices))
	for _, s := range slices {
		mid := (s.StartAngle + s.EndAngle) / 2
		x := geom.CenterX + math.Cos(mid)*geom.Radius/2
		y := geom.CenterY + math.Sin(mid)*geom.Radius/2
		if textWidth != nil {
			x -= textWidth(s.Label) / 2
		}
		out = append(out, LabelPlacement{
			Label:   s.Label,
			X:       x,
			Y:       y,
			Visible: s.Width() > MinLabelAngle,
		})
	}
	return out
}

// SliceAt maps a point to its containing slice. It reports none when the
// point lies at or beyond the disc radius, when no slices exist, or when
// the normalized angle lands past the last boundary (the floating-point
// edge at exactly 2π). None is a normal outcome, not an error.
func SliceAt(boundaries []float64, slices []Slice, x, y float64, geom Geometry) (Slice, bool) {
	if len(boundaries) == 0 || len(boundaries) != len(slices) {
		return Slice{}, false
	}
	dx := x - geom.CenterX
	dy := y - geom.CenterY
	if math.Hypot(dx, dy) >= geom.Radius {
		return Slice{}, false
	}
	// Atan2 yields (-π, π]; shift into [0, 2π) so the angle lines up with
	// the cumulative boundaries.
	angle := math.Mod(math.Atan2(dy, dx)+2*math.Pi, 2*math.Pi)
	for i, b := range boundaries {
		if b >= angle {
			return slices[i], true
		}
	}
	return Slice{}, false
}
