package radial

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestComputeSlicesWidthsSumToFullCircle(t *testing.T) {
	cases := []struct {
		name   string
		values ValueSet
	}{
		{"three labels", ValueSet{{"A", 50}, {"B", 30}, {"C", 20}}},
		{"two labels", ValueSet{{"left", 1}, {"right", 3}}},
		{"single label", ValueSet{{"all", 42}}},
		{"uneven", ValueSet{{"a", 7}, {"b", 11}, {"c", 13}, {"d", 17}, {"e", 19}}},
		{"with filtered sliver", ValueSet{{"big", 990}, {"tiny", 1}, {"rest", 9}}},
	}
	for _, c := range cases {
		slices := ComputeSlices(c.values, 0x000000, 0xFFFFFF)
		if len(slices) == 0 {
			t.Fatalf("%s: expected slices, got none", c.name)
		}
		sum := 0.0
		for _, s := range slices {
			if s.Width() < 0 {
				t.Fatalf("%s: negative width slice %+v", c.name, s)
			}
			sum += s.Width()
		}
		if math.Abs(sum-2*math.Pi) > eps {
			t.Fatalf("%s: widths sum %v want 2π", c.name, sum)
		}
		// contiguous partition starting at 0
		if math.Abs(slices[0].StartAngle) > eps {
			t.Fatalf("%s: first slice starts at %v want 0", c.name, slices[0].StartAngle)
		}
		for i := 1; i < len(slices); i++ {
			if math.Abs(slices[i].StartAngle-slices[i-1].EndAngle) > eps {
				t.Fatalf("%s: gap between slice %d and %d (%v vs %v)", c.name, i-1, i, slices[i-1].EndAngle, slices[i].StartAngle)
			}
		}
	}
}

func TestComputeSlicesNegligibleFilter(t *testing.T) {
	values := ValueSet{{"major", 500}, {"minor", 499}, {"sliver", 1}}
	total := 1000.0
	slices := ComputeSlices(values, 0x000000, 0xFFFFFF)
	if len(slices) != 2 {
		t.Fatalf("expected sliver filtered, got %d slices", len(slices))
	}
	for _, s := range slices {
		if s.Label == "sliver" {
			t.Fatalf("sliver (0.1%% share) survived the filter")
		}
	}
	// every survivor's share of the original total is >= 1%
	for _, d := range values {
		share := d.Value / total
		survived := false
		for _, s := range slices {
			if s.Label == d.Label {
				survived = true
			}
		}
		if survived && share < MinShare {
			t.Fatalf("label %s survived with original share %v < %v", d.Label, share, MinShare)
		}
		if !survived && share >= MinShare {
			t.Fatalf("label %s dropped with original share %v >= %v", d.Label, share, MinShare)
		}
	}
	// widths are proportional to the recomputed survivor total (999), not 1000
	wantMajor := 2 * math.Pi * 500 / 999
	if got := slices[0].Width(); math.Abs(got-wantMajor) > eps {
		t.Fatalf("major width %v want %v (survivor total must be recomputed)", got, wantMajor)
	}
}

func TestComputeSlicesExactOnePercentSurvives(t *testing.T) {
	// 10/1000 is exactly 1% and must survive: the filter drops only < 1%.
	values := ValueSet{{"big", 990}, {"edge", 10}}
	slices := ComputeSlices(values, 0x000000, 0xFFFFFF)
	if len(slices) != 2 {
		t.Fatalf("expected the exact-1%% label to survive, got %d slices", len(slices))
	}
}

func TestComputeSlicesZeroTotal(t *testing.T) {
	cases := []struct {
		name   string
		values ValueSet
	}{
		{"empty", nil},
		{"all zero", ValueSet{{"a", 0}, {"b", 0}}},
		{"all invalid", ValueSet{{"neg", -5}, {"nan", math.NaN()}, {"inf", math.Inf(1)}}},
	}
	for _, c := range cases {
		if slices := ComputeSlices(c.values, 0x000000, 0xFFFFFF); slices != nil {
			t.Fatalf("%s: expected nil slices got %v", c.name, slices)
		}
	}
}

func TestComputeSlicesDropsInvalidValues(t *testing.T) {
	values := ValueSet{{"A", 50}, {"neg", -10}, {"nan", math.NaN()}, {"B", 50}}
	slices := ComputeSlices(values, 0x000000, 0xFFFFFF)
	if len(slices) != 2 {
		t.Fatalf("expected invalid data dropped, got %d slices", len(slices))
	}
	if slices[0].Label != "A" || slices[1].Label != "B" {
		t.Fatalf("unexpected survivors: %v", slices)
	}
	for _, s := range slices {
		if math.Abs(s.Width()-math.Pi) > eps {
			t.Fatalf("slice %s width %v want π", s.Label, s.Width())
		}
	}
}

func TestComputeSlicesColorRampOverSurvivors(t *testing.T) {
	from, to := uint32(0x000000), uint32(0xFFFFFF)
	// the dropped sliver must not shift the ramp: colors are indexed over
	// the surviving sequence
	values := ValueSet{{"first", 50}, {"sliver", 0.1}, {"second", 50}}
	slices := ComputeSlices(values, from, to)
	if len(slices) != 2 {
		t.Fatalf("expected 2 survivors got %d", len(slices))
	}
	if got, want := slices[0].Color, Lerp(from, to, 0.0/2.0); got != want {
		t.Fatalf("first color 0x%06X want 0x%06X", got, want)
	}
	if got, want := slices[1].Color, Lerp(from, to, 1.0/2.0); got != want {
		t.Fatalf("second color 0x%06X want 0x%06X", got, want)
	}
}

func TestBoundariesMonotonic(t *testing.T) {
	values := ValueSet{{"a", 10}, {"b", 20}, {"c", 30}, {"d", 40}}
	slices := ComputeSlices(values, 0x102030, 0x405060)
	bounds := Boundaries(slices)
	if len(bounds) != len(slices) {
		t.Fatalf("boundary count %d want %d", len(bounds), len(slices))
	}
	prev := 0.0
	for i, b := range bounds {
		if b < prev {
			t.Fatalf("boundary %d decreases: %v after %v", i, b, prev)
		}
		prev = b
	}
	if math.Abs(bounds[len(bounds)-1]-2*math.Pi) > eps {
		t.Fatalf("last boundary %v want 2π", bounds[len(bounds)-1])
	}
	if Boundaries(nil) != nil {
		t.Fatalf("Boundaries(nil) should be nil")
	}
}

func TestSliceAtOutsideRadius(t *testing.T) {
	geom := Geometry{CenterX: 100, CenterY: 100, Radius: 50}
	slices := ComputeSlices(ValueSet{{"A", 50}, {"B", 50}}, 0, 0xFFFFFF)
	bounds := Boundaries(slices)
	for deg := 0; deg < 360; deg += 15 {
		a := float64(deg) * math.Pi / 180
		for _, dist := range []float64{geom.Radius, geom.Radius * 1.5, geom.Radius * 10} {
			x := geom.CenterX + math.Cos(a)*dist
			y := geom.CenterY + math.Sin(a)*dist
			if _, ok := SliceAt(bounds, slices, x, y, geom); ok {
				t.Fatalf("point at angle %d° distance %v reported a slice", deg, dist)
			}
		}
	}
}

func TestSliceAtBisectingAngles(t *testing.T) {
	// {A:50, B:30, C:20}: boundaries follow directly from the proportions,
	// A covers [0, π), B [π, 1.6π), C [1.6π, 2π).
	values := ValueSet{{"A", 50}, {"B", 30}, {"C", 20}}
	slices := ComputeSlices(values, 0x000000, 0xFFFFFF)
	bounds := Boundaries(slices)
	if len(slices) != 3 {
		t.Fatalf("expected 3 slices got %d", len(slices))
	}
	wantBounds := []float64{math.Pi, 1.6 * math.Pi, 2 * math.Pi}
	for i, w := range wantBounds {
		if math.Abs(bounds[i]-w) > eps {
			t.Fatalf("boundary %d = %v want %v", i, bounds[i], w)
		}
	}
	geom := Geometry{CenterX: 200, CenterY: 150, Radius: 80}
	for i, s := range slices {
		mid := (s.StartAngle + s.EndAngle) / 2
		x := geom.CenterX + math.Cos(mid)*geom.Radius/2
		y := geom.CenterY + math.Sin(mid)*geom.Radius/2
		got, ok := SliceAt(bounds, slices, x, y, geom)
		if !ok {
			t.Fatalf("bisecting point of slice %d (%s) found nothing", i, s.Label)
		}
		if got.Label != s.Label {
			t.Fatalf("bisecting point of %s resolved to %s", s.Label, got.Label)
		}
	}
}

func TestSliceAtEdges(t *testing.T) {
	geom := Geometry{CenterX: 0, CenterY: 0, Radius: 10}
	slices := ComputeSlices(ValueSet{{"A", 50}, {"B", 50}}, 0, 0xFFFFFF)
	bounds := Boundaries(slices)

	// angle 0 (positive x axis) belongs to the first slice
	if got, ok := SliceAt(bounds, slices, 5, 0, geom); !ok || got.Label != "A" {
		t.Fatalf("angle 0 => %v ok=%v want slice A", got.Label, ok)
	}
	// dead center is distance 0, inside the first slice's angle 0
	if _, ok := SliceAt(bounds, slices, 0, 0, geom); !ok {
		t.Fatalf("center point should hit a slice")
	}
	// an angle beyond the last boundary reports none rather than faulting
	short := []float64{1.0, 2.0}
	two := slices[:2]
	x := 5 * math.Cos(3.0)
	y := 5 * math.Sin(3.0)
	if _, ok := SliceAt(short, two, x, y, geom); ok {
		t.Fatalf("angle past the last boundary should report none")
	}
	// mismatched or empty tables report none
	if _, ok := SliceAt(nil, slices, 1, 1, geom); ok {
		t.Fatalf("nil boundary table should report none")
	}
	if _, ok := SliceAt(bounds[:1], slices, 1, 1, geom); ok {
		t.Fatalf("mismatched table lengths should report none")
	}
}

func TestComputeLabelPlacementsVisibility(t *testing.T) {
	// A and B are ~3.6° each, well under the 15° inline threshold; C at
	// ~352.8° stays visible.
	values := ValueSet{{"A", 1}, {"B", 1}, {"C", 98}}
	slices := ComputeSlices(values, 0x000000, 0xFFFFFF)
	if len(slices) != 3 {
		t.Fatalf("expected 3 survivors got %d", len(slices))
	}
	geom := Geometry{CenterX: 100, CenterY: 100, Radius: 60}
	widths := func(s string) float64 { return float64(10 * len(s)) }
	placements := ComputeLabelPlacements(slices, geom, widths)
	if len(placements) != 3 {
		t.Fatalf("expected 3 placements got %d", len(placements))
	}
	byLabel := map[string]LabelPlacement{}
	for _, p := range placements {
		byLabel[p.Label] = p
	}
	if byLabel["A"].Visible || byLabel["B"].Visible {
		t.Fatalf("narrow slices A/B must not be inline visible: %+v", placements)
	}
	if !byLabel["C"].Visible {
		t.Fatalf("wide slice C must be inline visible: %+v", byLabel["C"])
	}
	// anchor sits at half-radius on the bisecting angle, shifted left by
	// half the text width
	s := slices[2]
	mid := (s.StartAngle + s.EndAngle) / 2
	wantX := geom.CenterX + math.Cos(mid)*geom.Radius/2 - widths("C")/2
	wantY := geom.CenterY + math.Sin(mid)*geom.Radius/2
	if math.Abs(byLabel["C"].X-wantX) > eps || math.Abs(byLabel["C"].Y-wantY) > eps {
		t.Fatalf("C anchored at (%v,%v) want (%v,%v)", byLabel["C"].X, byLabel["C"].Y, wantX, wantY)
	}
}

func TestComputeLabelPlacementsNilTextWidth(t *testing.T) {
	slices := ComputeSlices(ValueSet{{"solo", 5}}, 0, 0)
	geom := Geometry{CenterX: 10, CenterY: 10, Radius: 8}
	placements := ComputeLabelPlacements(slices, geom, nil)
	if len(placements) != 1 {
		t.Fatalf("expected 1 placement got %d", len(placements))
	}
	mid := (slices[0].StartAngle + slices[0].EndAngle) / 2
	wantX := geom.CenterX + math.Cos(mid)*geom.Radius/2
	if math.Abs(placements[0].X-wantX) > eps {
		t.Fatalf("nil textWidth should skip centering: x=%v want %v", placements[0].X, wantX)
	}
}

func TestGeometryFor(t *testing.T) {
	cases := []struct {
		w, h, margin float64
		wantR        float64
	}{
		{200, 100, 10, 40},  // min dimension governs
		{100, 300, 10, 40},  // portrait
		{50, 50, 10, 15},    // square
		{12, 400, 10, 0},    // margin swallows the disc -> clamp to 0
		{300, 300, 0, 150},  // no margin
	}
	for _, c := range cases {
		g := GeometryFor(c.w, c.h, c.margin)
		if math.Abs(g.Radius-c.wantR) > eps {
			t.Fatalf("GeometryFor(%v,%v,%v) radius %v want %v", c.w, c.h, c.margin, g.Radius, c.wantR)
		}
		if g.CenterX != c.w/2 || g.CenterY != c.h/2 {
			t.Fatalf("GeometryFor(%v,%v,%v) center (%v,%v) want surface midpoint", c.w, c.h, c.margin, g.CenterX, g.CenterY)
		}
	}
}
