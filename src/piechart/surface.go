// Package piechart renders radial charts into an offscreen raster and keeps
// the retained geometry needed to answer hover queries. It has no GUI
// dependency: hosting widgets hand it logical dimensions plus a device
// pixel scale and display the frames it produces.
package piechart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/iafilius/PieChartWidget/src/radial"
)

const (
	// OutlineMargin is the logical padding kept free around the disc when
	// the chart radius is derived from the surface dimensions.
	OutlineMargin = 10.0

	// discPad extends the background disc slightly past the chart radius so
	// it reads as a border beneath the wedges.
	discPad = 2.0

	// labelFontSize is the logical text size of inline slice labels.
	labelFontSize = 12.0
)

var (
	discColor  = drawing.Color{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	labelColor = drawing.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// ColorRamp is the 24-bit RGB color pair slice colors interpolate across.
type ColorRamp struct {
	From uint32
	To   uint32
}

// TooltipState is the tooltip state machine: hidden, or shown with the
// hovered label at that label's placement coordinates in logical units.
type TooltipState struct {
	Visible bool
	Label   string
	X       float64
	Y       float64
}

// renderState is everything one render retains for hit-testing. It is
// replaced wholesale by the next render and never mutated in place, so a
// pointer handler always sees a complete render.
type renderState struct {
	slices     []radial.Slice
	boundaries []float64
	placements []radial.LabelPlacement
	geom       radial.Geometry
	inline     map[string]bool
}

// Surface owns the backing raster of one pie chart, its device pixel
// scaling, and the retained hit-test state. All methods are intended for a
// single (UI event) goroutine.
type Surface struct {
	width  float64
	height float64
	scale  float64

	font *truetype.Font

	state   *renderState
	frame   image.Image
	tooltip TooltipState
}

// NewSurface creates a surface with the given logical dimensions and device
// pixel scale (backing pixels per logical unit; pass 1 when unknown).
func NewSurface(width, height, scale float64) *Surface {
	s := &Surface{}
	s.Resize(width, height, scale)
	f, err := chart.GetDefaultFont()
	if err != nil {
		Warnf("default font unavailable, inline labels disabled: %v", err)
	} else {
		s.font = f
	}
	return s
}

// Resize sets the absolute logical size and device pixel scale. Repeated
// calls never compound: the scale is stored, not multiplied into prior
// state, and drawing multiplies logical coordinates by the stored value at
// draw time.
func (s *Surface) Resize(width, height, scale float64) {
	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		width = 0
	}
	if height < 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		height = 0
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	s.width, s.height, s.scale = width, height, scale
	Debugf("surface resized to %.0fx%.0f at scale %.2f", width, height, scale)
}

// deviceSize returns the backing raster dimensions in pixels.
func (s *Surface) deviceSize() (int, int) {
	return int(math.Ceil(s.width * s.scale)), int(math.Ceil(s.height * s.scale))
}

// Clear resets the backing frame to a transparent blank of the current
// device size. Retained hit-test state is untouched; the next Render
// replaces it.
func (s *Surface) Clear() {
	w, h := s.deviceSize()
	if w < 1 || h < 1 {
		s.frame = nil
		return
	}
	s.frame = image.NewRGBA(image.Rect(0, 0, w, h))
}

// textWidth measures a label in logical units, preferring the renderer's
// font metrics and falling back to the 7x13 bitmap face when no TTF font
// could be loaded.
func (s *Surface) textWidth(r chart.Renderer, label string) float64 {
	if r != nil && s.font != nil {
		return float64(r.MeasureText(label).Width()) / s.scale
	}
	d := &font.Drawer{Face: basicfont.Face7x13}
	return float64(d.MeasureString(label).Ceil())
}

// rgbColor widens a 24-bit RGB value into the renderer's color type.
func rgbColor(c uint32) drawing.Color {
	return drawing.Color{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// Render lays out values and redraws the whole frame: background disc, then
// wedges, then visible labels strictly on top so text is never occluded.
// The computed slices, boundary table, label placements, and geometry are
// published for hit-testing in a single assignment at the very end; on any
// renderer error the previous frame and retained state stay intact. An
// empty or all-zero value set draws the disc only and retains an empty
// slice table; that is not an error.
func (s *Surface) Render(values radial.ValueSet, ramp ColorRamp) error {
	defer TimeTrack(time.Now(), "render")
	devW, devH := s.deviceSize()
	geom := radial.GeometryFor(s.width, s.height, OutlineMargin)
	if devW < 1 || devH < 1 {
		// degenerate surface: keep a blank frame and empty hit-test state
		// rather than failing
		s.frame = nil
		s.state = &renderState{geom: geom}
		return nil
	}
	r, err := chart.PNG(devW, devH)
	if err != nil {
		Errorf("create renderer: %v", err)
		return fmt.Errorf("create renderer: %w", err)
	}

	slices := radial.ComputeSlices(values, ramp.From, ramp.To)
	cx := int(math.Round(geom.CenterX * s.scale))
	cy := int(math.Round(geom.CenterY * s.scale))

	// background disc, slightly larger than the chart radius, as a border
	// beneath the wedges
	r.SetFillColor(discColor)
	r.Circle((geom.Radius+discPad)*s.scale, cx, cy)
	r.Fill()

	rr := geom.Radius * s.scale
	for _, sl := range slices {
		col := rgbColor(sl.Color)
		r.SetFillColor(col)
		r.SetStrokeColor(col)
		r.SetStrokeWidth(1)
		r.MoveTo(cx, cy)
		r.ArcTo(cx, cy, rr, rr, sl.StartAngle, sl.Width())
		r.LineTo(cx, cy)
		r.Close()
		r.FillStroke()
	}

	var placements []radial.LabelPlacement
	if len(slices) > 0 {
		if s.font != nil {
			r.SetFont(s.font)
			r.SetFontSize(labelFontSize * s.scale)
			r.SetFontColor(labelColor)
		}
		placements = radial.ComputeLabelPlacements(slices, geom, func(label string) float64 {
			return s.textWidth(r, label)
		})
		if s.font != nil {
			for _, p := range placements {
				if !p.Visible {
					continue
				}
				r.Text(p.Label, int(math.Round(p.X*s.scale)), int(math.Round(p.Y*s.scale)))
			}
		}
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		Errorf("save frame: %v", err)
		return fmt.Errorf("save frame: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		Errorf("decode frame: %v", err)
		return fmt.Errorf("decode frame: %w", err)
	}

	inline := make(map[string]bool, len(placements))
	for _, p := range placements {
		if p.Visible {
			inline[p.Label] = true
		}
	}
	Debugf("rendered %d slices (%d inline labels) at %dx%d", len(slices), len(inline), devW, devH)
	s.frame = img
	s.state = &renderState{
		slices:     slices,
		boundaries: radial.Boundaries(slices),
		placements: placements,
		geom:       geom,
		inline:     inline,
	}
	return nil
}

// PointerMove feeds one pointer position (logical surface coordinates) into
// the tooltip state machine and returns the resulting state. Before any
// render it is a no-op reporting hidden. A hovered slice whose label is
// drawn inline keeps the tooltip hidden; hovering a narrow slice shows the
// tooltip at that label's placement coordinates.
func (s *Surface) PointerMove(x, y float64) TooltipState {
	st := s.state
	if st == nil {
		s.tooltip = TooltipState{}
		return s.tooltip
	}
	sl, ok := radial.SliceAt(st.boundaries, st.slices, x, y, st.geom)
	if !ok || st.inline[sl.Label] {
		s.tooltip = TooltipState{}
		return s.tooltip
	}
	for _, p := range st.placements {
		if p.Label == sl.Label {
			s.tooltip = TooltipState{Visible: true, Label: sl.Label, X: p.X, Y: p.Y}
			return s.tooltip
		}
	}
	s.tooltip = TooltipState{}
	return s.tooltip
}

// PointerOut hides the tooltip when the pointer leaves the surface.
func (s *Surface) PointerOut() { s.tooltip = TooltipState{} }

// SliceAtPoint maps a pointer position (logical surface coordinates) to the
// slice under it using the retained state of the most recent render. Unlike
// PointerMove it has no tooltip side effects and also reports slices whose
// labels are drawn inline.
func (s *Surface) SliceAtPoint(x, y float64) (radial.Slice, bool) {
	st := s.state
	if st == nil {
		return radial.Slice{}, false
	}
	return radial.SliceAt(st.boundaries, st.slices, x, y, st.geom)
}

// Tooltip returns the current tooltip state.
func (s *Surface) Tooltip() TooltipState { return s.tooltip }

// Scale returns the effective device pixel scale.
func (s *Surface) Scale() float64 { return s.scale }

// Size returns the logical dimensions.
func (s *Surface) Size() (float64, float64) { return s.width, s.height }

// Slices returns the slice sequence retained by the most recent render.
func (s *Surface) Slices() []radial.Slice {
	if s.state == nil {
		return nil
	}
	return s.state.slices
}

// LabelPlacements returns the placements retained by the most recent
// render.
func (s *Surface) LabelPlacements() []radial.LabelPlacement {
	if s.state == nil {
		return nil
	}
	return s.state.placements
}

// Geometry returns the disc geometry of the most recent render and whether
// a render has happened yet.
func (s *Surface) Geometry() (radial.Geometry, bool) {
	if s.state == nil {
		return radial.Geometry{}, false
	}
	return s.state.geom, true
}

// Frame returns the most recent rendered frame, or a neutral blank when
// nothing has been rendered yet.
func (s *Surface) Frame() image.Image {
	if s.frame != nil {
		return s.frame
	}
	w, h := s.deviceSize()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return blank(w, h)
}

// WritePNG encodes the current frame as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.Frame()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	// subtle background
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}
