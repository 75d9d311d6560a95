// Package piewidget hosts a piechart.Surface inside a Fyne widget. The
// widget re-renders when its size or canvas scale changes and reveals the
// labels of narrow slices through a hover tooltip drawn with canvas
// primitives.
package piewidget

import (
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/iafilius/PieChartWidget/src/piechart"
	"github.com/iafilius/PieChartWidget/src/radial"
)

// tooltipPad is the inset between the tooltip background and its text.
const tooltipPad = float32(6)

// PieChart displays one radial chart. Mouse movement is forwarded to the
// backing surface, which decides whether a tooltip is shown; everything
// else (layout, filtering, colors) happens in the surface and the radial
// package.
type PieChart struct {
	widget.BaseWidget

	// OnHover, when set, receives the slice under the pointer on every
	// pointer movement, and ok=false when the pointer is over no slice or
	// has left the widget.
	OnHover func(sl radial.Slice, ok bool)

	surface *piechart.Surface
	values  radial.ValueSet
	ramp    piechart.ColorRamp

	dirty     bool
	lastSize  fyne.Size
	lastScale float32
}

// New creates a pie chart widget for the given values and color ramp.
func New(values radial.ValueSet, ramp piechart.ColorRamp) *PieChart {
	p := &PieChart{
		surface: piechart.NewSurface(0, 0, 1),
		values:  values,
		ramp:    ramp,
		dirty:   true,
	}
	p.ExtendBaseWidget(p)
	return p
}

// SetData replaces the dataset and color ramp and re-renders.
func (p *PieChart) SetData(values radial.ValueSet, ramp piechart.ColorRamp) {
	p.values = values
	p.ramp = ramp
	p.dirty = true
	p.Refresh()
}

// Surface exposes the backing surface for hit-test inspection and PNG
// export.
func (p *PieChart) Surface() *piechart.Surface { return p.surface }

// canvasScale reads the device pixel scale of the canvas showing this
// widget. It defaults to 1 when the widget is not attached to a canvas yet
// (headless use, tests).
func (p *PieChart) canvasScale() float32 {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return 1
	}
	c := app.Driver().CanvasForObject(p)
	if c == nil || c.Scale() <= 0 {
		return 1
	}
	return c.Scale()
}

func (p *PieChart) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(p.surface.Frame())
	img.FillMode = canvas.ImageFillStretch
	tipBG := canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 170})
	tip := canvas.NewText("", color.RGBA{R: 255, G: 255, B: 255, A: 255})
	tip.TextSize = 12
	objs := []fyne.CanvasObject{img, tipBG, tip}
	return &pieRenderer{p: p, img: img, tipBG: tipBG, tip: tip, objs: objs}
}

// MouseIn implements desktop.Hoverable.
func (p *PieChart) MouseIn(ev *desktop.MouseEvent) {
	p.pointerMoved(ev)
}

// MouseMoved forwards the pointer position to the surface's tooltip state
// machine. Events arriving before the first render are no-ops there.
func (p *PieChart) MouseMoved(ev *desktop.MouseEvent) {
	p.pointerMoved(ev)
}

// MouseOut hides the tooltip.
func (p *PieChart) MouseOut() {
	p.surface.PointerOut()
	if p.OnHover != nil {
		p.OnHover(radial.Slice{}, false)
	}
	p.Refresh()
}

func (p *PieChart) pointerMoved(ev *desktop.MouseEvent) {
	x, y := float64(ev.Position.X), float64(ev.Position.Y)
	p.surface.PointerMove(x, y)
	if p.OnHover != nil {
		sl, ok := p.surface.SliceAtPoint(x, y)
		p.OnHover(sl, ok)
	}
	p.Refresh()
}

// Assert that PieChart implements desktop.Hoverable
var _ desktop.Hoverable = (*PieChart)(nil)

// textSize measures a canvas text through the driver when one is running,
// falling back to the 7x13 bitmap face so headless use never needs a
// driver.
func textSize(t *canvas.Text) fyne.Size {
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		return t.MinSize()
	}
	d := &font.Drawer{Face: basicfont.Face7x13}
	return fyne.NewSize(float32(d.MeasureString(t.Text).Ceil()), 13)
}

type pieRenderer struct {
	p     *PieChart
	img   *canvas.Image
	tipBG *canvas.Rectangle
	tip   *canvas.Text
	objs  []fyne.CanvasObject
}

func (r *pieRenderer) Destroy() {}

func (r *pieRenderer) Layout(size fyne.Size) {
	scale := r.p.canvasScale()
	if r.p.dirty || size != r.p.lastSize || scale != r.p.lastScale {
		r.p.dirty = false
		r.p.lastSize = size
		r.p.lastScale = scale
		r.p.surface.Resize(float64(size.Width), float64(size.Height), float64(scale))
		if err := r.p.surface.Render(r.p.values, r.p.ramp); err != nil {
			piechart.Errorf("widget render: %v", err)
		}
		r.img.Image = r.p.surface.Frame()
	}
	r.img.Resize(size)
	r.img.Move(fyne.NewPos(0, 0))

	st := r.p.surface.Tooltip()
	if !st.Visible {
		// park the tooltip out of view
		r.tipBG.Resize(fyne.NewSize(0, 0))
		r.tipBG.Move(fyne.NewPos(-1000, -1000))
		r.tip.Move(fyne.NewPos(-1000, -1000))
		return
	}
	r.tip.Text = st.Label
	ts := textSize(r.tip)
	bgW := ts.Width + 2*tooltipPad
	bgH := ts.Height + 2*tooltipPad
	// anchor the text on the label placement, then keep the bubble inside
	// the widget
	tx := float32(st.X) - tooltipPad
	ty := float32(st.Y) - tooltipPad
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	if ty+bgH > size.Height {
		ty = size.Height - bgH
	}
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}
	r.tipBG.Resize(fyne.NewSize(bgW, bgH))
	r.tipBG.Move(fyne.NewPos(tx, ty))
	r.tip.Move(fyne.NewPos(tx+tooltipPad, ty+tooltipPad))
}

func (r *pieRenderer) MinSize() fyne.Size           { return fyne.NewSize(80, 80) }
func (r *pieRenderer) Objects() []fyne.CanvasObject { return r.objs }

func (r *pieRenderer) Refresh() {
	r.Layout(r.p.Size())
	r.img.Refresh()
	r.tipBG.Refresh()
	r.tip.Refresh()
}
