package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/PieChartWidget/src/piechart"
	"github.com/iafilius/PieChartWidget/src/piewidget"
	"github.com/iafilius/PieChartWidget/src/radial"
)

type demoState struct {
	app    fyne.App
	window fyne.Window

	dataset   string
	showHints bool

	pie *piewidget.PieChart
}

// resolveDataset picks the startup dataset: an explicit flag value wins, then
// the saved preference, then the first built-in. Unknown names fall back to
// the first dataset.
func resolveDataset(sets []demoDataset, saved, flagVal string) demoDataset {
	want := saved
	if flagVal != "" {
		want = flagVal
	}
	for _, ds := range sets {
		if ds.name == want {
			return ds
		}
	}
	if want != "" {
		fmt.Printf("[piedemo] unknown dataset %q, using %q\n", want, sets[0].name)
	}
	return sets[0]
}

func savePrefs(state *demoState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("dataset", state.dataset)
	prefs.SetBool("showHints", state.showHints)
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var (
		datasetFlag  string
		listFlag     bool
		screenshots  bool
		outDir       string
		width        int
		height       int
		scale        float64
		logLevelFlag string
	)
	flag.StringVar(&datasetFlag, "dataset", "", "Dataset to show on startup (overrides the saved choice; see -list)")
	flag.BoolVar(&listFlag, "list", false, "Print the built-in dataset names and exit")
	flag.BoolVar(&screenshots, "screenshots", false, "Render every dataset to PNG files and exit (headless)")
	flag.StringVar(&outDir, "out", "screenshots", "Output directory for -screenshots")
	flag.IntVar(&width, "width", 0, "Chart width in pixels for -screenshots (0 uses the default)")
	flag.IntVar(&height, "height", 0, "Chart height in pixels for -screenshots (0 uses the default)")
	flag.Float64Var(&scale, "scale", 1, "Pixel scale for -screenshots output")
	flag.StringVar(&logLevelFlag, "loglevel", "warn", "Chart log level: debug, info, warn, error")
	flag.Parse()

	piechart.SetLogLevel(logLevelFlag)

	if listFlag {
		for _, ds := range demoDatasets() {
			fmt.Println(ds.name)
		}
		return
	}
	if screenshots {
		if err := RunScreenshotsMode(outDir, width, height, scale); err != nil {
			fmt.Fprintf(os.Stderr, "screenshots: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.iafilius.piechartdemo")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Pie Chart Demo")
	w.Resize(fyne.NewSize(760, 700))

	state := &demoState{app: a, window: w}
	// Load preferences early so the controls reflect them on creation.
	state.dataset = a.Preferences().StringWithFallback("dataset", "")
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	datasets := demoDatasets()
	byName := make(map[string]demoDataset, len(datasets))
	names := make([]string, len(datasets))
	for i, ds := range datasets {
		names[i] = ds.name
		byName[ds.name] = ds
	}

	current := resolveDataset(datasets, state.dataset, datasetFlag)
	state.dataset = current.name
	state.pie = piewidget.New(current.values, current.ramp)

	const idleHint = "Hover a slice for its share; narrow slices reveal their label in a tooltip."
	hint := widget.NewLabel(idleHint)
	state.pie.OnHover = func(sl radial.Slice, ok bool) {
		if !ok {
			hint.SetText(idleHint)
			return
		}
		hint.SetText(fmt.Sprintf("%s: %.1f%% of the chart", sl.Label, sl.Width()/(2*math.Pi)*100))
	}
	if !state.showHints {
		hint.Hide()
	}
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		if b {
			hint.Show()
		} else {
			hint.Hide()
		}
	}

	dsSelect := widget.NewSelect(names, nil)
	dsSelect.Selected = state.dataset
	dsSelect.OnChanged = func(name string) {
		ds, ok := byName[name]
		if !ok {
			return
		}
		state.dataset = name
		fmt.Printf("[piedemo] dataset changed to: %q (%d entries)\n", name, len(ds.values))
		savePrefs(state)
		state.pie.SetData(ds.values, ds.ramp)
	}

	top := container.NewHBox(widget.NewLabel("Dataset:"), dsSelect, hintsChk)
	w.SetContent(container.NewBorder(top, hint, nil, nil, state.pie))
	w.ShowAndRun()
}
