package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/iafilius/PieChartWidget/src/piechart"
	"github.com/iafilius/PieChartWidget/src/radial"
)

// parseArgs turns positional "label=value" pairs into an ordered value set.
func parseArgs(args []string) (radial.ValueSet, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no label=value arguments")
	}
	out := make(radial.ValueSet, 0, len(args))
	for _, arg := range args {
		label, raw, ok := strings.Cut(arg, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("bad argument %q, want label=value", arg)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value in %q: %v", arg, err)
		}
		out = append(out, radial.Datum{Label: label, Value: v})
	}
	return out, nil
}

// parseColor reads a 24-bit RGB hex string such as "ff8800", "#ff8800" or "0xff8800".
func parseColor(s string) (uint32, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "#")
	t = strings.TrimPrefix(t, "0x")
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %v", s, err)
	}
	if v > 0xFFFFFF {
		return 0, fmt.Errorf("color %q exceeds 24-bit RGB", s)
	}
	return uint32(v), nil
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func main() {
	var fromHex, toHex string
	var width, height float64
	flag.StringVar(&fromHex, "from", "B7FF7A", "Ramp start color (24-bit hex RGB)")
	flag.StringVar(&toHex, "to", "0E681F", "Ramp end color (24-bit hex RGB)")
	flag.Float64Var(&width, "width", 640, "Container width used for label anchors")
	flag.Float64Var(&height, "height", 640, "Container height used for label anchors")
	flag.Parse()

	values, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\nusage: pielayout [flags] label=value [label=value ...]\n", err)
		os.Exit(1)
	}
	from, err := parseColor(fromHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	to, err := parseColor(toHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slices := radial.ComputeSlices(values, from, to)
	if len(slices) == 0 {
		fmt.Println("no drawable slices (zero, negative or negligible values only)")
		return
	}
	geom := radial.GeometryFor(width, height, piechart.OutlineMargin)
	placements := radial.ComputeLabelPlacements(slices, geom, nil)
	boundaries := radial.Boundaries(slices)

	fmt.Printf("Slices: %d of %d entries survive; center (%.1f, %.1f) radius %.1f\n",
		len(slices), len(values), geom.CenterX, geom.CenterY, geom.Radius)
	fmt.Printf("%-20s %8s %9s %9s %9s %7s %16s\n", "LABEL", "SHARE", "START", "END", "WIDTH", "INLINE", "ANCHOR")
	for i, sl := range slices {
		share := sl.Width() / (2 * math.Pi)
		inline := "no"
		if placements[i].Visible {
			inline = "yes"
		}
		fmt.Printf("%-20s %7.1f%% %8.1f° %8.1f° %8.1f° %7s (%6.1f, %6.1f)\n",
			sl.Label, share*100, degrees(sl.StartAngle), degrees(sl.EndAngle), degrees(sl.Width()),
			inline, placements[i].X, placements[i].Y)
	}
	fmt.Printf("Boundaries (rad):")
	for _, b := range boundaries {
		fmt.Printf(" %.4f", b)
	}
	fmt.Println()
}
