package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iafilius/PieChartWidget/cmd/piedemo/uihelpers"
	"github.com/iafilius/PieChartWidget/src/piechart"
)

// RunScreenshotsMode renders every built-in dataset and writes the frames as
// PNGs under outDir. It runs headlessly without creating a UI window.
func RunScreenshotsMode(outDir string, width, height int, scale float64) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	w, h := uihelpers.ComputeChartSize(width, height)
	s := piechart.NewSurface(float64(w), float64(h), uihelpers.ClampRenderScale(scale))
	for _, ds := range demoDatasets() {
		if err := s.Render(ds.values, ds.ramp); err != nil {
			return fmt.Errorf("render %s: %w", ds.name, err)
		}
		var buf bytes.Buffer
		if err := s.WritePNG(&buf); err != nil {
			return fmt.Errorf("png encode %s: %w", ds.name, err)
		}
		outPath := filepath.Join(outDir, uihelpers.SafeFileName(ds.name)+".png")
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("[piedemo] wrote %s\n", outPath)
	}
	return nil
}
