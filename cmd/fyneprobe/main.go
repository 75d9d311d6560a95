package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/iafilius/PieChartWidget/src/piechart"
	"github.com/iafilius/PieChartWidget/src/piewidget"
	"github.com/iafilius/PieChartWidget/src/radial"
)

func main() {
	fmt.Println("[fyneprobe] starting minimal pie widget app")
	a := app.New()
	w := a.NewWindow("Pie Probe")
	pie := piewidget.New(radial.ValueSet{
		{Label: "alpha", Value: 3},
		{Label: "beta", Value: 2},
		{Label: "gamma", Value: 1},
	}, piechart.ColorRamp{From: 0xB7FF7A, To: 0x0E681F})
	w.SetContent(pie)
	w.Resize(fyne.NewSize(360, 360))
	go func() {
		time.Sleep(5 * time.Second)
		fmt.Println("[fyneprobe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	fmt.Println("[fyneprobe] exited cleanly")
}
