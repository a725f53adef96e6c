// Package chart renders emission summaries as bar charts.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"emissioni/internal/core"
	applog "emissioni/internal/log"
)

// Renderer draws per-business emission totals as a bar chart. The output
// format follows the path extension (.png, .svg or .pdf).
type Renderer struct {
	log    *applog.Logger
	width  vg.Length
	height vg.Length
}

// NewRenderer creates a renderer with the canvas size given in inches.
func NewRenderer(logger *applog.Logger, widthInches, heightInches float64) *Renderer {
	return &Renderer{
		log:    logger.WithComponent(applog.ComponentChart),
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
	}
}

// Render writes the chart for s to path. The summary must be non-empty and
// already sorted; bars keep its order. Business names go on the category
// axis, rotated so long names stay legible, with the total printed above
// each bar.
func (r *Renderer) Render(s core.Summary, path string) error {
	if len(s) == 0 {
		return core.ErrEmptySummary
	}

	p := plot.New()
	p.Title.Text = "Total CO2e Emissions by Business"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Business"
	p.Y.Label.Text = "Emissions (kg CO2e)"

	values := make(plotter.Values, len(s))
	labels := make([]string, len(s))
	maxTotal := 0.0
	for i, bt := range s {
		v, _ := bt.Total.Float64()
		values[i] = v
		labels[i] = bt.Business
		if v > maxTotal {
			maxTotal = v
		}
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XCenter

	p.Y.Min = 0
	if maxTotal > 0 {
		p.Y.Max = maxTotal * 1.15
	}

	for i, bt := range s {
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: float64(i), Y: values[i] + maxTotal*0.02}},
			Labels: []string{core.FormatEmissions(bt.Total)},
		})
		if err != nil {
			return fmt.Errorf("build bar label: %w", err)
		}
		p.Add(label)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}
	if err := p.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	r.log.Info("Chart rendered", applog.FieldPath, path, applog.FieldBusinesses, len(s))
	return nil
}
