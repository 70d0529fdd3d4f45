// internal/render/panels.go
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"mafcohort-core/summary"
)

// maxSamplePanels caps the per-sample stacked panel; beyond this the bars
// degenerate to hairlines anyway.
const maxSamplePanels = 50

func newPanel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(11)
	return p
}

// horizontalBars adds one horizontal bar series with the largest value at
// the top of the panel.
func horizontalBars(p *plot.Plot, counts []summary.LabelCount) error {
	n := len(counts)
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, lc := range counts {
		// Reverse so descending input reads top-down.
		values[n-1-i] = float64(lc.Count)
		names[n-1-i] = lc.Label
	}
	if n == 0 {
		return nil
	}
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)
	return nil
}

func classPanel(c *summary.Cohort) (*plot.Plot, error) {
	p := newPanel("Variant Classification")
	return p, horizontalBars(p, c.ClassTotals)
}

func typePanel(c *summary.Cohort) (*plot.Plot, error) {
	p := newPanel("Variant Type")
	return p, horizontalBars(p, c.TypeTotals)
}

func snvPanel(c *summary.Cohort) (*plot.Plot, error) {
	p := newPanel("SNV Class")
	if len(c.SNVClassTotals) == 0 {
		return p, nil
	}
	values := make(plotter.Values, len(c.SNVClassTotals))
	names := make([]string, len(c.SNVClassTotals))
	for i, lc := range c.SNVClassTotals {
		values[i] = float64(lc.Count)
		names[i] = lc.Label
	}
	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, err
	}
	bars.Color = plotutil.Color(1)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// samplesPanel stacks per-classification counts per sample, most-mutated
// sample first, with the cohort median drawn across.
func samplesPanel(c *summary.Cohort) (*plot.Plot, error) {
	p := newPanel(fmt.Sprintf("Variants per Sample (median %.0f)", c.MedianPerSample))
	samples := c.Samples
	if len(samples) > maxSamplePanels {
		samples = samples[:maxSamplePanels]
	}
	if len(samples) == 0 {
		return p, nil
	}

	barWidth := vg.Points(200 / float64(len(samples)))
	var prev *plotter.BarChart
	for ci, class := range c.ClassTotals {
		values := make(plotter.Values, len(samples))
		for si, s := range samples {
			values[si] = float64(s.ByClass[class.Label])
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, err
		}
		bars.Color = plotutil.Color(ci)
		bars.LineStyle.Width = 0
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		prev = bars
	}

	median, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: c.MedianPerSample},
		{X: float64(len(samples) - 1), Y: c.MedianPerSample},
	})
	if err != nil {
		return nil, err
	}
	median.LineStyle.Width = vg.Points(1)
	median.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(median)

	p.X.Label.Text = "samples"
	p.X.Tick.Marker = plot.ConstantTicks(nil) // barcodes are unreadable at this density
	return p, nil
}

// classBoxPanel draws the per-sample count distribution of each
// classification as box plots.
func classBoxPanel(c *summary.Cohort) (*plot.Plot, error) {
	p := newPanel("Classification per Sample")
	names := make([]string, 0, len(c.ClassTotals))
	loc := 0.0
	for _, class := range c.ClassTotals {
		values := make(plotter.Values, 0, len(c.Samples))
		for _, s := range c.Samples {
			values = append(values, float64(s.ByClass[class.Label]))
		}
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(14), loc, values)
		if err != nil {
			return nil, err
		}
		p.Add(box)
		names = append(names, class.Label)
		loc++
	}
	if len(names) > 0 {
		p.NominalX(names...)
	}
	return p, nil
}

// genesPanel draws the top genes as horizontal bars annotated with the
// fraction of samples affected.
func genesPanel(c *summary.Cohort) (*plot.Plot, error) {
	p := newPanel("Top Mutated Genes")
	n := len(c.Genes)
	if n == 0 {
		return p, nil
	}

	values := make(plotter.Values, n)
	names := make([]string, n)
	labelXYs := make(plotter.XYs, n)
	labels := make([]string, n)
	for i, g := range c.Genes {
		// Reverse so the most prevalent gene sits on top.
		row := n - 1 - i
		values[row] = float64(g.MutatedSamples)
		names[row] = g.Gene
		labelXYs[row] = plotter.XY{X: float64(g.MutatedSamples), Y: float64(row)}
		labels[row] = fmt.Sprintf(" %.0f%%", g.FractionAffected*100)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(2)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	annot, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return nil, err
	}
	p.Add(annot)
	return p, nil
}
