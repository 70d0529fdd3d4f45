// internal/render/figure.go

// Package render draws the six-panel cohort diagnostic figure from a
// summary.Cohort: variant classifications, variant types, SNV classes,
// per-sample stacked load with the median marked, per-classification
// distributions, and top genes with sample-fraction annotations.
package render

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"mafcohort-core/summary"
)

// Figure dimensions; 2 rows x 3 columns of panels.
const (
	figWidth  = 15 * vg.Inch
	figHeight = 9 * vg.Inch
)

// SummaryFigure renders the figure and writes it as PNG to path.
func SummaryFigure(c *summary.Cohort, path string) error {
	panels, err := buildPanels(c)
	if err != nil {
		return fmt.Errorf("building figure panels: %w", err)
	}

	img := vgimg.New(figWidth, figHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 3,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 3, PadBottom: vg.Millimeter * 3,
		PadLeft: vg.Millimeter * 3, PadRight: vg.Millimeter * 3,
	}
	canvases := plot.Align(panels, tiles, dc)
	for r := range panels {
		for col := range panels[r] {
			if panels[r][col] != nil {
				panels[r][col].Draw(canvases[r][col])
			}
		}
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func buildPanels(c *summary.Cohort) ([][]*plot.Plot, error) {
	classes, err := classPanel(c)
	if err != nil {
		return nil, err
	}
	types, err := typePanel(c)
	if err != nil {
		return nil, err
	}
	snv, err := snvPanel(c)
	if err != nil {
		return nil, err
	}
	samples, err := samplesPanel(c)
	if err != nil {
		return nil, err
	}
	boxes, err := classBoxPanel(c)
	if err != nil {
		return nil, err
	}
	genes, err := genesPanel(c)
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{
		{classes, types, snv},
		{samples, boxes, genes},
	}, nil
}
