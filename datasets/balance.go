package datasets

import (
	"sort"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
)

// ClassProportions returns the fraction of rows carrying each label of y.
func ClassProportions(y series.Series) map[string]float64 {
	props := make(map[string]float64)
	n := y.Len()
	if n == 0 {
		return props
	}
	for _, label := range y.Records() {
		props[label]++
	}
	for label := range props {
		props[label] /= float64(n)
	}
	return props
}

// PlotBalance writes a grouped bar chart of the label proportions of each
// non-empty partition to filename. The image format follows the file
// extension (.png, .svg, .pdf, ...).
func PlotBalance(sets *Sets, filename string) error {
	type named struct {
		name  string
		props map[string]float64
	}

	var parts []named
	add := func(name string, p *Partition) {
		if p != nil && p.Len() > 0 {
			parts = append(parts, named{name, ClassProportions(p.Y)})
		}
	}
	add("train", &sets.Train)
	add("val", &sets.Val)
	add("test", &sets.Test)
	add("remaining", sets.Remaining)
	if len(parts) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "PlotBalance")
	}

	labelSet := make(map[string]struct{})
	for _, part := range parts {
		for label := range part.props {
			labelSet[label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	p := plot.New()
	p.Title.Text = "Class balance per partition"
	p.Y.Label.Text = "Proportion"
	p.Legend.Top = true

	width := vg.Points(40 / float64(len(parts)))
	for i, part := range parts {
		values := make(plotter.Values, len(labels))
		for j, label := range labels {
			values[j] = part.props[label]
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return errors.Wrapf(err, "bar chart for %s", part.name)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = width * vg.Length(float64(i)-float64(len(parts)-1)/2)

		p.Add(bars)
		p.Legend.Add(part.name, bars)
	}
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "save %s", filename)
	}
	return nil
}
