package viz

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

const formatHTML = "html"

// LineChart は観測値と当てはめ値を x の昇順に並べた echarts の折れ線グラフを返す
func LineChart(m *linear.Model, x, y []float64, options ...Option) (*charts.Line, error) {
	const op = "viz.LineChart"

	if _, err := m.Predict(0); err != nil {
		return nil, err
	}
	if err := linear.Validate(op, x, y); err != nil {
		return nil, err
	}
	cfg := newConfig(options)

	// x の昇順に並べ替え
	xs := append([]float64(nil), x...)
	inds := make([]int, len(xs))
	floats.Argsort(xs, inds)

	fitted, err := m.PredictAll(xs)
	if err != nil {
		return nil, err
	}

	observedData := make([]opts.LineData, 0, len(xs))
	fittedData := make([]opts.LineData, 0, len(xs))
	for i, idx := range inds {
		observedData = append(observedData, opts.LineData{Value: y[idx]})
		fittedData = append(fittedData, opts.LineData{Value: fitted[i]})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    cfg.title,
				Subtitle: m.String(),
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: cfg.xLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: cfg.yLabel}),
	)

	line.SetXAxis(xs).
		AddSeries("Observed", observedData).
		AddSeries("Fitted", fittedData)
	return line, nil
}

func writeHTML(w io.Writer, line *charts.Line) error {
	if err := line.Render(w); err != nil {
		return errors.Wrap(err, "viz: render html")
	}
	return nil
}

func isHTML(path string) bool {
	return strings.EqualFold(strings.TrimPrefix(filepath.Ext(path), "."), formatHTML)
}
