// Package viz は学習済み直線と観測値を gonum/plot で描画する
package viz

import (
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

// Option は描画の設定を変更する
type Option func(*config)

type config struct {
	title         string
	xLabel        string
	yLabel        string
	width, height vg.Length
}

// WithTitle はグラフのタイトルを設定する
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithLabels は軸ラベルを設定する
func WithLabels(x, y string) Option {
	return func(c *config) {
		c.xLabel = x
		c.yLabel = y
	}
}

// WithSize は画像サイズを設定する
func WithSize(width, height vg.Length) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

func newConfig(opts []Option) config {
	c := config{
		title:  "linear fit",
		xLabel: "x",
		yLabel: "y",
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Render は観測値の散布図と直線を path に保存する
// 形式は拡張子（.png, .svg, .pdf など）から決まり、.html は echarts のグラフになる
func Render(m *linear.Model, x, y []float64, path string, opts ...Option) error {
	if isHTML(path) {
		line, err := LineChart(m, x, y, opts...)
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "viz: create %s", path)
		}
		if err := writeHTML(f, line); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	cfg := newConfig(opts)
	p, err := newPlot(m, x, y, cfg)
	if err != nil {
		return err
	}
	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return errors.Wrapf(err, "viz: save %s", path)
	}
	return nil
}

// WriteTo は format（"png", "svg", "pdf", "html" など）で w に書き出す
func WriteTo(w io.Writer, m *linear.Model, x, y []float64, format string, opts ...Option) error {
	if strings.EqualFold(format, formatHTML) {
		line, err := LineChart(m, x, y, opts...)
		if err != nil {
			return err
		}
		return writeHTML(w, line)
	}

	cfg := newConfig(opts)
	p, err := newPlot(m, x, y, cfg)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(cfg.width, cfg.height, format)
	if err != nil {
		return errors.Wrapf(err, "viz: format %q", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "viz: write")
	}
	return nil
}

func newPlot(m *linear.Model, x, y []float64, cfg config) (*plot.Plot, error) {
	const op = "viz.Render"

	// 未学習モデルは NotFittedError
	if _, err := m.Predict(0); err != nil {
		return nil, err
	}
	if err := linear.Validate(op, x, y); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "viz: scatter")
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	line := plotter.NewFunction(func(v float64) float64 {
		return m.Slope()*v + m.Intercept()
	})
	line.XMin, line.XMax = floats.Min(x), floats.Max(x)
	if line.XMin == line.XMax {
		line.XMin--
		line.XMax++
	}
	line.Width = vg.Points(2)

	p.Add(scatter, line)
	p.Legend.Add("observations", scatter)
	p.Legend.Add(m.String(), line)
	p.Legend.Top = true

	return p, nil
}
