package viz

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

var (
	xs = []float64{1, 2, 3, 4, 5}
	ys = []float64{2, 4, 5, 4, 5}
)

func TestWriteToSVG(t *testing.T) {
	m, err := linear.Fit(xs, ys)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteTo(&buf, m, xs, ys, "svg", WithTitle("sales"), WithLabels("week", "units"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestWriteToUnknownFormat(t *testing.T) {
	m, err := linear.Fit(xs, ys)
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, WriteTo(&buf, m, xs, ys, "bmp"))
}

func TestRender(t *testing.T) {
	m, err := linear.Fit(xs, ys)
	require.NoError(t, err)

	for _, name := range []string{"fit.png", "fit.svg", "fit.pdf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Render(m, xs, ys, path, WithSize(300, 200)))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestRenderErrors(t *testing.T) {
	m, err := linear.Fit(xs, ys)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "fit.png")

	err = Render(nil, xs, ys, path)
	assert.Equal(t, errors.KindNotFitted, errors.KindOf(err))

	err = Render(m, xs, ys[:3], path)
	assert.Equal(t, errors.KindInvalidInput, errors.KindOf(err))

	err = Render(m, nil, nil, path)
	assert.Equal(t, errors.KindInvalidInput, errors.KindOf(err))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLineChart(t *testing.T) {
	m, err := linear.Fit(xs, ys)
	require.NoError(t, err)

	line, err := LineChart(m, []float64{3, 1, 2}, []float64{5, 2, 4})
	require.NoError(t, err)
	require.Len(t, line.MultiSeries, 2)
	assert.Equal(t, "Observed", line.MultiSeries[0].Name)
	assert.Equal(t, "Fitted", line.MultiSeries[1].Name)

	_, err = LineChart(nil, xs, ys)
	assert.Equal(t, errors.KindNotFitted, errors.KindOf(err))
}

func TestWriteToHTML(t *testing.T) {
	m, err := linear.Fit(xs, ys)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, m, xs, ys, "html"))
	assert.Contains(t, buf.String(), "echarts")

	path := filepath.Join(t.TempDir(), "fit.html")
	require.NoError(t, Render(m, xs, ys, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Observed")
}
