package linear

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linefit/core/model"
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

func fitLine(t *testing.T, x, y []float64) *Model {
	t.Helper()
	m, err := Fit(x, y)
	require.NoError(t, err)
	return m
}

func TestPredict(t *testing.T) {
	m := fitLine(t, []float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})

	got, err := m.Predict(6)
	require.NoError(t, err)
	assert.InDelta(t, 5.8, got, 1e-9)

	got, err = m.Predict(0)
	require.NoError(t, err)
	assert.InDelta(t, 2.2, got, 1e-9)
}

func TestPredictAll(t *testing.T) {
	m := fitLine(t, []float64{0, 1}, []float64{1, 3})

	testData := map[string]struct {
		xs   []float64
		want []float64
	}{
		"several": {[]float64{-1, 0, 2.5}, []float64{-1, 1, 6}},
		"single":  {[]float64{10}, []float64{21}},
		"empty":   {[]float64{}, []float64{}},
		"nil":     {nil, []float64{}},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got, err := m.PredictAll(td.xs)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.InDeltaSlice(t, td.want, got, 1e-12)
		})
	}
}

func TestPredictAllLargeMatchesPredict(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	x, y := randomLine(rng, 100)
	m := fitLine(t, x, y)

	xs := make([]float64, 4*defaultParallelThreshold+17)
	for i := range xs {
		xs[i] = rng.Float64()*1000 - 500
	}

	got, err := m.PredictAll(xs)
	require.NoError(t, err)
	require.Len(t, got, len(xs))
	for i, xi := range xs {
		want, err := m.Predict(xi)
		require.NoError(t, err)
		assert.InDelta(t, want, got[i], 1e-9, "index %d", i)
	}
}

func TestPredictX(t *testing.T) {
	m := fitLine(t, []float64{0, 1}, []float64{1, 3})

	got, err := m.PredictX(7)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)
}

func TestPredictXZeroSlope(t *testing.T) {
	m := fitLine(t, []float64{1, 2, 3}, []float64{5, 5, 5})

	_, err := m.PredictX(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrZeroSlope))
	assert.Equal(t, errors.KindZeroSlope, errors.KindOf(err))

	var zsErr *errors.ZeroSlopeError
	require.True(t, errors.As(err, &zsErr))
	assert.InDelta(t, 5.0, zsErr.Intercept, 1e-12)
}

func TestPredictRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))

	for i := 0; i < 100; i++ {
		slope := 0.5 + rng.Float64()*4.5
		if rng.IntN(2) == 0 {
			slope = -slope
		}
		intercept := rng.Float64()*20 - 10
		x := []float64{0, 1}
		y := []float64{intercept, slope + intercept}
		m := fitLine(t, x, y)

		xi := rng.Float64()*200 - 100
		yi, err := m.Predict(xi)
		require.NoError(t, err)
		back, err := m.PredictX(yi)
		require.NoError(t, err)
		assert.InDelta(t, xi, back, 1e-9)
	}
}

func TestUnfittedModel(t *testing.T) {
	models := map[string]*Model{
		"nil":  nil,
		"zero": {},
	}
	x := []float64{1, 2, 3}
	y := []float64{1, 2, 3}

	for name, m := range models {
		t.Run(name, func(t *testing.T) {
			calls := map[string]func() error{
				"Predict":    func() error { _, err := m.Predict(1); return err },
				"PredictAll": func() error { _, err := m.PredictAll(x); return err },
				"PredictX":   func() error { _, err := m.PredictX(1); return err },
				"Loss":       func() error { _, err := m.Loss(x, y); return err },
				"Score":      func() error { _, err := m.Score(x, y); return err },
			}
			for method, call := range calls {
				err := call()
				assert.Equal(t, errors.KindNotFitted, errors.KindOf(err), method)

				var nfErr *errors.NotFittedError
				require.True(t, errors.As(err, &nfErr), method)
				assert.Equal(t, method, nfErr.Method)
			}
		})
	}
}

func TestModelConcurrentUse(t *testing.T) {
	m := fitLine(t, []float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	var r model.Regressor = m

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			xi := float64(i)
			got, err := r.Predict(xi)
			assert.NoError(t, err)
			assert.InDelta(t, 2*xi, got, 1e-9)

			score, err := r.Score([]float64{1, 2, 3}, []float64{2, 4, 6})
			assert.NoError(t, err)
			assert.InDelta(t, 1.0, score, 1e-9)
		}(i)
	}
	wg.Wait()
}
