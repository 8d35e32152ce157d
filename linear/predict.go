package linear

import (
	"github.com/YuminosukeSato/linefit/core/parallel"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Predict は x に対する予測値 slope*x + intercept を返す
func (m *Model) Predict(x float64) (float64, error) {
	if err := m.check("Predict"); err != nil {
		return 0, err
	}
	return m.slope*x + m.intercept, nil
}

// PredictAll は xs の各要素に Predict を適用した結果を同じ順序で返す
// 空の入力には空のスライスを返す（エラーではない）
func (m *Model) PredictAll(xs []float64) ([]float64, error) {
	if err := m.check("PredictAll"); err != nil {
		return nil, err
	}

	predictions := make([]float64, len(xs))
	parallel.ParallelizeWithThreshold(len(xs), defaultParallelThreshold, func(start, end int) {
		dst := predictions[start:end]
		floats.ScaleTo(dst, m.slope, xs[start:end])
		floats.AddConst(m.intercept, dst)
	})

	return predictions, nil
}

// PredictX は y を与える x を (y - intercept) / slope として逆算する
// 傾きが0の場合は ZeroSlopeError を返す
func (m *Model) PredictX(y float64) (float64, error) {
	if err := m.check("PredictX"); err != nil {
		return 0, err
	}
	if m.slope == 0 {
		return 0, errors.NewZeroSlopeError(modelName+".PredictX", m.intercept)
	}
	return (y - m.intercept) / m.slope, nil
}
