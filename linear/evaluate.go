package linear

import (
	"github.com/YuminosukeSato/linefit/metrics"
	"github.com/YuminosukeSato/linefit/pkg/log"
)

// Loss は平均二乗誤差 Σ(yᵢ − ŷᵢ)²/n を計算する（ŷ = PredictAll(x)）
func (m *Model) Loss(x, y []float64) (float64, error) {
	if err := m.check("Loss"); err != nil {
		return 0, err
	}
	if err := Validate(modelName+".Loss", x, y); err != nil {
		return 0, err
	}

	yPred, err := m.PredictAll(x)
	if err != nil {
		return 0, err
	}
	mse, err := metrics.MSE(y, yPred)
	if err != nil {
		return 0, err
	}

	log.GetLogger().Debug("loss computed",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationLoss,
		log.SamplesKey, len(x),
		log.LossKey, mse,
	)
	return mse, nil
}

// Score はモデルの決定係数（R²）を計算する
// y がすべて同じ値（全変動が0）の場合は 0 を返し、UndefinedMetricWarning を発行する
func (m *Model) Score(x, y []float64) (float64, error) {
	if err := m.check("Score"); err != nil {
		return 0, err
	}
	if err := Validate(modelName+".Score", x, y); err != nil {
		return 0, err
	}

	yPred, err := m.PredictAll(x)
	if err != nil {
		return 0, err
	}
	r2, err := metrics.R2Score(y, yPred)
	if err != nil {
		return 0, err
	}

	log.GetLogger().Debug("score computed",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationScore,
		log.SamplesKey, len(x),
		log.R2ScoreKey, r2,
	)
	return r2, nil
}
