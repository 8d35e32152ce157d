// Package metrics は回帰モデルの評価指標を提供する
package metrics

import (
	"math"

	"github.com/YuminosukeSato/linefit/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// validate は yTrue と yPred が空でなく同じ長さであることを確認する
func validate(op string, yTrue, yPred []float64) error {
	if len(yTrue) == 0 || len(yPred) == 0 {
		return errors.NewModelError(op, "yTrue and yPred must be non-empty", errors.ErrEmptyData)
	}
	if len(yTrue) != len(yPred) {
		return errors.NewDimensionError(op, len(yTrue), len(yPred))
	}
	return nil
}

// residuals は yTrue - yPred を新しいスライスで返す
func residuals(yTrue, yPred []float64) []float64 {
	diff := make([]float64, len(yTrue))
	return floats.SubTo(diff, yTrue, yPred)
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := validate("MSE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	diff := residuals(yTrue, yPred)
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := validate("MAE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	return floats.Norm(residuals(yTrue, yPred), 1) / float64(len(yTrue)), nil
}

// R2Score は決定係数（R²）を計算する
//
// yTrue に分散がない（全変動が0）場合は 0 を返す。これは入力の誤りではなく
// 「説明すべき分散がない」状態なのでエラーにはせず、UndefinedMetricWarning を発行する。
func R2Score(yTrue, yPred []float64) (float64, error) {
	if err := validate("R2Score", yTrue, yPred); err != nil {
		return 0, err
	}

	// yTrue が定数なら分散なし。平均の丸め誤差で tss がわずかに正になるため直接比較する
	if floats.Min(yTrue) == floats.Max(yTrue) {
		errors.Warn(errors.NewUndefinedMetricWarning("R2Score", "no variance in yTrue", 0))
		return 0, nil
	}

	yMean := stat.Mean(yTrue, nil)

	// 全変動（TSS）と残差変動（RSS）を計算
	var tss, rss float64
	for i, yTrueVal := range yTrue {
		dev := yTrueVal - yMean
		res := yTrueVal - yPred[i]
		tss += dev * dev
		rss += res * res
	}

	// 差が極小で偏差の二乗がアンダーフローした場合
	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("R2Score", "no variance in yTrue", 0))
		return 0, nil
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}
