package linear

import (
	"fmt"
	"math"
	"time"

	"github.com/YuminosukeSato/linefit/core/model"
	"github.com/YuminosukeSato/linefit/core/parallel"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/pkg/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	modelName = "linear.Model"

	// 並列処理の閾値（この値以下のサンプル数では逐次処理を使用）
	defaultParallelThreshold = 1000
)

// Model は y = slope*x + intercept の学習済み直線
//
// Model は Fit によってのみ生成され、生成後は変更されない。
// そのため複数のgoroutineから同時に Predict や Score を呼び出してよい。
// Fit を経由しない nil や Model{} に対する操作は NotFittedError を返す。
type Model struct {
	slope     float64
	intercept float64
	samples   int
	fitted    bool
}

var _ model.Regressor = (*Model)(nil)

// Fit は最小二乗法で x と y に直線を当てはめる
//
// n を観測数、Sx = Σx, Sy = Σy, Sxx = Σx², Sxy = Σxy として
//
//	denom     = n·Sxx − Sx²
//	slope     = (n·Sxy − Sx·Sy) / denom
//	intercept = (Sy·Sxx − Sx·Sxy) / denom
//
// denom が0（すべての x が同じ値、あるいは1点のみ）の場合は DegenerateFitError を返す。
// 入力スライスは変更しない。
func Fit(x, y []float64, opts ...Option) (*Model, error) {
	const op = "linear.Fit"

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = log.GetLogger()
	}
	start := time.Now()

	// 入力の検証
	if err := Validate(op, x, y); err != nil {
		return nil, err
	}

	n := len(x)
	s := sumsOf(x, y, cfg.parallelThreshold)

	fn := float64(n)
	denom := fn*s.xx - s.x*s.x
	if denom == 0 {
		logger.Debug("degenerate fit",
			log.OperationKey, log.OperationFit,
			log.SamplesKey, n,
		)
		return nil, errors.NewDegenerateFitError(op, n, denom)
	}

	var slope, intercept float64
	switch cfg.solver {
	case SolverNormalEquation:
		var err error
		slope, intercept, err = solveNormalEquation(x, y, denom, logger)
		if err != nil {
			return nil, err
		}
	default:
		slope = (fn*s.xy - s.x*s.y) / denom
		intercept = (s.y*s.xx - s.x*s.xy) / denom
	}

	// オーバーフローなどで非有限値になった場合
	if err := errors.CheckNumericalStability(op, slope, intercept); err != nil {
		return nil, err
	}

	logger.Debug("fit completed",
		log.OperationKey, log.OperationFit,
		log.SolverKey, cfg.solver.String(),
		log.SamplesKey, n,
		log.SlopeKey, slope,
		log.InterceptKey, intercept,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return &Model{
		slope:     slope,
		intercept: intercept,
		samples:   n,
		fitted:    true,
	}, nil
}

// sums は最小二乗法に必要な4つの総和
type sums struct {
	x, y, xx, xy float64
}

// sumsOf は総和を計算する。threshold を超えるサンプル数ではチャンクごとに並列計算し、
// チャンク順に合算する。threshold <= 0 では常に逐次計算する。
func sumsOf(x, y []float64, threshold int) sums {
	if threshold <= 0 {
		threshold = len(x)
	}

	parts := parallel.MapChunks(len(x), threshold, func(start, end int) sums {
		xs, ys := x[start:end], y[start:end]
		return sums{
			x:  floats.Sum(xs),
			y:  floats.Sum(ys),
			xx: floats.Dot(xs, xs),
			xy: floats.Dot(xs, ys),
		}
	})

	var total sums
	for _, p := range parts {
		total.x += p.x
		total.y += p.y
		total.xx += p.xx
		total.xy += p.xy
	}
	return total
}

// solveNormalEquation は計画行列 [x, 1] の正規方程式 (XᵀX)·[a, b]ᵀ = Xᵀy を解く
// denom は Fit が総和から求めた n·Sxx − Sx² で、特異と判定された場合のエラーに載せる
func solveNormalEquation(x, y []float64, denom float64, logger log.Logger) (slope, intercept float64, err error) {
	const op = "linear.solveNormalEquation"
	defer errors.Recover(&err, op)

	n := len(x)

	// 計画行列: 1列目が x、2列目が 1
	design := mat.NewDense(n, 2, nil)
	for i, xi := range x {
		design.Set(i, 0, xi)
		design.Set(i, 1, 1.0)
	}

	var xtx mat.Dense
	xtx.Mul(design.T(), design)

	var xty mat.VecDense
	xty.MulVec(design.T(), mat.NewVecDense(n, y))

	var coef mat.VecDense
	if err := coef.SolveVec(&xtx, &xty); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return 0, 0, errors.NewModelError(op, "cannot solve normal equations", errors.ErrSingularMatrix)
		}
		if math.IsInf(float64(cond), 1) {
			return 0, 0, errors.NewDegenerateFitError(op, n, denom)
		}
		// 条件数が大きいだけなら解は得られている
		logger.Warn("ill-conditioned normal equations",
			log.OperationKey, log.OperationFit,
			log.SamplesKey, n,
			"condition", float64(cond),
		)
	}

	return coef.AtVec(0), coef.AtVec(1), nil
}

// Slope は学習された傾きを返す
func (m *Model) Slope() float64 {
	if m == nil {
		return 0
	}
	return m.slope
}

// Intercept は学習された切片を返す
func (m *Model) Intercept() float64 {
	if m == nil {
		return 0
	}
	return m.intercept
}

// Samples は学習に使われた観測数を返す
func (m *Model) Samples() int {
	if m == nil {
		return 0
	}
	return m.samples
}

func (m *Model) String() string {
	if m == nil || !m.fitted {
		return "linear.Model(unfitted)"
	}
	return fmt.Sprintf("y = %g*x + %g", m.slope, m.intercept)
}

// check は Fit で生成されたモデルかどうかを確認する
func (m *Model) check(method string) error {
	if m == nil || !m.fitted {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}
