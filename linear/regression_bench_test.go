package linear

import (
	"math/rand/v2"
	"testing"
)

// createBenchmarkData はベンチマーク用の y = 0.5x + 1 + ノイズ のデータを生成する
func createBenchmarkData(n int) ([]float64, []float64) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		// -1.0 から 1.0 の範囲のランダムな値
		x[i] = rng.Float64()*2.0 - 1.0
		// 小さなノイズを追加
		y[i] = 0.5*x[i] + 1.0 + (rng.Float64()-0.5)*0.1
	}

	return x, y
}

var benchSizes = []struct {
	name string
	n    int
}{
	{"Small_100", 100},
	{"Small_500", 500},
	{"Medium_1000", 1000}, // 並列処理の閾値
	{"Medium_2000", 2000},
	{"Large_10000", 10000},
	{"XLarge_100000", 100000},
}

// BenchmarkFit は既定の設定（閾値を超えると並列）での Fit のベンチマーク
func BenchmarkFit(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			x, y := createBenchmarkData(size.n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Fit(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFitSequential は並列処理を無効化した Fit のベンチマーク（比較用）
func BenchmarkFitSequential(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			x, y := createBenchmarkData(size.n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Fit(x, y, WithParallelThreshold(0)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFitNormalEquation は計画行列を組み立てる solver のベンチマーク
func BenchmarkFitNormalEquation(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			x, y := createBenchmarkData(size.n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Fit(x, y, WithSolver(SolverNormalEquation)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkPredictAll は系列予測のベンチマーク
func BenchmarkPredictAll(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			x, y := createBenchmarkData(size.n)
			m, err := Fit(x, y)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := m.PredictAll(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
