// Package linefit fits a straight line y = a*x + b to paired observations,
// predicts in both directions and evaluates the fit.
//
// # Features
//
//   - Closed-form least squares with a summation solver and a normal-equation solver
//   - Forward prediction for scalars and sequences, inverse prediction x from y
//   - MSE, RMSE, MAE and R² metrics
//   - Typed errors classified into InvalidInput, DegenerateFit, ZeroSlope and ModelNotFitted
//   - Structured logging via slog or zerolog
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/linefit/linear"
//	)
//
//	func main() {
//	    x := []float64{1, 2, 3, 4}
//	    y := []float64{2, 4, 6, 8}
//
//	    m, err := linear.Fit(x, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, _ := m.Predict(5)
//	    r2, _ := m.Score(x, y)
//	    fmt.Println(m, pred, r2)
//	}
//
// # Packages
//
//   - linear: Fit, Model and its Predict, PredictAll, PredictX, Loss and Score
//   - metrics: MSE, RMSE, MAE, R2Score over []float64
//   - viz: plots of the observations and the fitted line
//   - core/model: Predictor, Evaluator and Regressor interfaces and the Slot holder
//   - core/parallel: chunked parallel helpers
//   - pkg/errors: error kinds, warnings and panic recovery
//   - pkg/log: logger interface, slog setup and zerolog adapter
//
// The cmd/linefit command fits CSV data from a file or standard input.
//
// # Performance
//
// Fit and PredictAll split inputs above 1000 samples into chunks processed on
// all CPU cores. Chunk results are combined in order, so results match the
// sequential path up to floating-point summation order.
package linefit
