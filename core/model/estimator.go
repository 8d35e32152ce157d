// Package model defines the behaviour shared by fitted line models and a
// concurrency-safe slot for callers that keep a replaceable "current" model.
package model

// Predictor maps x to y.
type Predictor interface {
	// Predict returns the prediction for a single x.
	Predict(x float64) (float64, error)
	// PredictAll returns one prediction per x, in order.
	PredictAll(xs []float64) ([]float64, error)
}

// InversePredictor maps y back to x.
type InversePredictor interface {
	PredictX(y float64) (float64, error)
}

// Evaluator measures how well a model explains paired observations.
type Evaluator interface {
	// Loss returns the mean squared error.
	Loss(x, y []float64) (float64, error)
	// Score returns the coefficient of determination R².
	Score(x, y []float64) (float64, error)
}

// Regressor combines every operation a fitted line supports.
type Regressor interface {
	Predictor
	InversePredictor
	Evaluator
}
