// Package log defines standard attribute keys for fitting operations.
//
// The keys follow a hierarchical naming convention (e.g. "model.slope",
// "data.samples") so that log records from the library, the CLI and callers
// can be filtered the same way.
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model, e.g. "linear.Model".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "predict_x", "loss", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "metrics", "viz", "cli"
	ComponentKey = "ml.component"

	// SolverKey records which solver produced the parameters ("sums", "normal").
	SolverKey = "ml.solver"
)

// Data Shape
const (
	// SamplesKey indicates the number of observation pairs.
	SamplesKey = "data.samples"

	// SourceKey records where observations were read from (a path or "stdin").
	SourceKey = "data.source"
)

// Fitted parameters and metrics
const (
	// SlopeKey records the fitted slope a of y = a*x + b.
	SlopeKey = "model.slope"

	// InterceptKey records the fitted intercept b of y = a*x + b.
	InterceptKey = "model.intercept"

	// LossKey records the mean squared error.
	LossKey = "metrics.mse"

	// R2ScoreKey records R² coefficient of determination.
	// Range [-∞, 1.0], with 1.0 being perfect prediction.
	R2ScoreKey = "metrics.r2_score"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)

// Error Context
const (
	// ErrorKindKey records the error kind ("InvalidInput", "DegenerateFit", ...).
	ErrorKindKey = "error.kind"

	// SuggestionKey provides a hint for resolving the failure.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationPredictX = "predict_x"
	OperationLoss     = "loss"
	OperationScore    = "score"
)
