package linear

import (
	"fmt"

	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/pkg/log"
)

// Solver selects how Fit computes the line parameters.
type Solver int

const (
	// SolverSums evaluates the closed-form summation formulas directly.
	SolverSums Solver = iota
	// SolverNormalEquation solves [x 1]ᵀ[x 1]·[a b]ᵀ = [x 1]ᵀy with gonum/mat.
	SolverNormalEquation
)

func (s Solver) String() string {
	switch s {
	case SolverSums:
		return "sums"
	case SolverNormalEquation:
		return "normal"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver converts "sums" or "normal" to a Solver.
func ParseSolver(name string) (Solver, error) {
	switch name {
	case "sums", "":
		return SolverSums, nil
	case "normal":
		return SolverNormalEquation, nil
	default:
		return SolverSums, errors.NewValueError("linear.ParseSolver",
			fmt.Sprintf("unknown solver %q (want sums or normal)", name))
	}
}

// Option is a function that configures Fit
type Option func(*config)

type config struct {
	solver            Solver
	parallelThreshold int
	logger            log.Logger
}

func defaultConfig() config {
	return config{
		solver:            SolverSums,
		parallelThreshold: defaultParallelThreshold,
	}
}

// WithSolver sets the solver used by Fit
func WithSolver(s Solver) Option {
	return func(c *config) {
		c.solver = s
	}
}

// WithParallelThreshold sets the number of samples above which the sums are
// accumulated in parallel. n <= 0 disables parallel accumulation.
func WithParallelThreshold(n int) Option {
	return func(c *config) {
		c.parallelThreshold = n
	}
}

// WithLogger sets the logger Fit reports to instead of log.GetLogger()
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
