// linefit fits a straight line to x,y pairs read as CSV and reports its quality.
//
// Usage:
//
//	linefit [flags] [file.csv]
//
// With no file the pairs are read from standard input. A header row is skipped
// when its fields are not numbers.
//
// Flags:
//
//	-x 1,2.5       predict y for each x
//	-y 10          predict x for each y
//	-json          print the report as JSON
//	-plot fit.png  render the observations and the fitted line
//	-solver        sums or normal
//	-log-level     debug, info, warn or error
//	-log-format    slog or zerolog
//	-cpuprofile    directory to write a CPU profile to
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/profile"

	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/metrics"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/pkg/log"
	"github.com/YuminosukeSato/linefit/viz"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "error (%s): %v\n", errors.KindOf(err), err)
		os.Exit(1)
	}
}

// floatList is a flag.Value collecting comma separated numbers across repeated flags.
type floatList []float64

func (f *floatList) String() string {
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f *floatList) Set(s string) error {
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return errors.NewValueError("flag", fmt.Sprintf("%q is not a number", field))
		}
		*f = append(*f, v)
	}
	return nil
}

type options struct {
	xs        floatList
	ys        floatList
	asJSON    bool
	plotPath  string
	solver    string
	logLevel  string
	logFormat string
	profDir   string
	input     string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("linefit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&opts.xs, "x", "comma separated x values to predict y for")
	fs.Var(&opts.ys, "y", "comma separated y values to predict x for")
	fs.BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	fs.StringVar(&opts.plotPath, "plot", "", "write a plot of the fit to this file (.png, .svg, .pdf)")
	fs.StringVar(&opts.solver, "solver", "sums", "fit solver: sums or normal")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "slog", "log format: slog or zerolog")
	fs.StringVar(&opts.profDir, "cpuprofile", "", "write a CPU profile into this directory")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, errors.NewValueError("linefit", "at most one input file may be given")
	}
	opts.input = fs.Arg(0)
	return opts, nil
}

func setupLogging(w io.Writer, opts *options) error {
	switch opts.logFormat {
	case "slog":
		if err := log.SetupLogger(w, opts.logLevel); err != nil {
			return err
		}
	case "zerolog":
		level, err := log.ParseLevel(opts.logLevel)
		if err != nil {
			return err
		}
		log.SetLogger(log.NewZerologLogger(w, level))
	default:
		return errors.NewValueError("linefit", fmt.Sprintf("unknown log format %q", opts.logFormat))
	}
	log.RouteWarnings(log.GetLogger())
	return nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	err := execute(args, stdin, stdout, stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		kind := errors.KindOf(err)
		log.GetLogger().Error("linefit failed", err,
			log.ErrorKindKey, kind.String(),
			log.SuggestionKey, suggestion(kind),
		)
	}
	return err
}

// suggestion returns a hint for the user for each failure kind.
func suggestion(kind errors.Kind) string {
	switch kind {
	case errors.KindInvalidInput:
		return "check that every record is a numeric x,y pair and that flags have valid values"
	case errors.KindDegenerateFit:
		return "provide at least two observations with different x values"
	case errors.KindZeroSlope:
		return "the fitted line is horizontal; drop the -y flag"
	default:
		return ""
	}
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if err := setupLogging(stderr, opts); err != nil {
		return err
	}
	if opts.profDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.profDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	solver, err := linear.ParseSolver(opts.solver)
	if err != nil {
		return err
	}

	in := stdin
	source := "stdin"
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return errors.Wrapf(err, "open %s", opts.input)
		}
		defer f.Close()
		in = f
		source = opts.input
	}

	x, y, err := readPairs(in)
	if err != nil {
		return err
	}
	log.GetLogger().Info("read observations", log.SourceKey, source, log.SamplesKey, len(x))

	m, err := linear.Fit(x, y, linear.WithSolver(solver), linear.WithLogger(log.GetLogger()))
	if err != nil {
		return err
	}

	rep, err := buildReport(m, x, y, opts)
	if err != nil {
		return err
	}

	if opts.plotPath != "" {
		if err := viz.Render(m, x, y, opts.plotPath); err != nil {
			return err
		}
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return rep.writeText(stdout)
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type report struct {
	Digest      string  `json:"digest"`
	Solver      string  `json:"solver"`
	Samples     int     `json:"samples"`
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	MSE         float64 `json:"mse"`
	RMSE        float64 `json:"rmse"`
	MAE         float64 `json:"mae"`
	R2          float64 `json:"r2"`
	Predictions []point `json:"predictions,omitempty"`
	Inverse     []point `json:"inverse,omitempty"`
}

func buildReport(m *linear.Model, x, y []float64, opts *options) (*report, error) {
	mse, err := m.Loss(x, y)
	if err != nil {
		return nil, err
	}
	r2, err := m.Score(x, y)
	if err != nil {
		return nil, err
	}
	yPred, err := m.PredictAll(x)
	if err != nil {
		return nil, err
	}
	rmse, err := metrics.RMSE(y, yPred)
	if err != nil {
		return nil, err
	}
	mae, err := metrics.MAE(y, yPred)
	if err != nil {
		return nil, err
	}

	logger := log.GetLogger().With(log.ComponentKey, "cli")
	logger.Info("evaluated model",
		log.ModelNameKey, "linear.Model",
		log.SamplesKey, m.Samples(),
		log.LossKey, mse,
		log.R2ScoreKey, r2,
	)

	rep := &report{
		Digest:    digest(x, y),
		Solver:    opts.solver,
		Samples:   m.Samples(),
		Slope:     m.Slope(),
		Intercept: m.Intercept(),
		MSE:       mse,
		RMSE:      rmse,
		MAE:       mae,
		R2:        r2,
	}

	ys, err := m.PredictAll(opts.xs)
	if err != nil {
		return nil, err
	}
	for i, xi := range opts.xs {
		rep.Predictions = append(rep.Predictions, point{X: xi, Y: ys[i]})
	}
	if len(opts.xs) > 0 {
		logger.Debug("predicted y", log.OperationKey, log.OperationPredict, log.PredsKey, len(opts.xs))
	}

	for _, yi := range opts.ys {
		xi, err := m.PredictX(yi)
		if err != nil {
			return nil, err
		}
		rep.Inverse = append(rep.Inverse, point{X: xi, Y: yi})
	}
	if len(opts.ys) > 0 {
		logger.Debug("predicted x", log.OperationKey, log.OperationPredictX, log.PredsKey, len(opts.ys))
	}
	return rep, nil
}

func (r *report) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digest:    %s\n", r.Digest)
	fmt.Fprintf(&b, "samples:   %d\n", r.Samples)
	fmt.Fprintf(&b, "slope:     %g\n", r.Slope)
	fmt.Fprintf(&b, "intercept: %g\n", r.Intercept)
	fmt.Fprintf(&b, "mse:       %g\n", r.MSE)
	fmt.Fprintf(&b, "rmse:      %g\n", r.RMSE)
	fmt.Fprintf(&b, "mae:       %g\n", r.MAE)
	fmt.Fprintf(&b, "r2:        %g\n", r.R2)
	for _, p := range r.Predictions {
		fmt.Fprintf(&b, "y(%g) = %g\n", p.X, p.Y)
	}
	for _, p := range r.Inverse {
		fmt.Fprintf(&b, "x(%g) = %g\n", p.Y, p.X)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
