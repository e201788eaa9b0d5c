// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: Executes a Setup method by method and reports per-method outcomes.
// Policy:
//   - Methods run sequentially in file order; a failed method does not stop
//     the run, a cancelled context does.
//   - Every successful result is stored under ResultKey(method) for later
//     bindings.

package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/framelogic/formula"
	"github.com/katalvlaran/framelogic/mequiv"
	"github.com/katalvlaran/framelogic/morphism"
	"github.com/katalvlaran/framelogic/setfamily"
)

var tracer = otel.Tracer("github.com/katalvlaran/framelogic/job")

// ErrNilSetup indicates Run was called without a setup.
var ErrNilSetup = errors.New("job: nil setup")

const (
	statusOK    = "ok"
	statusError = "error"

	// unknownMethodLabel keeps arbitrary method names out of metric labels.
	unknownMethodLabel = "unknown"
)

// Limits bounds the exponential engines. Zero fields keep package defaults.
type Limits struct {
	MaxValuationBits int // formula.WithMaxValuationBits
	MaxWorlds        int // setfamily.WithMaxWorlds
	MaxFamilySize    int // setfamily.WithMaxFamilySize
	MaxFamilies      int // mequiv.WithMaxFamilies
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRegisterer registers the runner metrics with reg instead of a private
// registry. Panics on nil.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("job: WithRegisterer(nil)")
	}

	return func(r *Runner) { r.reg = reg }
}

// WithLimits forwards resource bounds to the engines. Panics on negative
// fields.
func WithLimits(l Limits) Option {
	if l.MaxValuationBits < 0 || l.MaxWorlds < 0 || l.MaxFamilySize < 0 || l.MaxFamilies < 0 {
		panic(fmt.Sprintf("job: WithLimits(%+v): negative bound", l))
	}

	return func(r *Runner) { r.limits = l }
}

// Runner executes setups. It is safe for sequential reuse; concurrent Runs
// share only the metrics.
type Runner struct {
	logger  *slog.Logger
	reg     prometheus.Registerer
	limits  Limits
	metrics *metrics

	formulaOpts []formula.Option
	setOpts     []setfamily.Option
	searchOpts  []morphism.Option
	mequivOpts  []mequiv.Option
}

// NewRunner builds a Runner and registers its metrics.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	if r.reg == nil {
		r.reg = prometheus.NewRegistry()
	}
	m, err := newMetrics(r.reg)
	if err != nil {
		return nil, fmt.Errorf("job: NewRunner: %w", err)
	}
	r.metrics = m

	if r.limits.MaxValuationBits > 0 {
		r.formulaOpts = append(r.formulaOpts, formula.WithMaxValuationBits(r.limits.MaxValuationBits))
	}
	if r.limits.MaxWorlds > 0 {
		r.setOpts = append(r.setOpts, setfamily.WithMaxWorlds(r.limits.MaxWorlds))
	}
	if r.limits.MaxFamilySize > 0 {
		r.setOpts = append(r.setOpts, setfamily.WithMaxFamilySize(r.limits.MaxFamilySize))
	}
	if r.limits.MaxFamilies > 0 {
		r.mequivOpts = append(r.mequivOpts, mequiv.WithMaxFamilies(r.limits.MaxFamilies))
	}
	if len(r.setOpts) > 0 {
		r.mequivOpts = append(r.mequivOpts, mequiv.WithClosureOptions(r.setOpts...))
	}

	return r, nil
}

// Result is the outcome of one method.
type Result struct {
	Method  string
	Op      Operation // zero when the name is unknown
	Output  Output
	Err     error
	Elapsed time.Duration
}

// Line renders the result as "<method>: <text>" or "<method>: error: <err>".
func (res Result) Line() string {
	if res.Err != nil {
		return res.Method + ": error: " + res.Err.Error()
	}

	return res.Method + ": " + res.Output.Text
}

// Report is the outcome of one Run.
type Report struct {
	RunID      string
	Parameters Parameters
	Results    []Result
	Started    time.Time
	Elapsed    time.Duration
}

// Failed counts the methods that ended with an error.
func (rep *Report) Failed() int {
	n := 0
	for _, res := range rep.Results {
		if res.Err != nil {
			n++
		}
	}

	return n
}

// Run executes every method of s in order. Method failures are recorded in
// the Report; Run itself fails only on a nil setup or a cancelled context,
// in which case the partial Report is still returned.
func (r *Runner) Run(ctx context.Context, s *Setup) (*Report, error) {
	if s == nil {
		return nil, ErrNilSetup
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rep := &Report{
		RunID:      uuid.NewString(),
		Parameters: s.Parameters,
		Started:    time.Now(),
	}
	logger := r.logger.With(slog.String("run_id", rep.RunID))

	ctx, span := tracer.Start(ctx, "job.Runner.Run", trace.WithAttributes(
		attribute.String("run_id", rep.RunID),
		attribute.Int("methods", len(s.Methods)),
	))
	defer span.End()

	results := make(map[string]json.RawMessage)
	for _, m := range s.Methods {
		if err := ctx.Err(); err != nil {
			rep.Elapsed = time.Since(rep.Started)
			span.RecordError(err)
			span.SetStatus(codes.Error, "context cancelled")
			return rep, err
		}
		res := r.runMethod(ctx, s.Parameters, results, m)
		rep.Results = append(rep.Results, res)

		status := statusOK
		if res.Err != nil {
			status = statusError
			logger.WarnContext(ctx, "job: method failed",
				slog.String("method", m.Name),
				slog.String("error", res.Err.Error()),
			)
		} else {
			logger.DebugContext(ctx, "job: method done",
				slog.String("method", m.Name),
				slog.Duration("elapsed", res.Elapsed),
			)
		}
		label := unknownMethodLabel
		if res.Op != 0 {
			label = res.Op.String()
		}
		r.metrics.methods.WithLabelValues(label, status).Inc()
		if res.Op != 0 {
			r.metrics.duration.WithLabelValues(label).Observe(res.Elapsed.Seconds())
		}
		span.AddEvent("method", trace.WithAttributes(
			attribute.String("method", m.Name),
			attribute.String("status", status),
		))
	}
	rep.Elapsed = time.Since(rep.Started)

	failed := rep.Failed()
	span.SetAttributes(attribute.Int("failed", failed))
	logger.InfoContext(ctx, "job: run finished",
		slog.Int("methods", len(rep.Results)),
		slog.Int("failed", failed),
		slog.Duration("elapsed", rep.Elapsed),
	)

	return rep, nil
}

func (r *Runner) runMethod(ctx context.Context, params Parameters, results map[string]json.RawMessage, m Method) Result {
	res := Result{Method: m.Name}
	op, err := ParseOperation(m.Name)
	if err != nil {
		res.Err = err
		return res
	}
	res.Op = op

	e := dispatch[op]
	if len(m.Params) != len(e.params) {
		res.Err = fmt.Errorf("want %d params %v, got %d: %w", len(e.params), e.params, len(m.Params), ErrBadParameter)
		return res
	}
	a := args{op: op, vals: make([]json.RawMessage, len(m.Params)), refs: m.Params}
	for i, p := range m.Params {
		var ok bool
		if p.From != "" {
			a.vals[i], ok = results[p.From]
		} else {
			a.vals[i], ok = params[p.Name]
		}
		if !ok {
			source := p.Name
			if p.From != "" {
				source = p.From
			}
			res.Err = fmt.Errorf("param %q: %w", source, ErrMissingParameter)
			return res
		}
	}

	start := time.Now()
	out, err := e.run(ctx, r, a)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	res.Output = out

	raw, err := json.Marshal(out.Value)
	if err != nil {
		res.Err = fmt.Errorf("encode result: %w", err)
		return res
	}
	results[ResultKey(m.Name)] = raw

	return res
}
