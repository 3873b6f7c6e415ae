package baseline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-vecmath"
	"github.com/mr-sheg/orpl/dsp/core"
)

// Spectrum pairs intensities with an optional spectral axis. The axis is
// checked for consistency but does not influence the estimate.
type Spectrum struct {
	X []float64
	Y []float64
}

// Validate reports an empty or non-finite Y and an X that does not match
// Y in length or is not strictly increasing.
func (s Spectrum) Validate() error {
	if err := validateSamples(s.Y); err != nil {
		return err
	}

	if s.X == nil {
		return nil
	}

	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: axis length %d != spectrum length %d", ErrInvalidInput, len(s.X), len(s.Y))
	}

	for i := 1; i < len(s.X); i++ {
		if !(s.X[i] > s.X[i-1]) {
			return fmt.Errorf("%w: axis not strictly increasing at %d", ErrInvalidInput, i)
		}
	}

	return nil
}

func validateSamples(y []float64) error {
	if len(y) == 0 {
		return fmt.Errorf("%w: empty spectrum", ErrInvalidInput)
	}

	if i := core.FirstNonFinite(y); i >= 0 {
		return fmt.Errorf("%w: non-finite sample at %d", ErrInvalidInput, i)
	}

	return nil
}

// Result is the outcome of one BubbleFill estimation.
type Result struct {
	// Baseline has the length of the input and never exceeds it by more
	// than Epsilon.
	Baseline []float64
	// Iterations is the number of growth passes run.
	Iterations int
	Status     Status
	// Delta is the largest lift of the last pass.
	Delta float64
}

// Converged reports whether the growth loop settled before the pass limit.
func (r Result) Converged() bool {
	return r.Status == StatusConverged
}

// Warning returns an error wrapping ErrNonConvergence when the pass limit
// was reached, nil otherwise.
func (r Result) Warning() error {
	if r.Status != StatusMaxIterations {
		return nil
	}

	return fmt.Errorf("%w: %d passes, last lift %g", ErrNonConvergence, r.Iterations, r.Delta)
}

// Residual returns spectrum minus the baseline, the Raman signal.
func (r Result) Residual(spectrum []float64) []float64 {
	n := min(len(spectrum), len(r.Baseline))
	out := make([]float64, n)
	vecmath.ScaleBlock(out, r.Baseline[:n], -1)
	vecmath.AddBlockInPlace(out, spectrum[:n])

	return out
}

// Estimator runs BubbleFill with a fixed configuration and reuses its
// scratch buffers between calls. It is not safe for concurrent use.
type Estimator struct {
	cfg    Config
	log    *slog.Logger
	widths []int
	half   []int
	grow   grower
	blend  assembler
}

// NewEstimator validates opts and returns a ready estimator.
func NewEstimator(opts ...Option) (*Estimator, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Estimator{
		cfg: cfg,
		log: cfg.logger(),
		blend: assembler{
			ratio:     cfg.BlendRatio,
			maxRadius: cfg.MaxBlendRadius,
		},
	}, nil
}

// Config returns the estimator configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Process estimates the baseline of spectrum. The input is not modified
// and the returned baseline is a fresh slice.
//
// Hitting the pass limit is not an error: the result carries
// StatusMaxIterations and Warning reports it.
func (e *Estimator) Process(spectrum []float64) (Result, error) {
	if err := validateSamples(spectrum); err != nil {
		return Result{}, err
	}

	widths, err := scheduleInto(e.widths, len(spectrum), e.cfg.MinWidth, e.cfg.Overrides)
	if err != nil {
		return Result{}, err
	}

	e.widths = widths
	e.half = halfWidthsInto(e.half, widths)

	ctx := context.Background()
	base := make([]float64, len(spectrum))
	e.grow.reset(e.half, e.cfg.Epsilon)
	e.grow.init(spectrum, base)
	e.log.Log(ctx, slog.LevelDebug, "bubblefill start",
		slog.String("stage", StageInit.String()),
		slog.Int("length", len(spectrum)),
		slog.Int("min_width", e.cfg.MinWidth),
		slog.Int("overrides", len(e.cfg.Overrides)),
	)

	res := Result{Baseline: base, Status: StatusMaxIterations}
	for res.Iterations < e.cfg.MaxIterations {
		res.Iterations++
		res.Delta = e.grow.pass(spectrum, base)
		e.log.Log(ctx, slog.LevelDebug, "bubblefill pass",
			slog.String("stage", StageGrowing.String()),
			slog.Int("iteration", res.Iterations),
			slog.Float64("delta", res.Delta),
		)

		if res.Delta < e.cfg.Epsilon {
			res.Status = StatusConverged
			break
		}
	}

	if res.Converged() {
		e.log.Debug("bubblefill converged",
			slog.String("stage", StageConverged.String()),
			slog.Int("iterations", res.Iterations),
		)
	} else {
		e.log.Warn("bubblefill did not converge",
			slog.String("stage", StageMaxIterReached.String()),
			slog.String("event_type", "non_convergence"),
			slog.Int("iterations", res.Iterations),
			slog.Float64("delta", res.Delta),
		)
	}

	seams := e.blend.blend(spectrum, base, widths)
	e.log.Debug("bubblefill assembled",
		slog.String("stage", StageAssembled.String()),
		slog.Int("seams", seams),
	)

	return res, nil
}

// Estimate runs BubbleFill once on spectrum.
func Estimate(spectrum []float64, opts ...Option) (Result, error) {
	e, err := NewEstimator(opts...)
	if err != nil {
		return Result{}, err
	}

	return e.Process(spectrum)
}

// EstimateSpectrum validates the axis of s and estimates the baseline of
// s.Y.
func EstimateSpectrum(s Spectrum, opts ...Option) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	return Estimate(s.Y, opts...)
}

// EstimateBaseline returns the BubbleFill baseline of spectrum using
// minWidth wherever no override applies. A baseline cut short by the
// pass limit is returned without error; use [Estimate] to observe it.
func EstimateBaseline(spectrum []float64, minWidth int, overrides ...Override) ([]float64, error) {
	res, err := Estimate(spectrum, WithMinWidth(minWidth), WithOverrides(overrides...))
	if err != nil {
		return nil, err
	}

	return res.Baseline, nil
}
