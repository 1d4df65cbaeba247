// Package driver runs target triple checks over batches of inputs.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bytecodealliance/target-lexicon/internal/logging"
	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

// NotCanonicalError reports an input that parses but is not written in
// canonical form. It is only produced when CheckOptions.Strict is set.
type NotCanonicalError struct {
	Input     string
	Canonical string
}

func (e *NotCanonicalError) Error() string {
	return fmt.Sprintf("%q is not canonical (canonical form is %q)", e.Input, e.Canonical)
}

// UnstableError reports a canonical form that does not reproduce itself. It
// means the vocabulary tables or the formatter are broken.
type UnstableError struct {
	Input  string
	First  string
	Second string
}

func (e *UnstableError) Error() string {
	return fmt.Sprintf("canonical form of %q is unstable: %q then %q", e.Input, e.First, e.Second)
}

// CheckResult is the outcome of checking one input.
type CheckResult struct {
	Input     string
	Triple    triple.Triple
	Canonical string // empty when parsing failed
	Err       error
	Elapsed   time.Duration
}

// OK reports whether the input passed.
func (r CheckResult) OK() bool { return r.Err == nil }

// CheckOptions configures CheckTriples.
type CheckOptions struct {
	// Jobs limits parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Strict additionally requires every input to be in canonical form.
	Strict bool
	// Progress receives per-input events. Nil discards them.
	Progress ProgressSink
}

// CheckTriples parses every input, formats it and reparses the canonical form
// to verify that canonicalization is idempotent. Results are returned in input
// order; per-input failures are reported in CheckResult.Err, and the returned
// error is only set when ctx is cancelled.
func CheckTriples(ctx context.Context, inputs []string, opts CheckOptions) ([]CheckResult, error) {
	results := make([]CheckResult, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}
	for i, in := range inputs {
		results[i].Input = in
	}
	sink := opts.Progress
	if sink == nil {
		sink = nopSink{}
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log := logging.Logger()
	log.Debug("checking triples", zap.Int("count", len(inputs)), zap.Int("jobs", jobs))

	for i, in := range inputs {
		sink.OnEvent(Event{Index: i, Input: in, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i].Err = gctx.Err()
				sink.OnEvent(Event{Index: i, Input: in, Status: StatusError, Err: results[i].Err})
				return gctx.Err()
			default:
			}
			start := time.Now()
			sink.OnEvent(Event{Index: i, Input: in, Status: StatusWorking})

			// Индекс i уникален для каждой горутины, мьютекс не нужен.
			results[i] = checkOne(in, opts.Strict)
			results[i].Elapsed = time.Since(start)

			status := StatusDone
			if results[i].Err != nil {
				status = StatusError
				log.Debug("triple rejected", zap.String("input", in), zap.Error(results[i].Err))
			}
			sink.OnEvent(Event{Index: i, Input: in, Status: status, Err: results[i].Err, Elapsed: results[i].Elapsed})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func checkOne(in string, strict bool) CheckResult {
	res := CheckResult{Input: in}
	t, err := triple.Parse(in)
	if err != nil {
		res.Err = err
		return res
	}
	res.Triple = t
	res.Canonical = t.String()

	again, err := triple.Parse(res.Canonical)
	if err != nil {
		res.Err = fmt.Errorf("reparse canonical form %q: %w", res.Canonical, err)
		return res
	}
	if again != t || again.String() != res.Canonical {
		res.Err = &UnstableError{Input: in, First: res.Canonical, Second: again.String()}
		return res
	}
	if strict && res.Canonical != in {
		res.Err = &NotCanonicalError{Input: in, Canonical: res.Canonical}
	}
	return res
}

// Summary counts passed and failed results.
func Summary(results []CheckResult) (passed, failed int) {
	for _, r := range results {
		if r.OK() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
