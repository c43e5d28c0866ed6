// Package perf times list operations against the same operations on a Go
// slice, over a sweep of lengths.
package perf

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/smartwalle/linkedlist"
)

type Option func(opts *options)

type options struct {
	logger *log.Logger
	rand   *rand.Rand
	now    func() time.Time
}

func WithLogger(logger *log.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithRand(r *rand.Rand) Option {
	return func(opts *options) {
		opts.rand = r
	}
}

// WithClock replaces time.Now for measurements.
func WithClock(now func() time.Time) Option {
	return func(opts *options) {
		opts.now = now
	}
}

// Sample holds the mean time of N operations at one length.
type Sample struct {
	Length int
	Slice  time.Duration
	List   time.Duration
}

type Result struct {
	Op      Op
	Samples []Sample
	// Truncated is set when a round ran over the budget and the sweep stopped.
	Truncated bool
}

type Runner struct {
	cfg  Config
	opts *options
}

func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var r = &Runner{}
	r.cfg = cfg
	r.opts = &options{}
	for _, opt := range opts {
		opt(r.opts)
	}
	if r.opts.logger == nil {
		r.opts.logger = log.New(io.Discard, "", 0)
	}
	if r.opts.rand == nil {
		r.opts.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if r.opts.now == nil {
		r.opts.now = time.Now
	}
	return r, nil
}

// RunAll runs every configured op in order.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	var results = make([]Result, 0, len(r.cfg.Ops))
	for _, op := range r.cfg.Ops {
		var res, err = r.Run(ctx, op)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) Run(ctx context.Context, op Op) (Result, error) {
	var res = Result{Op: op}
	r.opts.logger.Printf("running %s: lengths 1..%d step %d, n=%d, repeats=%d", op, r.cfg.MaxLength-1, r.cfg.Step, r.cfg.N, r.cfg.Repeats)

	for length := 1; length < r.cfg.MaxLength; length += r.cfg.Step {
		var sample = Sample{Length: length}
		for i := 0; i < r.cfg.Repeats; i++ {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			var start = r.opts.now()
			var sliceTime, listTime, err = r.round(op, length)
			if err != nil {
				return res, err
			}
			sample.Slice += sliceTime
			sample.List += listTime

			if r.cfg.Budget > 0 && r.opts.now().Sub(start) > r.cfg.Budget {
				r.opts.logger.Printf("%s: round at length %d exceeded budget %s, stopping", op, length, r.cfg.Budget)
				sample.Slice /= time.Duration(i + 1)
				sample.List /= time.Duration(i + 1)
				res.Samples = append(res.Samples, sample)
				res.Truncated = true
				return res, nil
			}
		}
		sample.Slice /= time.Duration(r.cfg.Repeats)
		sample.List /= time.Duration(r.cfg.Repeats)
		res.Samples = append(res.Samples, sample)
		r.opts.logger.Printf("%s: length %d slice=%s list=%s", op, length, sample.Slice, sample.List)
	}
	return res, nil
}

// round builds a list and a slice of length random values and times the
// same N operations on each.
func (r *Runner) round(op Op, length int) (sliceTime, listTime time.Duration, err error) {
	var values = make([]float64, r.cfg.N)
	var indexes = make([]int, r.cfg.N)
	for i := range values {
		values[i] = r.opts.rand.Float64()
		indexes[i] = r.opts.rand.IntN(length + 1)
	}

	var l = linkedlist.New[float64]()
	var s = make([]float64, 0, length)
	for i := 0; i < length; i++ {
		l.Prepend(r.opts.rand.Float64())
		s = append(s, r.opts.rand.Float64())
	}

	var start = r.opts.now()
	if err = runList(op, l, values, indexes); err != nil {
		return 0, 0, fmt.Errorf("%s at length %d: %w", op, length, err)
	}
	listTime = r.opts.now().Sub(start)

	start = r.opts.now()
	runSlice(op, s, values, indexes)
	sliceTime = r.opts.now().Sub(start)
	return sliceTime, listTime, nil
}

var sink float64

func runList(op Op, l *linkedlist.List[float64], values []float64, indexes []int) error {
	switch op {
	case OpAppend:
		for _, v := range values {
			l.Append(v)
		}
	case OpPrepend:
		for _, v := range values {
			l.Prepend(v)
		}
	case OpInsert:
		for i, v := range values {
			if _, err := l.Insert(indexes[i], v); err != nil {
				return err
			}
		}
	case OpIterate:
		for range values {
			for n := range l.Nodes() {
				sink += n.Value()
			}
		}
	}
	return nil
}

func runSlice(op Op, s []float64, values []float64, indexes []int) {
	switch op {
	case OpAppend:
		for _, v := range values {
			s = append(s, v)
		}
	case OpPrepend:
		for _, v := range values {
			s = slices.Insert(s, 0, v)
		}
	case OpInsert:
		for i, v := range values {
			s = slices.Insert(s, indexes[i], v)
		}
	case OpIterate:
		for range values {
			for _, v := range s {
				sink += v
			}
		}
	}
}
