// SPDX-License-Identifier: MIT
// Package: lvquad/batch
//
// processor.go — concurrent evaluation of jobs.

package batch

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvquad/quadrature"
	"github.com/katalvlaran/lvquad/sampler"
)

// Result is the outcome of one Job. Index is the job's position in the
// slice passed to Process.
type Result struct {
	Index int
	Name  string
	Rule  quadrature.Rule
	Value float64
	Err   error
}

// Processor evaluates jobs on a worker pool.
type Processor struct {
	workers int
	cache   *WeightCache
	opts    []quadrature.Option
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithCache shares weight vectors between jobs through c. Panics on nil.
func WithCache(c *WeightCache) ProcessorOption {
	if c == nil {
		panic("batch: WithCache(nil)")
	}
	return func(p *Processor) {
		p.cache = c
	}
}

// WithIntegrateOptions forwards options (e.g. quadrature.WithNonFinite) to
// every integral.
func WithIntegrateOptions(opts ...quadrature.Option) ProcessorOption {
	return func(p *Processor) {
		p.opts = append(p.opts, opts...)
	}
}

// NewProcessor creates a processor with the given concurrency (< 1 means 1).
func NewProcessor(workers int, opts ...ProcessorOption) *Processor {
	if workers < 1 {
		workers = 1
	}
	p := &Processor{workers: workers}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process evaluates every job and returns len(jobs) results ordered by
// Index. Jobs not run because ctx ended carry ctx.Err().
func (p *Processor) Process(ctx context.Context, jobs []Job) []Result {
	if len(jobs) == 0 {
		return []Result{}
	}

	qopts := p.integrateOptions()
	wp := newPool(ctx, p.workers)
	wp.start()

	klog.V(2).InfoS("batch started", "jobs", len(jobs), "workers", p.workers)
	for i := range jobs {
		idx, job := i, jobs[i]
		if !wp.submit(func(ctx context.Context) Result {
			return runJob(ctx, idx, job, qopts)
		}) {
			break
		}
	}

	got := wp.wait()
	out := make([]Result, len(jobs))
	filled := make([]bool, len(jobs))
	for _, r := range got {
		out[r.Index] = r
		filled[r.Index] = true
	}
	for i := range out {
		if !filled[i] {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			out[i] = Result{Index: i, Name: jobs[i].Name, Rule: jobs[i].Rule, Err: err}
		}
	}

	failed := 0
	for _, r := range out {
		if r.Err != nil {
			failed++
		}
	}
	if p.cache != nil {
		hits, misses := p.cache.Stats()
		klog.V(2).InfoS("batch finished", "jobs", len(jobs), "failed", failed, "cacheHits", hits, "cacheMisses", misses)
	} else {
		klog.V(2).InfoS("batch finished", "jobs", len(jobs), "failed", failed)
	}
	return out
}

func (p *Processor) integrateOptions() []quadrature.Option {
	opts := make([]quadrature.Option, 0, len(p.opts)+1)
	if p.cache != nil {
		opts = append(opts, quadrature.WithWeightSource(p.cache))
	}
	return append(opts, p.opts...)
}

// runJob evaluates one job; it never panics on bad input.
func runJob(ctx context.Context, idx int, job Job, opts []quadrature.Option) Result {
	res := Result{Index: idx, Name: job.Name, Rule: job.Rule}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	if err := job.Validate(); err != nil {
		res.Err = err
		klog.ErrorS(err, "job rejected", "job", job.Name)
		return res
	}

	if job.Func != "" {
		f, err := sampler.Resolve(job.Func)
		if err != nil {
			res.Err = fmt.Errorf("job %q: %w", job.Name, err)
			return res
		}
		res.Value, res.Err = quadrature.IntegrateFunc(f, job.Rule, job.X1, job.X2, job.N, opts...)
	} else {
		res.Value, res.Err = quadrature.Integrate(job.Samples, job.Rule, job.X1, job.X2, opts...)
	}

	if res.Err != nil {
		klog.ErrorS(res.Err, "job failed", "job", job.Name, "rule", job.Rule)
	} else {
		klog.V(3).InfoS("job done", "job", job.Name, "rule", job.Rule, "value", res.Value)
	}
	return res
}
