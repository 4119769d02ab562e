// SPDX-License-Identifier: MIT
// Package: lvquad/batch
//
// pool.go — fixed-size worker pool.

package batch

import (
	"context"
	"sync"
)

// task is a unit of work producing one Result.
type task func(ctx context.Context) Result

// pool executes tasks on a fixed number of goroutines. Results are drained
// continuously by a collector so producers never deadlock on a full buffer.
type pool struct {
	workers   int
	queue     chan task
	results   chan Result
	collected []Result
	wg        sync.WaitGroup
	done      chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// newPool creates a pool bound to ctx. workers < 1 is treated as 1.
func newPool(ctx context.Context, workers int) *pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	return &pool{
		workers: workers,
		queue:   make(chan task, workers*2),
		results: make(chan Result, workers*2),
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// start launches the workers and the collector.
func (p *pool) start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go func() {
		defer close(p.done)
		for r := range p.results {
			p.collected = append(p.collected, r)
		}
	}()
}

func (p *pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case t, ok := <-p.queue:
			if !ok {
				return
			}
			p.results <- t(p.ctx)
		}
	}
}

// submit enqueues t. It reports false when the pool's context is done.
func (p *pool) submit(t task) bool {
	select {
	case <-p.ctx.Done():
		return false
	case p.queue <- t:
		return true
	}
}

// wait closes the queue, waits for the workers and returns every collected
// result in completion order.
func (p *pool) wait() []Result {
	p.closeOnce.Do(func() { close(p.queue) })
	p.wg.Wait()
	close(p.results)
	<-p.done
	p.cancel()
	return p.collected
}
