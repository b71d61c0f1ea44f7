package engine

import (
	"log/slog"
	"sync"
)

// Pool is the search worker pool, sized by the "Threads" option. Workers sit
// idle until Submit hands them work; Set grows or shrinks the pool in place.
type Pool struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	jobs    chan func()
	workers []chan struct{} // per-worker quit channels
}

// NewPool starts a pool with n workers.
func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan func(), 64)}
	p.Set(n)
	return p
}

// Set adjusts the pool to exactly n workers. Shrinking stops the surplus
// workers after they finish their current job; it does not cancel queued work.
func (p *Pool) Set(n int) {
	if n < 1 {
		n = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.workers) < n {
		quit := make(chan struct{})
		p.workers = append(p.workers, quit)
		p.wg.Add(1)
		go p.work(quit)
	}
	for len(p.workers) > n {
		last := len(p.workers) - 1
		close(p.workers[last])
		p.workers = p.workers[:last]
	}
	slog.Debug("Resized search worker pool.", "workers", n)
}

// Size returns the current worker count.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

// Submit queues fn for execution on some worker.
func (p *Pool) Submit(fn func()) {
	p.jobs <- fn
}

// Close stops every worker and waits for them to exit. Queued jobs that no
// worker picked up are dropped.
func (p *Pool) Close() {
	p.mu.Lock()
	for _, quit := range p.workers {
		close(quit)
	}
	p.workers = nil
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pool) work(quit chan struct{}) {
	defer p.wg.Done()
	for {
		select {
		case <-quit:
			return
		case fn := <-p.jobs:
			fn()
		}
	}
}
