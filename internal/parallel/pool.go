// Package parallel runs independent pipeline bands on a pool of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// task is one queued band run. done is signalled when it returns.
type task struct {
	fn   func()
	done *sync.WaitGroup
}

func (t task) run() {
	defer t.done.Done()
	t.fn()
}

// WorkerPool renders bands of a raster on a fixed set of goroutines.
//
// Bands are dealt to per-worker queues; an idle worker takes bands queued
// for its neighbors so a slow band does not hold up the rest of the image.
// A pipeline binding is not shared between bands, so each band builds its
// own.
type WorkerPool struct {
	queues []chan task
	stop   chan struct{}
	exited sync.WaitGroup
	open   atomic.Bool
}

// NewWorkerPool starts n workers, or GOMAXPROCS workers when n <= 0.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	depth := max(4*n, 8)

	p := &WorkerPool{
		queues: make([]chan task, n),
		stop:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan task, depth)
	}
	p.open.Store(true)

	p.exited.Add(n)
	for i := 0; i < n; i++ {
		go p.loop(i)
	}
	return p
}

func (p *WorkerPool) loop(self int) {
	defer p.exited.Done()
	mine := p.queues[self]
	for {
		select {
		case <-p.stop:
			flush(mine)
			return
		case t := <-mine:
			t.run()
			continue
		default:
		}
		if t, ok := p.takeOther(self); ok {
			t.run()
			continue
		}
		select {
		case <-p.stop:
			flush(mine)
			return
		case t := <-mine:
			t.run()
		}
	}
}

// flush runs whatever is left in q.
func flush(q chan task) {
	for {
		select {
		case t := <-q:
			t.run()
		default:
			return
		}
	}
}

// takeOther pops one task queued for another worker.
func (p *WorkerPool) takeOther(self int) (task, bool) {
	for i, q := range p.queues {
		if i == self {
			continue
		}
		select {
		case t := <-q:
			return t, true
		default:
		}
	}
	return task{}, false
}

// ExecuteAll runs every function on the pool and returns once all have
// finished. A closed pool runs them on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.open.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(work))
	for i, fn := range work {
		t := task{fn: fn, done: &done}
		select {
		case p.queues[i%len(p.queues)] <- t:
		case <-p.stop:
			t.run()
		}
	}
	done.Wait()
}

// RunBands cuts rows [0, height) into bands of at most rows rows and
// renders each with fn.
func (p *WorkerPool) RunBands(height, rows int, fn func(Band)) {
	bands := Bands(height, rows)
	work := make([]func(), len(bands))
	for i, b := range bands {
		b := b
		work[i] = func() { fn(b) }
	}
	p.ExecuteAll(work)
}

// Close lets queued bands finish and stops the workers. Later calls do
// nothing.
func (p *WorkerPool) Close() {
	if !p.open.CompareAndSwap(true, false) {
		return
	}
	close(p.stop)
	p.exited.Wait()
}

// Workers reports how many goroutines render bands.
func (p *WorkerPool) Workers() int {
	return len(p.queues)
}
