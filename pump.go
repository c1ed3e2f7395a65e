// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Pump executes externally completed handoff resumptions on a single
// loop. Sinks may answer operations from any goroutine; the completions
// are queued on a bounded lock-free SPSC ring and executed one at a time
// on the goroutine that owns the pump, so the driven computation stays
// single-threaded and cooperative.
type Pump struct {
	ready lfq.SPSC[func()]
}

// NewPump creates a pump with the given ready-ring capacity.
func NewPump(capacity int) *Pump {
	p := &Pump{}
	p.ready.Init(capacity)
	return p
}

// Submit schedules f for execution on the pump loop.
// Blocks with adaptive backoff while the ring is full.
func (p *Pump) Submit(f func()) {
	var bo iox.Backoff
	for p.ready.Enqueue(&f) != nil {
		bo.Wait()
	}
}

// RunPump drives m to completion on the calling goroutine, which becomes
// the pump loop. Every operation m performs is delivered to sink together
// with the abort capability and a one-shot resume token; both are safe to
// invoke from any goroutine — the actual resumption always executes on
// the pump loop.
//
// RunPump returns when the computation completes or a handler aborts it.
// A sink that answers no token leaves the loop waiting; there is no
// timeout mechanism. Discipline violations are recovered into the
// returned error as in [Run].
func RunPump[A any](p *Pump, m Eff[A], sink Sink) (result A, err error) {
	defer func() {
		err = recoverUsage(recover(), err)
	}()

	var done atomix.Uint32
	finish := func(v Resumed) {
		if v != nil {
			a, ok := v.(A)
			if !ok {
				panic(&TypeMismatchError{Value: v})
			}
			result = a
		}
		done.Store(1)
	}
	abort := func() Next[Resumed] {
		a := Once(finish)
		return func(v Resumed) {
			p.Submit(func() { a.Resume(v) })
		}
	}
	deliver := func(op Operation, ab Abort[Resumed], next Next[Resumed]) {
		sink(op, ab, func(v Resumed) {
			p.Submit(func() { next(v) })
		})
	}

	cell := NewCell[Resumed]()
	p.Submit(func() {
		Drive(ToGen(m, deliver)(cell), cell, abort, finish)
	})

	var bo iox.Backoff
	for done.Load() == 0 {
		f, derr := p.ready.Dequeue()
		if derr != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
		f()
	}
	return result, nil
}
