// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "code.hybscloud.com/atomix"

// Stepping boundary for external runtimes. Step provides shallow
// one-effect-at-a-time evaluation, unlike [Handle]/[Interpret] which run
// a synchronous trampoline to completion.

// Suspension represents a computation suspended on an effect operation:
// the pending operation plus a one-shot resumption handle.
//
// Affine semantics: Resume may be called at most once; a second call
// panics with *DoubleResumeError. Use Discard to explicitly abandon a
// suspension.
type Suspension[A any] struct {
	used atomix.Uint32
	op   Operation
	s    suspension
}

// Step drives m until it either completes or suspends on an effect.
// Returns (value, nil) on completion, or (zero, suspension) if pending.
//
//	result, susp := eff.Step(computation)
//	for susp != nil {
//	    v := answer(susp.Op())
//	    result, susp = susp.Resume(v)
//	}
func Step[A any](m Eff[A]) (A, *Suspension[A]) {
	return classify[A](m(toResumed[A]))
}

// classify examines a Resumed value as either a completed value or a
// suspension carrying the continuation state. A nil result completes
// with the zero value.
func classify[A any](r Resumed) (A, *Suspension[A]) {
	if s, ok := r.(suspension); ok {
		var zero A
		return zero, &Suspension[A]{op: s.Op(), s: s}
	}
	if r == nil {
		var zero A
		return zero, nil
	}
	return r.(A), nil
}

// Op returns the effect operation that caused the suspension.
func (s *Suspension[A]) Op() Operation { return s.op }

// Resume advances the computation with v, returning either a completed
// value (with nil suspension) or the next suspension. Resuming with a
// value outside the operation's declared result type panics with
// *TypeMismatchError; resuming twice panics with *DoubleResumeError.
func (s *Suspension[A]) Resume(v Resumed) (A, *Suspension[A]) {
	if s.used.Add(1) != 1 {
		panic(&DoubleResumeError{})
	}
	return classify[A](s.s.Resume(v))
}

// TryResume attempts to advance the computation.
// Reports false if the suspension has already been used.
func (s *Suspension[A]) TryResume(v Resumed) (A, *Suspension[A], bool) {
	if s.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	a, next := classify[A](s.s.Resume(v))
	return a, next, true
}

// Discard marks the suspension as consumed without resuming.
func (s *Suspension[A]) Discard() {
	s.used.Store(1)
}
