// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "code.hybscloud.com/atomix"

// Continuation is the one-shot resumption token passed to a handler's
// effect case. It wraps the rest of the handled computation; the handler
// must either Resume it with a value of the effect's declared result
// type, or Abort the computation with a final result. Doing neither is an
// *AbandonedContinuationError; doing either twice is a
// *DoubleResumeError.
type Continuation[A, R any] struct {
	used  atomix.Uint32
	s     suspension
	drive func(Resumed, func(R) Resumed) Resumed
}

// Resume returns the computation that resumes the suspended frame chain
// with v and continues the handled computation under the same handler.
// Its final value is the handled computation's eventual result at the
// point the reaction uses it.
func (c *Continuation[A, R]) Resume(v A) Eff[R] {
	return func(k func(R) Resumed) Resumed {
		if c.used.Add(1) != 1 {
			panic(&DoubleResumeError{})
		}
		return c.drive(c.s.Resume(v), k)
	}
}

// Abort discards the rest of the handled computation and completes with r
// immediately. The suspended frame chain never executes, and the
// handler's pure case is bypassed.
func (c *Continuation[A, R]) Abort(r R) Eff[R] {
	return func(k func(R) Resumed) Resumed {
		if c.used.Add(1) != 1 {
			panic(&DoubleResumeError{})
		}
		return k(r)
	}
}

func (c *Continuation[A, R]) consumed() bool {
	return c.used.Load() != 0
}

// PureCase is the identity pure case for [Handle]: the handled
// computation's final value passes through unchanged.
func PureCase[R any](r R) Eff[R] {
	return Pure(r)
}

// Handle installs a handler for effect type O around computation m.
//
//   - If m completes normally, pure converts the final value into the
//     outer representation.
//   - If m performs an operation of type O, react receives the payload
//     and a one-shot [Continuation]; it returns a new effectful
//     computation that typically ends by resuming or aborting the token.
//     Effects performed by the reaction itself surface to the enclosing
//     layer.
//   - Operations of any other type are re-suspended unchanged, so an
//     enclosing Handle layer — or [Run], if nobody answers — receives
//     them with the continuation chain intact.
//
// Handlers stack by nesting calls; the innermost layer is consulted first
// for each performed effect.
func Handle[O Op[O, A], A, T, R any](
	m Eff[T],
	pure func(T) Eff[R],
	react func(O, *Continuation[A, R]) Eff[R],
) Eff[R] {
	var drive func(r Resumed, k func(R) Resumed) Resumed
	drive = func(r Resumed, k func(R) Resumed) Resumed {
		s, ok := r.(suspension)
		if !ok {
			if r == nil {
				var zero T
				return pure(zero)(k)
			}
			return pure(r.(T))(k)
		}
		op, ok := s.Op().(O)
		if !ok {
			// Forward to the enclosing handler, preserving the chain.
			return &marker{op: s.Op(), resume: func(v Resumed) Resumed {
				return drive(s.Resume(v), k)
			}}
		}
		c := &Continuation[A, R]{s: s, drive: drive}
		return react(op, c)(func(res R) Resumed {
			if !c.consumed() {
				panic(&AbandonedContinuationError{})
			}
			return k(res)
		})
	}
	return func(k func(R) Resumed) Resumed {
		return drive(m(toResumed[T]), k)
	}
}
