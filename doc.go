// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff provides a runtime for resumable computations and a
// prototype algebraic effect system in Go.
//
// Computations declare typed effects they perform; handlers installed by
// a caller intercept those effects, decide a result, and resume the
// suspended computation with it. The runtime is a trampoline that
// suspends and resumes deeply nested frames without growing the native
// call stack, with composable handler installation and a strict
// exactly-once resumption contract for continuations.
//
// Execution is strictly single-threaded and cooperative: suspension
// points are exactly the perform/yield points, and between suspensions
// execution is fully synchronous. Effects are observed by handlers in the
// exact order they are performed.
//
// # Generator Protocol
//
// The lowest layer is a generator protocol: a [Gen] is a defunctionalized
// resumable computation built from yield nodes instead of native
// coroutine frames. A generator suspends with one of three [Yield]
// shapes:
//
//   - [Val]: produce a plain value and continue on the next resume
//   - [Spawn]: delegate to a nested generator and resume with its result
//   - [Handoff]: hand control to an external driver with explicit
//     abort and resume capabilities
//
// Constructors: [Done], [Emit], [Delegate], [Await], [Yielding].
//
// # Continuation Cell
//
// [Cell] is the single-slot holder passing a resumed value back into a
// suspended generator: written exactly once by the driver before each
// resume, read and cleared exactly once by the resumed generator.
// Reading an empty cell is a driver defect (*EmptyCellError).
//
// # Trampoline
//
// [Drive] resumes a generator repeatedly: an explicit loop for [Val]
// (suspension count is unbounded — no native recursion), a recursive
// sub-drive for [Spawn] (depth bounded by delegation structure), and an
// early return for [Handoff] (resumption is driven externally through the
// one-shot token). [RunGen] is the convenience runner whose abort
// capability completes the drive with the aborted value.
//
// # Effects
//
// Effects are nominal types implementing the F-bounded [Op] constraint,
// pairing each operation with its declared result type; embed [Phantom]
// for the marker method. [Perform] suspends the computation, bundling the
// operation with a continuation that accepts exactly the declared result
// type. [Interpret] is the low-level erased trampoline loop answering
// operations with a [DispatchFunc].
//
// # Handlers
//
// [Handle] installs a handler for one effect type around a computation:
// a pure case converting normal completion, and an effect case receiving
// the payload and a one-shot [Continuation]. The reaction either resumes
// the token, aborts the computation with a final value, or — as a usage
// error — abandons it (*AbandonedContinuationError). Non-matching
// effects are re-suspended for the enclosing layer; handlers stack by
// nesting, innermost first. [Run] drives a fully handled computation and
// reports any operation that reached the top unanswered
// (*UnhandledEffectError).
//
// # Delegation
//
// [PerformFrom] runs an inner effectful computation inside an outer one,
// re-suspending every inner effect through the outer channel so the
// outer handlers intercept them. Its generator-protocol counterpart is
// the [Spawn] shape.
//
// # Stepping and External Driving
//
// [Step] evaluates one effect at a time, yielding a [Suspension] with
// the pending operation and a one-shot resumption handle — the
// integration point for external runtimes. [ToGen] lowers an effectful
// computation into the generator protocol, surfacing every operation as
// a [Handoff] to a [Sink]. [Pump] and [RunPump] drive such computations
// on a single loop while sinks answer from arbitrary goroutines;
// completions are serialized through a bounded lock-free ring.
//
// # Standard Effects
//
// [Get]/[Put] with [RunState], [Ask] with [RunReader], and [Tell] with
// [RunWriter] are the teacher-book effects expressed as stacked deep
// handlers on the public [Handle] surface.
//
// # Errors
//
// Usage-discipline violations panic with typed errors at the violation
// site and are recovered into returned errors by the outermost drivers:
// *DoubleResumeError, *AbandonedContinuationError, *TypeMismatchError,
// *UnhandledEffectError. *EmptyCellError is an internal invariant
// violation and is never recovered.
//
// # Example
//
//	type Ask struct{ eff.Phantom[int] }
//
//	comp := eff.Bind(eff.Perform(Ask{}), func(x int) eff.Eff[int] {
//		return eff.Pure(x * 2)
//	})
//
//	handled := eff.Handle[Ask, int, int, int](comp,
//		eff.PureCase[int],
//		func(_ Ask, k *eff.Continuation[int, int]) eff.Eff[int] {
//			return k.Resume(21)
//		},
//	)
//	result, err := eff.Run(handled)
//	// result == 42, err == nil
package eff
