// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Gen is a resumable generator producing a final value of type T.
// Generators are defunctionalized: instead of native coroutine frames, a
// generator is a lazily built chain of yield nodes, each carrying the
// suspension value and the function that continues the chain with the
// value taken from the cell at resume time.
type Gen[T any] interface {
	gen() // unexported marker method
}

// genDone signals generator completion.
type genDone[T any] struct {
	result T
}

func (genDone[T]) gen() {}

// genStep is a generator suspended on a yield.
// next receives the value the driver wrote into the cell.
type genStep[T any] struct {
	out  Yield[T]
	next func(T) Gen[T]
}

func (genStep[T]) gen() {}

// Done completes the generator with v.
func Done[T any](v T) Gen[T] {
	return genDone[T]{result: v}
}

// Yielding suspends on an arbitrary yield shape; next continues with the
// value written back by the driver.
func Yielding[T any](y Yield[T], next func(T) Gen[T]) Gen[T] {
	return genStep[T]{out: y, next: next}
}

// Emit yields a plain value. Under [Drive], next receives the emitted
// value back after the cell round trip.
func Emit[T any](v T, next func(T) Gen[T]) Gen[T] {
	return genStep[T]{out: Val[T]{Value: v}, next: next}
}

// Delegate spawns an inner generator and continues with its final result.
// The inner generator's yields are driven by the same trampoline; its
// handoffs surface through the same abort capability.
func Delegate[T any](build func(*Cell[T]) Gen[T], next func(T) Gen[T]) Gen[T] {
	return genStep[T]{out: Spawn[T]{Build: build}, next: next}
}

// Await hands control to an external driver and continues with the value
// passed to the handoff's resume token.
func Await[T any](f func(Abort[T], Next[T]), next func(T) Gen[T]) Gen[T] {
	return genStep[T]{out: Handoff[T]{F: f}, next: next}
}
