// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Drive runs generator g until it completes or hands control to an
// external driver. The cell is the single value slot shared between the
// driver and the generator; it must be exclusively owned by this drive.
//
// Branching per suspension shape:
//
//   - [Val]: the value is written into the cell and the generator is
//     resumed immediately. This is an explicit loop — the yield count is
//     unbounded and must not grow the call stack.
//   - [Spawn]: a fresh inner generator and cell are constructed and
//     driven to completion; the inner result lands in the outer cell and
//     the outer generator resumes. Call depth grows with delegation
//     depth, which is bounded by program structure.
//   - [Handoff]: the callback receives the abort capability and a
//     one-shot resume token, and Drive returns. Resumption happens later,
//     driven by whoever holds the token.
//
// On completion, done receives the final value. For any finite
// computation, Drive either yields a handoff or calls done — it never
// drops a result.
func Drive[T any](g Gen[T], cell *Cell[T], abort Abort[T], done func(T)) {
	for {
		step, ok := g.(genStep[T])
		if !ok {
			done(g.(genDone[T]).result)
			return
		}
		switch y := step.out.(type) {
		case Val[T]:
			cell.Put(y.Value)
			g = step.next(cell.Take())
		case Spawn[T]:
			inner := NewCell[T]()
			Drive(y.Build(inner), inner, abort, func(result T) {
				cell.Put(result)
				Drive(step.next(cell.Take()), cell, abort, done)
			})
			return
		case Handoff[T]:
			y.F(abort, resumeToken(step.next, cell, abort, done))
			return
		default:
			panic("eff: unknown yield shape")
		}
	}
}

// resumeToken builds the one-shot resume handed to handoff callbacks.
// Invoking it writes the value through the cell and re-enters the driver.
func resumeToken[T any](next func(T) Gen[T], cell *Cell[T], abort Abort[T], done func(T)) Next[T] {
	a := Once(func(v T) {
		cell.Put(v)
		Drive(next(cell.Take()), cell, abort, done)
	})
	return a.Resume
}

// RunGen drives a generator built over a fresh cell.
// The abort capability completes the drive with the aborted value.
// Reports false when the generator handed off without ever completing.
func RunGen[T any](build func(*Cell[T]) Gen[T]) (T, bool) {
	var (
		result    T
		completed bool
	)
	finish := func(v T) {
		result, completed = v, true
	}
	abort := func() Next[T] {
		return Once(finish).Resume
	}
	cell := NewCell[T]()
	Drive(build(cell), cell, abort, finish)
	return result, completed
}
