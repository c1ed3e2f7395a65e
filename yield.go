// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Suspension vocabulary of the generator protocol.
// A generator suspends with exactly one of three shapes; the trampoline
// branches on the shape to decide how to re-enter.

// Yield is the marker interface for suspension values.
// Dispatch uses type switches — Yield is a pure marker interface.
type Yield[T any] interface {
	yield()
}

// Val yields a plain value. The driver stores it into the cell and
// resumes immediately; no external input is involved.
type Val[T any] struct {
	Value T
}

func (Val[T]) yield() {}

// Spawn delegates to a nested generator. The driver constructs the inner
// generator with a fresh cell, drives it to completion, and feeds its
// final result back into the outer cell.
type Spawn[T any] struct {
	// Build constructs the inner generator over the fresh cell the
	// driver allocates for it.
	Build func(cell *Cell[T]) Gen[T]
}

func (Spawn[T]) yield() {}

// Handoff hands control to an external driver routine. The callback
// receives the abort capability and a one-shot resume token; control
// returns to the caller of [Drive] until the token is invoked.
type Handoff[T any] struct {
	F func(abort Abort[T], next Next[T])
}

func (Handoff[T]) yield() {}

// Next resumes a suspended generator with a value.
// Exactly-once: a second invocation panics with *DoubleResumeError.
type Next[T any] func(T)

// Abort produces a fresh one-shot token that completes the drive with the
// given value, discarding the suspended frame chain instead of resuming
// it. The capability itself is re-obtainable; each produced token is
// exactly-once.
type Abort[T any] func() Next[T]
