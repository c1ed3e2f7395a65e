// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "fmt"

// Error taxonomy for the runtime.
//
// Discipline violations (double resume, abandoned continuation, type
// mismatch) panic with one of these values at the violation site; the
// outermost drivers [Run] and [RunPump] recover exactly these types into
// returned errors. [EmptyCellError] is never recovered: an empty-cell read
// indicates a defect in the driving trampoline, not a usage error.

// EmptyCellError reports a read of a continuation cell that holds no value.
// The driver writes the cell before every resume, so user code can only
// observe this through a broken driver.
type EmptyCellError struct{}

func (*EmptyCellError) Error() string {
	return "eff: continuation cell is empty"
}

// DoubleResumeError reports a continuation or resume token invoked more
// than once. Continuations are exactly-once capabilities.
type DoubleResumeError struct{}

func (*DoubleResumeError) Error() string {
	return "eff: continuation resumed twice"
}

// AbandonedContinuationError reports a handler reaction that completed
// without resuming or aborting its continuation.
type AbandonedContinuationError struct{}

func (*AbandonedContinuationError) Error() string {
	return "eff: handler dropped its continuation without resuming or aborting"
}

// UnhandledEffectError reports an effect operation that reached the
// outermost driver with no handler answering it.
type UnhandledEffectError struct {
	Op Operation
}

func (e *UnhandledEffectError) Error() string {
	return fmt.Sprintf("eff: unhandled effect %T", e.Op)
}

// TypeMismatchError reports an effect resumed with a value outside the
// operation's declared result type. The typed surfaces prevent this at
// compile time; it remains reachable through the erased resume paths
// ([Suspension.Resume], [Interpret] dispatch, pump sinks).
type TypeMismatchError struct {
	Op    Operation
	Value Resumed
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("eff: effect %T resumed with incompatible value of type %T", e.Op, e.Value)
}

// recoverUsage converts a recovered discipline panic into the error it
// carries. Any other panic value is re-raised.
func recoverUsage(r any, prev error) error {
	if r == nil {
		return prev
	}
	switch e := r.(type) {
	case *DoubleResumeError, *AbandonedContinuationError, *TypeMismatchError, *UnhandledEffectError:
		return e.(error)
	default:
		panic(r)
	}
}
