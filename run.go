// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// identity is the identity continuation for RunPure. A named generic
// function produces a static function value per type instantiation.
func identity[A any](a A) A { return a }

// RunPure executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func RunPure[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes a continuation with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// Run drives a fully handled effectful computation to completion. It is
// the entry point for the composed [Handle] surface.
//
// An operation that survives every installed handler is reported as
// *UnhandledEffectError — the driver never resumes a computation whose
// effect nobody answered. Continuation-discipline violations raised while
// driving (*DoubleResumeError, *AbandonedContinuationError,
// *TypeMismatchError) are recovered into the returned error.
func Run[R any](m Eff[R]) (result R, err error) {
	defer func() {
		err = recoverUsage(recover(), err)
	}()
	out := m(toResumed[R])
	if s, ok := out.(suspension); ok {
		return result, &UnhandledEffectError{Op: s.Op()}
	}
	if out == nil {
		return result, nil
	}
	return out.(R), nil
}
