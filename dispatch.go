// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// DispatchFunc answers effect operations one at a time.
// Returning (resumeValue, true) continues the computation; returning
// (finalResult, false) short-circuits and ends the drive immediately.
type DispatchFunc func(op Operation) (Resumed, bool)

// Interpret drives m with a single erased dispatch function. This is the
// low-level trampoline loop: every suspension is answered by f, in the
// exact order the computation performs them, without stack growth per
// suspension.
//
// Interpret bypasses the handler-composition layer; [Handle] and [Run]
// are the composable surface. Dispatching a resume value outside the
// operation's declared result type panics with *TypeMismatchError.
func Interpret[R any](m Eff[R], f DispatchFunc) R {
	result := m(toResumed[R])
	for {
		s, ok := result.(suspension)
		if !ok {
			if result == nil {
				var zero R
				return zero
			}
			return result.(R)
		}
		v, resume := f(s.Op())
		if !resume {
			final, ok := v.(R)
			if !ok {
				panic(&TypeMismatchError{Op: s.Op(), Value: v})
			}
			return final
		}
		result = s.Resume(v)
	}
}
