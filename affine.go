// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "code.hybscloud.com/atomix"

// Affine wraps a resume callback with one-shot enforcement.
// The callback can be invoked at most once; subsequent attempts panic
// (Resume) or report false (TryResume).
//
// Affine values back every resume token the runtime hands out:
// continuations must not be duplicated.
type Affine[A any] struct {
	used   atomix.Uint32
	resume func(A)
}

// Once creates an affine token from a callback.
func Once[A any](f func(A)) *Affine[A] {
	return &Affine[A]{resume: f}
}

// Resume invokes the callback with v.
// Panics with *DoubleResumeError if the token has already been used.
func (a *Affine[A]) Resume(v A) {
	if a.used.Add(1) != 1 {
		panic(&DoubleResumeError{})
	}
	a.resume(v)
}

// TryResume attempts to invoke the callback.
// Reports false if the token has already been used.
func (a *Affine[A]) TryResume(v A) bool {
	if a.used.Add(1) != 1 {
		return false
	}
	a.resume(v)
	return true
}

// Discard marks the token as used without invoking it.
func (a *Affine[A]) Discard() {
	a.used.Store(1)
}

// Used reports whether the token has been consumed or discarded.
func (a *Affine[A]) Used() bool {
	return a.used.Load() != 0
}
