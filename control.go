// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Delimited control operators, following Danvy & Filinski (1990).

// Shift captures the current continuation up to the nearest Reset.
// The captured continuation k may be applied zero or more times; unlike
// effect continuations it carries no one-shot restriction.
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset establishes a delimiter for Shift: continuations captured inside
// m stop here.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](RunPure(m))
}
