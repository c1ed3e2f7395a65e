// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Reader effect: read-only access to an environment.

// Ask is the effect operation for reading the environment of type E.
type Ask[E any] struct{ Phantom[E] }

// WithReader installs an Ask handler answering with env.
func WithReader[E, R any](env E, m Eff[R]) Eff[R] {
	return Handle[Ask[E], E, R, R](m,
		PureCase[R],
		func(_ Ask[E], k *Continuation[E, R]) Eff[R] {
			return k.Resume(env)
		},
	)
}

// RunReader runs a computation with the given environment.
func RunReader[E, R any](env E, m Eff[R]) (R, error) {
	return Run(WithReader(env, m))
}
