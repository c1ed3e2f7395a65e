// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// State effect: mutable state threading through computations, expressed
// as two stacked handlers sharing one state slot.

// Get is the effect operation for reading state of type S.
type Get[S any] struct{ Phantom[S] }

// Put is the effect operation for replacing state of type S.
type Put[S any] struct {
	Phantom[struct{}]
	Value S
}

// handleState stacks Put (inner) and Get (outer) handlers around m,
// both resuming against the shared slot.
func handleState[S, R any](state *S, m Eff[R]) Eff[R] {
	withPut := Handle[Put[S], struct{}, R, R](m,
		PureCase[R],
		func(op Put[S], k *Continuation[struct{}, R]) Eff[R] {
			*state = op.Value
			return k.Resume(struct{}{})
		},
	)
	return Handle[Get[S], S, R, R](withPut,
		PureCase[R],
		func(_ Get[S], k *Continuation[S, R]) Eff[R] {
			return k.Resume(*state)
		},
	)
}

// WithState installs Get and Put handlers around m, threading state from
// initial. The final state is not observable; use [RunState] for that.
func WithState[S, R any](initial S, m Eff[R]) Eff[R] {
	state := initial
	return handleState(&state, m)
}

// RunState runs a stateful computation, returning the result and the
// final state.
func RunState[S, R any](initial S, m Eff[R]) (R, S, error) {
	state := initial
	r, err := Run(handleState(&state, m))
	return r, state, err
}
