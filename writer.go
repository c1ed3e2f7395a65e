// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Writer effect: accumulating output in performance order.

// Tell is the effect operation for appending a value of type W to the
// accumulated output.
type Tell[W any] struct {
	Phantom[struct{}]
	Value W
}

// WithWriter installs a Tell handler appending to *out.
// Entries appear in the exact order the computation performs them.
func WithWriter[W, R any](out *[]W, m Eff[R]) Eff[R] {
	return Handle[Tell[W], struct{}, R, R](m,
		PureCase[R],
		func(op Tell[W], k *Continuation[struct{}, R]) Eff[R] {
			*out = append(*out, op.Value)
			return k.Resume(struct{}{})
		},
	)
}

// RunWriter runs a computation with the Writer effect, returning the
// result and the accumulated output.
func RunWriter[W, R any](m Eff[R]) (R, []W, error) {
	var out []W
	r, err := Run(WithWriter(&out, m))
	return r, out, err
}
