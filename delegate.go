// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// PerformFrom invokes an inner effectful computation from within an outer
// one. Every effect the inner computation performs is re-suspended as if
// the outer computation itself performed it, so handlers installed around
// the outer computation intercept them in program order. Once the inner
// computation completes, its final value becomes an ordinary value in the
// outer control flow with no further suspension.
//
// This is the effect-world counterpart of the generator protocol's
// [Spawn] shape.
func PerformFrom[A any](inner Eff[A]) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return forwardAll(inner(toResumed[A]), k)
	}
}

// forwardAll re-suspends every pending operation of r through the outer
// channel, preserving the caller's continuation chain.
func forwardAll[A any](r Resumed, k func(A) Resumed) Resumed {
	if s, ok := r.(suspension); ok {
		return &marker{op: s.Op(), resume: func(v Resumed) Resumed {
			return forwardAll(s.Resume(v), k)
		}}
	}
	if r == nil {
		var zero A
		return k(zero)
	}
	return k(r.(A))
}
