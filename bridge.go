// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Sink receives each operation a lowered computation performs, together
// with the abort capability and the one-shot resume token of the
// suspended frame. The sink decides the resume value — or aborts.
type Sink func(op Operation, abort Abort[Resumed], next Next[Resumed])

// ToGen lowers an effectful computation into the generator protocol:
// every pending operation surfaces as a [Handoff] yield whose callback
// hands (op, abort, next) to the sink. Performing an effect is, under
// this lowering, literally a handoff suspension bundling the operation
// with the continuation.
//
// The conversion is lazy: each effect step is translated on demand as the
// generator is driven. The returned constructor fits [Spawn].Build,
// [RunGen], and [Drive].
func ToGen[A any](m Eff[A], sink Sink) func(*Cell[Resumed]) Gen[Resumed] {
	return func(*Cell[Resumed]) Gen[Resumed] {
		return genFrom(m(toResumed[A]), sink)
	}
}

// genFrom converts a Resumed value (final value or pending suspension)
// into a generator node.
func genFrom(r Resumed, sink Sink) Gen[Resumed] {
	s, ok := r.(suspension)
	if !ok {
		return Done[Resumed](r)
	}
	return Await[Resumed](func(abort Abort[Resumed], next Next[Resumed]) {
		sink(s.Op(), abort, next)
	}, func(v Resumed) Gen[Resumed] {
		return genFrom(s.Resume(v), sink)
	})
}
