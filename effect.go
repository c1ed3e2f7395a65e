// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Operation is the interface for effect operations in handler dispatch.
// All values reaching a handler implement this interface.
type Operation any

// Resumed is the interface for values flowing through effect suspension
// and resumption. Effectful computations use Cont[Resumed, A] as their
// continuation type.
type Resumed any

// Op is the F-bounded interface for effect operations. Each effect is a
// distinct nominal type implementing Op with its declared result type:
// the type the computation is resumed with after the effect is handled.
//
// Example:
//
//	type Ask struct{ eff.Phantom[int] }
type Op[O Op[O, A], A any] interface {
	OpResult() A // phantom type marker for result
}

// Phantom is an embeddable zero-size type that provides the [Op] result
// marker. Embed Phantom[A] in an operation struct to satisfy [Op] without
// writing a manual OpResult method.
type Phantom[A any] struct{}

// OpResult implements the phantom type marker for [Op].
func (Phantom[A]) OpResult() A { panic("phantom") }

// suspension is the runtime shape of a pending effect: the operation that
// was performed plus the erased continuation of the performing
// computation.
type suspension interface {
	Op() Operation
	Resume(Resumed) Resumed
}

// marker carries a suspended operation through the Resumed channel.
type marker struct {
	op     Operation
	resume func(Resumed) Resumed
}

func (m *marker) Op() Operation            { return m.op }
func (m *marker) Resume(v Resumed) Resumed { return m.resume(v) }

// toResumed is the identity continuation for driver entry points. A named
// generic function produces a static function value per instantiation,
// avoiding the heap allocation of an anonymous closure.
func toResumed[A any](a A) Resumed { return a }

// Perform triggers an effect operation and suspends the computation.
// The nearest handler for the operation's type decides the resume value;
// the continuation resumes exactly at the point where Perform returns
// that value, typed as the operation's declared result.
//
// Resuming through an erased path with a value outside the declared
// result type panics with *TypeMismatchError.
func Perform[O Op[O, A], A any](op O) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return &marker{op: op, resume: func(v Resumed) Resumed {
			a, ok := v.(A)
			if !ok {
				panic(&TypeMismatchError{Op: op, Value: v})
			}
			return k(a)
		}}
	}
}
