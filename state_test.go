// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
)

func TestStateThreading(t *testing.T) {
	comp := eff.Bind(eff.Perform(eff.Get[int]{}), func(s int) eff.Eff[int] {
		return eff.Then(
			eff.Perform(eff.Put[int]{Value: s + 1}),
			eff.Perform(eff.Get[int]{}),
		)
	})
	got, final, err := eff.RunState(10, comp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 11 {
		t.Fatalf("got %d, want 11", got)
	}
	if final != 11 {
		t.Fatalf("final state %d, want 11", final)
	}
}

func TestWithState(t *testing.T) {
	comp := eff.Then(
		eff.Perform(eff.Put[int]{Value: 42}),
		eff.Perform(eff.Get[int]{}),
	)
	got, err := eff.Run(eff.WithState(0, comp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestStateSequentialPuts(t *testing.T) {
	var bump func(i int) eff.Eff[int]
	bump = func(i int) eff.Eff[int] {
		if i == 5 {
			return eff.Perform(eff.Get[int]{})
		}
		return eff.Bind(eff.Perform(eff.Get[int]{}), func(s int) eff.Eff[int] {
			return eff.Then(eff.Perform(eff.Put[int]{Value: s + i}), bump(i+1))
		})
	}
	got, final, err := eff.RunState(0, bump(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 0 + 1 + 2 + 3 + 4; got != want || final != want {
		t.Fatalf("got %d final %d, want %d", got, final, want)
	}
}

func TestStateWithWriterStack(t *testing.T) {
	comp := eff.Bind(eff.Perform(eff.Get[int]{}), func(s int) eff.Eff[int] {
		return eff.Then(
			eff.Perform(eff.Tell[string]{Value: "before"}),
			eff.Then(
				eff.Perform(eff.Put[int]{Value: s * 2}),
				eff.Then(
					eff.Perform(eff.Tell[string]{Value: "after"}),
					eff.Perform(eff.Get[int]{}),
				),
			),
		)
	})
	var out []string
	got, final, err := eff.RunState(21, eff.WithWriter(&out, comp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 || final != 42 {
		t.Fatalf("got %d final %d, want 42", got, final)
	}
	if len(out) != 2 || out[0] != "before" || out[1] != "after" {
		t.Fatalf("output %v, want [before after]", out)
	}
}
