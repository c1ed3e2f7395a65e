// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/eff"
)

func TestReturnRunPure(t *testing.T) {
	if got := eff.RunPure(eff.Return[int](42)); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestRunWith(t *testing.T) {
	m := eff.Return[string](21)
	got := eff.RunWith(m, func(a int) string { return strconv.Itoa(a * 2) })
	if got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
}

func TestSuspend(t *testing.T) {
	m := eff.Suspend(func(k func(int) int) int {
		return k(20) + k(1)
	})
	if got := eff.RunPure(m); got != 21 {
		t.Fatalf("got %d, want 21", got)
	}
}

func TestBindChain(t *testing.T) {
	m := eff.Bind(eff.Return[int](3), func(a int) eff.Cont[int, int] {
		return eff.Bind(eff.Return[int](4), func(b int) eff.Cont[int, int] {
			return eff.Return[int](a * b)
		})
	})
	if got := eff.RunPure(m); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestMap(t *testing.T) {
	m := eff.Map(eff.Return[string](21), func(a int) string {
		return strconv.Itoa(a * 2)
	})
	if got := eff.RunPure(m); got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
}

func TestThen(t *testing.T) {
	order := ""
	first := eff.Suspend(func(k func(int) int) int {
		order += "a"
		return k(1)
	})
	second := eff.Suspend(func(k func(int) int) int {
		order += "b"
		return k(2)
	})
	if got := eff.RunPure(eff.Then(first, second)); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if order != "ab" {
		t.Fatalf("evaluation order %q, want %q", order, "ab")
	}
}

func TestShiftReset(t *testing.T) {
	m := eff.Reset[int](eff.Bind(
		eff.Shift(func(k func(int) int) int { return k(k(3)) }),
		func(x int) eff.Cont[int, int] { return eff.Return[int](x * 2) },
	))
	// k doubles: k(3) = 6, k(6) = 12
	if got := eff.RunPure(m); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestResetDelimits(t *testing.T) {
	inner := eff.Reset[int](eff.Shift(func(k func(int) int) int {
		return 40 // discard k entirely
	}))
	m := eff.Map(inner, func(x int) int { return x + 2 })
	if got := eff.RunPure(m); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
