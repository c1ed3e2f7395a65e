// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
)

func TestCellPutTake(t *testing.T) {
	c := eff.NewCell[int]()
	if c.Full() {
		t.Fatal("new cell should be empty")
	}
	c.Put(7)
	if !c.Full() {
		t.Fatal("cell should be full after Put")
	}
	if got := c.Take(); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if c.Full() {
		t.Fatal("cell should be empty after Take")
	}
}

func TestCellOverwrite(t *testing.T) {
	c := eff.NewCell[string]()
	c.Put("first")
	c.Put("second")
	if got := c.Take(); got != "second" {
		t.Fatalf("got %q, want %q", got, "second")
	}
}

func TestCellTakeEmptyPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*eff.EmptyCellError); !ok {
			t.Fatal("expected *EmptyCellError panic")
		}
	}()
	eff.NewCell[int]().Take()
}

func TestCellTakeTwicePanics(t *testing.T) {
	c := eff.NewCell[int]()
	c.Put(1)
	_ = c.Take()
	defer func() {
		if _, ok := recover().(*eff.EmptyCellError); !ok {
			t.Fatal("expected *EmptyCellError panic")
		}
	}()
	_ = c.Take()
}

func TestCellTryTake(t *testing.T) {
	c := eff.NewCell[int]()
	if _, ok := c.TryTake(); ok {
		t.Fatal("TryTake on empty cell should report false")
	}
	c.Put(3)
	v, ok := c.TryTake()
	if !ok || v != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", v, ok)
	}
	if _, ok := c.TryTake(); ok {
		t.Fatal("TryTake should have cleared the cell")
	}
}
