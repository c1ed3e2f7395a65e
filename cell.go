// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "code.hybscloud.com/atomix"

const (
	cellEmpty uint32 = iota
	cellFull
)

// Cell is the single-slot holder used to pass a resumed value back into a
// suspended generator. The driver writes it exactly once before each
// resume; the resumed generator reads and clears it exactly once.
// Between a suspension and the matching resume the cell is empty.
//
// A cell is exclusively owned by one [Drive] invocation for the duration
// of the drive. Occupancy is runtime-checked, not type-checked.
type Cell[T any] struct {
	value T
	state atomix.Uint32
}

// NewCell creates an empty cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Put stores v, overwriting any previous content.
func (c *Cell[T]) Put(v T) {
	c.value = v
	c.state.Store(cellFull)
}

// Take returns the stored value and empties the cell.
// Panics with *EmptyCellError if nothing was written since the last Take.
func (c *Cell[T]) Take() T {
	if c.state.Swap(cellEmpty) != cellFull {
		panic(&EmptyCellError{})
	}
	v := c.value
	var zero T
	c.value = zero
	return v
}

// TryTake returns the stored value and true, or zero and false if the
// cell is empty.
func (c *Cell[T]) TryTake() (T, bool) {
	if c.state.Swap(cellEmpty) != cellFull {
		var zero T
		return zero, false
	}
	v := c.value
	var zero T
	c.value = zero
	return v, true
}

// Full reports whether the cell currently holds a value.
func (c *Cell[T]) Full() bool {
	return c.state.Load() == cellFull
}
