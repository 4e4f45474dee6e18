//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package moveslice

import (
	. "github.com/mkarrmann/gostonefish/internal/types"
)

// ScoredMoveSlice is a slice of ScoredMove, used wherever moves need to
// carry an ordering value - move generation, root move sorting and the
// transposition table entry.
type ScoredMoveSlice []ScoredMove

// NewScoredMoveSlice creates a new slice with the given capacity and 0 elements.
func NewScoredMoveSlice(cap int) *ScoredMoveSlice {
	moves := make([]ScoredMove, 0, cap)
	return (*ScoredMoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *ScoredMoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends an element at the end of the slice.
func (ms *ScoredMoveSlice) PushBack(m ScoredMove) {
	*ms = append(*ms, m)
}

// At returns the move at index i without removing it from the slice.
func (ms *ScoredMoveSlice) At(i int) ScoredMove {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("ScoredMoveSlice: Index out of bounds")
	}
	return (*ms)[i]
}

// Set puts a move at index i in the slice.
func (ms *ScoredMoveSlice) Set(i int, move ScoredMove) {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("ScoredMoveSlice: Index out of bounds")
	}
	(*ms)[i] = move
}

// Clear removes all moves from the slice, retaining its capacity.
func (ms *ScoredMoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Sort sorts moves from highest embedded value to lowest using a stable
// insertion sort - move lists are small and mostly pre-sorted already.
func (ms *ScoredMoveSlice) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.ValueOf() > (*ms)[j-1].ValueOf() {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}
