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

package types

import "fmt"

// ScoredMove pairs a Move with a 16-bit ordering value used by the move
// generator, the root move list and the transposition table. Move itself
// stays a clean 16-bit wire encoding; ScoredMove is the internal currency
// move ordering is done in.
//
//	BITMAP 32-bit
//	|-value ------------------------|-Move -------------------------|
//	3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 | 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//	1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
type ScoredMove uint32

const (
	scoredMoveMask  ScoredMove = 0xFFFF
	scoredMoveShift            = 16
)

// CreateMoveValue packs a Move and an ordering value into a ScoredMove.
func CreateMoveValue(m Move, value Value) ScoredMove {
	return ScoredMove(m) | ScoredMove(uint16(value))<<scoredMoveShift
}

// MoveOf strips the ordering value, returning the plain Move.
func (sm ScoredMove) MoveOf() Move {
	return Move(sm & scoredMoveMask)
}

// ValueOf returns the ordering value.
func (sm ScoredMove) ValueOf() Value {
	return Value(int16(sm >> scoredMoveShift))
}

// SetValue returns a copy of sm with its ordering value replaced.
func (sm ScoredMove) SetValue(value Value) ScoredMove {
	return CreateMoveValue(sm.MoveOf(), value)
}

// String renders the underlying move and its ordering value.
func (sm ScoredMove) String() string {
	return fmt.Sprintf("%s (%d)", sm.MoveOf().String(), sm.ValueOf())
}
