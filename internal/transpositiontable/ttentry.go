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

package transpositiontable

import (
	"math"

	"github.com/mkarrmann/gostonefish/internal/position"
	. "github.com/mkarrmann/gostonefish/internal/types"
)

// TtEntry is the data structure for each entry in the transposition table.
// Field widths follow the search value's actual range rather than being
// bit-packed into a shared word: a 64-bit key, a 32-bit score, a 16-bit
// move, a 16-bit depth, an 8-bit bound type and an 8-bit age.
type TtEntry struct {
	key      position.Key
	score    int32
	bestMove uint16
	depth    int16
	bound    ValueType
	age      uint8
}

func (e *TtEntry) decreaseAge() {
	if e.age > 0 {
		e.age--
	}
}

func (e *TtEntry) increaseAge() {
	if e.age < math.MaxUint8 {
		e.age++
	}
}

func (e *TtEntry) Key() position.Key {
	return e.key
}

func (e *TtEntry) Move() Move {
	return Move(e.bestMove)
}

func (e *TtEntry) Value() Value {
	return Value(e.score)
}

func (e *TtEntry) Depth() int16 {
	return e.depth
}

func (e *TtEntry) Age() uint8 {
	return e.age
}

func (e *TtEntry) Bound() ValueType {
	return e.bound
}
