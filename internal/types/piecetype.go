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

// PieceType enumerates the six piece kinds plus a "none" sentinel. The
// numbering is fixed so that Piece = (color<<3)|PieceType indexes Zobrist
// tables directly, and so that sliding pieces (Bishop, Rook, Queen) occupy
// a contiguous range usable as a loop bound.
type PieceType uint8

const (
	Knight PieceType = iota
	Bishop
	Rook
	Queen
	King
	Pawn
	PtNone
	PtLength = PtNone + 1
)

// IsValid checks if pt is a valid piece type (PtNone counts as valid since
// it is used as the "all pieces" convenience index).
func (pt PieceType) IsValid() bool {
	return pt <= PtNone
}

// IsSlider reports whether pieces of this type move along open rays.
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var gamePhaseValue = [PtLength]int{2, 2, 3, 5, 0, 1, 0}

// GamePhaseValue returns the phase weight contributed by one piece of this
// type (N=2, B=2, R=3, Q=5, P=1, King/None=0).
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

var pieceTypeValue = [PtLength]Value{320, 330, 500, 900, 2000, 100, 0}

// ValueOf returns the static material value of this piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"Knight", "Bishop", "Rook", "Queen", "King", "Pawn", "None"}

// String returns a human readable piece type name.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "NBRQKP-"

// Char returns a single upper case letter for the piece type ('N','B','R',
// 'Q','K','P'), or "-" for PtNone.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}
