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

import "strings"

// Move is a 16 bit encoding of a single chess move:
//
//	bits  0- 5: from square
//	bits  6-11: to square
//	bits 12-13: promotion piece type (Knight/Bishop/Rook/Queen, only
//	            meaningful when MoveType() == Promotion)
//	bits 14-15: move type
//
// Move carries no ordering/sort information; move ordering scores live
// alongside moves in the move picker, not inside the encoding itself.
type Move uint16

// MoveNone is the zero move (a1a1), never a legal move in any position.
const MoveNone Move = 0

const (
	moveFromMask  = 0x003f
	moveToShift   = 6
	moveToMask    = 0x0fc0
	movePromShift = 12
	movePromMask  = 0x3000
	moveTypeShift = 14
	moveTypeMask  = 0xc000
)

// CreateMove builds a Normal move between two squares.
func CreateMove(from, to Square) Move {
	return Move(from) | Move(to)<<moveToShift
}

// CreateMoveType builds a move of any MoveType. promo is only consulted when
// mt == Promotion.
func CreateMoveType(from, to Square, mt MoveType, promo PieceType) Move {
	m := Move(from) | Move(to)<<moveToShift | Move(mt)<<moveTypeShift
	if mt == Promotion {
		m |= Move(promo)<<movePromShift
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & moveToMask) >> moveToShift)
}

// MoveType returns the move's type tag.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> moveTypeShift)
}

// PromotionType returns the piece type a Promotion move promotes to. Only
// meaningful when MoveType() == Promotion; PromotionType always decodes the
// two promotion bits regardless of move type, so callers must check
// MoveType() first.
func (m Move) PromotionType() PieceType {
	return PieceType((m&movePromMask)>>movePromShift) + Knight
}

// IsValid reports whether the move is syntactically well formed: distinct,
// valid endpoints and, for non-promotions, a zero promotion field.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() || m.From() == m.To() {
		return false
	}
	if m.MoveType() != Promotion && m&movePromMask != 0 {
		return false
	}
	return true
}

// String returns the move in UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a queen promotion.
func (m Move) String() string {
	if m == MoveNone {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}

// StringUci is an alias for String: the move's encoding already is the
// UCI long algebraic form, so to_uci(move) needs no extra step.
func (m Move) StringUci() string {
	return m.String()
}
