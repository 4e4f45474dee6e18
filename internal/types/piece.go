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

// Piece packs a Color and a PieceType into a single 4-bit tag:
// (color<<3) | piece_type. PieceNone uses PtNone in the low bits with the
// color bit meaningless, so PieceNone must always be compared by value,
// never by masking out the type alone.
type Piece uint8

// MakePiece builds the tagged piece value for a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c)<<3 | Piece(pt)
}

const (
	WhiteKnight = Piece(White)<<3 | Piece(Knight)
	WhiteBishop = Piece(White)<<3 | Piece(Bishop)
	WhiteRook   = Piece(White)<<3 | Piece(Rook)
	WhiteQueen  = Piece(White)<<3 | Piece(Queen)
	WhiteKing   = Piece(White)<<3 | Piece(King)
	WhitePawn   = Piece(White)<<3 | Piece(Pawn)
	BlackKnight = Piece(Black)<<3 | Piece(Knight)
	BlackBishop = Piece(Black)<<3 | Piece(Bishop)
	BlackRook   = Piece(Black)<<3 | Piece(Rook)
	BlackQueen  = Piece(Black)<<3 | Piece(Queen)
	BlackKing   = Piece(Black)<<3 | Piece(King)
	BlackPawn   = Piece(Black)<<3 | Piece(Pawn)
	PieceNone   = Piece(White)<<3 | Piece(PtNone)
	PieceLength = (Piece(Black)<<3 | Piece(PtNone)) + 1
)

// ColorOf returns the color of the piece. Meaningless when p == PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type, ignoring the color bit.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceToChar = "NBRQKP-"
const pieceToCharLower = "nbrqkp-"

// PieceFromChar returns the Piece for a FEN piece letter, or PieceNone if s
// is not exactly one recognised letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	c := s[0]
	for i := 0; i < 6; i++ {
		if c == pieceToChar[i] {
			return MakePiece(White, PieceType(i))
		}
		if c == pieceToCharLower[i] {
			return MakePiece(Black, PieceType(i))
		}
	}
	return PieceNone
}

// String returns the FEN letter for the piece (upper case for White, lower
// for Black), or "-" for PieceNone.
func (p Piece) String() string {
	if p.TypeOf() == PtNone {
		return "-"
	}
	if p.ColorOf() == White {
		return string(pieceToChar[p.TypeOf()])
	}
	return string(pieceToCharLower[p.TypeOf()])
}
