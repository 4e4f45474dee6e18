/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"github.com/mkarrmann/gostonefish/internal/position"
	. "github.com/mkarrmann/gostonefish/internal/types"
)

// seeGE reports whether the static exchange evaluation of move is at
// least threshold, i.e. whether the side to move gains at least
// threshold material on move's destination square through a sequence
// of recaptures by the least valuable attacker.
func seeGE(p *position.Position, move Move, threshold Value) bool {
	return see(p, move) >= threshold
}

// see runs the static exchange evaluation for move and returns the
// material balance for the side to move. Only Normal moves are
// evaluated; promotions, castling and en passant are scored as 0 since
// the destination square they land on does not carry the exchange
// value the swap algorithm below assumes.
func see(p *position.Position, move Move) Value {

	if move.MoveType() != Normal {
		return 0
	}

	// prepare short array to store the captures - max 32 pieces
	// TODO: avoid allocation
	gain := make([]Value, 32, 32)

	ply := 0
	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := p.GetPiece(fromSquare)
	nextPlayer := p.NextPlayer()

	// get a bitboard of all occupied squares to remove single pieces later
	// to reveal hidden attacks (x-ray)
	occupiedBitboard := p.OccupiedAll()

	// get all attacks to the square as a bitboard
	remainingAttacks := AttacksTo(p, toSquare, White) | AttacksTo(p, toSquare, Black)

	// pieces absolutely pinned to their own king cannot join the exchange
	// while their pinner is still on the board
	pinnedWhite, pinnerOfWhite := pinnedPieces(p, White)
	pinnedBlack, pinnerOfBlack := pinnedPieces(p, Black)

	// initial value of the first capture
	capturedValue := p.GetPiece(toSquare).ValueOf()
	gain[ply] = capturedValue

	// loop through all remaining attacks/captures
	for {
		ply++
		nextPlayer = nextPlayer.Flip()

		gain[ply] = movedPiece.ValueOf() - gain[ply-1]

		// pruning if defended - will not change final see score
		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		remainingAttacks.PopSquare(fromSquare) // reset bit in set to traverse
		occupiedBitboard.PopSquare(fromSquare) // reset bit in temporary occupancy (for x-Rays)

		// reevaluate attacks to reveal attacks after removing the moving piece
		remainingAttacks |= revealedAttacks(p, toSquare, occupiedBitboard, White) |
			revealedAttacks(p, toSquare, occupiedBitboard, Black)

		// exclude attackers still pinned to their own king
		candidates := remainingAttacks
		if nextPlayer == White {
			candidates &^= stillPinned(pinnedWhite, pinnerOfWhite, occupiedBitboard)
		} else {
			candidates &^= stillPinned(pinnedBlack, pinnerOfBlack, occupiedBitboard)
		}

		// determine next capture
		fromSquare = getLeastValuablePiece(p, candidates, nextPlayer)

		// break if no more attackers
		if fromSquare == SqNone {
			break
		}

		// a king cannot step into the exchange if the other side still
		// has an attacker left on the square - that recapture would be
		// illegal, so the exchange ends here instead
		if p.GetPiece(fromSquare).TypeOf() == King &&
			remainingAttacks&p.OccupiedBb(nextPlayer.Flip()) != 0 {
			break
		}

		movedPiece = p.GetPiece(fromSquare)
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -max(-gain[ply-1], gain[ply])
		ply--
	}

	return gain[0]
}

// pinnedPieces returns the bitboard of c's pieces that are absolutely
// pinned against c's king by an enemy slider, together with a lookup
// from each pinned square to the square of the slider pinning it.
func pinnedPieces(p *position.Position, c Color) (pinned Bitboard, pinnerOf [SqLength]Square) {
	for sq := range pinnerOf {
		pinnerOf[sq] = SqNone
	}

	kingSquare := p.KingSquare(c)
	opponent := c.Flip()
	occupied := p.OccupiedAll()

	rookSliders := GetPseudoAttacks(Rook, kingSquare) & (p.PiecesBb(opponent, Rook) | p.PiecesBb(opponent, Queen))
	bishopSliders := GetPseudoAttacks(Bishop, kingSquare) & (p.PiecesBb(opponent, Bishop) | p.PiecesBb(opponent, Queen))
	candidates := rookSliders | bishopSliders

	for candidates != 0 {
		sliderSquare := candidates.PopLsb()
		between := Intermediate(kingSquare, sliderSquare) & occupied
		if between.PopCount() != 1 {
			continue
		}
		blockerSquare := between.Lsb()
		if p.GetPiece(blockerSquare).ColorOf() == c {
			pinned.PushSquare(blockerSquare)
			pinnerOf[blockerSquare] = sliderSquare
		}
	}
	return
}

// stillPinned returns the subset of pinned whose pinning slider (per
// pinnerOf) is still present in occupied.
func stillPinned(pinned Bitboard, pinnerOf [SqLength]Square, occupied Bitboard) Bitboard {
	var result Bitboard
	remaining := pinned
	for remaining != 0 {
		sq := remaining.PopLsb()
		if occupied.Has(pinnerOf[sq]) {
			result.PushSquare(sq)
		}
	}
	return result
}

// AttacksTo determine all attacks for SEE. EnPassant is not included as this is not
// relevant for SEE as the move preceding enpassant is always non capturing.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	occupiedAll := p.OccupiedAll()
	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		// Knight
		(GetAttacksBb(Knight, square, occupiedAll) & p.PiecesBb(color, Knight)) |
		// King
		(GetAttacksBb(King, square, occupiedAll) & p.PiecesBb(color, King)) |
		// Sliding rooks and queens
		(GetAttacksBb(Rook, square, occupiedAll) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		// Sliding bishops and queens
		(GetAttacksBb(Bishop, square, occupiedAll) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)))
}

// Returns sliding attacks after a piece has been removed to reveal new attacks.
// It is only necessary to look at slider pieces as only their attacks can be revealed
func revealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	// Sliding rooks and queens
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		// Sliding bishops and queens
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}

// Returns a square with the least valuable attacker. When several of same
// type are available it uses the least significant bit of the bitboard.
func getLeastValuablePiece(position *position.Position, bitboard Bitboard, color Color) Square {
	// check all piece types with increasing value
	switch {
	case (bitboard & position.PiecesBb(color, Pawn)) != 0:
		return (bitboard & position.PiecesBb(color, Pawn)).Lsb()
	case (bitboard & position.PiecesBb(color, Knight)) != 0:
		return (bitboard & position.PiecesBb(color, Knight)).Lsb()
	case (bitboard & position.PiecesBb(color, Bishop)) != 0:
		return (bitboard & position.PiecesBb(color, Bishop)).Lsb()
	case (bitboard & position.PiecesBb(color, Rook)) != 0:
		return (bitboard & position.PiecesBb(color, Rook)).Lsb()
	case (bitboard & position.PiecesBb(color, Queen)) != 0:
		return (bitboard & position.PiecesBb(color, Queen)).Lsb()
	case (bitboard & position.PiecesBb(color, King)) != 0:
		return (bitboard & position.PiecesBb(color, King)).Lsb()
	default:
		return SqNone
	}
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
