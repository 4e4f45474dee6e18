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

package evaluator

import (
	. "github.com/mkarrmann/gostonefish/internal/config"
	. "github.com/mkarrmann/gostonefish/internal/types"
)

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - calculate from scratch, white minus black
	whiteMid, whiteEnd := e.pawnStructureScore(White)
	blackMid, blackEnd := e.pawnStructureScore(Black)
	tmpScore.MidGameValue = whiteMid - blackMid
	tmpScore.EndGameValue = whiteEnd - blackEnd

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// pawnStructureScore evaluates doubled, tripled, isolated, backward,
// phalanx, defended and passed pawns for one side from that side's own
// point of view (bonuses positive, maluses negative).
func (e *Evaluator) pawnStructureScore(us Color) (mid int16, end int16) {
	them := us.Flip()
	ownPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(them, Pawn)

	// doubled / tripled: every pawn beyond the first on a file is
	// penalised, so three pawns on a file cost twice the malus of two
	for file := FileA; file <= FileH; file++ {
		onFile := (ownPawns & file.Bb()).PopCount()
		if onFile > 1 {
			extra := int16(onFile - 1)
			mid += extra * Settings.Eval.PawnDoubledMidMalus
			end += extra * Settings.Eval.PawnDoubledEndMalus
		}
	}

	pawns := ownPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()
		neighbourPawns := ownPawns & sq.NeighbourFilesMask()

		if neighbourPawns == BbZero {
			// isolated: no own pawn on either neighbouring file
			mid += Settings.Eval.PawnIsolatedMidMalus
			end += Settings.Eval.PawnIsolatedEndMalus
		} else {
			// backward: no neighbouring pawn is level with or behind
			// this one to support its advance, and the square in front
			// is already covered by an enemy pawn
			var behind Bitboard
			if us == White {
				behind = sq.RanksSouthMask()
			} else {
				behind = sq.RanksNorthMask()
			}
			if neighbourPawns&behind == BbZero {
				stopSquare := sq.To(us.MoveDirection())
				if stopSquare.IsValid() && GetPawnAttacks(us, stopSquare)&enemyPawns != BbZero {
					mid += Settings.Eval.PawnBackwardMidMalus
					end += Settings.Eval.PawnBackwardEndMalus
				}
			}

			// phalanx: an own pawn stands abreast on a neighbouring file
			if neighbourPawns&sq.RankOf().Bb() != BbZero {
				mid += Settings.Eval.PawnPhalanxMidBonus
				end += Settings.Eval.PawnPhalanxEndBonus
			}
		}

		// defended: attacked by one of our own pawns
		if GetPawnAttacks(them, sq)&ownPawns != BbZero {
			mid += Settings.Eval.PawnSupportedMidBonus
			end += Settings.Eval.PawnSupportedEndBonus
		}

		// passed: no enemy pawn can ever block or capture it on its way
		// to promotion; bonus scales with how far advanced it already is
		if enemyPawns&sq.PassedPawnMask(us) == BbZero {
			advance := int16(sq.RankOf())
			if us == Black {
				advance = int16(Rank8 - sq.RankOf())
			}
			mid += Settings.Eval.PawnPassedMidBonus * advance
			end += Settings.Eval.PawnPassedEndBonus * advance
		}
	}

	return mid, end
}
