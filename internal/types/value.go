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

import (
	"strconv"
	"strings"

	"github.com/mkarrmann/gostonefish/internal/util"
)

// Value is a centipawn evaluation or search score.
type Value int32

// MaxPly bounds search depth/ply indexed arrays (killers, check extensions).
const MaxPly = 128

const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInf       Value = 32_000
	ValueNA        Value = -ValueInf - 1
	ValueMax       Value = 30_000
	ValueMin       Value = -ValueMax
	Mate           Value = ValueMax
	MateThreshold  Value = Mate - MaxPly - 1
	MateWindow     Value = MaxPly + 1

	// ValueCheckMate and ValueCheckMateThreshold are the names search code
	// knows these by; kept as aliases so both naming conventions resolve to
	// the same constant.
	ValueCheckMate          Value = Mate
	ValueCheckMateThreshold Value = MateThreshold
)

// MaxDepth bounds search depth/ply indexed arrays (killers, PV, move gens).
// Same bound as MaxPly, named the way search code refers to it.
const MaxDepth = MaxPly

// IsValid checks if v lies within the valid search-score range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsMateValue reports whether v encodes a forced mate at some ply.
func (v Value) IsMateValue() bool {
	return util.Abs(int(v)) > int(MateThreshold) && util.Abs(int(v)) <= int(Mate)
}

// IsCheckMateValue is an alias for IsMateValue, named the way search code
// refers to it.
func (v Value) IsCheckMateValue() bool {
	return v.IsMateValue()
}

// String renders v the way a UCI "info score" line would: "mate N", "cp N"
// or "N/A".
func (v Value) String() string {
	var os strings.Builder
	switch {
	case v.IsMateValue():
		os.WriteString("mate ")
		if v < ValueZero {
			os.WriteString("-")
		}
		pliesToMate := int(Mate) - util.Abs(int(v))
		os.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		os.WriteString("N/A")
	default:
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}

// MatedIn returns the negamax score for "mated in `ply` plies" from the
// perspective of the side to move.
func MatedIn(ply int) Value {
	return -Mate + Value(ply)
}

// MateIn returns the negamax score for "mate in `ply` plies" from the
// perspective of the side to move.
func MateIn(ply int) Value {
	return Mate - Value(ply)
}
