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

// Package assert provides a single DEBUG-gated invariant check used across
// the engine at bitboard/array coherence boundaries, TT capacity checks and
// stack non-emptiness checks.
package assert

import "fmt"

// DEBUG gates whether Assert actually evaluates its condition. Flip to true
// locally when chasing an invariant violation; release builds keep it false
// so the call sites are free.
const DEBUG = false

// Assert panics with the formatted message when test is false. Callers must
// still guard calls with "if assert.DEBUG { ... }" since arguments to Assert
// are evaluated regardless of DEBUG.
func Assert(test bool, format string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(format, a...))
	}
}
