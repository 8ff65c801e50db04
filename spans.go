// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linediff

import "znkr.io/linediff/internal/lcs"

// Spans compares two lines character by character and returns the changes necessary to convert
// from one to the other as a flat sequence of spans.
//
// The comparison operates on runes, so multi-byte characters are never split across spans.
// Consecutive changes of the same kind are collapsed into a single span, so no two consecutive
// spans share the same op. If x and y are identical, the result is a single Match span; if either
// is empty, the result is a single Insert or Delete span covering the other; if both are empty,
// the result is nil.
func Spans(x, y string) []Span {
	xr, yr := []rune(x), []rune(y)

	// Runs of the same op always cover a contiguous rune range of their source: xr for Match and
	// Delete, yr for Insert. Tracking the pending run as a half-open range and converting it to a
	// string only when the op changes avoids quadratic growth for long spans.
	var out []Span
	op := Op(-1)
	lo, hi := 0, 0
	flush := func() {
		if op < 0 {
			return
		}
		src := xr
		if op == Insert {
			src = yr
		}
		out = append(out, Span{Op: op, Text: string(src[lo:hi])})
	}
	emit := func(o Op, i int) {
		if o == op && i == hi {
			hi++
			return
		}
		flush()
		op, lo, hi = o, i, i+1
	}

	s, t := 0, 0
	for _, p := range lcs.Pairs(xr, yr) {
		for s < p.X {
			emit(Delete, s)
			s++
		}
		for t < p.Y {
			emit(Insert, t)
			t++
		}
		emit(Match, s)
		s++
		t++
	}
	for s < len(xr) {
		emit(Delete, s)
		s++
	}
	for t < len(yr) {
		emit(Insert, t)
		t++
	}
	flush()
	return out
}
