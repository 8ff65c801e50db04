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

import (
	"strings"

	"znkr.io/linediff/internal/lcs"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match    Op = iota // Both sides contain the same content
	Delete             // A deletion of a line or span from the left side
	Insert             // An insertion of a line or span from the right side
	Modified           // A deletion and an insertion paired into a single changed line
)

// Line describes a single line of a line-by-line comparison.
//
//   - For Match, both sides are set and X == Y.
//   - For Delete, only the left side is set: NumY is 0 and Y is empty.
//   - For Insert, only the right side is set: NumX is 0 and X is empty.
//   - For Modified, both sides are set and Spans carries the character-level changes that
//     transform X into Y.
type Line struct {
	Op   Op
	NumX int    // 1-based line number in x, 0 if the line has no left side.
	NumY int    // 1-based line number in y, 0 if the line has no right side.
	X, Y string // Line contents, subject to the same presence rules as the line numbers.

	// Spans contains the inline character spans for Modified lines and is nil otherwise. The
	// concatenation of all Match and Delete spans is X, the concatenation of all Match and
	// Insert spans is Y.
	Spans []Span
}

// Span describes a contiguous run of characters within a modified line pair. Op is Match, Delete,
// or Insert; character-level comparisons never produce Modified. Consecutive spans always have
// different ops.
type Span struct {
	Op   Op
	Text string
}

// Lines compares x and y line by line and returns the changes necessary to convert from one to
// the other.
//
// The result contains every line of both inputs exactly once, in document order, with 1-based
// line numbers assigned per side. Runs of consecutive deletions that are immediately followed by
// insertions are paired up positionally into Modified lines carrying inline character spans, see
// [Spans].
//
// Inputs are split on '\n'. Following the usual split semantics, an empty input consists of a
// single empty line; as the only exception, comparing an empty input against a non-empty one
// yields a script of only insertions (or only deletions) rather than pairing the empty line
// against the other input's first line.
func Lines(x, y string) []Line {
	switch {
	case x == "" && y == "":
		// Handled by the regular path: two empty inputs are identical.
	case x == "":
		ylines := strings.Split(y, "\n")
		out := make([]Line, len(ylines))
		for t, line := range ylines {
			out[t] = Line{Op: Insert, NumY: t + 1, Y: line}
		}
		return out
	case y == "":
		xlines := strings.Split(x, "\n")
		out := make([]Line, len(xlines))
		for s, line := range xlines {
			out[s] = Line{Op: Delete, NumX: s + 1, X: line}
		}
		return out
	}

	xlines := strings.Split(x, "\n")
	ylines := strings.Split(y, "\n")
	return mergeModified(script(xlines, ylines))
}

// script reconstructs the raw line-level edit script from the LCS of x and y: lines of either
// side that precede the next matching pair become deletions and insertions respectively, matching
// pairs become matches. No Modified lines are produced at this stage.
func script(x, y []string) []Line {
	pairs := lcs.Pairs(x, y)
	out := make([]Line, 0, len(x)+len(y)-len(pairs))
	s, t := 0, 0
	for _, p := range pairs {
		for s < p.X {
			out = append(out, Line{Op: Delete, NumX: s + 1, X: x[s]})
			s++
		}
		for t < p.Y {
			out = append(out, Line{Op: Insert, NumY: t + 1, Y: y[t]})
			t++
		}
		out = append(out, Line{Op: Match, NumX: s + 1, NumY: t + 1, X: x[s], Y: y[t]})
		s++
		t++
	}
	for s < len(x) {
		out = append(out, Line{Op: Delete, NumX: s + 1, X: x[s]})
		s++
	}
	for t < len(y) {
		out = append(out, Line{Op: Insert, NumY: t + 1, Y: y[t]})
		t++
	}
	return out
}
