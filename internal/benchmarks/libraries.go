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

// Package benchmarks compares linediff against other line-based diff implementations.
package benchmarks

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	"github.com/pmezard/go-difflib/difflib"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/linediff"
)

type Impl struct {
	Name string
	// Diff compares x and y line by line and returns the number of changed lines. The count is
	// not identical across implementations because the algorithms produce different scripts,
	// but it's close enough to compare the result quality.
	Diff func(x, y string) int
}

var Impls = []Impl{
	{
		Name: "linediff",
		Diff: func(x, y string) int {
			n := 0
			for _, ln := range linediff.Lines(x, y) {
				switch ln.Op {
				case linediff.Delete, linediff.Insert:
					n++
				case linediff.Modified:
					// A modified line is a paired delete and insert.
					n += 2
				}
			}
			return n
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) int {
			dmp := diffmatchpatch.New()
			c1, c2, lineArray := dmp.DiffLinesToChars(x, y)
			diffs := dmp.DiffMain(c1, c2, false)
			diffs = dmp.DiffCharsToLines(diffs, lineArray)

			n := 0
			for _, d := range diffs {
				if d.Type == diffmatchpatch.DiffEqual {
					continue
				}
				for _, line := range strings.SplitAfter(d.Text, "\n") {
					if line != "" {
						n++
					}
				}
			}
			return n
		},
	},
	{
		Name: "go-difflib",
		Diff: func(x, y string) int {
			a := strings.Split(x, "\n")
			b := strings.Split(y, "\n")
			n := 0
			for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
				switch op.Tag {
				case 'r':
					n += (op.I2 - op.I1) + (op.J2 - op.J1)
				case 'd':
					n += op.I2 - op.I1
				case 'i':
					n += op.J2 - op.J1
				}
			}
			return n
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y string) int {
			a := strings.Split(x, "\n")
			b := strings.Split(y, "\n")
			n := 0
			for _, c := range godebug.DiffChunks(a, b) {
				n += len(c.Added) + len(c.Deleted)
			}
			return n
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y string) int {
			return countUnified(string(gointernal.Diff("x", []byte(x), "y", []byte(y))))
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y string) int {
			return countUnified(udiff.Unified("x", "y", x, y))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y string) int {
			d := mb0lines{
				x: strings.Split(x, "\n"),
				y: strings.Split(y, "\n"),
			}
			n := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				n += ch.Del + ch.Ins
			}
			return n
		},
	},
}

// countUnified counts the changed lines of a unified diff, skipping the file headers.
func countUnified(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			n++
		}
	}
	return n
}

type mb0lines struct {
	x []string
	y []string
}

func (d mb0lines) Equal(i, j int) bool { return d.x[i] == d.y[j] }
