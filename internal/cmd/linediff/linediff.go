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

// linediff is a development tool that compares two files line by line and prints the resulting
// edit script with line numbers and inline markers for modified lines.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"znkr.io/linediff"
)

var stats = flag.Bool("stats", false, "print aggregate change counts after the edit script")

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected two files, got %d arguments", len(args))
	}

	old, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	lines := linediff.Lines(string(old), string(new))
	for _, ln := range lines {
		switch ln.Op {
		case linediff.Match:
			fmt.Printf("%4d %4d    %s\n", ln.NumX, ln.NumY, ln.X)
		case linediff.Delete:
			fmt.Printf("%4d      -  %s\n", ln.NumX, ln.X)
		case linediff.Insert:
			fmt.Printf("     %4d +  %s\n", ln.NumY, ln.Y)
		case linediff.Modified:
			fmt.Printf("%4d %4d ~  %s\n", ln.NumX, ln.NumY, renderSpans(ln.Spans))
		default:
			panic("never reached")
		}
	}

	if *stats {
		st := linediff.StatsOf(lines)
		fmt.Printf("%d lines: %d added, %d deleted, %d modified, %d unchanged\n",
			st.Total, st.Added, st.Deleted, st.Modified, st.Unchanged)
	}
	return nil
}

func renderSpans(spans []linediff.Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		switch sp.Op {
		case linediff.Match:
			sb.WriteString(sp.Text)
		case linediff.Delete:
			sb.WriteString("[-")
			sb.WriteString(sp.Text)
			sb.WriteString("-]")
		case linediff.Insert:
			sb.WriteString("{+")
			sb.WriteString(sp.Text)
			sb.WriteString("+}")
		default:
			panic("never reached")
		}
	}
	return sb.String()
}
