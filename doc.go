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

// Package linediff compares two texts line by line and produces a full edit script annotated with
// line numbers, including inline character-level highlights for lines that were modified in place.
//
// The main entry points are [Lines], which compares two texts and returns one [Line] per input
// line, and [Spans], which compares a single pair of lines character by character. [StatsOf]
// summarizes a finished comparison into aggregate change counts.
//
// In contrast to unified diff output, the result covers both inputs completely: every line of
// either input appears in the edit script exactly once, either as a match, a deletion, an
// insertion, or as one half of a modified pair. Consecutive runs of deletions and insertions are
// paired up in order of appearance and reported as modified lines with inline character spans.
// This pairing is positional on purpose: it does not search for the best alignment between the
// deleted and the inserted lines.
//
// Performance: the comparison is based on the classic dynamic programming formulation of the
// longest common subsequence problem and needs O(n·m) time and space for inputs with n and m
// lines. For every modified line pair, another O(n·m) comparison runs at character granularity.
// This is a known scaling limit for inputs with tens of thousands of lines.
//
// The output is deterministic: repeated calls with identical inputs always produce the identical
// edit script.
package linediff
