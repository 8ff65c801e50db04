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

// Package lcs computes longest common subsequences using the classic dynamic programming
// formulation.
package lcs

import "slices"

// A Pair references a matching element of two compared slices by index.
type Pair struct {
	X, Y int
}

// Pairs compares the contents of x and y and returns the index pairs of one longest common
// subsequence of both, in increasing order of both indices.
//
// When more than one subsequence of maximal length exists, ties during backtracking are resolved
// by preferring to consume an element of x. Callers that reconstruct edit scripts from the result
// depend on this rule: it is what makes the output deterministic for inputs with repeated
// elements, and it must not change.
//
// Time and memory cost is O(len(x)·len(y)). This is a known scaling limit for inputs with tens of
// thousands of elements.
func Pairs[T comparable](x, y []T) []Pair {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}

	// dp[i*w+j] is the length of the longest common subsequence of x[:i] and y[:j], allocated as
	// a single slab.
	w := n + 1
	dp := make([]int, (m+1)*w)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case x[i-1] == y[j-1]:
				dp[i*w+j] = dp[(i-1)*w+j-1] + 1
			case dp[(i-1)*w+j] >= dp[i*w+j-1]:
				dp[i*w+j] = dp[(i-1)*w+j]
			default:
				dp[i*w+j] = dp[i*w+j-1]
			}
		}
	}

	k := dp[m*w+n]
	if k == 0 {
		return nil
	}
	pairs := make([]Pair, 0, k)
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case x[i-1] == y[j-1]:
			pairs = append(pairs, Pair{i - 1, j - 1})
			i--
			j--
		case dp[(i-1)*w+j] >= dp[i*w+j-1]:
			i-- // ties consume x first, see above
		default:
			j--
		}
	}
	slices.Reverse(pairs)
	return pairs
}
