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

// Stats summarizes a finished comparison. Total is the number of lines in the edit script and
// always equals the sum of the four counters.
type Stats struct {
	Added     int
	Deleted   int
	Modified  int
	Unchanged int
	Total     int
}

// StatsOf folds an edit script into aggregate change counts. It is a pure view of the script:
// recompute it whenever the underlying comparison changes.
func StatsOf(lines []Line) Stats {
	var st Stats
	for _, ln := range lines {
		switch ln.Op {
		case Match:
			st.Unchanged++
		case Delete:
			st.Deleted++
		case Insert:
			st.Added++
		case Modified:
			st.Modified++
		default:
			panic("never reached")
		}
	}
	st.Total = len(lines)
	return st
}
