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

// mergeModified rewrites the raw edit script in a single pass: every maximal run of deletions
// that is immediately followed by a run of insertions is paired up positionally, first with
// first, up to the length of the shorter run. Each pair becomes a single Modified line with
// inline character spans. Leftover deletions and insertions of the longer run stay as they are,
// as do matches and isolated runs.
//
// The pairing is strictly positional and makes no attempt to find a better alignment between the
// two runs.
func mergeModified(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for i := 0; i < len(lines); {
		if lines[i].Op != Delete {
			out = append(out, lines[i])
			i++
			continue
		}
		j := i
		for j < len(lines) && lines[j].Op == Delete {
			j++
		}
		k := j
		for k < len(lines) && lines[k].Op == Insert {
			k++
		}
		dels, ins := lines[i:j], lines[j:k]
		n := min(len(dels), len(ins))
		for p := range n {
			out = append(out, Line{
				Op:    Modified,
				NumX:  dels[p].NumX,
				NumY:  ins[p].NumY,
				X:     dels[p].X,
				Y:     ins[p].Y,
				Spans: Spans(dels[p].X, ins[p].Y),
			})
		}
		out = append(out, dels[n:]...)
		out = append(out, ins[n:]...)
		i = k
	}
	return out
}
