// SPDX-License-Identifier: MIT

package morphism

import (
	"strings"

	"github.com/katalvlaran/framelogic/core"
)

// Mapping sends world i of the source frame to Mapping[i] in the target.
type Mapping []int

// IsPMorphism reports whether m is a surjective p-morphism from onto.
// Complexity: O(|X₁| + |R₁| + Σ_x |R₂[f(x)]|·|R₁[x]|).
func IsPMorphism(m Mapping, from, onto *core.Frame) bool {
	if from == nil || onto == nil || len(m) != from.Size() {
		return false
	}
	n2 := onto.Size()
	hit := make([]bool, n2)
	covered := 0
	for _, y := range m {
		if y < 0 || y >= n2 {
			return false
		}
		if !hit[y] {
			hit[y] = true
			covered++
		}
	}
	if covered != n2 {
		return false
	}

	for x := 0; x < from.Size(); x++ {
		succ := from.Successors(x)
		for _, y := range succ {
			if !onto.Has(m[x], m[y]) {
				return false
			}
		}
		for _, u := range onto.Successors(m[x]) {
			found := false
			for _, y := range succ {
				if m[y] == u {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	return true
}

// Labeled renders the mapping with the frames' labels.
func (m Mapping) Labeled(from, onto *core.Frame) map[string]string {
	out := make(map[string]string, len(m))
	for x, y := range m {
		out[from.Label(x)] = onto.Label(y)
	}

	return out
}

// Format renders the mapping as "{a --> d, b --> e}" in source order.
func (m Mapping) Format(from, onto *core.Frame) string {
	parts := make([]string, len(m))
	for x, y := range m {
		parts[x] = from.Label(x) + " --> " + onto.Label(y)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
