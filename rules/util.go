package rules

import "sort"

// dedupSortAsc returns idx deduplicated and sorted ascending, for
// deterministic journal output. The input order carries no meaning to
// any caller of these rules.
func dedupSortAsc(idx []int) []int {
	seen := make(map[int]bool, len(idx))
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
