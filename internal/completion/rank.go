package completion

import (
	"sort"
	"strings"
)

// rank turns the candidate buckets into the final user-visible ordering:
//
//  1. within each name, sort by depth then symbol id;
//  2. keep only the head of each bucket (dedup by minimal depth);
//  3. drop mangled-rename names, an internal desugaring artifact (other
//     synthesized unique names stay, so each overload remains visible);
//  4. global sort by depth, then literal-prefix matches before merely
//     similar names, then short name, then symbol id.
//
// Every comparison bottoms out in the stable symbol id, so the result is
// fully deterministic for a fixed table, type, and prefix.
func (e *Engine) rank(byName candidatesByName, prefix string) []*candidate {
	for _, cands := range byName {
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].depth != cands[j].depth {
				return cands[i].depth < cands[j].depth
			}
			return cands[i].method < cands[j].method
		})
	}

	deduped := make([]*candidate, 0, len(byName))
	for _, cands := range byName {
		head := cands[0]
		if e.tab.Symbol(head.method).Name.IsMangleRename() {
			continue
		}
		// Each bucket is sorted by depth, so keeping the head dedups by
		// depth within the name.
		deduped = append(deduped, head)
	}

	sort.Slice(deduped, func(i, j int) bool {
		left, right := deduped[i], deduped[j]
		if left.depth != right.depth {
			return left.depth < right.depth
		}

		leftName := e.tab.Symbol(left.method).Name.Short
		rightName := e.tab.Symbol(right.method).Name.Short
		if leftName != rightName {
			leftPrefixed := strings.HasPrefix(leftName, prefix)
			rightPrefixed := strings.HasPrefix(rightName, prefix)
			if leftPrefixed && !rightPrefixed {
				return true
			}
			if !leftPrefixed && rightPrefixed {
				return false
			}
			return leftName < rightName
		}

		return left.method < right.method
	})

	return deduped
}
