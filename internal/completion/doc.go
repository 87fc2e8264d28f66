package completion

import "strings"

// deprecationMarker inside a doc block flags the item as deprecated.
const deprecationMarker = "@deprecated"

// findDocumentation scans the source text immediately preceding the
// declaration at declOffset for a trailing comment block. Single-line sig
// annotations between the comment and the declaration are looked through.
// Returns the block with comment markers stripped, or false when the
// declaration has no documentation.
func findDocumentation(source string, declOffset int) (string, bool) {
	if declOffset < 0 || declOffset > len(source) {
		return "", false
	}

	// Back up to the start of the declaration's own line.
	lineStart := strings.LastIndexByte(source[:declOffset], '\n') + 1

	var docLines []string
	rest := source[:lineStart]
	sawSig := false
	for {
		prevStart := strings.LastIndexByte(strings.TrimSuffix(rest, "\n"), '\n') + 1
		line := strings.TrimSpace(strings.TrimSuffix(rest[prevStart:], "\n"))
		switch {
		case strings.HasPrefix(line, "#"):
			docLines = append(docLines, strings.TrimPrefix(strings.TrimPrefix(line, "#"), " "))
		case !sawSig && strings.HasPrefix(line, "sig"):
			// sig { ... } sits between the doc block and the declaration.
			sawSig = true
		default:
			if len(docLines) == 0 {
				return "", false
			}
			return joinReversed(docLines), true
		}
		if prevStart == 0 {
			if len(docLines) == 0 {
				return "", false
			}
			return joinReversed(docLines), true
		}
		rest = rest[:prevStart]
	}
}

// joinReversed joins lines collected bottom-up back into top-down order.
func joinReversed(lines []string) string {
	var sb strings.Builder
	for i := len(lines) - 1; i >= 0; i-- {
		sb.WriteString(lines[i])
		if i > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
