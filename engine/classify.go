package engine

import (
	"strings"
	"unicode"
)

var rowKeywords = map[string]struct{}{
	"select":   {},
	"with":     {},
	"pragma":   {},
	"show":     {},
	"describe": {},
	"explain":  {},
}

// ReturnsRows reports whether the first keyword of script starts a
// row-producing statement. Scripts that are empty, all comments, or have a
// malformed comment classify as mutating.
func ReturnsRows(script string) bool {
	kw, ok := firstKeyword(script)
	if !ok {
		return false
	}
	_, ok = rowKeywords[kw]
	return ok
}

// firstKeyword returns the first whitespace-delimited token of script,
// lowercased, after skipping leading line and block comments. This is a
// lexical probe, not a parse.
func firstKeyword(script string) (string, bool) {
	rest := script
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)

		if strings.HasPrefix(rest, "--") {
			idx := strings.IndexByte(rest, '\n')
			if idx < 0 {
				return "", false
			}
			rest = rest[idx+1:]
			continue
		}

		if strings.HasPrefix(rest, "/*") {
			idx := strings.Index(rest, "*/")
			if idx < 0 {
				return "", false
			}
			rest = rest[idx+2:]
			continue
		}

		flds := strings.Fields(rest)
		if len(flds) == 0 {
			return "", false
		}
		return strings.ToLower(flds[0]), true
	}
}
