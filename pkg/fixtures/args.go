package fixtures

import (
	"path/filepath"
	"strings"
)

// ArgTokens is a parsed command-argument string: one entry per top-level
// comma-separated token.
type ArgTokens []string

// ParseArgs splits an argument string on every comma. Quote characters are
// NOT honored: a quoted multi-path argument like `"force-app, my-app"` is
// split at its embedded commas, with the quotes left attached to the outer
// tokens as opaque characters. The fixture data depends on this splitting
// behavior; do not change it to respect quoting.
func ParseArgs(s string) ArgTokens {
	return ArgTokens(strings.Split(s, ","))
}

// String rejoins the tokens with commas, reproducing the shape ParseArgs
// consumed.
func (t ArgTokens) String() string {
	return strings.Join(t, ",")
}

// Normalize returns a copy of the tokens with each token's forward slashes
// rewritten to the host platform's path separator. Segment content and
// token order are unchanged.
func (t ArgTokens) Normalize() ArgTokens {
	out := make(ArgTokens, len(t))
	for i, tok := range t {
		out[i] = NormalizePath(tok)
	}
	return out
}

// NormalizePath rewrites the forward slashes in a single path token to the
// native separator. On Unix hosts this is the identity function.
func NormalizePath(p string) string {
	return filepath.FromSlash(p)
}

// NormalizeArgs splits an argument string on commas, normalizes each token,
// and rejoins. Token count and relative order are preserved.
func NormalizeArgs(s string) string {
	return ParseArgs(s).Normalize().String()
}
