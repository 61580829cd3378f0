package fixtures

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "nested path",
			input:    "force-app/main/default/objects",
			expected: strings.Join([]string{"force-app", "main", "default", "objects"}, sep),
		},
		{
			name:     "single segment",
			input:    "force-app",
			expected: "force-app",
		},
		{
			name:     "metadata token without slashes",
			input:    "ApexClass:GeocodingService",
			expected: "ApexClass:GeocodingService",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePath(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseArgs_TokenCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"single token", "force-app", 1},
		{"two tokens", "force-app,my-app", 2},
		{"three tokens", "force-app,my-app,foo-bar", 3},
		{"quoted token splits at embedded commas", "\"force-app, my-app, foo-bar\"", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseArgs(tt.input)
			if len(got) != tt.count {
				t.Errorf("ParseArgs(%q) yielded %d tokens, want %d", tt.input, len(got), tt.count)
			}
		})
	}
}

func TestNormalizeArgs_PreservesTokensAndOrder(t *testing.T) {
	input := "force-app/main/default/classes,my-app/objects,foo-bar"
	got := NormalizeArgs(input)

	inTokens := strings.Split(input, ",")
	outTokens := strings.Split(got, ",")
	if len(outTokens) != len(inTokens) {
		t.Fatalf("token count changed: got %d, want %d", len(outTokens), len(inTokens))
	}
	for i := range inTokens {
		if outTokens[i] != NormalizePath(inTokens[i]) {
			t.Errorf("token %d = %q, want %q", i, outTokens[i], NormalizePath(inTokens[i]))
		}
	}
}

// A quoted multi-path argument is split at its embedded commas and the quote
// characters survive on the outer tokens. Rejoining reproduces the original
// byte sequence because none of the pieces contain slashes.
func TestNormalizeArgs_QuotedTokenRoundTrips(t *testing.T) {
	input := "\"force-app, my-app, foo-bar\""
	got := NormalizeArgs(input)
	if got != input {
		t.Errorf("NormalizeArgs(%q) = %q, want unchanged", input, got)
	}

	tokens := ParseArgs(input)
	if len(tokens) != 3 {
		t.Fatalf("expected naive split into 3 tokens, got %d: %q", len(tokens), tokens)
	}
	if !strings.HasPrefix(tokens[0], "\"") {
		t.Errorf("leading quote lost from first token: %q", tokens[0])
	}
	if !strings.HasSuffix(tokens[2], "\"") {
		t.Errorf("trailing quote lost from last token: %q", tokens[2])
	}
	if tokens.String() != input {
		t.Errorf("rejoin = %q, want %q", tokens.String(), input)
	}
}

func TestArgTokens_NormalizeDoesNotMutateReceiver(t *testing.T) {
	tokens := ArgTokens{"force-app/main", "my-app"}
	_ = tokens.Normalize()
	if tokens[0] != "force-app/main" {
		t.Errorf("Normalize mutated receiver: %q", tokens[0])
	}
}
