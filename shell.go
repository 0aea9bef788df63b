// FILE: lixenwraith/apacheconf/shell.go
package apacheconf

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/kballard/go-shellquote"
)

// SplitWords splits s into shell words. Quotes group a word, backslash escapes the next
// character. Inside double quotes sh rules apply: a backslash is dropped before $, `, "
// and \ and kept before anything else, so "a\$b" yields a$b and "c\d" yields c\d.
// Unterminated quotes or a trailing backslash yield ErrTokenize.
func SplitWords(s string) ([]string, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenize, err)
	}
	return words, nil
}

// QuoteWord returns the canonical rendering of a single token: unquoted when it only holds
// characters from [A-Za-z0-9_@%+=:,./-], single-quoted otherwise, and '' when empty.
func QuoteWord(s string) string {
	return shellescape.Quote(s)
}

// joinWords quotes every word and joins them with single spaces.
func joinWords(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = QuoteWord(w)
	}
	return strings.Join(quoted, " ")
}
