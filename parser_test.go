// FILE: lixenwraith/apacheconf/parser_test.go
package apacheconf

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseNesting tests that sections nest by open-block stack depth
func TestParseNesting(t *testing.T) {
	tree, err := ParseString("<A>\n<B>\nDirective v1 v2\n</B>\n</A>")
	require.NoError(t, err)

	top := tree.Root().Children()
	require.Len(t, top, 1)
	a := top[0]
	assert.Equal(t, KindSection, a.Kind())
	assert.Equal(t, "A", a.Name())
	assert.False(t, a.HasArgs())

	require.Len(t, a.Children(), 1)
	b := a.Children()[0]
	assert.Equal(t, KindSection, b.Kind())
	assert.Equal(t, "B", b.Name())

	require.Len(t, b.Children(), 1)
	d := b.Children()[0]
	assert.Equal(t, KindStatement, d.Kind())
	assert.Equal(t, "Directive", d.Name())
	assert.Equal(t, []string{"v1", "v2"}, d.Args())
	assert.Equal(t, 3, d.Line())

	assert.Equal(t, "<A>\n    <B>\n        Directive v1 v2\n    </B>\n</A>", tree.String())
	assert.Empty(t, tree.Unclosed())
}

// TestParseNodeKinds tests construction of every node variant
func TestParseNodeKinds(t *testing.T) {
	tree := MustParse(canonicalConfig)
	top := tree.Root().Children()

	kinds := make([]Kind, len(top))
	for i, n := range top {
		kinds[i] = n.Kind()
	}
	assert.Equal(t, []Kind{
		KindComment, KindStatement, KindStatement, KindStatement, KindStatement,
		KindBlank, KindSection, KindBlank, KindSection, KindSection,
	}, kinds)

	assert.Equal(t, "Global settings", top[0].Comment())
	assert.Equal(t, "ServerSignature", top[4].Name())
	assert.Empty(t, top[4].Args())
	assert.Equal(t, []string{"*:80"}, top[6].Args())
	assert.Equal(t, 7, top[6].Line())

	errDoc, ok := top[6].Children().Find("ErrorDocument")
	require.True(t, ok)
	assert.Equal(t, []string{"404", "Not found here"}, errDoc.Args())
}

// TestParseErrors tests structural and tokenization failures
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		target error
	}{
		{"MissingBracket", "<A v1 v2", 1, ErrMalformedLine},
		{"MissingBracketLater", "Listen 80\n\n<A v1 v2\n</A>", 3, ErrMalformedLine},
		{"EmptyTag", "<>", 1, ErrMalformedLine},
		{"UnterminatedStatementQuote", "Listen 80\nFoo \"bar", 2, ErrTokenize},
		{"UnterminatedSectionQuote", "<A 'x>\n</A>", 1, ErrTokenize},
		{"EmptyModuleName", "'' value", 1, ErrMissingName},
		{"CloseWithoutOpen", "</A>", 1, ErrUnbalancedClose},
		{"ExtraClose", "<A>\n</A>\n</A>", 3, ErrUnbalancedClose},
		{"MismatchedClose", "<A>\n<B>\n</A>\n</B>", 3, ErrMismatchedClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := ParseString(tt.input)
			require.Error(t, err)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, tt.target)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, DefaultSource, perr.Source)
			assert.Contains(t, err.Error(), "failed to parse <input> at line")
		})
	}
}

// TestParseCloseChecks tests the strict and lenient closing-tag modes
func TestParseCloseChecks(t *testing.T) {
	t.Run("CaseInsensitiveName", func(t *testing.T) {
		_, err := ParseString("<IfModule mod_ssl.c>\n</ifmodule>")
		assert.NoError(t, err)
	})

	t.Run("MismatchMessage", func(t *testing.T) {
		_, err := ParseString("<Directory />\n</Location>")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "</Location> closes <Directory> opened at line 1")
	})

	t.Run("LenientPopsInnermost", func(t *testing.T) {
		opts := DefaultOptions()
		opts.StrictClose = false
		tree, err := Parse(strings.NewReader("<A>\n<B>\n</A>\nInside A\n</B>\nTop"), opts)
		require.NoError(t, err)

		a := tree.Root().Children()[0]
		assert.Equal(t, []string{"B", "Inside"}, names(a.Children()))
		assert.Equal(t, []string{"A", "Top"}, names(tree.Root().Children()))
	})

	t.Run("LenientStillRejectsUnbalanced", func(t *testing.T) {
		opts := DefaultOptions()
		opts.StrictClose = false
		_, err := Parse(strings.NewReader("</A>"), opts)
		assert.ErrorIs(t, err, ErrUnbalancedClose)
	})
}

// TestParseUnclosed tests sections left open at end of input
func TestParseUnclosed(t *testing.T) {
	input := "<A>\n<B x>\nFoo bar"

	t.Run("ToleratedByDefault", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		tree, err := NewParser(DefaultOptions(), zap.New(core)).ParseString(input)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, names(tree.Unclosed()))
		assert.Equal(t, "<A>\n    <B x>\n        Foo bar\n    </B>\n</A>", tree.String())
		assert.Equal(t, 2, logs.FilterMessage("Section not closed before end of input").Len())
	})

	t.Run("RequireClosed", func(t *testing.T) {
		opts := DefaultOptions()
		opts.RequireClosed = true
		_, err := Parse(strings.NewReader(input), opts)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnclosedSection)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, 2, perr.Line)
		assert.Contains(t, err.Error(), "<B>")
	})
}

// TestParseLineEndings tests CRLF input and missing final newline
func TestParseLineEndings(t *testing.T) {
	crlf, err := ParseString("Listen 80\r\n<A>\r\nFoo bar\r\n</A>\r\n")
	require.NoError(t, err)

	lf, err := ParseString("Listen 80\n<A>\nFoo bar\n</A>")
	require.NoError(t, err)

	assert.Equal(t, lf.String(), crlf.String())
	assert.Equal(t, "Listen 80\n<A>\n    Foo bar\n</A>", crlf.String())
}

// TestParseEmptyInput tests that empty input yields a bare root
func TestParseEmptyInput(t *testing.T) {
	tree, err := ParseString("")
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	assert.Empty(t, tree.Root().Children())
	assert.Equal(t, "", tree.String())
}

// TestParserReuse tests that a parser keeps no state between inputs
func TestParserReuse(t *testing.T) {
	p := NewParser(DefaultOptions(), nil)

	first, err := p.ParseString("<A>\nFoo")
	require.NoError(t, err)
	second, err := p.ParseBytes([]byte("Bar baz"))
	require.NoError(t, err)

	assert.Len(t, first.Unclosed(), 1)
	assert.Empty(t, second.Unclosed())
	assert.Equal(t, "Bar baz", second.String())
}

// TestMustParsePanics tests MustParse on invalid input
func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("<A")
	})
}
