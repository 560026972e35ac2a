package extractor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Method Selector Extractor:
// - Plain string literal return yields the literal
// - querySelector call return yields the call's first argument
// - Extra querySelector arguments are ignored, first one wins
// - Escape sequences in literals are decoded
// - Unicode and hex escapes yield their code points, not the raw digits
// - Template strings, concatenation, identifiers yield absent
// - Zero-argument calls and non-querySelector calls yield absent
// - Bare return and empty bodies yield absent
// - Only the first direct return statement is inspected
// - Returns nested in conditionals are not direct children

// contentSelector runs the full pipeline over a class whose findContent body
// is the given statements, and returns the extracted content selector.
func contentSelector(t *testing.T, body string) *string {
	t.Helper()

	source := fmt.Sprintf(`parserFactory.register("example.com", () => new ExampleParser());

class ExampleParser extends Parser {
    findContent(dom) {
%s
    }
}
`, body)

	result := New().Extract("example_parser.js", []byte(source))
	require.NotNil(t, result)
	require.NotNil(t, result.Record)
	return result.Record.Selectors.Content
}

func TestExtractSelector_StringLiteral(t *testing.T) {
	t.Parallel()

	got := contentSelector(t, `        return "div.chapter";`)
	require.NotNil(t, got)
	assert.Equal(t, "div.chapter", *got)
}

func TestExtractSelector_QuerySelectorCall(t *testing.T) {
	t.Parallel()

	got := contentSelector(t, `        return dom.querySelector("div.chapter");`)
	require.NotNil(t, got)
	assert.Equal(t, "div.chapter", *got)
}

func TestExtractSelector_ChainedReceiver(t *testing.T) {
	t.Parallel()

	got := contentSelector(t, `        return dom.body.querySelector("div.chapter");`)
	require.NotNil(t, got)
	assert.Equal(t, "div.chapter", *got)
}

func TestExtractSelector_FirstArgumentWins(t *testing.T) {
	t.Parallel()

	got := contentSelector(t, `        return dom.querySelector("div.chapter", fallback);`)
	require.NotNil(t, got)
	assert.Equal(t, "div.chapter", *got)
}

func TestExtractSelector_EscapeSequences(t *testing.T) {
	t.Parallel()

	got := contentSelector(t, `        return "div[title=\"the chapter\"]";`)
	require.NotNil(t, got)
	assert.Equal(t, `div[title="the chapter"]`, *got)
}

func TestExtractSelector_UnicodeEscapes(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		body string
		want string
	}{
		"four-digit unicode": {`        return "div.café";`, "div.café"},
		"braced code point":  {`        return "a[title=\u{2605}]";`, "a[title=★]"},
		"hex escape":         {`        return "div.\x41side";`, "div.Aside"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := contentSelector(t, tc.body)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestExtractSelector_SingleQuotedLiteral(t *testing.T) {
	t.Parallel()

	got := contentSelector(t, `        return 'div.chapter';`)
	require.NotNil(t, got)
	assert.Equal(t, "div.chapter", *got)
}

func TestExtractSelector_UnrecognizedShapes(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"template string":        "        return `div.${this.suffix}`;",
		"concatenation":          `        return "div." + suffix;`,
		"identifier":             `        return contentSelector;`,
		"zero-arg call":          `        return dom.querySelector();`,
		"non-query call":         `        return util.getFirstImgSrc(dom, "div.book");`,
		"bare function call":     `        return findChapter("div.chapter");`,
		"non-literal argument":   `        return dom.querySelector(selector);`,
		"bare return":            `        return;`,
		"no return statement":    `        let x = "div.chapter";`,
		"numeric literal return": `        return 42;`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Nil(t, contentSelector(t, body))
		})
	}
}

func TestExtractSelector_FirstDirectReturnWins(t *testing.T) {
	t.Parallel()

	got := contentSelector(t, `        return probe(dom);
        return "div.chapter";`)
	assert.Nil(t, got)
}

func TestExtractSelector_NestedReturnIgnored(t *testing.T) {
	t.Parallel()

	// The conditional's return is not a direct child of the method body; the
	// first direct return is the trailing one.
	got := contentSelector(t, `        if (dom.querySelector("div.modern") !== null) {
            return "div.modern";
        }
        return "div.legacy";`)
	require.NotNil(t, got)
	assert.Equal(t, "div.legacy", *got)
}

func TestExtractSelector_EmptyStringLiteral(t *testing.T) {
	t.Parallel()

	got := contentSelector(t, `        return "";`)
	require.NotNil(t, got)
	assert.Equal(t, "", *got)
}
