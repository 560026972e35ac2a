package extractor

import (
	"strconv"
	"strings"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// findNamedChildByKind finds the first named child node with the given kind.
func findNamedChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(uint(i))
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// stringLiteralValue decodes the value of a "string" node. It concatenates
// string_fragment children and resolves escape sequences, matching what a
// JavaScript engine would see as the literal's value.
// Returns ("", false) if the node is not a string literal.
func stringLiteralValue(node *sitter.Node, source []byte) (string, bool) {
	if node == nil || node.Kind() != "string" {
		return "", false
	}

	var sb strings.Builder
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(uint(i))
		switch child.Kind() {
		case "string_fragment":
			sb.WriteString(nodeText(child, source))
		case "escape_sequence":
			sb.WriteString(unescape(nodeText(child, source)))
		}
	}
	return sb.String(), true
}

// unescape resolves a single JavaScript escape sequence ("\n", "é",
// "\u{1f600}", "\x41", ...).
func unescape(seq string) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return seq
	}

	switch seq[1] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		return "\x00"
	case 'x':
		return hexEscape(seq[2:])
	case 'u':
		if len(seq) > 2 && seq[2] == '{' && seq[len(seq)-1] == '}' {
			return hexEscape(seq[3 : len(seq)-1])
		}
		return hexEscape(seq[2:])
	default:
		// \" \' \\ \` and anything unrecognized: keep the escaped character
		return seq[1:]
	}
}

// hexEscape decodes the hex-digit body of a \xXX, \uXXXX or \u{...} escape
// into the rune it names. Malformed digits come back verbatim; the grammar
// only produces escape_sequence nodes for well-formed escapes, so this is a
// guard, not a path the corpus exercises.
func hexEscape(digits string) string {
	code, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || code > utf8.MaxRune {
		return digits
	}
	return string(rune(code))
}
