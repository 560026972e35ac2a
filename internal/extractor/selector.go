package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// queryMethodName is the DOM query method the corpus wraps selectors in.
const queryMethodName = "querySelector"

// extractSelector recovers a literal selector string from a method body.
//
// It inspects the first return statement that is a direct child of the body
// (returns nested in conditionals or blocks are ignored) and recognizes
// exactly two shapes:
//
//	return "div.chapter";
//	return dom.querySelector("div.chapter");
//
// Anything else -- template strings, concatenation, variables, zero-argument
// calls -- yields nil. That absence is the expected result for methods using
// richer idioms, not an error.
func extractSelector(body *sitter.Node, source []byte) *string {
	if body == nil {
		return nil
	}

	ret := findNamedChildByKind(body, "return_statement")
	if ret == nil {
		return nil
	}

	expr := ret.NamedChild(0)
	if expr == nil {
		return nil
	}

	// Shape 1: bare string literal.
	if value, ok := stringLiteralValue(expr, source); ok {
		return &value
	}

	// Shape 2: <receiver>.querySelector("...").
	if expr.Kind() != "call_expression" {
		return nil
	}

	callee := expr.ChildByFieldName("function")
	if callee == nil || callee.Kind() != "member_expression" {
		return nil
	}

	property := callee.ChildByFieldName("property")
	if property == nil || nodeText(property, source) != queryMethodName {
		return nil
	}

	args := expr.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return nil
	}

	if value, ok := stringLiteralValue(args.NamedChild(0), source); ok {
		return &value
	}
	return nil
}
