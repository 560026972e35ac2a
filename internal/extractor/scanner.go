package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Corpus conventions. Every site-parser module declares one class and
// registers its URL patterns through the shared parser factory.
const (
	factoryName        = "parserFactory"
	registerMethodName = "register"
)

// scanResult holds what the declaration scanner found in one module.
type scanResult struct {
	className string
	classBody *sitter.Node
	patterns  []string
}

// scanModule walks the top-level statements of a parsed module and collects
// the first class declaration plus every parserFactory.register call whose
// first argument is a string literal. Only the first class is considered;
// the corpus convention is one class per file.
func scanModule(root *sitter.Node, source []byte) scanResult {
	var result scanResult

	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(uint(i))

		switch stmt.Kind() {
		case "class_declaration":
			if result.classBody != nil {
				continue
			}
			nameNode := stmt.ChildByFieldName("name")
			bodyNode := stmt.ChildByFieldName("body")
			if nameNode == nil || bodyNode == nil {
				continue
			}
			result.className = nodeText(nameNode, source)
			result.classBody = bodyNode

		case "expression_statement":
			if pattern, ok := registrationPattern(stmt.NamedChild(0), source); ok {
				result.patterns = append(result.patterns, pattern)
			}
		}
	}

	return result
}

// registrationPattern checks whether an expression is a registration call,
// parserFactory.register("<pattern>", ...), and returns the pattern literal.
// Calls whose first argument is not a string literal contribute nothing.
func registrationPattern(expr *sitter.Node, source []byte) (string, bool) {
	if expr == nil || expr.Kind() != "call_expression" {
		return "", false
	}

	callee := expr.ChildByFieldName("function")
	if callee == nil || callee.Kind() != "member_expression" {
		return "", false
	}

	object := callee.ChildByFieldName("object")
	property := callee.ChildByFieldName("property")
	if object == nil || object.Kind() != "identifier" || nodeText(object, source) != factoryName {
		return "", false
	}
	if property == nil || nodeText(property, source) != registerMethodName {
		return "", false
	}

	args := expr.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return "", false
	}

	return stringLiteralValue(args.NamedChild(0), source)
}

// findMethodBody locates a method by exact name inside a class body and
// returns its statement block, or nil if the class has no such method.
func findMethodBody(classBody *sitter.Node, name string, source []byte) *sitter.Node {
	if classBody == nil {
		return nil
	}

	for i := 0; i < int(classBody.NamedChildCount()); i++ {
		member := classBody.NamedChild(uint(i))
		if member.Kind() != "method_definition" {
			continue
		}

		nameNode := member.ChildByFieldName("name")
		if nameNode == nil || nodeText(nameNode, source) != name {
			continue
		}

		return member.ChildByFieldName("body")
	}
	return nil
}
