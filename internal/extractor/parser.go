package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// parse turns raw source text into a syntax tree. The TypeScript grammar is a
// superset of JavaScript and accepts modern class syntax, including property
// declarations. Returns nil for input that does not parse cleanly as a
// module; callers treat that as "not a parser file" and move on.
//
// The caller owns the returned tree and must Close it.
func (e *Extractor) parse(source []byte) *sitter.Tree {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(e.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil
	}

	if tree.RootNode().HasError() {
		tree.Close()
		return nil
	}

	return tree
}
