// Package extractor statically analyzes WebToEpub-style JavaScript site
// parsers. It never executes the analyzed code: each file is parsed into a
// tree-sitter syntax tree and the interesting declarations are read off the
// tree directly.
package extractor

import (
	"os"
	"path/filepath"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Method names the scanner looks for inside a parser class, one per
// selector field.
const (
	contentMethodName = "findContent"
	titleMethodName   = "extractTitleImpl"
	authorMethodName  = "extractAuthor"
	coverMethodName   = "findCoverImageUrl"
)

// Extractor analyzes site-parser source files.
type Extractor struct {
	language *sitter.Language
}

// New creates an extractor. JavaScript shares the TypeScript AST structure,
// so the TypeScript grammar covers the whole corpus.
func New() *Extractor {
	return &Extractor{
		language: sitter.NewLanguage(typescript.LanguageTypescript()),
	}
}

// ExtractFile analyzes one source file.
//
// Files that fail to parse yield (nil, nil): most files in a parser
// directory are not expected to be parseable modules, so this is not worth
// reporting. A class that never calls parserFactory.register yields a
// result with ClassName set but no Record.
func (e *Extractor) ExtractFile(path string) (*FileResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return e.Extract(filepath.Base(path), source), nil
}

// Extract analyzes source text under the given base filename.
func (e *Extractor) Extract(filename string, source []byte) *FileResult {
	tree := e.parse(source)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	scan := scanModule(tree.RootNode(), source)
	if scan.classBody == nil {
		return nil
	}

	result := &FileResult{ClassName: scan.className}
	if len(scan.patterns) == 0 {
		return result
	}

	result.Record = &ParserRecord{
		SourceFilename:     filename,
		ClassName:          scan.className,
		RegisteredPatterns: scan.patterns,
		Selectors: Selectors{
			Content: extractSelector(findMethodBody(scan.classBody, contentMethodName, source), source),
			Title:   extractSelector(findMethodBody(scan.classBody, titleMethodName, source), source),
			Author:  extractSelector(findMethodBody(scan.classBody, authorMethodName, source), source),
			Cover:   extractSelector(findMethodBody(scan.classBody, coverMethodName, source), source),
		},
	}
	return result
}
