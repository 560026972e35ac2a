package extractor

// Selectors holds the four content-selector strings recovered from a parser
// class. A nil entry means the corresponding method was missing or its body
// did not match a recognized return shape.
type Selectors struct {
	Content *string `json:"content"`
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Cover   *string `json:"cover"`
}

// ParserRecord is the structured summary of one site-parser module.
type ParserRecord struct {
	SourceFilename     string    `json:"sourceFilename"`
	ClassName          string    `json:"className"`
	RegisteredPatterns []string  `json:"registeredPatterns"`
	Selectors          Selectors `json:"selectors"`
}

// FileResult is the outcome of analyzing one file.
//
// Record is non-nil only when the file declared a class and registered at
// least one URL pattern. ClassName is set whenever a class declaration was
// found, so callers can diagnose classes that never registered.
type FileResult struct {
	Record    *ParserRecord
	ClassName string
}
