// Package prompt holds the fixed prompt bindings for each generation
// endpoint: the system instruction, the user-message template used when an
// uploaded file accompanies the description, and the in-band diagnostic
// format emitted when the upstream call fails.
package prompt

import "fmt"

// Template is one endpoint's prompt binding. WithFile and Diagnostic are
// fmt format strings; WithFile takes (fileText, description), Diagnostic
// takes the error text.
type Template struct {
	System     string
	WithFile   string
	Diagnostic string
}

// Code is the binding for the code-generation endpoint.
var Code = Template{
	System: `You are an expert Python developer. Generate clean, well-structured,
production-ready Python code based on the user's requirements. Include:
- Proper imports
- Type hints
- Docstrings
- Error handling
- Main execution block

Only output the Python code, no explanations.`,
	WithFile:   "File content:\n%s\n\nAdditional description:\n%s",
	Diagnostic: "# Error generating code: %s\n",
}

// Docs is the binding for the documentation-generation endpoint.
var Docs = Template{
	System: `You are a technical documentation expert. Create comprehensive,
well-structured documentation in Markdown format. Include:
- Project overview
- Features
- Installation instructions
- Usage examples
- API reference (if applicable)
- Architecture overview
- Contributing guidelines

Use proper Markdown formatting with headers, code blocks, lists, and emphasis.`,
	WithFile:   "Project details from file:\n%s\n\nAdditional info:\n%s",
	Diagnostic: "# Error generating documentation\n\n%s\n",
}

// Compose builds the user-role message. Without file text the description
// passes through verbatim; with file text the file content comes first,
// followed by the labeled description section.
func (t Template) Compose(description, fileText string) string {
	if fileText == "" {
		return description
	}
	return fmt.Sprintf(t.WithFile, fileText, description)
}

// FormatError renders an upstream failure as a single diagnostic fragment.
func (t Template) FormatError(err error) string {
	return fmt.Sprintf(t.Diagnostic, err)
}
