package codegen

import "github.com/genui-tools/genui/internal/catalog"

// Generator is the interface that all target-framework generators implement
type Generator interface {
	// Generate renders catalog item source for the request
	Generate(req *catalog.Request) ([]byte, error)

	// Language returns the name of the target language (e.g., "dart")
	Language() string

	// FileExtension returns the extension for generated files (e.g., ".dart")
	FileExtension() string
}
