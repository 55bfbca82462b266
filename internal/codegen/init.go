package codegen

import (
	"github.com/genui-tools/genui/internal/codegen/dart"
)

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	// Register Dart generator
	DefaultRegistry.Register("dart", func() Generator {
		return dart.NewGenerator()
	})

	// Register flutter as an alias for dart
	DefaultRegistry.Register("flutter", func() Generator {
		return dart.NewGenerator()
	})
}
