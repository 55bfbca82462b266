package codegen

import (
	"testing"

	"github.com/genui-tools/genui/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DefaultGenerators(t *testing.T) {
	// Test: The default registry knows dart and its flutter alias
	langs := DefaultRegistry.Languages()
	assert.Contains(t, langs, "dart")
	assert.Contains(t, langs, "flutter")

	g, err := DefaultRegistry.Get("dart")
	require.NoError(t, err)
	assert.Equal(t, "dart", g.Language())
	assert.Equal(t, ".dart", g.FileExtension())

	alias, err := DefaultRegistry.Get("flutter")
	require.NoError(t, err)
	assert.Equal(t, ".dart", alias.FileExtension())
}

func TestRegistry_UnknownLanguage(t *testing.T) {
	// Test: Unknown languages return an error
	_, err := DefaultRegistry.Get("cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

type fakeGenerator struct{}

func (f *fakeGenerator) Generate(req *catalog.Request) ([]byte, error) { return []byte("fake"), nil }
func (f *fakeGenerator) Language() string                              { return "fake" }
func (f *fakeGenerator) FileExtension() string                         { return ".fake" }

func TestRegistry_Register(t *testing.T) {
	// Test: Custom generators can be registered and resolved
	r := NewRegistry()
	r.Register("fake", func() Generator { return &fakeGenerator{} })

	g, err := r.Get("fake")
	require.NoError(t, err)

	code, err := g.Generate(&catalog.Request{Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, "fake", string(code))
}
