package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/genui-tools/genui/internal/catalog"
)

// Manifest is the genui.yaml file: the catalog items to generate in one
// batch run.
type Manifest struct {
	Components []Component `yaml:"components"`
}

// Component declares one catalog item. Props uses the same compact
// grammar as the --props flag.
type Component struct {
	Name     string   `yaml:"name"`
	Props    string   `yaml:"props"`
	Required []string `yaml:"required"`
	Events   []string `yaml:"events"`
	Children bool     `yaml:"children"`
	Bound    bool     `yaml:"bound"`
	Output   string   `yaml:"output"`
}

// Load reads and parses a manifest file. Unlike the property grammar,
// the manifest is an explicit opt-in file, so parse failures and missing
// component names are real errors.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	for i, c := range m.Components {
		if c.Name == "" {
			return nil, fmt.Errorf("component %d has no name", i)
		}
	}

	return &m, nil
}

// Request converts a declared component into a generation request.
func (c Component) Request() *catalog.Request {
	return &catalog.Request{
		Name:       c.Name,
		Properties: catalog.ParseProperties(c.Props),
		Required:   c.Required,
		Events:     c.Events,
		Children:   c.Children,
		Bound:      c.Bound,
	}
}
