package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/genui-tools/genui/internal/catalog"
	"github.com/genui-tools/genui/internal/codegen"
	"github.com/genui-tools/genui/internal/config"
	"github.com/genui-tools/genui/internal/project"
)

// GenerateOptions carries the flag values for a single generation run
type GenerateOptions struct {
	Name      string
	Props     string
	Required  string
	Events    string
	Children  bool
	Bound     bool
	Output    string
	Overwrite bool
	Strict    bool
	Language  string
}

// Interfaces for dependency injection
type ConfigLoader interface {
	LoadConfig() (*config.Config, string, error)
}

type RootFinder interface {
	FindRoot() (string, bool)
}

type FileWriter interface {
	Write(path string, content []byte, overwrite bool) (bool, error)
}

// Default implementations
type defaultConfigLoader struct{}

func (l *defaultConfigLoader) LoadConfig() (*config.Config, string, error) {
	return config.LoadConfig()
}

type defaultRootFinder struct{}

func (f *defaultRootFinder) FindRoot() (string, bool) {
	return project.FindRootFromCwd()
}

// GenerateDependencies for the generate and batch commands
type GenerateDependencies struct {
	Registry *codegen.Registry
	Configs  ConfigLoader
	Roots    RootFinder
	Files    FileWriter
	Out      io.Writer
}

// GenerateCommand encapsulates the generation logic with injected dependencies
type GenerateCommand struct {
	deps GenerateDependencies
}

// NewGenerateCommand creates a generate command with default dependencies
func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{
		deps: GenerateDependencies{
			Registry: codegen.DefaultRegistry,
			Configs:  &defaultConfigLoader{},
			Roots:    &defaultRootFinder{},
			Files:    project.NewWriter(log.Logger),
			Out:      os.Stdout,
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (gc *GenerateCommand) WithDependencies(deps GenerateDependencies) *GenerateCommand {
	gc.deps = deps
	return gc
}

func (c *Controller) Generate(ctx context.Context, opts GenerateOptions) error {
	cmd := NewGenerateCommand()
	return cmd.Run(ctx, opts)
}

// Run generates one catalog item from CLI options.
func (gc *GenerateCommand) Run(ctx context.Context, opts GenerateOptions) error {
	if opts.Name == "" {
		return fmt.Errorf("component name is required")
	}

	cfg, _, err := gc.deps.Configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	req := &catalog.Request{
		Name:       opts.Name,
		Properties: catalog.ParseProperties(opts.Props),
		Required:   catalog.ParseNameList(opts.Required),
		Events:     catalog.ParseNameList(opts.Events),
		Children:   opts.Children,
		Bound:      opts.Bound,
	}

	fmt.Fprintf(gc.deps.Out, "Generating CatalogItem: %s\n", req.Name)
	fmt.Fprintf(gc.deps.Out, "  Properties: %d\n", len(req.Properties))
	fmt.Fprintf(gc.deps.Out, "  Required: [%s]\n", strings.Join(req.Required, ", "))
	fmt.Fprintf(gc.deps.Out, "  Events: [%s]\n", strings.Join(req.Events, ", "))
	fmt.Fprintln(gc.deps.Out)

	if err := gc.render(cfg, req, opts.Output, opts.Overwrite, opts.Strict, opts.Language); err != nil {
		return err
	}

	snake := catalog.ToSnakeCase(req.Name)
	fmt.Fprintln(gc.deps.Out)
	fmt.Fprintln(gc.deps.Out, "Next steps:")
	fmt.Fprintf(gc.deps.Out, "  1. Import in your catalog: import \"genui/catalog/%s.dart\";\n", snake)
	fmt.Fprintf(gc.deps.Out, "  2. Add to GenUiManager: catalog: CoreCatalogItems.asCatalog().copyWith([%s])\n", snake)
	fmt.Fprintf(gc.deps.Out, "  3. Update system instruction to reference \"%s\"\n", req.Name)

	return nil
}

// render validates, generates, and writes a single catalog item. Shared
// by the generate and batch commands.
func (gc *GenerateCommand) render(cfg *config.Config, req *catalog.Request, explicitOutput string, overwrite, strict bool, language string) error {
	if strict {
		if err := catalog.ValidateRequired(req.Properties, req.Required); err != nil {
			return fmt.Errorf("%s: %w", req.Name, err)
		}
	}

	if language == "" {
		language = cfg.Language
	}
	gen, err := gc.deps.Registry.Get(language)
	if err != nil {
		return err
	}

	code, err := gen.Generate(req)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", req.Name, err)
	}

	path := explicitOutput
	if path == "" {
		path = gc.defaultOutputPath(cfg, req.Name, gen.FileExtension())
	}

	wrote, err := gc.deps.Files.Write(path, code, overwrite || cfg.Overwrite)
	if err != nil {
		return err
	}
	if wrote {
		fmt.Fprintf(gc.deps.Out, "  ✓ Created: %s\n", path)
	} else {
		fmt.Fprintf(gc.deps.Out, "  ⚠️  Skipped (exists): %s\n", path)
	}

	return nil
}

// defaultOutputPath places output under the project's catalog directory,
// falling back to the working directory when no project root exists.
func (gc *GenerateCommand) defaultOutputPath(cfg *config.Config, name, ext string) string {
	fileName := catalog.ToSnakeCase(name) + ext

	if root, ok := gc.deps.Roots.FindRoot(); ok {
		return filepath.Join(root, cfg.CatalogDir, fileName)
	}
	return fileName
}
