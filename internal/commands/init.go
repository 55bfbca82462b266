package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/genui-tools/genui/internal/config"
)

type InitOptions struct {
	CatalogDir string
	Language   string
	Overwrite  bool
}

type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

type InitCommand struct {
	filesystem FileSystem
	// For testing: if set, skip prompting
	testOptions *InitOptions
}

func NewInitCommand() *InitCommand {
	return &InitCommand{
		filesystem: &osFileSystem{},
	}
}

func (c *Controller) Init(ctx context.Context) error {
	cmd := NewInitCommand()
	return cmd.Run(ctx)
}

func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	if _, err := ic.filesystem.Stat(config.ConfigFile); err == nil {
		return fmt.Errorf("%s already exists in this directory", config.ConfigFile)
	}

	var options *InitOptions
	var err error

	// For testing: use provided options instead of prompting
	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(opts...)
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}

	cfg := config.Default()
	cfg.CatalogDir = options.CatalogDir
	cfg.Language = options.Language
	cfg.Overwrite = options.Overwrite

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	if err := ic.filesystem.WriteFile(config.ConfigFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.ConfigFile, err)
	}

	if options.CatalogDir != "" {
		if err := ic.filesystem.MkdirAll(options.CatalogDir, 0755); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	fmt.Printf("✅ Created %s (catalog: %s)\n", config.ConfigFile, options.CatalogDir)
	return nil
}

func (ic *InitCommand) promptInitOptions(opts ...tea.ProgramOption) (*InitOptions, error) {
	catalogDir := filepath.Join("lib", "genui", "catalog")
	language := "dart"
	overwrite := false

	form := ic.createInitForm(&catalogDir, &language, &overwrite)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		// Normal execution
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return &InitOptions{
		CatalogDir: catalogDir,
		Language:   language,
		Overwrite:  overwrite,
	}, nil
}

func (ic *InitCommand) createInitForm(catalogDir *string, language *string, overwrite *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Catalog directory").
				Description("Where generated catalog items are written, relative to the project root").
				Value(catalogDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("catalog directory cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Target").
				Description("Choose the generator target").
				Options(
					huh.NewOption("Dart (Flutter GenUI)", "dart"),
					huh.NewOption("Flutter alias", "flutter"),
				).
				Value(language),

			huh.NewConfirm().
				Title("Overwrite existing files?").
				Description("Whether generation may replace files that already exist").
				Value(overwrite),
		),
	)
}
