package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/genui-tools/genui/internal/manifest"
)

// BatchOptions carries the flag values for a manifest-driven run
type BatchOptions struct {
	Manifest  string
	Overwrite bool
	Strict    bool
	Language  string
}

// BatchCommand generates every component declared in the manifest
type BatchCommand struct {
	deps GenerateDependencies
}

// NewBatchCommand creates a batch command with default dependencies
func NewBatchCommand() *BatchCommand {
	return &BatchCommand{deps: NewGenerateCommand().deps}
}

// WithDependencies allows injecting custom dependencies for testing
func (bc *BatchCommand) WithDependencies(deps GenerateDependencies) *BatchCommand {
	bc.deps = deps
	return bc
}

func (c *Controller) Batch(ctx context.Context, opts BatchOptions) error {
	cmd := NewBatchCommand()
	return cmd.Run(ctx, opts)
}

// Run loads the manifest and generates each declared component in order.
func (bc *BatchCommand) Run(ctx context.Context, opts BatchOptions) error {
	cfg, configDir, err := bc.deps.Configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	manifestPath := opts.Manifest
	if manifestPath == "" {
		manifestPath = filepath.Join(configDir, cfg.Manifest)
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(bc.deps.Out, "Generating %d catalog items from %s\n", len(m.Components), manifestPath)

	gen := (&GenerateCommand{}).WithDependencies(bc.deps)
	for _, component := range m.Components {
		if err := gen.render(cfg, component.Request(), component.Output, opts.Overwrite, opts.Strict, opts.Language); err != nil {
			return err
		}
	}

	return nil
}
