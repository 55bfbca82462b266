package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/genui-tools/genui/internal/dev"
)

// BatchRunner regenerates the catalog from the manifest
type BatchRunner interface {
	Run(ctx context.Context, opts BatchOptions) error
}

// SignalNotifier abstracts process signal wiring for testability
type SignalNotifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type defaultSignalNotifier struct{}

func (n *defaultSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (n *defaultSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// DevDependencies for the dev command
type DevDependencies struct {
	ConfigLoader   ConfigLoader
	Batch          BatchRunner
	SignalNotifier SignalNotifier
	Output         Output
}

// DevCommand encapsulates watch mode with injected dependencies
type DevCommand struct {
	deps DevDependencies
}

// NewDevCommand creates a dev command with default dependencies
func NewDevCommand() *DevCommand {
	return &DevCommand{
		deps: DevDependencies{
			ConfigLoader:   &defaultConfigLoader{},
			Batch:          NewBatchCommand(),
			SignalNotifier: &defaultSignalNotifier{},
			Output:         &defaultOutput{},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (dc *DevCommand) WithDependencies(deps DevDependencies) *DevCommand {
	dc.deps = deps
	return dc
}

func (c *Controller) Dev(ctx context.Context) error {
	cmd := NewDevCommand()
	return cmd.Execute(ctx)
}

// Execute runs an initial batch generation, then regenerates whenever the
// manifest changes, until interrupted.
func (dc *DevCommand) Execute(ctx context.Context) error {
	cfg, projectRoot, err := dc.deps.ConfigLoader.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	manifestPath := filepath.Join(projectRoot, cfg.Manifest)
	dc.deps.Output.Printf("👀 Watching %s for changes. Press Ctrl+C to stop.\n", manifestPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	dc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer dc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			dc.deps.Output.Println("\n👋 Stopping watch mode...")
			cancel()
		case <-ctx.Done():
		}
	}()

	batchOpts := BatchOptions{Manifest: manifestPath, Overwrite: true}
	if err := dc.deps.Batch.Run(ctx, batchOpts); err != nil {
		// Watch mode keeps going; the manifest may be mid-edit
		dc.deps.Output.Printf("❌ Generation failed: %v\n", err)
	}

	watcher, err := dev.NewWatcher(cfg.Dev.Watch, cfg.Dev.Exclude, log.Logger, func(path string, op fsnotify.Op) {
		if op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		dc.deps.Output.Printf("♻️  %s changed, regenerating...\n", filepath.Base(path))
		if err := dc.deps.Batch.Run(ctx, batchOpts); err != nil {
			dc.deps.Output.Printf("❌ Generation failed: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(projectRoot); err != nil {
		return err
	}

	if err := watcher.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return fmt.Errorf("watch error: %w", err)
	}

	return nil
}
