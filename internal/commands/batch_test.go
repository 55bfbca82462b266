package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genui-tools/genui/internal/config"
)

const testManifest = `components:
  - name: ProductCard
    props: "title:string,price:number"
    required: [title]
    events: [add_to_cart]
  - name: StatusBadge
    props: "label:string"
    output: custom/status_badge.dart
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "genui.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBatchCommand_Run(t *testing.T) {
	// Test: Every manifest component generates, explicit outputs honored
	files := &captureFileWriter{wrote: true}
	var out bytes.Buffer
	cmd := (&BatchCommand{}).WithDependencies(testDeps(files, &out, "/project"))

	path := writeManifest(t, testManifest)
	err := cmd.Run(context.Background(), BatchOptions{Manifest: path})
	require.NoError(t, err)

	require.Len(t, files.calls, 2)
	assert.Equal(t, filepath.Join("/project", "lib", "genui", "catalog", "product_card.dart"), files.calls[0].path)
	assert.Equal(t, "custom/status_badge.dart", files.calls[1].path)

	assert.Contains(t, string(files.calls[0].content), "final product_card = CatalogItem(")
	assert.Contains(t, string(files.calls[0].content), "type: 'add_to_cart',")
	assert.Contains(t, string(files.calls[1].content), "final status_badge = CatalogItem(")

	assert.Contains(t, out.String(), "Generating 2 catalog items from "+path)
}

func TestBatchCommand_DefaultManifestPath(t *testing.T) {
	// Test: Without --manifest the path comes from the config directory
	path := writeManifest(t, testManifest)

	files := &captureFileWriter{wrote: true}
	var out bytes.Buffer
	deps := testDeps(files, &out, "/project")
	deps.Configs = &stubConfigLoader{cfg: config.Default(), dir: filepath.Dir(path)}

	cmd := (&BatchCommand{}).WithDependencies(deps)
	err := cmd.Run(context.Background(), BatchOptions{})
	require.NoError(t, err)
	assert.Len(t, files.calls, 2)
}

func TestBatchCommand_MissingManifest(t *testing.T) {
	// Test: A missing manifest file is an error
	cmd := (&BatchCommand{}).WithDependencies(testDeps(&captureFileWriter{}, &bytes.Buffer{}, ""))

	err := cmd.Run(context.Background(), BatchOptions{Manifest: filepath.Join(t.TempDir(), "genui.yaml")})
	require.Error(t, err)
}

func TestBatchCommand_OverwritePropagates(t *testing.T) {
	// Test: --overwrite applies to every component write
	files := &captureFileWriter{wrote: true}
	var out bytes.Buffer
	cmd := (&BatchCommand{}).WithDependencies(testDeps(files, &out, "/project"))

	path := writeManifest(t, testManifest)
	err := cmd.Run(context.Background(), BatchOptions{Manifest: path, Overwrite: true})
	require.NoError(t, err)

	require.Len(t, files.calls, 2)
	for _, call := range files.calls {
		assert.True(t, call.overwrite)
	}
}

func TestBatchCommand_StrictStopsOnBadComponent(t *testing.T) {
	// Test: Strict mode aborts at the first component whose required list
	// names an undeclared property
	files := &captureFileWriter{wrote: true}
	var out bytes.Buffer
	cmd := (&BatchCommand{}).WithDependencies(testDeps(files, &out, "/project"))

	path := writeManifest(t, `components:
  - name: Broken
    props: "title:string"
    required: [title, ghost]
`)
	err := cmd.Run(context.Background(), BatchOptions{Manifest: path, Strict: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
	assert.Contains(t, err.Error(), "ghost")
	assert.Empty(t, files.calls)
}
