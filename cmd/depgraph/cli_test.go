package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depgraph"
	"github.com/katalvlaran/depgraph/manifest"
)

const buildManifest = `
nodes:
  - id: app
    depends_on: [lib, codegen]
  - id: lib
    depends_on: [std]
  - id: codegen
    depends_on: [std]
  - id: std
`

const cyclicManifest = `
node "a" { depends_on = ["b"] }
node "b" { depends_on = ["a"] }
`

// writeManifest drops src into a temp dir and returns the path.
func writeManifest(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	return path
}

// execute runs the CLI with args on a fresh command tree and returns the
// captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// TestOrderCommand prints the processing order one node per line.
func TestOrderCommand(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "order", path)
	require.NoError(t, err)
	assert.Equal(t, "std\nlib\ncodegen\napp\n", out)
}

// TestOrderCommand_Leaves restricts output to leaf nodes.
func TestOrderCommand_Leaves(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "order", path, "--leaves")
	require.NoError(t, err)
	assert.Equal(t, "std\n", out)
}

// TestOrderCommand_JSON renders an indented array.
func TestOrderCommand_JSON(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "order", path, "--format", "json")
	require.NoError(t, err)

	var ids []string
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	assert.Equal(t, []string{"std", "lib", "codegen", "app"}, ids)
}

// TestOrderCommand_Cycle surfaces the cycle path through the error.
func TestOrderCommand_Cycle(t *testing.T) {
	path := writeManifest(t, "graph.hcl", cyclicManifest)

	_, err := execute(t, "order", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, depgraph.ErrCycleDetected)

	var cycleErr *depgraph.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"a", "b", "a"}, cycleErr.Path)
}

// TestOrderCommand_Circular orders a cyclic graph instead of failing.
func TestOrderCommand_Circular(t *testing.T) {
	path := writeManifest(t, "graph.hcl", cyclicManifest)

	out, err := execute(t, "order", path, "--circular")
	require.NoError(t, err)
	assert.Equal(t, "b\na\n", out)
}

// TestDepsCommand prints transitive dependencies dependency-first.
func TestDepsCommand(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "deps", path, "app")
	require.NoError(t, err)
	assert.Equal(t, "std\nlib\ncodegen\n", out)
}

// TestDepsCommand_Direct prints only the immediate set, in declaration
// order.
func TestDepsCommand_Direct(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "deps", path, "app", "--direct")
	require.NoError(t, err)
	assert.Equal(t, "lib\ncodegen\n", out)
}

// TestDepsCommand_MissingNode fails with the engine's not-found error.
func TestDepsCommand_MissingNode(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	_, err := execute(t, "deps", path, "ghost")
	assert.ErrorIs(t, err, depgraph.ErrNodeNotFound)
}

// TestDepsCommand_Circular answers dependency queries on cyclic graphs.
func TestDepsCommand_Circular(t *testing.T) {
	path := writeManifest(t, "graph.hcl", cyclicManifest)

	out, err := execute(t, "deps", path, "a", "--circular")
	require.NoError(t, err)
	assert.Equal(t, "b\n", out)
}

// TestDependentsCommand prints the transitive invalidation set.
func TestDependentsCommand(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "dependents", path, "std")
	require.NoError(t, err)
	assert.Equal(t, "app\nlib\ncodegen\n", out)
}

// TestDependentsCommand_Direct prints the immediate dependants.
func TestDependentsCommand_Direct(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "dependents", path, "std", "--direct")
	require.NoError(t, err)
	assert.Equal(t, "lib\ncodegen\n", out)
}

// TestEntriesCommand prints the nodes nothing depends on.
func TestEntriesCommand(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "entries", path)
	require.NoError(t, err)
	assert.Equal(t, "app\n", out)
}

// TestCheckCommand_OK reports a clean graph.
func TestCheckCommand_OK(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	out, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 4 nodes, no cycles\n", out)
}

// TestCheckCommand_Cycle fails and renders the path in the message.
func TestCheckCommand_Cycle(t *testing.T) {
	path := writeManifest(t, "graph.hcl", cyclicManifest)

	_, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a -> b -> a")
}

// TestUnknownFormat rejects formats other than text and json.
func TestUnknownFormat(t *testing.T) {
	path := writeManifest(t, "graph.yaml", buildManifest)

	_, err := execute(t, "order", path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

// TestUnknownManifestFormat propagates the loader's format error.
func TestUnknownManifestFormat(t *testing.T) {
	path := writeManifest(t, "graph.toml", "nodes = []")

	_, err := execute(t, "order", path)
	assert.ErrorIs(t, err, manifest.ErrUnknownFormat)
}
