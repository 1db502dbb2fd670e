// Package manifest loads declarative dependency-graph manifests, in YAML
// or HCL form, and builds depgraph.Graph values from them.
//
// A manifest names the graph's nodes, optional string payloads, and the
// dependencies of each node:
//
//	circular: false
//	nodes:
//	  - id: app
//	    depends_on: [lib]
//	  - id: lib
//
// or equivalently in HCL:
//
//	node "app" { depends_on = ["lib"] }
//	node "lib" {}
//
// Unlike direct Graph construction, a manifest is a closed declaration:
// duplicate node ids and dependencies naming undeclared nodes are errors
// rather than no-ops.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/depgraph"
)

// Sentinel errors for manifest loading and building.
var (
	// ErrUnknownFormat indicates a manifest path with an unsupported extension.
	ErrUnknownFormat = errors.New("manifest: unsupported manifest format")

	// ErrEmptyNodeID indicates a node declaration without an identity.
	ErrEmptyNodeID = errors.New("manifest: node with empty id")

	// ErrDuplicateNode indicates two node declarations sharing one identity.
	ErrDuplicateNode = errors.New("manifest: duplicate node id")
)

// Manifest is a parsed graph declaration.
type Manifest struct {
	// Circular builds the graph in cycle-tolerant mode.
	Circular bool `yaml:"circular"`

	// Nodes are the declared graph nodes, in declaration order.
	Nodes []Node `yaml:"nodes"`
}

// Node declares one graph node.
type Node struct {
	// ID is the node identity, unique within the manifest.
	ID string `yaml:"id"`

	// Data is an optional payload; the identity is used when empty.
	Data string `yaml:"data,omitempty"`

	// DependsOn lists the identities this node depends on.
	DependsOn []string `yaml:"depends_on,omitempty"`
}

// Load reads and parses the manifest at path, dispatching on the file
// extension: .yaml/.yml or .hcl.
func Load(path string) (*Manifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(src)
	case ".hcl":
		return ParseHCL(path, src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadGraph is Load followed by Build.
func LoadGraph(path string) (*depgraph.Graph, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}

	return m.Build()
}

// Build resolves the declaration into a graph. Every node is registered
// before any edge, so declaration order never matters; a dependency on
// an undeclared identity surfaces the graph's not-found error with the
// declaring node attached.
func (m *Manifest) Build() (*depgraph.Graph, error) {
	var opts []depgraph.Option
	if m.Circular {
		opts = append(opts, depgraph.WithCircular())
	}
	g := depgraph.New(opts...)

	// 1. Register all identities.
	for _, n := range m.Nodes {
		if n.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if g.HasNode(n.ID) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		if n.Data != "" {
			g.AddNode(n.ID, depgraph.WithData(n.Data))
		} else {
			g.AddNode(n.ID)
		}
	}

	// 2. Wire the declared dependencies.
	for _, n := range m.Nodes {
		for _, dep := range n.DependsOn {
			if err := g.AddDependency(n.ID, dep); err != nil {
				return nil, fmt.Errorf("manifest: node %q depends on %q: %w", n.ID, dep, err)
			}
		}
	}

	return g, nil
}
