package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclManifestFile mirrors the top-level structure of an HCL manifest for
// decoding.
type hclManifestFile struct {
	Circular bool       `hcl:"circular,optional"`
	Nodes    []*hclNode `hcl:"node,block"`
}

// hclNode is one node block; the single block label is the identity.
type hclNode struct {
	ID        string   `hcl:"id,label"`
	Data      string   `hcl:"data,optional"`
	DependsOn []string `hcl:"depends_on,optional"`
}

// ParseHCL decodes an HCL manifest. filename feeds parser diagnostics
// only; the source itself comes from src.
func ParseHCL(filename string, src []byte) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: parse %s: %w", filename, diags)
	}

	var decoded hclManifestFile
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: decode %s: %w", filename, diags)
	}

	m := &Manifest{
		Circular: decoded.Circular,
		Nodes:    make([]Node, 0, len(decoded.Nodes)),
	}
	for _, n := range decoded.Nodes {
		m.Nodes = append(m.Nodes, Node{ID: n.ID, Data: n.Data, DependsOn: n.DependsOn})
	}

	return m, nil
}
