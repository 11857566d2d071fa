package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/treekeep/doctree/codec"
	"github.com/treekeep/doctree/tree"
)

type structureInput struct {
	Doc   docInput `json:"doc"             jsonschema:"The document to summarize"`
	Depth int      `json:"depth,omitempty" jsonschema:"Depth beyond which values collapse to descriptors (default 3, configurable via DOCTREE_SHAPE_DEPTH)"`
}

type structureOutput struct {
	Format    string `json:"format"`
	Structure string `json:"structure"`
}

func handleStructure(_ context.Context, _ *mcp.CallToolRequest, input structureInput) (*mcp.CallToolResult, structureOutput, error) {
	d, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), structureOutput{}, nil
	}

	depth := input.Depth
	if depth <= 0 {
		depth = cfg.ShapeDepth
	}

	summary := tree.Summarize(d.root, depth)

	// YAML reads well for shape summaries regardless of source format.
	data, err := (&codec.YAML{}).Encode(summary)
	if err != nil {
		return errResult(err), structureOutput{}, nil
	}
	return nil, structureOutput{Format: string(d.format), Structure: string(data)}, nil
}
