package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/treekeep/doctree/tree"
)

type keysInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The document to enumerate"`
	Depth  int      `json:"depth,omitempty"  jsonschema:"Maximum path depth (default 5, configurable via DOCTREE_KEYS_DEPTH)"`
	Offset int      `json:"offset,omitempty" jsonschema:"Skip the first N paths (for pagination)"`
	Limit  int      `json:"limit,omitempty"  jsonschema:"Maximum number of paths to return (default 200)"`
}

type keysOutput struct {
	Total    int      `json:"total"`
	Returned int      `json:"returned"`
	Paths    []string `json:"paths,omitempty"`
}

func handleKeys(_ context.Context, _ *mcp.CallToolRequest, input keysInput) (*mcp.CallToolResult, keysOutput, error) {
	d, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), keysOutput{}, nil
	}

	depth := input.Depth
	if depth <= 0 {
		depth = cfg.KeysDepth
	}

	paths := tree.Keys(d.root, depth)
	output := keysOutput{Total: len(paths)}
	output.Paths = paginate(paths, input.Offset, input.Limit)
	output.Returned = len(output.Paths)
	return nil, output, nil
}
