package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/treekeep/doctree/codec"
	"github.com/treekeep/doctree/tree"
)

type queryInput struct {
	Doc  docInput `json:"doc"            jsonschema:"The document to query"`
	Path string   `json:"path,omitempty" jsonschema:"Dot-separated path to resolve. Numeric segments index into sequences. Empty returns the whole document"`
}

type queryOutput struct {
	Found   bool   `json:"found"`
	Path    string `json:"path"`
	Kind    string `json:"kind,omitempty"`
	Preview string `json:"preview,omitempty"`
	Value   string `json:"value,omitempty"`
}

func handleQuery(_ context.Context, _ *mcp.CallToolRequest, input queryInput) (*mcp.CallToolResult, queryOutput, error) {
	d, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), queryOutput{}, nil
	}

	output := queryOutput{Path: input.Path}

	v, ok := tree.Resolve(d.root, input.Path)
	if !ok {
		return nil, output, nil
	}

	output.Found = true
	output.Kind = v.Kind().String()
	output.Preview = tree.Preview(v)

	// JSON can encode any subtree, scalar roots included.
	data, err := (&codec.JSON{}).Encode(v)
	if err != nil {
		return errResult(err), queryOutput{}, nil
	}
	output.Value = strings.TrimSuffix(string(data), "\n")

	return nil, output, nil
}
