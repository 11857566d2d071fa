package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/treekeep/doctree/codec"
)

type convertDocInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The document to convert"`
	To     string   `json:"to"               jsonschema:"Target format: json, yaml, toml, or xml"`
	Output string   `json:"output,omitempty" jsonschema:"File path to write the converted document. If omitted the document is returned inline"`
}

type convertDocOutput struct {
	From      string `json:"from"`
	To        string `json:"to"`
	WrittenTo string `json:"written_to,omitempty"`
	Document  string `json:"document,omitempty"`
}

func handleConvertDoc(_ context.Context, _ *mcp.CallToolRequest, input convertDocInput) (*mcp.CallToolResult, convertDocOutput, error) {
	to, err := codec.ParseFormat(input.To)
	if err != nil {
		return errResult(err), convertDocOutput{}, nil
	}

	d, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), convertDocOutput{}, nil
	}

	c, err := codecFor(to)
	if err != nil {
		return errResult(err), convertDocOutput{}, nil
	}
	data, err := c.Encode(d.root)
	if err != nil {
		return errResult(err), convertDocOutput{}, nil
	}

	output := convertDocOutput{From: string(d.format), To: string(to)}
	if input.Output != "" {
		if err := os.WriteFile(input.Output, data, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertDocOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}
	return nil, output, nil
}
