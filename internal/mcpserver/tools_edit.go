package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/treekeep/doctree/codec"
	"github.com/treekeep/doctree/tree"
)

type setInput struct {
	Doc         docInput `json:"doc"                    jsonschema:"The document to modify"`
	Path        string   `json:"path"                   jsonschema:"Dot-separated path to assign. Every segment is a mapping key; intermediates are created or coerced as needed"`
	Value       string   `json:"value"                  jsonschema:"The value to assign, as a document fragment (JSON or YAML text). An empty value assigns null"`
	ValueFormat string   `json:"value_format,omitempty" jsonschema:"Format of the value fragment. Sniffed from content when omitted"`
	Output      string   `json:"output,omitempty"       jsonschema:"File path to write the modified document. If omitted the document is returned inline"`
}

type setOutput struct {
	Path      string `json:"path"`
	Format    string `json:"format"`
	WrittenTo string `json:"written_to,omitempty"`
	Document  string `json:"document,omitempty"`
}

func handleSet(_ context.Context, _ *mcp.CallToolRequest, input setInput) (*mcp.CallToolResult, setOutput, error) {
	d, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), setOutput{}, nil
	}

	val, err := decodeFragment(input.Value, input.ValueFormat)
	if err != nil {
		return errResult(err), setOutput{}, nil
	}

	if err := tree.Assign(d.root, input.Path, val); err != nil {
		return errResult(err), setOutput{}, nil
	}

	output := setOutput{Path: input.Path, Format: string(d.format)}
	output.WrittenTo, output.Document, err = deliver(d, input.Output)
	if err != nil {
		return errResult(err), setOutput{}, nil
	}
	return nil, output, nil
}

type removeInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The document to modify"`
	Path   string   `json:"path"             jsonschema:"Dot-separated path to remove. Removing a missing path is a no-op"`
	Output string   `json:"output,omitempty" jsonschema:"File path to write the modified document. If omitted the document is returned inline"`
}

type removeOutput struct {
	Path      string `json:"path"`
	Format    string `json:"format"`
	WrittenTo string `json:"written_to,omitempty"`
	Document  string `json:"document,omitempty"`
}

func handleRemove(_ context.Context, _ *mcp.CallToolRequest, input removeInput) (*mcp.CallToolResult, removeOutput, error) {
	d, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), removeOutput{}, nil
	}

	tree.Remove(d.root, input.Path)

	output := removeOutput{Path: input.Path, Format: string(d.format)}
	output.WrittenTo, output.Document, err = deliver(d, input.Output)
	if err != nil {
		return errResult(err), removeOutput{}, nil
	}
	return nil, output, nil
}

// decodeFragment parses a value fragment in the given format, sniffing
// from content when no format is named. Empty fragments become null.
func decodeFragment(value, valueFormat string) (*tree.Value, error) {
	format := codec.FormatUnknown
	if valueFormat != "" {
		var err error
		if format, err = codec.ParseFormat(valueFormat); err != nil {
			return nil, err
		}
	} else {
		format = codec.DetectFormatFromContent([]byte(value))
	}
	if format == codec.FormatUnknown {
		return tree.Null(), nil
	}
	c, err := codecFor(format)
	if err != nil {
		return nil, err
	}
	v, err := c.Decode([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("invalid value fragment: %w", err)
	}
	return v, nil
}

// deliver encodes the document in its source format and either writes
// it to the output path or returns it inline.
func deliver(d *doc, output string) (writtenTo, document string, err error) {
	c, err := codecFor(d.format)
	if err != nil {
		return "", "", err
	}
	data, err := c.Encode(d.root)
	if err != nil {
		return "", "", err
	}
	if output != "" {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return "", "", fmt.Errorf("failed to write output file: %w", err)
		}
		return output, "", nil
	}
	return "", string(data), nil
}
