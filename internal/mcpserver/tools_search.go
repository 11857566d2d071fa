package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/treekeep/doctree/tree"
)

type searchInput struct {
	Doc           docInput `json:"doc"                      jsonschema:"The document to search"`
	Pattern       string   `json:"pattern"                  jsonschema:"The pattern to search for"`
	Keys          bool     `json:"keys,omitempty"           jsonschema:"Match mapping keys. Both keys and values are searched when neither flag is set"`
	Values        bool     `json:"values,omitempty"         jsonschema:"Match values. Both keys and values are searched when neither flag is set"`
	Regex         bool     `json:"regex,omitempty"          jsonschema:"Treat the pattern as a regular expression"`
	CaseSensitive bool     `json:"case_sensitive,omitempty" jsonschema:"Match case exactly. Substring matches fold case by default"`
	Limit         int      `json:"limit,omitempty"          jsonschema:"Maximum number of matches (default 100, configurable via DOCTREE_SEARCH_LIMIT)"`
}

type searchOutput struct {
	Returned  int          `json:"returned"`
	Truncated bool         `json:"truncated"`
	Matches   []tree.Match `json:"matches,omitempty"`
}

func handleSearch(_ context.Context, _ *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, searchOutput, error) {
	if input.Pattern == "" {
		return errResult(fmt.Errorf("pattern must not be empty")), searchOutput{}, nil
	}

	d, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), searchOutput{}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = cfg.SearchLimit
	}

	opts := tree.SearchOptions{
		Keys:          input.Keys,
		Values:        input.Values,
		Regex:         input.Regex,
		CaseSensitive: input.CaseSensitive,
		MaxResults:    limit,
	}
	if !input.Keys && !input.Values {
		opts.Keys = true
		opts.Values = true
	}

	matches, err := tree.Search(d.root, input.Pattern, opts)
	if err != nil {
		return errResult(err), searchOutput{}, nil
	}

	return nil, searchOutput{
		Returned:  len(matches),
		Truncated: len(matches) == limit,
		Matches:   matches,
	}, nil
}
