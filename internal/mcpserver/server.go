// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes doctree capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/treekeep/doctree"
)

const serverInstructions = `doctree MCP server — reads, edits, summarizes, searches, and converts structured documents (JSON, YAML, TOML, XML).

Paths are dot-separated key chains, e.g. server.hosts.0.port. Read paths may index into sequences with a numeric segment; write paths treat every segment as a mapping key.

Configuration: All defaults are configurable via DOCTREE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- DOCTREE_MAX_DOC_SIZE (default: 10MB) — maximum document size for file inputs
- DOCTREE_MAX_INLINE_SIZE (default: 1MB) — maximum size for inline content inputs
- DOCTREE_KEYS_DEPTH (default: 5) — default depth for the keys tool
- DOCTREE_SHAPE_DEPTH (default: 3) — default depth for the structure tool
- DOCTREE_SEARCH_LIMIT (default: 100) — default result limit for search
- DOCTREE_KEYS_PAGE_SIZE (default: 200) — default page size for keys
- DOCTREE_CACHE_ENABLED (default: true) — disable document caching entirely

Caching: Decoded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). Inline content entries are keyed by content hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "doctree", Version: doctree.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "query",
		Description: "Resolve a dot-separated path in a document and return the value found there. Numeric segments index into sequences. Returns found=false when any segment is missing; a missing path is not an error. Omit path (or pass empty) to return the whole document.",
	}, handleQuery)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set",
		Description: "Assign a value at a dot-separated path, creating intermediate mappings as needed. Non-mapping values along the path (scalars, sequences) are replaced by mappings. The value is provided as a document fragment in any supported format. Use output to write the modified document to a file, otherwise it is returned inline.",
	}, handleSet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove",
		Description: "Remove the value at a dot-separated path. Removing a missing path is a silent no-op. Use output to write the modified document to a file, otherwise it is returned inline.",
	}, handleRemove)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "keys",
		Description: "Enumerate all key paths in a document up to a depth limit, in document order. Sequences contribute indexed paths for their first 10 elements plus a collapse marker. Use offset/limit to paginate through large documents. Default depth is configurable via DOCTREE_KEYS_DEPTH.",
	}, handleKeys)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "structure",
		Description: "Summarize the shape of a document: same tree, values beyond the depth limit replaced by compact descriptors like {Mapping with 12 keys}. Long sequences show length plus a 3-element sample; wide mappings are capped at 20 keys. Use this before query/keys to orient in an unfamiliar document. Default depth is configurable via DOCTREE_SHAPE_DEPTH.",
	}, handleStructure)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Search keys and/or values for a pattern: substring by default (case-insensitive unless case_sensitive=true), regular expression with regex=true. Returns matches with path, kind (key or value), and a short preview. Collection values match against their summary descriptor, not their full content. Default limit is configurable via DOCTREE_SEARCH_LIMIT.",
	}, handleSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a document between formats (json, yaml, toml, xml). Key order is preserved for json, yaml, and toml output. TOML output requires a mapping root with no nulls; XML output requires a mapping root. Use output to write to a file instead of returning inline.",
	}, handleConvertDoc)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.KeysPageSize.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.KeysPageSize
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
