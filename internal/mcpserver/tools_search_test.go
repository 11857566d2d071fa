package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treekeep/doctree/tree"
)

func TestSearchTool(t *testing.T) {
	docCache.reset()
	input := searchInput{Doc: docInput{Content: testDocYAML}, Pattern: "db-01"}
	_, output, err := handleSearch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Equal(t, 1, output.Returned)
	assert.Equal(t, tree.MatchValue, output.Matches[0].Kind)
	assert.Equal(t, "server.host", output.Matches[0].Path)
	assert.False(t, output.Truncated)
}

func TestSearchTool_KeysOnly(t *testing.T) {
	docCache.reset()
	input := searchInput{Doc: docInput{Content: testDocYAML}, Pattern: "host", Keys: true}
	_, output, err := handleSearch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Equal(t, 1, output.Returned)
	assert.Equal(t, tree.MatchKey, output.Matches[0].Kind)
}

func TestSearchTool_Regex(t *testing.T) {
	docCache.reset()
	input := searchInput{Doc: docInput{Content: testDocYAML}, Pattern: `^db-\d+$`, Regex: true, Values: true}
	_, output, err := handleSearch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Returned)
}

func TestSearchTool_Limit(t *testing.T) {
	docCache.reset()
	input := searchInput{Doc: docInput{Content: testDocYAML}, Pattern: "e", Limit: 1}
	_, output, err := handleSearch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Returned)
	assert.True(t, output.Truncated)
}

func TestSearchTool_InvalidRegex(t *testing.T) {
	docCache.reset()
	input := searchInput{Doc: docInput{Content: testDocYAML}, Pattern: "[unclosed", Regex: true}
	result, _, err := handleSearch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestSearchTool_EmptyPattern(t *testing.T) {
	input := searchInput{Doc: docInput{Content: testDocYAML}}
	result, _, err := handleSearch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
