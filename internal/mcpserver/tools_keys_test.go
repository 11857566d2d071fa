package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysTool(t *testing.T) {
	docCache.reset()
	input := keysInput{Doc: docInput{Content: testDocYAML}}
	_, output, err := handleKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, output.Total, output.Returned)
	assert.Contains(t, output.Paths, "server.host")
	assert.Contains(t, output.Paths, "tags[0]")
}

func TestKeysTool_DepthLimit(t *testing.T) {
	docCache.reset()
	input := keysInput{Doc: docInput{Content: testDocYAML}, Depth: 1}
	_, output, err := handleKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Contains(t, output.Paths, "server")
	assert.NotContains(t, output.Paths, "server.host")
}

func TestKeysTool_Pagination(t *testing.T) {
	docCache.reset()
	input := keysInput{Doc: docInput{Content: testDocYAML}, Offset: 1, Limit: 2}
	_, output, err := handleKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 2, output.Returned)
	assert.Greater(t, output.Total, output.Returned)
}
