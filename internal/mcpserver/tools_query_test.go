package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryTool_Found(t *testing.T) {
	docCache.reset()
	input := queryInput{Doc: docInput{Content: testDocYAML}, Path: "server.port"}
	_, output, err := handleQuery(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Found)
	assert.Equal(t, "number", output.Kind)
	assert.Equal(t, "5432", output.Value)
}

func TestQueryTool_SequenceIndex(t *testing.T) {
	docCache.reset()
	input := queryInput{Doc: docInput{Content: testDocYAML}, Path: "tags.1"}
	_, output, err := handleQuery(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Found)
	assert.Equal(t, "string", output.Kind)
	assert.Equal(t, `"beta"`, output.Value)
}

func TestQueryTool_Missing(t *testing.T) {
	docCache.reset()
	input := queryInput{Doc: docInput{Content: testDocYAML}, Path: "server.missing"}
	result, output, err := handleQuery(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Nil(t, result, "a missing path is not an error")
	assert.False(t, output.Found)
	assert.Empty(t, output.Value)
}

func TestQueryTool_WholeDocument(t *testing.T) {
	docCache.reset()
	input := queryInput{Doc: docInput{Content: testDocYAML}}
	_, output, err := handleQuery(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Found)
	assert.Equal(t, "mapping", output.Kind)
	assert.Contains(t, output.Value, `"host": "db-01"`)
}

func TestQueryTool_InvalidDocument(t *testing.T) {
	docCache.reset()
	input := queryInput{Doc: docInput{Content: `{"broken":`, Format: "json"}, Path: "a"}
	result, output, err := handleQuery(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.False(t, output.Found)
}
