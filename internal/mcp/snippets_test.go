package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerURL = "https://example.azurewebsites.net/dtal/calculate_ooetourism_levy"

func TestBuildGuide_EmbedsServerURL(t *testing.T) {
	guide := BuildGuide("ooe-tourism-levy", testServerURL)

	assert.Equal(t, testServerURL, guide.ServerURL)
	assert.Contains(t, guide.ClaudeDesktopConfig, testServerURL)
	assert.Contains(t, guide.PythonExample, testServerURL)
	assert.Contains(t, guide.NodeExample, testServerURL)
	assert.Contains(t, guide.CurlExample, testServerURL)
}

func TestBuildGuide_ConfigIsValidJSON(t *testing.T) {
	guide := BuildGuide("ooe-tourism-levy", testServerURL)

	var config map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(guide.ClaudeDesktopConfig), &config))

	servers, ok := config["mcpServers"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, servers, "ooe-tourism-levy")
}

func TestBuildGuide_ToolSchema(t *testing.T) {
	guide := BuildGuide("ooe-tourism-levy", testServerURL)

	schema := guide.ToolSchema
	assert.Equal(t, "calculate_tourism_levy", schema.Name)
	assert.Equal(t, "object", schema.InputSchema.Type)
	assert.ElementsMatch(t, []string{"municipality_name", "business_activity", "revenue_two_years_ago"},
		schema.InputSchema.Required)

	require.Contains(t, schema.InputSchema.Properties, "revenue_two_years_ago")
	assert.Equal(t, "number", schema.InputSchema.Properties["revenue_two_years_ago"].Type)
	assert.Equal(t, "string", schema.InputSchema.Properties["municipality_name"].Type)
}

func TestBuildGuide_CurlExamplePostsToToolEndpoint(t *testing.T) {
	guide := BuildGuide("ooe-tourism-levy", testServerURL)

	assert.Contains(t, guide.CurlExample, "curl -X POST")
	assert.Contains(t, guide.CurlExample, "/tools/calculate_tourism_levy")
	assert.Contains(t, guide.CurlExample, "revenue_two_years_ago")
}
