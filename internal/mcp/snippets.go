// Package mcp renders the Model Context Protocol integration material for a
// catalog entry: the Claude Desktop config snippet, client code examples, and
// the tool input schema. All of it is static display content derived from the
// entry's MCP server URL; nothing here talks to the network.
package mcp

import "fmt"

// Guide bundles every integration artifact for one DTAL entry.
type Guide struct {
	ServerURL           string     `json:"server_url"`
	ClaudeDesktopConfig string     `json:"claude_desktop_config"`
	PythonExample       string     `json:"python_example"`
	NodeExample         string     `json:"node_example"`
	CurlExample         string     `json:"curl_example"`
	ToolSchema          ToolSchema `json:"tool_schema"`
}

// ToolSchema is the published MCP tool declaration of the tourism levy
// calculator.
type ToolSchema struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema follows the JSON Schema subset MCP tools declare.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property is one input field declaration.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

const configTemplate = `{
  "mcpServers": {
    "%s": {
      "command": "npx",
      "args": ["@modelcontextprotocol/server-fetch"],
      "env": {
        "FETCH_BASE_URL": "%s"
      }
    }
  }
}`

const pythonTemplate = `import asyncio
from mcp import ClientSession, StdioServerParameters
from mcp.client.stdio import stdio_client

async def use_tourism_levy():
    server_params = StdioServerParameters(
        command="npx",
        args=["@modelcontextprotocol/server-fetch"],
        env={"FETCH_BASE_URL": "%s"}
    )

    async with stdio_client(server_params) as (read, write):
        async with ClientSession(read, write) as session:
            await session.initialize()

            # Call the tourism levy calculation
            result = await session.call_tool(
                "calculate_tourism_levy",
                {
                    "municipality_name": "Linz",
                    "business_activity": "Hotel",
                    "revenue_two_years_ago": 250000
                }
            )

            print(result)

# Run the example
asyncio.run(use_tourism_levy())`

const nodeTemplate = `const { Client } = require('@modelcontextprotocol/client');

async function calculateTourismLevy() {
  const client = new Client({
    name: "tourism-levy-client",
    version: "1.0.0"
  });

  try {
    await client.connect({
      command: "npx",
      args: ["@modelcontextprotocol/server-fetch"],
      env: { FETCH_BASE_URL: "%s" }
    });

    const result = await client.callTool("calculate_tourism_levy", {
      municipality_name: "Linz",
      business_activity: "Hotel",
      revenue_two_years_ago: 250000
    });

    console.log("Tourism levy calculation:", result);
  } catch (error) {
    console.error("Error:", error);
  } finally {
    await client.disconnect();
  }
}

calculateTourismLevy();`

const curlTemplate = `curl -X POST "%s/tools/calculate_tourism_levy" \
  -H "Content-Type: application/json" \
  -d '{
    "municipality_name": "Linz",
    "business_activity": "Hotel",
    "revenue_two_years_ago": 250000
  }'`

// BuildGuide assembles the integration guide for a catalog entry.
func BuildGuide(entryID, serverURL string) Guide {
	return Guide{
		ServerURL:           serverURL,
		ClaudeDesktopConfig: fmt.Sprintf(configTemplate, entryID, serverURL),
		PythonExample:       fmt.Sprintf(pythonTemplate, serverURL),
		NodeExample:         fmt.Sprintf(nodeTemplate, serverURL),
		CurlExample:         fmt.Sprintf(curlTemplate, serverURL),
		ToolSchema: ToolSchema{
			Name:        "calculate_tourism_levy",
			Description: "Calculate the Upper Austrian tourism levy",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"municipality_name": {
						Type:        "string",
						Description: "Municipality where the business operates",
					},
					"business_activity": {
						Type:        "string",
						Description: "Description of the business activity",
					},
					"revenue_two_years_ago": {
						Type:        "number",
						Description: "Annual revenue from two years ago in EUR",
					},
				},
				Required: []string{"municipality_name", "business_activity", "revenue_two_years_ago"},
			},
		},
	}
}
