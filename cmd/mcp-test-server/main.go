// Command mcp-test-server runs a simple MCP server for exercising the
// vitruvio MCP client layer. Provides "get_time", "echo", and "sleep"
// tools, served over stdio (default) or streamable HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	transport := flag.String("transport", "stdio", `transport: "stdio" or "http"`)
	port := flag.String("port", "8080", "listen port for http transport")
	flag.Parse()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "vitruvio-test-mcp", Version: "v1.0.0"},
		nil,
	)

	// Add "get_time" tool.
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_time",
		Description: "Returns the current UTC time",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, struct{}, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Current time: %s", time.Now().UTC().Format(time.RFC3339))},
			},
		}, struct{}{}, nil
	})

	// Add "echo" tool.
	type EchoInput struct {
		Message string `json:"message" jsonschema_description:"The message to echo back"`
	}
	mcp.AddTool(server, &mcp.Tool{
		Name:        "echo",
		Description: "Echoes the provided message back",
	}, func(_ context.Context, _ *mcp.CallToolRequest, input EchoInput) (*mcp.CallToolResult, struct{}, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Echo: %s", input.Message)},
			},
		}, struct{}{}, nil
	})

	// Add "sleep" tool, useful for exercising client timeouts.
	type SleepInput struct {
		Seconds int `json:"seconds" jsonschema_description:"How long to sleep before responding"`
	}
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sleep",
		Description: "Sleeps for the given number of seconds, then responds",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input SleepInput) (*mcp.CallToolResult, struct{}, error) {
		select {
		case <-time.After(time.Duration(input.Seconds) * time.Second):
		case <-ctx.Done():
			return nil, struct{}{}, ctx.Err()
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("slept %ds", input.Seconds)},
			},
		}, struct{}{}, nil
	})

	switch *transport {
	case "stdio":
		if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case "http":
		handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
			return server
		}, nil)

		httpMux := http.NewServeMux()
		httpMux.Handle("/mcp", handler)
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok\n"))
		})

		log.Printf("MCP test server starting on :%s", *port)
		if err := http.ListenAndServe(":"+*port, httpMux); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	default:
		log.Fatalf("unknown transport %q", *transport)
	}
}
