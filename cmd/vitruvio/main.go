// Command vitruvio validates agent blueprints and exercises their MCP
// tool arms from the command line.
//
//	vitruvio validate <blueprint.yaml>       validate a blueprint document
//	vitruvio tools <blueprint.yaml>          discover tools over every mcp_tool arm
//	vitruvio call <blueprint.yaml> <tool>    invoke a tool on the first arm providing it
//
// A .env file in the working directory is loaded before anything else,
// so MCP credentials can be supplied without exporting them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
