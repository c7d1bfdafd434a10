package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "wordplay/internal/adapters/mcp"
	"wordplay/internal/app"
	"wordplay/internal/config"
	"wordplay/internal/logging"
)

func main() {
	storeFlag := flag.String("store", "", "path to the question bank (default from config)")
	driverFlag := flag.String("driver", "", "store driver: sqlite, file or memory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("wordplay-mcp: %v", err)
	}
	if *storeFlag != "" {
		cfg.Store.Path = *storeFlag
	}
	if *driverFlag != "" {
		cfg.Store.Driver = *driverFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("wordplay-mcp: %v", err)
	}

	// stdout carries the protocol; logs go to stderr
	logger := logging.New(cfg.Log)
	application, err := app.Open(cfg, logger)
	if err != nil {
		log.Fatalf("wordplay-mcp: %v", err)
	}
	defer application.Close()

	mcpServer := server.NewMCPServer(
		"wordplay-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, application.Bank, logger)
	mcpadapter.RegisterWriteTools(mcpServer, application.Bank, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("wordplay-mcp: %v", err)
	}
}
