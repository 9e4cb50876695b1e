// Package main provides the entry point for the NARS MCP server.
//
// This server is designed to be spawned as a child process by an MCP host
// and communicates via stdio using the Model Context Protocol. It should
// not be run manually by users.
//
// Environment variables follow internal/config's NARS_* precedence layer
// (see internal/config/config.go); an optional config file path may be
// passed as the first CLI argument.
package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"nars/internal/config"
	"nars/internal/engine"
	"nars/internal/graphmirror"
	"nars/internal/persistence"
	"nars/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Loaded configuration for server %q (%s)", cfg.Server.Name, cfg.Server.Environment)

	engineCfg := engine.Config{
		K:                      cfg.Engine.K,
		DecisionThreshold:      cfg.Engine.DecisionThreshold,
		ExperienceCapacity:     cfg.Engine.ExperienceCapacity,
		ConceptCapacity:        cfg.Engine.ConceptCapacity,
		BeliefCapacity:         cfg.Engine.BeliefCapacity,
		DesireCapacity:         cfg.Engine.DesireCapacity,
		EnableSemanticFallback: cfg.Engine.EnableSemanticFallback,
	}

	if cfg.Persistence.Type == "sqlite" {
		engineCfg.Persister = persistence.NewSQLiteStore(5000)
		log.Println("Persistence backed by sqlite (database file named per save/load call)")
	}

	if cfg.Engine.EnableGraphMirror {
		mirror, err := graphmirror.New(graphmirror.DefaultConfig())
		if err != nil {
			log.Fatalf("Failed to connect graph mirror: %v", err)
		}
		engineCfg.GraphMirror = mirror
		defer func() { _ = mirror.Close(context.Background()) }()
		log.Println("Graph mirror connected to Neo4j")
	}

	eng := engine.New(engineCfg)
	log.Println("Initialized NARS reasoning engine")

	srv := server.New(eng)
	log.Println("Created NARS MCP server")

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)
	log.Println("Created MCP server")

	srv.RegisterTools(mcpServer)
	log.Println("Registered tools: add-input, do-cycle, query-concept, answer, save-memory, load-memory, get-metrics")

	transport := &mcp.StdioTransport{}
	log.Println("Created stdio transport")

	ctx := context.Background()
	log.Println("Starting MCP server...")
	if err := mcpServer.Run(ctx, transport); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig loads from a file path given as the first CLI argument, or
// from environment/defaults otherwise.
func loadConfig() (*config.Config, error) {
	if len(os.Args) > 1 {
		return config.LoadFromFile(os.Args[1])
	}
	return config.Load()
}
