package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/datadeck/internal/config"
	ddmcp "github.com/peterkuimelis/datadeck/internal/mcp"
)

func main() {
	configPath := flag.String("config", "", "path to datadeck.yaml")
	decks := flag.String("decks", "", "path to decks YAML file (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *decks != "" {
		cfg.Decks.File = *decks
	}

	session, err := ddmcp.NewSession(cfg.Simulation.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ddmcp.SetSession(session)
	ddmcp.SetDecksFile(cfg.Decks.File)

	s := server.NewMCPServer("datadeck", "1.0.0")
	ddmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
