package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// activeSession is the singleton session (one per stdio process).
var activeSession *Session

// decksFile is the path to the decks YAML file, set by main.
var decksFile = "decks.yaml"

// SetDecksFile sets the path to the decks YAML file.
func SetDecksFile(path string) {
	decksFile = path
}

// SetSession replaces the active session.
func SetSession(s *Session) {
	activeSession = s
}

// RegisterTools adds all engine tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(configureEngineTool(), handleConfigureEngine)
	s.AddTool(simulateTurnTool(), handleSimulateTurn)
	s.AddTool(getEngineStatusTool(), handleGetEngineStatus)
	s.AddTool(createThemedDeckTool(), handleCreateThemedDeck)
	s.AddTool(getSupportedTypesTool(), handleGetSupportedTypes)
	s.AddTool(lookupCardTool(), handleLookupCard)
	s.AddTool(playDeckTool(), handlePlayDeck)
}

// --- Tool definitions ---

func configureEngineTool() mcp.Tool {
	return mcp.NewTool("configure_engine",
		mcp.WithDescription("Bind a card factory and a play strategy to the engine. Reconfiguring keeps the cumulative counters."),
		mcp.WithString("factory", mcp.Required(), mcp.Description("Card factory: 'fantasy' or 'catalog'")),
		mcp.WithString("strategy", mcp.Description("Play strategy: 'aggressive' (default)")),
	)
}

func simulateTurnTool() mcp.Tool {
	return mcp.NewTool("simulate_turn",
		mcp.WithDescription("Deal the reference hand (Dragon, Goblin, Lightning) and let the strategy play it. Requires configure_engine first."),
		mcp.WithNumber("turns", mcp.Description("Number of turns to simulate (default 1)")),
	)
}

func getEngineStatusTool() mcp.Tool {
	return mcp.NewTool("get_engine_status",
		mcp.WithDescription("Get turns simulated, strategy used, total damage and cards created. Read-only."),
	)
}

func createThemedDeckTool() mcp.Tool {
	return mcp.NewTool("create_themed_deck",
		mcp.WithDescription("Build a random themed deck from the configured factory (fantasy when unconfigured)."),
		mcp.WithNumber("size", mcp.Required(), mcp.Description("Number of cards in the deck")),
	)
}

func getSupportedTypesTool() mcp.Tool {
	return mcp.NewTool("get_supported_types",
		mcp.WithDescription("List the creature, spell and artifact keys the active factory recognizes. Read-only."),
	)
}

func lookupCardTool() mcp.Tool {
	return mcp.NewTool("lookup_card",
		mcp.WithDescription("Look up a catalog card by name. Lowercase names are title-cased before matching."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Card name, e.g. 'Fire Dragon'")),
	)
}

func playDeckTool() mcp.Tool {
	return mcp.NewTool("play_deck",
		mcp.WithDescription("Load a deck from decks.yaml, shuffle it and play every card against a fresh game context."),
		mcp.WithNumber("deck", mcp.Required(), mcp.Description("Deck number (1-indexed from decks.yaml)")),
		mcp.WithNumber("mana", mcp.Required(), mcp.Description("Starting mana for the game context")),
	)
}

// --- Tool handlers ---

func session() (*Session, error) {
	if activeSession == nil {
		s, err := NewSession(0)
		if err != nil {
			return nil, err
		}
		activeSession = s
	}
	return activeSession, nil
}

func handleConfigureEngine(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	factory := strings.TrimSpace(request.GetString("factory", ""))
	if factory == "" {
		return mcp.NewToolResultError("factory is required"), nil
	}
	strategy := request.GetString("strategy", "aggressive")

	s, err := session()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start session: %v", err), nil
	}
	resp, err := s.Configure(factory, strategy)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to configure engine: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleSimulateTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	turns := request.GetInt("turns", 1)

	s, err := session()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start session: %v", err), nil
	}
	resp, err := s.Simulate(turns)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetEngineStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := session()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start session: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(s.Status())), nil
}

func handleCreateThemedDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	size := request.GetInt("size", 0)

	s, err := session()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start session: %v", err), nil
	}
	resp, err := s.ThemedDeck(size)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetSupportedTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := session()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start session: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(s.Supported())), nil
}

func handleLookupCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if strings.TrimSpace(name) == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	s, err := session()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start session: %v", err), nil
	}
	resp, err := s.Lookup(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handlePlayDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deck := request.GetInt("deck", 0)
	mana := request.GetInt("mana", 0)
	if deck < 1 {
		return mcp.NewToolResultError("deck must be >= 1"), nil
	}

	s, err := session()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start session: %v", err), nil
	}
	resp, err := s.PlayDeck(decksFile, deck, mana)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to play deck: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
