package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decoded mirrors ToolResponse with plain JSON types.
type decoded struct {
	Events []EventView `json:"events"`
	Status struct {
		TurnsSimulated int    `json:"turns_simulated"`
		StrategyUsed   string `json:"strategy_used"`
		TotalDamage    int    `json:"total_damage"`
		CardsCreated   int    `json:"cards_created"`
	} `json:"status"`
	Turns []struct {
		CardsPlayed []string `json:"cards_played"`
		DamageDealt int      `json:"damage_dealt"`
	} `json:"turns"`
	Deck *struct {
		Theme string           `json:"theme"`
		Size  int              `json:"size"`
		Cards []map[string]any `json:"cards"`
	} `json:"deck"`
	Card      map[string]any      `json:"card"`
	Supported map[string][]string `json:"supported_types"`
	Plays     []struct {
		Played bool   `json:"played"`
		Effect string `json:"effect"`
	} `json:"plays"`
	Context struct {
		AvailableMana int `json:"available_mana"`
	} `json:"game_state"`
}

func newTestSession(t *testing.T) {
	t.Helper()
	s, err := NewSession(7)
	require.NoError(t, err)
	SetSession(s)
	t.Cleanup(func() { SetSession(nil) })
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func decode(t *testing.T, res *mcp.CallToolResult) decoded {
	t.Helper()
	require.False(t, res.IsError, text(t, res))
	var d decoded
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &d))
	return d
}

func TestConfigureAndSimulate(t *testing.T) {
	newTestSession(t)

	d := decode(t, call(t, handleConfigureEngine, map[string]any{"factory": "fantasy", "strategy": "aggressive"}))
	require.Len(t, d.Events, 1)
	assert.Equal(t, "Configure", d.Events[0].Type)
	assert.Equal(t, "AggressiveStrategy", d.Status.StrategyUsed)

	d = decode(t, call(t, handleSimulateTurn, map[string]any{"turns": 3}))
	require.Len(t, d.Turns, 3)
	for _, turn := range d.Turns {
		assert.Equal(t, []string{"Goblin Warrior", "Lightning Bolt"}, turn.CardsPlayed)
		assert.Equal(t, 5, turn.DamageDealt)
	}
	assert.Equal(t, 3, d.Status.TurnsSimulated)
	assert.Equal(t, 9, d.Status.CardsCreated)
	assert.Equal(t, 15, d.Status.TotalDamage)

	d = decode(t, call(t, handleGetEngineStatus, nil))
	assert.Empty(t, d.Events, "events drain after each call")
	assert.Equal(t, 3, d.Status.TurnsSimulated)
}

func TestSimulateRequiresConfigure(t *testing.T) {
	newTestSession(t)

	res := call(t, handleSimulateTurn, map[string]any{"turns": 1})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "configure_engine")

	d := decode(t, call(t, handleGetEngineStatus, nil))
	assert.Zero(t, d.Status.TurnsSimulated)
	assert.Empty(t, d.Status.StrategyUsed)
}

func TestConfigureRejectsUnknownNames(t *testing.T) {
	newTestSession(t)

	res := call(t, handleConfigureEngine, map[string]any{"factory": "steampunk"})
	assert.True(t, res.IsError)

	res = call(t, handleConfigureEngine, map[string]any{"factory": "fantasy", "strategy": "turtle"})
	assert.True(t, res.IsError)

	res = call(t, handleConfigureEngine, map[string]any{})
	assert.True(t, res.IsError)
}

func TestSimulateRejectsZeroTurns(t *testing.T) {
	newTestSession(t)
	decode(t, call(t, handleConfigureEngine, map[string]any{"factory": "catalog"}))

	res := call(t, handleSimulateTurn, map[string]any{"turns": 0})
	assert.True(t, res.IsError)
}

func TestCreateThemedDeck(t *testing.T) {
	newTestSession(t)

	d := decode(t, call(t, handleCreateThemedDeck, map[string]any{"size": 12}))
	require.NotNil(t, d.Deck)
	assert.Equal(t, "Fantasy", d.Deck.Theme)
	assert.Equal(t, 12, d.Deck.Size)
	assert.Len(t, d.Deck.Cards, 12)

	decode(t, call(t, handleConfigureEngine, map[string]any{"factory": "catalog"}))
	d = decode(t, call(t, handleCreateThemedDeck, map[string]any{"size": 0}))
	require.NotNil(t, d.Deck)
	assert.Equal(t, "Classic", d.Deck.Theme)
	assert.Zero(t, d.Deck.Size)

	res := call(t, handleCreateThemedDeck, map[string]any{"size": -1})
	assert.True(t, res.IsError)
}

func TestGetSupportedTypes(t *testing.T) {
	newTestSession(t)

	d := decode(t, call(t, handleGetSupportedTypes, nil))
	assert.ElementsMatch(t, []string{"dragon", "goblin"}, d.Supported["creatures"])
	assert.ElementsMatch(t, []string{"fireball", "ice", "lightning"}, d.Supported["spells"])
	assert.ElementsMatch(t, []string{"mana_ring", "staff", "crystal"}, d.Supported["artifacts"])
}

func TestLookupCard(t *testing.T) {
	newTestSession(t)

	d := decode(t, call(t, handleLookupCard, map[string]any{"name": "fire dragon"}))
	assert.Equal(t, "Fire Dragon", d.Card["name"])
	assert.Equal(t, "Legendary", d.Card["rarity"])
	assert.EqualValues(t, 7, d.Card["attack"])

	res := call(t, handleLookupCard, map[string]any{"name": "Unobtainium Golem"})
	assert.True(t, res.IsError)

	res = call(t, handleLookupCard, map[string]any{"name": "  "})
	assert.True(t, res.IsError)
}

func TestPlayDeck(t *testing.T) {
	newTestSession(t)
	path := filepath.Join(t.TempDir(), "decks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
decks:
  - name: Sprites
    cards:
      - name: Forest Sprite
        count: 4
`), 0o644))
	old := decksFile
	SetDecksFile(path)
	t.Cleanup(func() { SetDecksFile(old) })

	d := decode(t, call(t, handlePlayDeck, map[string]any{"deck": 1, "mana": 3}))
	require.Len(t, d.Plays, 4)
	played := 0
	for _, p := range d.Plays {
		if p.Played {
			played++
			assert.Equal(t, "Creature summoned to battlefield", p.Effect)
		}
	}
	assert.Equal(t, 3, played)
	assert.Zero(t, d.Context.AvailableMana)

	types := make([]string, 0, len(d.Events))
	for _, e := range d.Events {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, "DeckBuilt")
	assert.Contains(t, types, "Shuffle")
	assert.Contains(t, types, "PlayRejected")

	res := call(t, handlePlayDeck, map[string]any{"deck": 2, "mana": 3})
	assert.True(t, res.IsError)

	res = call(t, handlePlayDeck, map[string]any{"deck": 0, "mana": 3})
	assert.True(t, res.IsError)

	res = call(t, handlePlayDeck, map[string]any{"deck": 1, "mana": -2})
	assert.True(t, res.IsError)
}

func TestRespondJSON(t *testing.T) {
	assert.Equal(t, `{"events":[]}`, respondJSON(&ToolResponse{Events: []EventView{}}))
	assert.Contains(t, respondJSON(func() {}), "marshal error")
}
