package mcp

import (
	"github.com/peterkuimelis/datadeck/internal/game"
	"github.com/peterkuimelis/datadeck/internal/log"
)

// EventView is a simplified game event for the tool response.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// DeckView describes a deck's statistics and contents in draw order.
type DeckView struct {
	Name  string          `json:"name,omitempty"`
	Theme string          `json:"theme,omitempty"`
	Size  int             `json:"size"`
	Stats game.DeckStats  `json:"stats"`
	Cards []game.CardInfo `json:"cards"`
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events    []EventView          `json:"events"`
	Status    *game.EngineStatus   `json:"status,omitempty"`
	Turns     []game.TurnResult    `json:"turns,omitempty"`
	Deck      *DeckView            `json:"deck,omitempty"`
	Card      *game.CardInfo       `json:"card,omitempty"`
	Supported *game.SupportedTypes `json:"supported_types,omitempty"`
	Plays     []game.PlayResult    `json:"plays,omitempty"`
	Context   *game.GameContext    `json:"game_state,omitempty"`
}

func buildEventViews(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Seq:     e.Seq,
			Turn:    e.Turn,
			Type:    e.Type.String(),
			Card:    e.Card,
			Details: e.Details,
		})
	}
	return views
}

func buildDeckView(name, theme string, d *game.Deck) *DeckView {
	cards := d.Cards()
	infos := make([]game.CardInfo, 0, len(cards))
	for _, c := range cards {
		infos = append(infos, c.Info())
	}
	return &DeckView{
		Name:  name,
		Theme: theme,
		Size:  d.Len(),
		Stats: d.Stats(),
		Cards: infos,
	}
}
