package game

import "slices"

// GameContext is the mutable per-turn state threaded through Card.Play.
// It is owned by one caller and is not safe for concurrent use.
type GameContext struct {
	AvailableMana int      `json:"available_mana"`
	Battlefield   []string `json:"battlefield,omitempty"` // creatures and elites in play
	Permanents    []string `json:"permanents,omitempty"`  // artifacts in play
	SpellsCast    int      `json:"spells_cast"`
}

// NewGameContext returns a context holding the given mana and an empty board.
func NewGameContext(mana int) *GameContext {
	return &GameContext{AvailableMana: mana}
}

// Snapshot returns a deep copy of the context.
func (gc *GameContext) Snapshot() *GameContext {
	if gc == nil {
		return nil
	}
	return &GameContext{
		AvailableMana: gc.AvailableMana,
		Battlefield:   slices.Clone(gc.Battlefield),
		Permanents:    slices.Clone(gc.Permanents),
		SpellsCast:    gc.SpellsCast,
	}
}
