package game

import (
	"fmt"
	"slices"
	"strings"
)

// Strategy decides which cards of a hand to play in a turn.
type Strategy interface {
	// ExecuteTurn selects cards from hand and reports the resulting plays.
	ExecuteTurn(hand []Card, battlefield []Card) TurnResult

	// Name returns a stable identifier used in reports.
	Name() string

	// PrioritizeTargets orders the available targets, most preferred first.
	PrioritizeTargets(targets []string) []string
}

// TurnResult summarizes one executed turn.
type TurnResult struct {
	CardsPlayed     []string `json:"cards_played"`
	ManaUsed        int      `json:"mana_used"`
	TargetsAttacked []string `json:"targets_attacked"`
	DamageDealt     int      `json:"damage_dealt"`
}

const (
	// AggressiveMaxCost is the highest cost the aggressive strategy plays.
	AggressiveMaxCost = 3

	EnemyPlayer = "Enemy Player"
)

// AggressiveStrategy plays every cheap card and sends all damage at the
// enemy player. Cards without attack power deal their cost as damage.
type AggressiveStrategy struct{}

func NewAggressiveStrategy() *AggressiveStrategy {
	return &AggressiveStrategy{}
}

func (s *AggressiveStrategy) ExecuteTurn(hand []Card, battlefield []Card) TurnResult {
	res := TurnResult{
		CardsPlayed:     []string{},
		TargetsAttacked: s.PrioritizeTargets([]string{EnemyPlayer}),
	}
	for _, card := range hand {
		if card == nil || card.Cost() > AggressiveMaxCost {
			continue
		}
		res.CardsPlayed = append(res.CardsPlayed, card.Name())
		res.ManaUsed += card.Cost()
		if a, ok := card.(Attacker); ok {
			res.DamageDealt += a.AttackPower()
		} else {
			res.DamageDealt += card.Cost()
		}
	}
	return res
}

func (s *AggressiveStrategy) Name() string {
	return "AggressiveStrategy"
}

// PrioritizeTargets returns targets in the order given.
func (s *AggressiveStrategy) PrioritizeTargets(targets []string) []string {
	return slices.Clone(targets)
}

// NewStrategy resolves a strategy by short name.
func NewStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "aggressive", "":
		return NewAggressiveStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
