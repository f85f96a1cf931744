package game

import (
	"fmt"

	"github.com/peterkuimelis/datadeck/internal/log"
)

// HandSlot names one card the engine requests from the factory per turn.
type HandSlot struct {
	Category Category
	Key      string
}

// ReferenceHand is the fixed hand dealt every simulated turn.
var ReferenceHand = []HandSlot{
	{Category: CategoryCreature, Key: "dragon"},
	{Category: CategoryCreature, Key: "goblin"},
	{Category: CategorySpell, Key: "lightning"},
}

// EngineConfig holds configuration for creating a new engine.
type EngineConfig struct {
	Logger log.EventLogger
}

// EngineStatus reports the engine's cumulative counters.
type EngineStatus struct {
	TurnsSimulated int    `json:"turns_simulated"`
	StrategyUsed   string `json:"strategy_used"`
	TotalDamage    int    `json:"total_damage"`
	CardsCreated   int    `json:"cards_created"`
}

// GameEngine drives a factory and a strategy through simulated turns.
// Counters only grow.
type GameEngine struct {
	factory  CardFactory
	strategy Strategy
	Logger   log.EventLogger

	turnsSimulated int
	totalDamage    int
	cardsCreated   int
}

// NewGameEngine creates an unconfigured engine.
func NewGameEngine(cfg EngineConfig) *GameEngine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &GameEngine{Logger: logger}
}

// Configure binds the factory and strategy used by later turns, replacing any
// previous bindings. Counters are kept.
func (e *GameEngine) Configure(factory CardFactory, strategy Strategy) {
	if factory == nil || strategy == nil {
		panic("game: Configure requires a non-nil factory and strategy")
	}
	e.factory = factory
	e.strategy = strategy
	e.Logger.Log(log.NewConfigureEvent(factory.Name(), strategy.Name()))
}

// Configured reports whether Configure has been called.
func (e *GameEngine) Configured() bool {
	return e.factory != nil && e.strategy != nil
}

func (e *GameEngine) Factory() CardFactory {
	return e.factory
}

func (e *GameEngine) Strategy() Strategy {
	return e.strategy
}

// SimulateTurn deals the reference hand and lets the strategy play it.
// It panics if the engine is not configured.
func (e *GameEngine) SimulateTurn() TurnResult {
	if !e.Configured() {
		panic("game: SimulateTurn called before Configure")
	}
	turn := e.turnsSimulated + 1

	hand := make([]Card, 0, len(ReferenceHand))
	labels := make([]string, 0, len(ReferenceHand))
	for _, slot := range ReferenceHand {
		card := createByCategory(e.factory, slot.Category, slot.Key)
		hand = append(hand, card)
		labels = append(labels, fmt.Sprintf("%s (%d)", card.Name(), card.Cost()))
	}
	e.cardsCreated += len(hand)
	e.Logger.Log(log.NewHandDealtEvent(turn, labels))

	res := e.strategy.ExecuteTurn(hand, nil)

	e.turnsSimulated++
	e.totalDamage += res.DamageDealt
	e.Logger.Log(log.NewTurnResolvedEvent(turn, e.strategy.Name(), res.CardsPlayed, res.ManaUsed, res.DamageDealt))
	return res
}

// SimulateTurns runs n turns and returns their results in order.
func (e *GameEngine) SimulateTurns(n int) []TurnResult {
	results := make([]TurnResult, 0, max(n, 0))
	for i := 0; i < n; i++ {
		results = append(results, e.SimulateTurn())
	}
	return results
}

// Status reports the cumulative counters. StrategyUsed is empty until the
// engine is configured.
func (e *GameEngine) Status() EngineStatus {
	st := EngineStatus{
		TurnsSimulated: e.turnsSimulated,
		TotalDamage:    e.totalDamage,
		CardsCreated:   e.cardsCreated,
	}
	if e.strategy != nil {
		st.StrategyUsed = e.strategy.Name()
	}
	return st
}
