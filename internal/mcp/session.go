package mcp

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/peterkuimelis/datadeck/internal/game"
	"github.com/peterkuimelis/datadeck/internal/log"
	"github.com/peterkuimelis/datadeck/internal/random"
)

// Session holds the engine and event log shared by all tool calls of one
// stdio process.
type Session struct {
	mu     sync.Mutex
	engine *game.GameEngine
	logger *log.MemoryLogger
	rng    *rand.Rand
	seed   uint64
}

// NewSession creates an unconfigured session. A zero seed draws a fresh one.
func NewSession(seed uint64) (*Session, error) {
	rng, used, err := random.New(seed)
	if err != nil {
		return nil, fmt.Errorf("seed session: %w", err)
	}
	logger := log.NewMemoryLogger()
	return &Session{
		engine: game.NewGameEngine(game.EngineConfig{Logger: logger}),
		logger: logger,
		rng:    rng,
		seed:   used,
	}, nil
}

// Seed returns the seed backing the session's RNG.
func (s *Session) Seed() uint64 {
	return s.seed
}

// Configure resolves and binds a factory and strategy by name.
func (s *Session) Configure(factoryName, strategyName string) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	factory, err := game.NewFactory(factoryName, s.rng)
	if err != nil {
		return nil, err
	}
	strategy, err := game.NewStrategy(strategyName)
	if err != nil {
		return nil, err
	}
	s.engine.Configure(factory, strategy)
	return s.respond(&ToolResponse{}), nil
}

// Simulate runs turns on a configured engine.
func (s *Session) Simulate(turns int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.Configured() {
		return nil, fmt.Errorf("engine is not configured; call configure_engine first")
	}
	if turns < 1 {
		return nil, &game.ValidationError{Field: "turns", Value: turns, Rule: "must be at least 1"}
	}
	return s.respond(&ToolResponse{Turns: s.engine.SimulateTurns(turns)}), nil
}

// Status reports the engine counters without advancing anything.
func (s *Session) Status() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.respond(&ToolResponse{})
}

// ThemedDeck builds a deck from the configured factory, or the fantasy
// factory when nothing is configured yet.
func (s *Session) ThemedDeck(size int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if size < 0 {
		return nil, &game.ValidationError{Field: "size", Value: size, Rule: "must not be negative"}
	}
	f := s.factory()
	td := f.CreateThemedDeck(size)
	s.logger.Log(log.NewDeckBuiltEvent(td.Theme, td.Size))
	return s.respond(&ToolResponse{Deck: buildDeckView(f.Name(), td.Theme, td.Deck)}), nil
}

// Supported reports the active factory's recognized keys.
func (s *Session) Supported() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.factory().SupportedTypes()
	return s.respond(&ToolResponse{Supported: &st})
}

// Lookup finds a catalog card by name.
func (s *Session) Lookup(name string) (*ToolResponse, error) {
	card, err := game.LookupCard(name)
	if err != nil {
		return nil, err
	}
	info := card.Info()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.respond(&ToolResponse{Card: &info}), nil
}

// PlayDeck loads deck n from decksFile, shuffles it and plays every card
// against a fresh context holding mana.
func (s *Session) PlayDeck(decksFile string, n, mana int) (*ToolResponse, error) {
	if mana < 0 {
		return nil, &game.ValidationError{Field: "mana", Value: mana, Rule: "must not be negative"}
	}
	name, cards, err := game.DeckByNumber(decksFile, n)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck := game.NewDeck(s.rng, cards...)
	s.logger.Log(log.NewDeckBuiltEvent(name, deck.Len()))
	deck.Shuffle()
	s.logger.Log(log.NewShuffleEvent(deck.Len()))

	gc := game.NewGameContext(mana)
	plays := game.PlayFromDeck(deck, gc, 0, s.logger)
	return s.respond(&ToolResponse{Plays: plays, Context: gc}), nil
}

func (s *Session) factory() game.CardFactory {
	if f := s.engine.Factory(); f != nil {
		return f
	}
	return game.NewFantasyCardFactory(s.rng)
}

// respond attaches the drained events and the current status.
func (s *Session) respond(resp *ToolResponse) *ToolResponse {
	resp.Events = buildEventViews(s.logger.Drain())
	st := s.engine.Status()
	resp.Status = &st
	return resp
}

// respondJSON marshals a ToolResponse (or any value) to a JSON string.
func respondJSON(resp any) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
