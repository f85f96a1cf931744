package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Card is the behaviour shared by every playable card variant.
type Card interface {
	Name() string
	Cost() int
	Rarity() Rarity
	Type() CardType

	// IsPlayable reports whether availableMana covers the card's cost.
	IsPlayable(availableMana int) bool

	// Play resolves the card against gc. An unaffordable card leaves gc
	// untouched and returns a PlayResult with Played == false.
	Play(gc *GameContext) PlayResult

	// Info describes the card. Attack and Health are set only by variants
	// that define them.
	Info() CardInfo
}

// Attacker is implemented by cards that carry an attack power.
type Attacker interface {
	AttackPower() int
}

// CardInfo is the descriptive view of a card.
type CardInfo struct {
	Name   string   `json:"name"`
	Cost   int      `json:"cost"`
	Rarity Rarity   `json:"rarity"`
	Type   CardType `json:"type"`
	Attack *int     `json:"attack,omitempty"`
	Health *int     `json:"health,omitempty"`
}

// PlayResult is the outcome of Card.Play. The zero value means the card
// could not be played.
type PlayResult struct {
	Played      bool         `json:"played"`
	CardPlayed  string       `json:"card_played,omitempty"`
	ManaUsed    int          `json:"mana_used"`
	Effect      string       `json:"effect,omitempty"`
	CombatReady bool         `json:"combat_ready,omitempty"`
	MagicReady  bool         `json:"magic_ready,omitempty"`
	Context     *GameContext `json:"game_state,omitempty"` // snapshot after resolution
}

// baseCard carries the attributes common to all variants. Cost is fixed at
// construction.
type baseCard struct {
	name   string
	cost   int
	rarity Rarity
}

func newBaseCard(name string, cost int, rarity Rarity) (baseCard, error) {
	name = DisplayName(name)
	if name == "" {
		return baseCard{}, &ValidationError{Field: "name", Value: `""`, Rule: "must not be empty"}
	}
	if err := nonNegative("cost", cost); err != nil {
		return baseCard{}, err
	}
	return baseCard{name: name, cost: cost, rarity: rarity}, nil
}

func (c *baseCard) Name() string {
	return c.name
}

func (c *baseCard) Cost() int {
	return c.cost
}

func (c *baseCard) Rarity() Rarity {
	return c.rarity
}

func (c *baseCard) IsPlayable(availableMana int) bool {
	return availableMana >= c.cost
}

func (c *baseCard) String() string {
	return c.name
}

func (c *baseCard) baseInfo(t CardType) CardInfo {
	return CardInfo{Name: c.name, Cost: c.cost, Rarity: c.rarity, Type: t}
}

// pay deducts the card's cost from gc. It returns false, leaving gc
// unchanged, when gc is nil or the mana is insufficient.
func (c *baseCard) pay(gc *GameContext) bool {
	if gc == nil || !c.IsPlayable(gc.AvailableMana) {
		return false
	}
	gc.AvailableMana -= c.cost
	return true
}

// DisplayName trims a card name and capitalizes the first letter of each
// word, leaving the rest of each word as written. Joining words after the
// first ("of", "the", ...) stay as given.
func DisplayName(name string) string {
	words := strings.Fields(name)
	caser := cases.Title(language.English, cases.NoLower)
	for i, w := range words {
		if i > 0 && minorWords[w] {
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

var minorWords = map[string]bool{"a": true, "an": true, "and": true, "of": true, "the": true}

func intPtr(v int) *int {
	return &v
}
