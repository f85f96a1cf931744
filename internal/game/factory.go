package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// CardFactory produces cards from opaque keys. Unknown keys never fail; each
// category falls back to one fixed default card.
type CardFactory interface {
	Name() string
	Theme() string
	CreateCreature(key string) Card
	CreateSpell(key string) Card
	CreateArtifact(key string) Card
	CreateThemedDeck(size int) ThemedDeck
	SupportedTypes() SupportedTypes
}

// ThemedDeck is a factory-generated deck.
type ThemedDeck struct {
	Deck  *Deck
	Size  int
	Theme string
}

// SupportedTypes lists the keys a factory recognizes per category.
type SupportedTypes struct {
	Creatures []string `json:"creatures"`
	Spells    []string `json:"spells"`
	Artifacts []string `json:"artifacts"`
}

func (st SupportedTypes) keys(cat Category) []string {
	switch cat {
	case CategoryCreature:
		return st.Creatures
	case CategorySpell:
		return st.Spells
	default:
		return st.Artifacts
	}
}

// createByCategory dispatches to the factory method for cat.
func createByCategory(f CardFactory, cat Category, key string) Card {
	switch cat {
	case CategoryCreature:
		return f.CreateCreature(key)
	case CategorySpell:
		return f.CreateSpell(key)
	default:
		return f.CreateArtifact(key)
	}
}

// buildThemedDeck fills size slots, choosing a category uniformly and then a
// key uniformly within it.
func buildThemedDeck(f CardFactory, rng *rand.Rand, size int) ThemedDeck {
	types := f.SupportedTypes()
	d := NewDeck(rng)
	for i := 0; i < size; i++ {
		cat := Categories[intN(rng, len(Categories))]
		keys := types.keys(cat)
		key := ""
		if len(keys) > 0 {
			key = keys[intN(rng, len(keys))]
		}
		d.AddCard(createByCategory(f, cat, key))
	}
	return ThemedDeck{Deck: d, Size: d.Len(), Theme: f.Theme()}
}

// --- Fantasy factory ---

var (
	fantasyCreatures = map[string]catalogEntry{
		"dragon": {Category: CategoryCreature, Name: "Fire Dragon", Cost: 5, Rarity: RarityLegendary, Attack: 5, Health: 5},
		"goblin": {Category: CategoryCreature, Name: "Goblin Warrior", Cost: 2, Rarity: RarityCommon, Attack: 2, Health: 2},
	}
	fantasySpells = map[string]catalogEntry{
		"fireball":  {Category: CategorySpell, Name: "Fireball", Cost: 3, Rarity: RarityCommon, EffectType: "damage"},
		"ice":       {Category: CategorySpell, Name: "Ice Bolt", Cost: 2, Rarity: RarityCommon, EffectType: "freeze"},
		"lightning": {Category: CategorySpell, Name: "Lightning Bolt", Cost: 3, Rarity: RarityUncommon, EffectType: "damage"},
	}
	fantasyArtifacts = map[string]catalogEntry{
		"mana_ring": {Category: CategoryArtifact, Name: "Mana Ring", Cost: 1, Rarity: RarityCommon, Durability: 3, Effect: "+1 mana"},
		"staff":     {Category: CategoryArtifact, Name: "Wizard Staff", Cost: 3, Rarity: RarityRare, Durability: 5, Effect: "+2 spell power"},
		"crystal":   {Category: CategoryArtifact, Name: "Power Crystal", Cost: 2, Rarity: RarityUncommon, Durability: 2, Effect: "Draw card"},
	}
)

// Fallback keys for unrecognized input.
const (
	fantasyDefaultCreature = "goblin"
	fantasyDefaultSpell    = "lightning"
	fantasyDefaultArtifact = "crystal"
)

// FantasyCardFactory creates fantasy-themed cards with fixed stats.
type FantasyCardFactory struct {
	rng *rand.Rand
}

// NewFantasyCardFactory returns a factory sampling themed decks from rng.
// A nil rng uses the package-level source.
func NewFantasyCardFactory(rng *rand.Rand) *FantasyCardFactory {
	return &FantasyCardFactory{rng: rng}
}

func (f *FantasyCardFactory) Name() string {
	return "FantasyCardFactory"
}

func (f *FantasyCardFactory) Theme() string {
	return "Fantasy"
}

func (f *FantasyCardFactory) CreateCreature(key string) Card {
	return lookupOrDefault(fantasyCreatures, key, fantasyDefaultCreature)
}

func (f *FantasyCardFactory) CreateSpell(key string) Card {
	return lookupOrDefault(fantasySpells, key, fantasyDefaultSpell)
}

func (f *FantasyCardFactory) CreateArtifact(key string) Card {
	return lookupOrDefault(fantasyArtifacts, key, fantasyDefaultArtifact)
}

func (f *FantasyCardFactory) CreateThemedDeck(size int) ThemedDeck {
	return buildThemedDeck(f, f.rng, size)
}

func (f *FantasyCardFactory) SupportedTypes() SupportedTypes {
	return SupportedTypes{
		Creatures: []string{"dragon", "goblin"},
		Spells:    []string{"fireball", "ice", "lightning"},
		Artifacts: []string{"mana_ring", "staff", "crystal"},
	}
}

func lookupOrDefault(defs map[string]catalogEntry, key, fallback string) Card {
	if def, ok := defs[key]; ok {
		return def.build()
	}
	return defs[fallback].build()
}

// --- Catalog factory ---

// CatalogCardFactory creates cards from the built-in catalog, keyed by card
// name. Unknown keys fall back to the first catalog card of the category.
type CatalogCardFactory struct {
	rng *rand.Rand
}

func NewCatalogCardFactory(rng *rand.Rand) *CatalogCardFactory {
	return &CatalogCardFactory{rng: rng}
}

func (f *CatalogCardFactory) Name() string {
	return "CatalogCardFactory"
}

func (f *CatalogCardFactory) Theme() string {
	return "Classic"
}

func (f *CatalogCardFactory) CreateCreature(key string) Card {
	return f.create(CategoryCreature, key)
}

func (f *CatalogCardFactory) CreateSpell(key string) Card {
	return f.create(CategorySpell, key)
}

func (f *CatalogCardFactory) CreateArtifact(key string) Card {
	return f.create(CategoryArtifact, key)
}

func (f *CatalogCardFactory) create(cat Category, key string) Card {
	for _, e := range catalog {
		if e.Category == cat && e.Name == key {
			return e.build()
		}
	}
	return CardRegistry[CatalogNames(cat)[0]]()
}

func (f *CatalogCardFactory) CreateThemedDeck(size int) ThemedDeck {
	return buildThemedDeck(f, f.rng, size)
}

func (f *CatalogCardFactory) SupportedTypes() SupportedTypes {
	return SupportedTypes{
		Creatures: CatalogNames(CategoryCreature),
		Spells:    CatalogNames(CategorySpell),
		Artifacts: CatalogNames(CategoryArtifact),
	}
}

// NewFactory resolves a factory by short name ("fantasy" or "catalog").
func NewFactory(name string, rng *rand.Rand) (CardFactory, error) {
	switch strings.ToLower(name) {
	case "fantasy", "":
		return NewFantasyCardFactory(rng), nil
	case "catalog", "classic":
		return NewCatalogCardFactory(rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFactory, name)
	}
}
