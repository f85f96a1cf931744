package game

import (
	"fmt"
	"math/rand/v2"
)

// catalogEntry is the static definition of one catalog card.
type catalogEntry struct {
	Category   Category
	Name       string
	Cost       int
	Rarity     Rarity
	Attack     int    // creatures
	Health     int    // creatures
	EffectType string // spells
	Durability int    // artifacts
	Effect     string // artifacts
}

func (e catalogEntry) build() Card {
	var (
		card Card
		err  error
	)
	switch e.Category {
	case CategoryCreature:
		card, err = NewCreatureCard(e.Name, e.Cost, e.Rarity, e.Attack, e.Health)
	case CategorySpell:
		card, err = NewSpellCard(e.Name, e.Cost, e.Rarity, e.EffectType)
	default:
		card, err = NewArtifactCard(e.Name, e.Cost, e.Rarity, e.Durability, e.Effect)
	}
	if err != nil {
		panic(fmt.Sprintf("invalid catalog card %q: %v", e.Name, err))
	}
	return card
}

var catalog = []catalogEntry{
	{Category: CategoryCreature, Name: "Fire Dragon", Cost: 5, Rarity: RarityLegendary, Attack: 7, Health: 5},
	{Category: CategoryCreature, Name: "Goblin Warrior", Cost: 2, Rarity: RarityCommon, Attack: 2, Health: 1},
	{Category: CategoryCreature, Name: "Ice Wizard", Cost: 4, Rarity: RarityRare, Attack: 3, Health: 4},
	{Category: CategoryCreature, Name: "Lightning Elemental", Cost: 3, Rarity: RarityUncommon, Attack: 4, Health: 2},
	{Category: CategoryCreature, Name: "Stone Golem", Cost: 6, Rarity: RarityRare, Attack: 5, Health: 8},
	{Category: CategoryCreature, Name: "Shadow Assassin", Cost: 3, Rarity: RarityUncommon, Attack: 5, Health: 2},
	{Category: CategoryCreature, Name: "Healing Angel", Cost: 4, Rarity: RarityRare, Attack: 2, Health: 6},
	{Category: CategoryCreature, Name: "Forest Sprite", Cost: 1, Rarity: RarityCommon, Attack: 1, Health: 1},

	{Category: CategorySpell, Name: "Lightning Bolt", Cost: 3, Rarity: RarityCommon, EffectType: "damage"},
	{Category: CategorySpell, Name: "Healing Potion", Cost: 2, Rarity: RarityCommon, EffectType: "heal"},
	{Category: CategorySpell, Name: "Fireball", Cost: 4, Rarity: RarityUncommon, EffectType: "damage"},
	{Category: CategorySpell, Name: "Shield Spell", Cost: 1, Rarity: RarityCommon, EffectType: "buff"},
	{Category: CategorySpell, Name: "Meteor", Cost: 8, Rarity: RarityLegendary, EffectType: "damage"},
	{Category: CategorySpell, Name: "Ice Shard", Cost: 2, Rarity: RarityCommon, EffectType: "damage"},
	{Category: CategorySpell, Name: "Divine Light", Cost: 5, Rarity: RarityRare, EffectType: "heal"},
	{Category: CategorySpell, Name: "Magic Missile", Cost: 1, Rarity: RarityCommon, EffectType: "damage"},

	{Category: CategoryArtifact, Name: "Mana Crystal", Cost: 2, Rarity: RarityCommon, Durability: 5, Effect: "+1 mana per turn"},
	{Category: CategoryArtifact, Name: "Sword of Power", Cost: 3, Rarity: RarityUncommon, Durability: 3, Effect: "+2 attack to equipped creature"},
	{Category: CategoryArtifact, Name: "Ring of Wisdom", Cost: 4, Rarity: RarityRare, Durability: 4, Effect: "Draw an extra card each turn"},
	{Category: CategoryArtifact, Name: "Shield of Defense", Cost: 5, Rarity: RarityRare, Durability: 6, Effect: "+3 health to all friendly creatures"},
	{Category: CategoryArtifact, Name: "Crown of Kings", Cost: 7, Rarity: RarityLegendary, Durability: 8, Effect: "+1 cost reduction to all cards"},
	{Category: CategoryArtifact, Name: "Boots of Speed", Cost: 2, Rarity: RarityUncommon, Durability: 2, Effect: "Cards cost 1 less mana"},
	{Category: CategoryArtifact, Name: "Cloak of Shadows", Cost: 3, Rarity: RarityUncommon, Durability: 3, Effect: "Creatures have stealth"},
	{Category: CategoryArtifact, Name: "Staff of Elements", Cost: 6, Rarity: RarityLegendary, Durability: 7, Effect: "+1 spell damage"},
}

// CardRegistry maps catalog card names to their constructor functions.
// Every call returns a fresh card.
var CardRegistry = func() map[string]func() Card {
	reg := make(map[string]func() Card, len(catalog))
	for _, e := range catalog {
		reg[e.Name] = e.build
	}
	return reg
}()

// LookupCard returns a new instance of the named catalog card. Names are
// matched after title-casing, so "fire dragon" finds "Fire Dragon".
func LookupCard(name string) (Card, error) {
	ctor, ok := CardRegistry[name]
	if !ok {
		ctor, ok = CardRegistry[DisplayName(name)]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, name)
	}
	return ctor(), nil
}

// CatalogNames returns the names of catalog cards in cat, in catalog order.
func CatalogNames(cat Category) []string {
	var names []string
	for _, e := range catalog {
		if e.Category == cat {
			names = append(names, e.Name)
		}
	}
	return names
}

// CatalogCards returns a fresh instance of every catalog card.
func CatalogCards() []Card {
	return filterCatalog(func(catalogEntry) bool { return true })
}

// CardsByRarity returns fresh instances of all catalog cards of rarity r.
func CardsByRarity(r Rarity) []Card {
	return filterCatalog(func(e catalogEntry) bool { return e.Rarity == r })
}

// CardsByMaxCost returns fresh instances of all catalog cards costing at most maxCost.
func CardsByMaxCost(maxCost int) []Card {
	return filterCatalog(func(e catalogEntry) bool { return e.Cost <= maxCost })
}

func filterCatalog(keep func(catalogEntry) bool) []Card {
	var cards []Card
	for _, e := range catalog {
		if keep(e) {
			cards = append(cards, e.build())
		}
	}
	return cards
}

// RandomCard returns a uniformly chosen catalog card of category cat.
func RandomCard(rng *rand.Rand, cat Category) Card {
	names := CatalogNames(cat)
	return CardRegistry[names[intN(rng, len(names))]]()
}

// RandomCatalogDeck builds a deck of size cards drawn uniformly from the
// whole catalog.
func RandomCatalogDeck(rng *rand.Rand, size int) *Deck {
	d := NewDeck(rng)
	for i := 0; i < size; i++ {
		d.AddCard(catalog[intN(rng, len(catalog))].build())
	}
	return d
}

// intN draws from rng, or from the package-level source when rng is nil.
func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
