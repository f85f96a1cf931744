package game

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// --- Test card helpers ---

func creature(t *testing.T, name string, cost, atk, health int) *CreatureCard {
	t.Helper()
	c, err := NewCreatureCard(name, cost, RarityCommon, atk, health)
	if err != nil {
		t.Fatalf("NewCreatureCard(%q): %v", name, err)
	}
	return c
}

func spell(t *testing.T, name string, cost int, effectType string) *SpellCard {
	t.Helper()
	c, err := NewSpellCard(name, cost, RarityCommon, effectType)
	if err != nil {
		t.Fatalf("NewSpellCard(%q): %v", name, err)
	}
	return c
}

func artifact(t *testing.T, name string, cost, durability int, effect string) *ArtifactCard {
	t.Helper()
	c, err := NewArtifactCard(name, cost, RarityUncommon, durability, effect)
	if err != nil {
		t.Fatalf("NewArtifactCard(%q): %v", name, err)
	}
	return c
}

func elite(t *testing.T, name string, cost int) *EliteCard {
	t.Helper()
	c, err := NewEliteCard(name, cost, RarityLegendary)
	if err != nil {
		t.Fatalf("NewEliteCard(%q): %v", name, err)
	}
	return c
}

// seededRNG returns a deterministic source for shuffle and sampling tests.
func seededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func cardNames(cards []Card) []string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name())
	}
	return names
}

func sortedNames(cards []Card) []string {
	names := cardNames(cards)
	slices.Sort(names)
	return names
}
