package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a catalog card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckData decodes deck YAML.
func ParseDeckData(data []byte) (DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return DeckFile{}, fmt.Errorf("parse deck YAML: %w", err)
	}
	return df, nil
}

func readDeckFile(path string) (DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeckFile{}, err
	}
	return ParseDeckData(data)
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name → cards.
func ParseDeckFile(path string) (map[string][]Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return nil, err
	}

	decks := make(map[string][]Card, len(df.Decks))
	for _, deck := range df.Decks {
		cards, err := deck.Build()
		if err != nil {
			return nil, err
		}
		decks[deck.Name] = cards
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(path string, n int) (string, []Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return "", nil, err
	}

	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}

	deck := df.Decks[n-1]
	cards, err := deck.Build()
	if err != nil {
		return "", nil, err
	}
	return deck.Name, cards, nil
}

// Build resolves each entry through the catalog, in file order.
func (de DeckEntry) Build() ([]Card, error) {
	var cards []Card
	for _, entry := range de.Cards {
		if entry.Count < 0 {
			return nil, fmt.Errorf("deck %q: card %q: count must not be negative", de.Name, entry.Name)
		}
		for i := 0; i < entry.Count; i++ {
			card, err := LookupCard(entry.Name)
			if err != nil {
				return nil, fmt.Errorf("deck %q: %w", de.Name, err)
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}
