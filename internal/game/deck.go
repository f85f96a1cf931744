package game

import (
	"math/rand/v2"
	"slices"
)

// Deck is an ordered collection of cards. Index 0 is the top of the deck and
// is drawn first. A Deck is not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// DeckStats summarizes a deck's composition. Elites count towards
// TotalCards and the average cost but not towards any type tally.
type DeckStats struct {
	TotalCards int     `json:"total_cards"`
	Creatures  int     `json:"creatures"`
	Spells     int     `json:"spells"`
	Artifacts  int     `json:"artifacts"`
	AvgCost    float64 `json:"avg_cost"`
}

// NewDeck returns an empty deck that shuffles with rng. A nil rng uses the
// package-level math/rand/v2 source.
func NewDeck(rng *rand.Rand, cards ...Card) *Deck {
	d := &Deck{rng: rng}
	for _, c := range cards {
		d.AddCard(c)
	}
	return d
}

// AddCard appends card to the bottom of the deck.
func (d *Deck) AddCard(card Card) {
	if card == nil {
		return
	}
	d.cards = append(d.cards, card)
}

// RemoveCard removes the earliest-added card named name and reports whether
// one was found.
func (d *Deck) RemoveCard(name string) bool {
	i := slices.IndexFunc(d.cards, func(c Card) bool { return c.Name() == name })
	if i < 0 {
		return false
	}
	d.cards = slices.Delete(d.cards, i, i+1)
	return true
}

// Shuffle randomizes the deck order.
func (d *Deck) Shuffle() {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if d.rng == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	d.rng.Shuffle(len(d.cards), swap)
}

// DrawCard removes the top card and returns it.
// Returns false if the deck is empty.
func (d *Deck) DrawCard() (Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	card := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	return card, true
}

// Len returns the number of cards remaining in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the deck contents in draw order. The slice is a copy.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

func (d *Deck) Stats() DeckStats {
	stats := DeckStats{TotalCards: len(d.cards)}
	totalCost := 0
	for _, c := range d.cards {
		totalCost += c.Cost()
		switch c.Type() {
		case CardTypeCreature:
			stats.Creatures++
		case CardTypeSpell:
			stats.Spells++
		case CardTypeArtifact:
			stats.Artifacts++
		}
	}
	if stats.TotalCards > 0 {
		stats.AvgCost = float64(totalCost) / float64(stats.TotalCards)
	}
	return stats
}
