package game

import "github.com/peterkuimelis/datadeck/internal/log"

// PlayFromDeck draws up to n cards from d (all of them when n <= 0) and plays
// each against gc in draw order. Unaffordable cards are reported with
// Played == false. Events go to logger when it is non-nil.
func PlayFromDeck(d *Deck, gc *GameContext, n int, logger log.EventLogger) []PlayResult {
	if n <= 0 {
		n = d.Len()
	}
	if gc == nil {
		gc = &GameContext{}
	}
	emit := func(ev log.GameEvent) {
		if logger != nil {
			logger.Log(ev)
		}
	}

	var results []PlayResult
	for i := 0; i < n; i++ {
		card, ok := d.DrawCard()
		if !ok {
			emit(log.NewDeckEmptyEvent(0))
			break
		}
		emit(log.NewDrawEvent(0, card.Name(), card.Type().String()))

		available := gc.AvailableMana
		res := card.Play(gc)
		if res.Played {
			emit(log.NewCardPlayedEvent(0, res.CardPlayed, res.ManaUsed, res.Effect))
		} else {
			emit(log.NewPlayRejectedEvent(0, card.Name(), card.Cost(), available))
		}
		results = append(results, res)
	}
	return results
}
