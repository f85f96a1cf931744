package game

import (
	"fmt"
	"slices"
)

// SpellCard is a one-shot effect. EffectType is an opaque label such as
// "damage", "heal" or "buff".
type SpellCard struct {
	baseCard
	effectType string
}

// SpellResolution reports the targets a spell's effect was applied to.
type SpellResolution struct {
	Spell      string   `json:"spell"`
	EffectType string   `json:"effect_type"`
	Targets    []string `json:"targets"`
	Resolved   bool     `json:"resolved"`
}

func NewSpellCard(name string, cost int, rarity Rarity, effectType string) (*SpellCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	return &SpellCard{baseCard: base, effectType: effectType}, nil
}

func (c *SpellCard) Type() CardType {
	return CardTypeSpell
}

func (c *SpellCard) EffectType() string {
	return c.effectType
}

func (c *SpellCard) Play(gc *GameContext) PlayResult {
	if !c.pay(gc) {
		return PlayResult{}
	}
	gc.SpellsCast++
	return PlayResult{
		Played:     true,
		CardPlayed: c.name,
		ManaUsed:   c.cost,
		Effect:     fmt.Sprintf("Deal %d damage to target", c.cost),
		Context:    gc.Snapshot(),
	}
}

func (c *SpellCard) Info() CardInfo {
	return c.baseInfo(CardTypeSpell)
}

// ResolveEffect applies the spell's effect label to targets.
func (c *SpellCard) ResolveEffect(targets []string) SpellResolution {
	return SpellResolution{
		Spell:      c.name,
		EffectType: c.effectType,
		Targets:    slices.Clone(targets),
		Resolved:   true,
	}
}
