package game

import "slices"

// SpellManaCost is the mana an elite spends per CastSpell.
const SpellManaCost = 4

// Combatant is a card that can fight.
type Combatant interface {
	Attack(target string) CombatResult
	Defend(incomingDamage int) DefenseResult
	CombatStats() CombatStats
}

// Spellcaster is a card with its own mana pool.
type Spellcaster interface {
	CastSpell(spell string, targets []string) SpellCast
	ChannelMana(amount int) ManaChannel
	MagicStats() MagicStats
}

type DefenseResult struct {
	Defender      string `json:"defender"`
	DamageTaken   int    `json:"damage_taken"`
	DamageBlocked int    `json:"damage_blocked"`
	StillAlive    bool   `json:"still_alive"`
}

type CombatStats struct {
	AttackPower int    `json:"attack_power"`
	Defense     int    `json:"defense"`
	CombatType  string `json:"combat_type"`
}

// SpellCast is the outcome of CastSpell. Error is set, and ManaUsed is 0,
// when the caster could not afford the spell.
type SpellCast struct {
	Caster   string   `json:"caster"`
	Spell    string   `json:"spell"`
	Targets  []string `json:"targets"`
	ManaUsed int      `json:"mana_used"`
	Error    string   `json:"error,omitempty"`
}

type ManaChannel struct {
	Channeled int `json:"channeled"`
	TotalMana int `json:"total_mana"`
}

type MagicStats struct {
	CurrentMana int `json:"current_mana"`
	MaxMana     int `json:"max_mana"`
	SpellPower  int `json:"spell_power"`
}

// EliteStats holds an elite's combat and magic attributes.
type EliteStats struct {
	AttackPower int
	Defense     int
	MaxMana     int
}

// DefaultEliteStats returns the stats used by NewEliteCard.
func DefaultEliteStats() EliteStats {
	return EliteStats{AttackPower: 5, Defense: 3, MaxMana: 10}
}

// EliteCard is a Card, a Combatant and a Spellcaster at once.
type EliteCard struct {
	baseCard
	attackPower int
	defense     int
	maxMana     int
	currentMana int
}

var (
	_ Card        = (*EliteCard)(nil)
	_ Combatant   = (*EliteCard)(nil)
	_ Spellcaster = (*EliteCard)(nil)
	_ Attacker    = (*EliteCard)(nil)
)

// NewEliteCard builds an elite with DefaultEliteStats.
func NewEliteCard(name string, cost int, rarity Rarity) (*EliteCard, error) {
	return NewEliteCardWithStats(name, cost, rarity, DefaultEliteStats())
}

func NewEliteCardWithStats(name string, cost int, rarity Rarity, stats EliteStats) (*EliteCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("attack", stats.AttackPower); err != nil {
		return nil, err
	}
	if err := nonNegative("defense", stats.Defense); err != nil {
		return nil, err
	}
	if err := nonNegative("max mana", stats.MaxMana); err != nil {
		return nil, err
	}
	return &EliteCard{
		baseCard:    base,
		attackPower: stats.AttackPower,
		defense:     stats.Defense,
		maxMana:     stats.MaxMana,
		currentMana: stats.MaxMana,
	}, nil
}

func (c *EliteCard) Type() CardType {
	return CardTypeElite
}

func (c *EliteCard) AttackPower() int {
	return c.attackPower
}

func (c *EliteCard) Defense() int {
	return c.defense
}

func (c *EliteCard) CurrentMana() int {
	return c.currentMana
}

func (c *EliteCard) MaxMana() int {
	return c.maxMana
}

func (c *EliteCard) Play(gc *GameContext) PlayResult {
	if !c.pay(gc) {
		return PlayResult{}
	}
	gc.Battlefield = append(gc.Battlefield, c.name)
	return PlayResult{
		Played:      true,
		CardPlayed:  c.name,
		ManaUsed:    c.cost,
		Effect:      "Elite deployed, combat and magic ready",
		CombatReady: true,
		MagicReady:  true,
		Context:     gc.Snapshot(),
	}
}

func (c *EliteCard) Info() CardInfo {
	info := c.baseInfo(CardTypeElite)
	info.Attack = intPtr(c.attackPower)
	return info
}

// --- Combatant ---

func (c *EliteCard) Attack(target string) CombatResult {
	return CombatResult{
		Attacker:   c.name,
		Target:     target,
		Damage:     c.attackPower,
		CombatType: "melee",
		Resolved:   true,
	}
}

// Defend blocks up to Defense points of incomingDamage. Lethal damage is not
// modelled, so StillAlive is always true.
func (c *EliteCard) Defend(incomingDamage int) DefenseResult {
	incomingDamage = max(incomingDamage, 0)
	blocked := min(incomingDamage, c.defense)
	return DefenseResult{
		Defender:      c.name,
		DamageTaken:   incomingDamage - blocked,
		DamageBlocked: blocked,
		StillAlive:    true,
	}
}

func (c *EliteCard) CombatStats() CombatStats {
	return CombatStats{AttackPower: c.attackPower, Defense: c.defense, CombatType: "melee"}
}

// --- Spellcaster ---

func (c *EliteCard) CastSpell(spell string, targets []string) SpellCast {
	if c.currentMana < SpellManaCost {
		return SpellCast{
			Caster:  c.name,
			Spell:   spell,
			Targets: []string{},
			Error:   "not enough mana",
		}
	}
	c.currentMana -= SpellManaCost
	return SpellCast{
		Caster:   c.name,
		Spell:    spell,
		Targets:  slices.Clone(targets),
		ManaUsed: SpellManaCost,
	}
}

// ChannelMana adds amount to the mana pool, clamped to [0, MaxMana].
func (c *EliteCard) ChannelMana(amount int) ManaChannel {
	c.currentMana = min(max(c.currentMana+amount, 0), c.maxMana)
	return ManaChannel{Channeled: amount, TotalMana: c.currentMana}
}

func (c *EliteCard) MagicStats() MagicStats {
	return MagicStats{CurrentMana: c.currentMana, MaxMana: c.maxMana, SpellPower: c.attackPower}
}
