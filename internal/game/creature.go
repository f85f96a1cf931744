package game

// CreatureCard is a summonable unit with attack power and health.
type CreatureCard struct {
	baseCard
	attackPower int
	health      int
}

// CombatResult describes a declared attack. Damage is reported, not applied.
type CombatResult struct {
	Attacker   string `json:"attacker"`
	Target     string `json:"target"`
	Damage     int    `json:"damage_dealt"`
	CombatType string `json:"combat_type,omitempty"`
	Resolved   bool   `json:"combat_resolved"`
}

// NewCreatureCard validates and builds a creature. Negative cost, attack or
// health yields a *ValidationError.
func NewCreatureCard(name string, cost int, rarity Rarity, attack, health int) (*CreatureCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("attack", attack); err != nil {
		return nil, err
	}
	if err := nonNegative("health", health); err != nil {
		return nil, err
	}
	return &CreatureCard{baseCard: base, attackPower: attack, health: health}, nil
}

func (c *CreatureCard) Type() CardType {
	return CardTypeCreature
}

func (c *CreatureCard) AttackPower() int {
	return c.attackPower
}

func (c *CreatureCard) Health() int {
	return c.health
}

func (c *CreatureCard) Play(gc *GameContext) PlayResult {
	if !c.pay(gc) {
		return PlayResult{}
	}
	gc.Battlefield = append(gc.Battlefield, c.name)
	return PlayResult{
		Played:     true,
		CardPlayed: c.name,
		ManaUsed:   c.cost,
		Effect:     "Creature summoned to battlefield",
	}
}

func (c *CreatureCard) Info() CardInfo {
	info := c.baseInfo(CardTypeCreature)
	info.Attack = intPtr(c.attackPower)
	info.Health = intPtr(c.health)
	return info
}

// Attack declares an attack on target. The target's health is not changed.
func (c *CreatureCard) Attack(target *CreatureCard) CombatResult {
	res := CombatResult{
		Attacker: c.name,
		Damage:   c.attackPower,
		Resolved: true,
	}
	if target != nil {
		res.Target = target.name
	}
	return res
}
