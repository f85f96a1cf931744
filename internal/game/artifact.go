package game

// ArtifactCard stays in play and grants a permanent effect.
type ArtifactCard struct {
	baseCard
	durability int
	effect     string
}

// Activation reports an artifact ability activation.
type Activation struct {
	Artifact   string `json:"artifact"`
	Effect     string `json:"effect"`
	Durability int    `json:"durability"`
	Activated  bool   `json:"activated"`
}

func NewArtifactCard(name string, cost int, rarity Rarity, durability int, effect string) (*ArtifactCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("durability", durability); err != nil {
		return nil, err
	}
	return &ArtifactCard{baseCard: base, durability: durability, effect: effect}, nil
}

func (c *ArtifactCard) Type() CardType {
	return CardTypeArtifact
}

func (c *ArtifactCard) Durability() int {
	return c.durability
}

func (c *ArtifactCard) Effect() string {
	return c.effect
}

func (c *ArtifactCard) Play(gc *GameContext) PlayResult {
	if !c.pay(gc) {
		return PlayResult{}
	}
	gc.Permanents = append(gc.Permanents, c.name)
	return PlayResult{
		Played:     true,
		CardPlayed: c.name,
		ManaUsed:   c.cost,
		Effect:     "Permanent: " + c.effect,
		Context:    gc.Snapshot(),
	}
}

func (c *ArtifactCard) Info() CardInfo {
	return c.baseInfo(CardTypeArtifact)
}

// ActivateAbility reports the artifact's effect. Durability is not consumed.
func (c *ArtifactCard) ActivateAbility() Activation {
	return Activation{
		Artifact:   c.name,
		Effect:     c.effect,
		Durability: c.durability,
		Activated:  true,
	}
}
