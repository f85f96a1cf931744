package game

import (
	"errors"
	"testing"
)

// TestCreatureValidation: negative attack or health is rejected, zero is accepted.
func TestCreatureValidation(t *testing.T) {
	tests := []struct {
		name    string
		attack  int
		health  int
		wantErr string // field named in the error, "" for success
	}{
		{"zero stats", 0, 0, ""},
		{"positive stats", 7, 5, ""},
		{"negative attack", -1, 5, "attack"},
		{"negative health", 3, -2, "health"},
		{"both negative", -1, -1, "attack"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCreatureCard("Test Beast", 2, RarityCommon, tt.attack, tt.health)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if c.AttackPower() != tt.attack || c.Health() != tt.health {
					t.Errorf("stats = %d/%d, want %d/%d", c.AttackPower(), c.Health(), tt.attack, tt.health)
				}
				return
			}
			if c != nil {
				t.Errorf("expected no card on validation failure, got %v", c)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.wantErr {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantErr)
			}
		})
	}
}

func TestBaseValidation(t *testing.T) {
	if _, err := NewSpellCard("Bad Spell", -1, RarityCommon, "damage"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative cost: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewArtifactCard("   ", 1, RarityCommon, 1, "none"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("blank name: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewArtifactCard("Cracked Orb", 1, RarityCommon, -3, "none"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative durability: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewEliteCardWithStats("Broken Elite", 1, RarityRare, EliteStats{AttackPower: 1, Defense: -1, MaxMana: 1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative defense: expected ErrInvalidArgument, got %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	c := creature(t, "  fire   dragon ", 5, 7, 5)
	if c.Name() != "Fire Dragon" {
		t.Errorf("Name = %q, want %q", c.Name(), "Fire Dragon")
	}
	if got := DisplayName("ICE breaker"); got != "ICE Breaker" {
		t.Errorf("DisplayName = %q, want %q", got, "ICE Breaker")
	}
	if got := DisplayName("crown of kings"); got != "Crown of Kings" {
		t.Errorf("DisplayName = %q, want %q", got, "Crown of Kings")
	}
}

// TestIsPlayable: playable iff mana >= cost, for every variant.
func TestIsPlayable(t *testing.T) {
	cards := []Card{
		creature(t, "Goblin", 3, 2, 2),
		spell(t, "Bolt", 3, "damage"),
		artifact(t, "Ring", 3, 2, "+1 mana"),
		elite(t, "Arcane Warrior", 3),
	}
	for _, c := range cards {
		for mana, want := range map[int]bool{0: false, 2: false, 3: true, 4: true} {
			if got := c.IsPlayable(mana); got != want {
				t.Errorf("%s.IsPlayable(%d) = %v, want %v", c.Type(), mana, got, want)
			}
		}
	}
}

// TestPlayInsufficientMana: an unaffordable play is a normal result, not an error,
// and leaves the context untouched.
func TestPlayInsufficientMana(t *testing.T) {
	cards := []Card{
		creature(t, "Fire Dragon", 5, 7, 5),
		spell(t, "Meteor", 8, "damage"),
		artifact(t, "Crown Of Kings", 7, 8, "cost reduction"),
		elite(t, "Arcane Warrior", 6),
	}
	for _, c := range cards {
		gc := NewGameContext(3)
		res := c.Play(gc)
		if res.Played {
			t.Errorf("%s: expected play to fail with 3 mana", c.Name())
		}
		if res.ManaUsed != 0 || res.CardPlayed != "" || res.Context != nil {
			t.Errorf("%s: expected empty result, got %+v", c.Name(), res)
		}
		if gc.AvailableMana != 3 || gc.SpellsCast != 0 || len(gc.Battlefield) != 0 || len(gc.Permanents) != 0 {
			t.Errorf("%s: context mutated on failed play: %+v", c.Name(), gc)
		}
	}
}

func TestPlayNilContext(t *testing.T) {
	if res := creature(t, "Sprite", 0, 1, 1).Play(nil); res.Played {
		t.Error("expected play against nil context to fail")
	}
}

func TestCreaturePlay(t *testing.T) {
	dragon := creature(t, "Fire Dragon", 5, 7, 5)
	gc := NewGameContext(6)
	res := dragon.Play(gc)
	if !res.Played || res.CardPlayed != "Fire Dragon" || res.ManaUsed != 5 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Effect != "Creature summoned to battlefield" {
		t.Errorf("Effect = %q", res.Effect)
	}
	if gc.AvailableMana != 1 {
		t.Errorf("AvailableMana = %d, want 1", gc.AvailableMana)
	}
	if len(gc.Battlefield) != 1 || gc.Battlefield[0] != "Fire Dragon" {
		t.Errorf("Battlefield = %v", gc.Battlefield)
	}
}

func TestSpellPlay(t *testing.T) {
	bolt := spell(t, "Lightning Bolt", 3, "damage")
	gc := NewGameContext(10)
	res := bolt.Play(gc)
	if !res.Played || res.ManaUsed != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Effect != "Deal 3 damage to target" {
		t.Errorf("Effect = %q", res.Effect)
	}
	if gc.SpellsCast != 1 || gc.AvailableMana != 7 {
		t.Errorf("context = %+v, want 1 spell cast and 7 mana", gc)
	}
	if res.Context == nil || res.Context.SpellsCast != 1 || res.Context.AvailableMana != 7 {
		t.Errorf("snapshot = %+v", res.Context)
	}

	// The snapshot is independent of later mutation.
	bolt.Play(gc)
	if res.Context.SpellsCast != 1 {
		t.Errorf("snapshot changed after second play: %+v", res.Context)
	}
}

func TestArtifactPlay(t *testing.T) {
	crystal := artifact(t, "Mana Crystal", 2, 5, "+1 mana per turn")
	gc := NewGameContext(2)
	res := crystal.Play(gc)
	if !res.Played || res.Effect != "Permanent: +1 mana per turn" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if gc.AvailableMana != 0 {
		t.Errorf("AvailableMana = %d, want 0", gc.AvailableMana)
	}
	if len(res.Context.Permanents) != 1 || res.Context.Permanents[0] != "Mana Crystal" {
		t.Errorf("Permanents = %v", res.Context.Permanents)
	}

	act := crystal.ActivateAbility()
	if !act.Activated || act.Durability != 5 || act.Effect != "+1 mana per turn" {
		t.Errorf("ActivateAbility = %+v", act)
	}
}

func TestElitePlay(t *testing.T) {
	e := elite(t, "Arcane Warrior", 5)
	gc := NewGameContext(5)
	res := e.Play(gc)
	if !res.Played || !res.CombatReady || !res.MagicReady {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Context == nil || res.Context.AvailableMana != 0 {
		t.Errorf("snapshot = %+v", res.Context)
	}
}

// TestCardInfoSparseFields: attack/health appear only for variants that define them.
func TestCardInfoSparseFields(t *testing.T) {
	tests := []struct {
		card       Card
		wantType   CardType
		wantAttack bool
		wantHealth bool
	}{
		{creature(t, "Fire Dragon", 5, 7, 5), CardTypeCreature, true, true},
		{spell(t, "Fireball", 4, "damage"), CardTypeSpell, false, false},
		{artifact(t, "Wizard Staff", 3, 5, "+2 spell power"), CardTypeArtifact, false, false},
		{elite(t, "Arcane Warrior", 5), CardTypeElite, true, false},
	}
	for _, tt := range tests {
		info := tt.card.Info()
		if info.Name != tt.card.Name() || info.Cost != tt.card.Cost() || info.Type != tt.wantType {
			t.Errorf("%s: info = %+v", tt.card.Name(), info)
		}
		if (info.Attack != nil) != tt.wantAttack {
			t.Errorf("%s: attack present = %v, want %v", tt.card.Name(), info.Attack != nil, tt.wantAttack)
		}
		if (info.Health != nil) != tt.wantHealth {
			t.Errorf("%s: health present = %v, want %v", tt.card.Name(), info.Health != nil, tt.wantHealth)
		}
	}

	info := creature(t, "Fire Dragon", 5, 7, 5).Info()
	if *info.Attack != 7 || *info.Health != 5 {
		t.Errorf("creature attack/health = %d/%d, want 7/5", *info.Attack, *info.Health)
	}
}

// TestCreatureAttack: damage is reported but not applied to the target.
func TestCreatureAttack(t *testing.T) {
	dragon := creature(t, "Fire Dragon", 5, 7, 5)
	goblin := creature(t, "Goblin Warrior", 2, 2, 3)

	res := dragon.Attack(goblin)
	if res.Attacker != "Fire Dragon" || res.Target != "Goblin Warrior" || res.Damage != 7 || !res.Resolved {
		t.Errorf("Attack = %+v", res)
	}
	if goblin.Health() != 3 {
		t.Errorf("target health changed to %d", goblin.Health())
	}
}

func TestSpellResolveEffect(t *testing.T) {
	targets := []string{"Goblin", "Sprite"}
	res := spell(t, "Ice Shard", 2, "damage").ResolveEffect(targets)
	targets[0] = "changed"
	if !res.Resolved || res.EffectType != "damage" || res.Targets[0] != "Goblin" {
		t.Errorf("ResolveEffect = %+v", res)
	}
}

func TestParseRarity(t *testing.T) {
	tests := map[string]Rarity{
		"Common":    RarityCommon,
		"uncommon":  RarityUncommon,
		"RARE":      RarityRare,
		"legendary": RarityLegendary,
		"mythic":    RarityUnknown,
		"":          RarityUnknown,
	}
	for label, want := range tests {
		if got := ParseRarity(label); got != want {
			t.Errorf("ParseRarity(%q) = %v, want %v", label, got, want)
		}
	}
}
