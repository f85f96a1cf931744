package game

import "testing"

func TestEliteManaPool(t *testing.T) {
	e := elite(t, "Arcane Warrior", 5)
	if e.CurrentMana() != e.MaxMana() || e.MaxMana() != 10 {
		t.Fatalf("starting mana = %d/%d, want 10/10", e.CurrentMana(), e.MaxMana())
	}

	cast := e.CastSpell("Fireball", []string{"Enemy1", "Enemy2"})
	if cast.ManaUsed != SpellManaCost || cast.Error != "" || len(cast.Targets) != 2 {
		t.Errorf("CastSpell = %+v", cast)
	}
	if e.CurrentMana() != 6 {
		t.Errorf("CurrentMana after cast = %d, want 6", e.CurrentMana())
	}

	ch := e.ChannelMana(3)
	if ch.Channeled != 3 || ch.TotalMana != 9 || e.CurrentMana() != 9 {
		t.Errorf("ChannelMana(3) = %+v, current %d", ch, e.CurrentMana())
	}

	// Channeling past the cap clamps to MaxMana.
	ch = e.ChannelMana(5)
	if ch.TotalMana != 10 || e.CurrentMana() != 10 {
		t.Errorf("ChannelMana(5) = %+v, want total 10", ch)
	}
}

// TestEliteCastInsufficientMana: a failed cast is reported in the result, never panics,
// and leaves the pool untouched.
func TestEliteCastInsufficientMana(t *testing.T) {
	e, err := NewEliteCardWithStats("Apprentice", 2, RarityCommon, EliteStats{AttackPower: 1, Defense: 1, MaxMana: 7})
	if err != nil {
		t.Fatal(err)
	}
	if first := e.CastSpell("Spark", []string{"Enemy"}); first.ManaUsed != SpellManaCost {
		t.Fatalf("first cast = %+v", first)
	}

	second := e.CastSpell("Spark", []string{"Enemy"})
	if second.ManaUsed != 0 || second.Error == "" || len(second.Targets) != 0 {
		t.Errorf("second cast = %+v, want failure", second)
	}
	if e.CurrentMana() != 3 {
		t.Errorf("CurrentMana = %d, want 3", e.CurrentMana())
	}
}

func TestEliteChannelNegative(t *testing.T) {
	e := elite(t, "Arcane Warrior", 5)
	e.ChannelMana(-25)
	if e.CurrentMana() != 0 {
		t.Errorf("CurrentMana = %d, want 0", e.CurrentMana())
	}
}

func TestEliteDefend(t *testing.T) {
	e := elite(t, "Arcane Warrior", 5) // defense 3
	tests := []struct {
		incoming, taken, blocked int
	}{
		{5, 2, 3},
		{3, 0, 3},
		{1, 0, 1},
		{0, 0, 0},
		{-4, 0, 0},
	}
	for _, tt := range tests {
		res := e.Defend(tt.incoming)
		if res.DamageTaken != tt.taken || res.DamageBlocked != tt.blocked || !res.StillAlive {
			t.Errorf("Defend(%d) = %+v, want taken %d blocked %d", tt.incoming, res, tt.taken, tt.blocked)
		}
	}
}

func TestEliteCombat(t *testing.T) {
	e := elite(t, "Arcane Warrior", 5)
	var c Combatant = e
	res := c.Attack("Enemy")
	if res.Damage != 5 || res.Target != "Enemy" || res.CombatType != "melee" {
		t.Errorf("Attack = %+v", res)
	}
	stats := c.CombatStats()
	if stats.AttackPower != 5 || stats.Defense != 3 {
		t.Errorf("CombatStats = %+v", stats)
	}

	var s Spellcaster = e
	if m := s.MagicStats(); m.SpellPower != 5 || m.MaxMana != 10 {
		t.Errorf("MagicStats = %+v", m)
	}
}
