package game

import "strings"

// --- Enums ---

type CardType int

const (
	CardTypeCreature CardType = iota
	CardTypeSpell
	CardTypeArtifact
	CardTypeElite
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeCreature:
		return "Creature"
	case CardTypeSpell:
		return "Spell"
	case CardTypeArtifact:
		return "Artifact"
	case CardTypeElite:
		return "Elite"
	default:
		return "Unknown"
	}
}

// MarshalText renders the variant tag in JSON output.
func (ct CardType) MarshalText() ([]byte, error) {
	return []byte(ct.String()), nil
}

// Category is a factory card category used for themed deck sampling.
type Category int

const (
	CategoryCreature Category = iota
	CategorySpell
	CategoryArtifact
)

// Categories lists every category a factory can produce, in sampling order.
var Categories = []Category{CategoryCreature, CategorySpell, CategoryArtifact}

func (c Category) String() string {
	switch c {
	case CategoryCreature:
		return "creature"
	case CategorySpell:
		return "spell"
	case CategoryArtifact:
		return "artifact"
	default:
		return "unknown"
	}
}

type Rarity int

const (
	RarityUnknown Rarity = iota // catch-all for unrecognized labels
	RarityCommon
	RarityUncommon
	RarityRare
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// ParseRarity maps a rarity label to its enum value, ignoring case.
// Labels outside the known set map to RarityUnknown.
func ParseRarity(label string) Rarity {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "common":
		return RarityCommon
	case "uncommon":
		return RarityUncommon
	case "rare":
		return RarityRare
	case "legendary":
		return RarityLegendary
	default:
		return RarityUnknown
	}
}

// MarshalText renders the rarity label in JSON and YAML output.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts any label; unknown labels decode to RarityUnknown.
func (r *Rarity) UnmarshalText(text []byte) error {
	*r = ParseRarity(string(text))
	return nil
}
