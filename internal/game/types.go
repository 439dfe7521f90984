package game

import (
	"errors"
	"fmt"
)

// --- Enums ---

// PokeType is the elemental type of a pokemon and of its attacks.
type PokeType int

const (
	TypeFire PokeType = iota
	TypeWater
	TypeGrass
	TypeBug
	TypeDragon
	TypeElectric
	TypeFighting
	TypeFlying
	TypeGhost
	TypeGround
	TypeIce
	TypeNormal
	TypePoison
	TypePsychic
	TypeRock

	// TypeCount is the size of the type enumeration (and of the type chart).
	TypeCount = 15
)

func (t PokeType) String() string {
	switch t {
	case TypeFire:
		return "FIRE"
	case TypeWater:
		return "WATER"
	case TypeGrass:
		return "GRASS"
	case TypeBug:
		return "BUG"
	case TypeDragon:
		return "DRAGON"
	case TypeElectric:
		return "ELECTRIC"
	case TypeFighting:
		return "FIGHTING"
	case TypeFlying:
		return "FLYING"
	case TypeGhost:
		return "GHOST"
	case TypeGround:
		return "GROUND"
	case TypeIce:
		return "ICE"
	case TypeNormal:
		return "NORMAL"
	case TypePoison:
		return "POISON"
	case TypePsychic:
		return "PSYCHIC"
	case TypeRock:
		return "ROCK"
	default:
		return "Unknown"
	}
}

// BattleMode selects the team container variant and with it the turn order.
type BattleMode int

const (
	// ModeKingOfHill keeps one pokemon fighting until it faints (LIFO).
	ModeKingOfHill BattleMode = iota
	// ModeRotation sends each pokemon to the back after its round (FIFO).
	ModeRotation
	// ModeRanked keeps the team sorted by a chosen attribute.
	ModeRanked
)

func (m BattleMode) String() string {
	switch m {
	case ModeKingOfHill:
		return "King of the Hill"
	case ModeRotation:
		return "Rotation"
	case ModeRanked:
		return "Ranked"
	default:
		return "Unknown"
	}
}

// ParseBattleMode parses a CLI/config mode name.
func ParseBattleMode(s string) (BattleMode, error) {
	switch s {
	case "kingofhill", "koh", "set":
		return ModeKingOfHill, nil
	case "rotation", "rotate":
		return ModeRotation, nil
	case "ranked", "optimise", "optimize":
		return ModeRanked, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Criterion is the attribute a Ranked team is ordered by.
type Criterion int

const (
	CriterionHealth Criterion = iota
	CriterionDefence
	CriterionBattlePower
	CriterionSpeed
	CriterionLevel
)

func (c Criterion) String() string {
	switch c {
	case CriterionHealth:
		return "health"
	case CriterionDefence:
		return "defence"
	case CriterionBattlePower:
		return "battle_power"
	case CriterionSpeed:
		return "speed"
	case CriterionLevel:
		return "level"
	default:
		return "Unknown"
	}
}

// ParseCriterion parses a CLI/config criterion name.
func ParseCriterion(s string) (Criterion, error) {
	switch s {
	case "health", "hp":
		return CriterionHealth, nil
	case "defence", "defense":
		return CriterionDefence, nil
	case "battle_power", "power", "attack":
		return CriterionBattlePower, nil
	case "speed":
		return CriterionSpeed, nil
	case "level":
		return CriterionLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCriterion, s)
	}
}

// value extracts the criterion attribute from a pokemon.
func (c Criterion) value(p *Pokemon) float64 {
	switch c {
	case CriterionHealth:
		return p.Health
	case CriterionDefence:
		return p.Defence
	case CriterionBattlePower:
		return p.BattlePower
	case CriterionSpeed:
		return p.Speed
	case CriterionLevel:
		return float64(p.Level)
	default:
		return 0
	}
}

// SortDirection is the current ordering of a Ranked team.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Ascending {
		return "ascending"
	}
	return "descending"
}

// --- Errors ---

// All of these signal broken preconditions (configuration or programmer
// errors); none are recoverable at runtime.
var (
	ErrInvalidMode      = errors.New("invalid battle mode")
	ErrInvalidCriterion = errors.New("invalid criterion")
	ErrUnknownSpecies   = errors.New("unknown species")
	ErrTeamSize         = errors.New("invalid team size")
	ErrTeamNotAssembled = errors.New("team not assembled")
)
