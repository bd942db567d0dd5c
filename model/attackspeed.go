package model

import "fmt"

// AttackType is one of the combat styles a weapon can attack with.
type AttackType string

const (
	AttackCrush  AttackType = "crush"
	AttackMagic  AttackType = "magic"
	AttackRanged AttackType = "ranged"
	AttackSlash  AttackType = "slash"
	AttackStab   AttackType = "stab"
)

// Target distinguishes who a weapon is swung at, for the rare weapons whose
// speed depends on it.
type Target string

const (
	TargetPlayer  Target = "player"
	TargetMonster Target = "monster"
)

// AttackSpeedKind discriminates the AttackSpeed union.
type AttackSpeedKind string

const (
	// AttackSpeedFixed is a constant speed in game ticks.
	AttackSpeedFixed AttackSpeedKind = "fixed"
	// AttackSpeedTypeDependent varies by attack type (salamanders).
	AttackSpeedTypeDependent AttackSpeedKind = "type_dependent"
	// AttackSpeedTargetDependent varies by player versus monster targets.
	AttackSpeedTargetDependent AttackSpeedKind = "target_dependent"
)

// AttackSpeed is a tagged union describing how fast a weapon attacks, in game
// ticks. Exactly the fields of the active Kind are meaningful:
//
//   - AttackSpeedFixed: Speed
//   - AttackSpeedTypeDependent: ByType
//   - AttackSpeedTargetDependent: Player and Monster
//
// Variants nest: a type-dependent speed maps each attack type to another
// AttackSpeed, which in the game's data is always eventually fixed.
type AttackSpeed struct {
	Kind    AttackSpeedKind             `json:"kind"`
	Speed   int                         `json:"speed,omitempty"`
	ByType  map[AttackType]*AttackSpeed `json:"by_type,omitempty"`
	Player  *AttackSpeed                `json:"player,omitempty"`
	Monster *AttackSpeed                `json:"monster,omitempty"`
}

// FixedSpeed returns a constant attack speed of the given tick count.
func FixedSpeed(ticks int) *AttackSpeed {
	return &AttackSpeed{Kind: AttackSpeedFixed, Speed: ticks}
}

// TypeDependentSpeed returns an attack speed that varies by attack type.
func TypeDependentSpeed(byType map[AttackType]*AttackSpeed) *AttackSpeed {
	return &AttackSpeed{Kind: AttackSpeedTypeDependent, ByType: byType}
}

// TargetDependentSpeed returns an attack speed that varies by target.
func TargetDependentSpeed(player, monster *AttackSpeed) *AttackSpeed {
	return &AttackSpeed{Kind: AttackSpeedTargetDependent, Player: player, Monster: monster}
}

// Resolve walks the union for the given attack type and target until it
// reaches a fixed speed. The second return is false when the union has no
// entry for the requested style.
func (s *AttackSpeed) Resolve(typ AttackType, target Target) (int, bool) {
	for s != nil {
		switch s.Kind {
		case AttackSpeedFixed:
			return s.Speed, true
		case AttackSpeedTypeDependent:
			s = s.ByType[typ]
		case AttackSpeedTargetDependent:
			if target == TargetMonster {
				s = s.Monster
			} else {
				s = s.Player
			}
		default:
			return 0, false
		}
	}
	return 0, false
}

// Validate checks the active variant's fields, recursively.
func (s *AttackSpeed) Validate() error {
	if s == nil {
		return nil
	}
	switch s.Kind {
	case AttackSpeedFixed:
		if s.Speed <= 0 {
			return fmt.Errorf("model: fixed attack speed must be positive, got %d", s.Speed)
		}
		return nil
	case AttackSpeedTypeDependent:
		if len(s.ByType) == 0 {
			return fmt.Errorf("model: type-dependent attack speed has no entries")
		}
		for typ, nested := range s.ByType {
			if err := nested.Validate(); err != nil {
				return fmt.Errorf("attack type %q: %w", typ, err)
			}
		}
		return nil
	case AttackSpeedTargetDependent:
		if s.Player == nil || s.Monster == nil {
			return fmt.Errorf("model: target-dependent attack speed needs both player and monster speeds")
		}
		if err := s.Player.Validate(); err != nil {
			return err
		}
		return s.Monster.Validate()
	default:
		return fmt.Errorf("model: unknown attack speed kind %q", s.Kind)
	}
}
