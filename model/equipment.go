package model

import "fmt"

// AttackTypeBonuses holds the per-style bonus line of an item's stats panel.
// Bonuses may be negative (most armour is a magic penalty, for example).
type AttackTypeBonuses struct {
	Stab   int `json:"stab"`
	Slash  int `json:"slash"`
	Crush  int `json:"crush"`
	Magic  int `json:"magic"`
	Ranged int `json:"ranged"`
}

// CombatBonuses holds the full bonus block an item grants while worn.
type CombatBonuses struct {
	Attack         AttackTypeBonuses `json:"attack"`
	Defence        AttackTypeBonuses `json:"defence"`
	PrayerBonus    int               `json:"prayer_bonus"`
	MeleeStrength  int               `json:"melee_strength"`
	RangedStrength int               `json:"ranged_strength"`
	MagicStrength  int               `json:"magic_strength"`
}

// Equipment is one wearable item.
//
// OccupiedSlots is never empty; two-handed weapons are the only items
// occupying more than one slot (weapon and shield). AttackSpeed is set only
// for weapon-slot items. Weight is in kilograms.
type Equipment struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	OccupiedSlots SlotSet       `json:"occupied_slots"`
	CombatBonuses CombatBonuses `json:"combat_bonuses"`
	AttackSpeed   *AttackSpeed  `json:"attack_speed,omitempty"`
	Requirements  []Requirement `json:"requirements,omitempty"`
	Weight        float64       `json:"weight"`
}

// Validate checks the structural invariants of the equipment record.
func (e Equipment) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("model: equipment %q has invalid id %d", e.Name, e.ID)
	}
	if e.Name == "" {
		return fmt.Errorf("model: equipment %d has no name", e.ID)
	}
	if err := e.OccupiedSlots.Validate(); err != nil {
		return fmt.Errorf("equipment %q: %w", e.Name, err)
	}
	if e.AttackSpeed != nil {
		if !e.OccupiedSlots.Contains(SlotWeapon) {
			return fmt.Errorf("model: equipment %q has an attack speed but does not occupy the weapon slot", e.Name)
		}
		if err := e.AttackSpeed.Validate(); err != nil {
			return fmt.Errorf("equipment %q: %w", e.Name, err)
		}
	}
	for _, req := range e.Requirements {
		if err := req.Validate(); err != nil {
			return fmt.Errorf("equipment %q: %w", e.Name, err)
		}
	}
	return nil
}

// TwoHanded reports whether the item occupies both the weapon and shield
// slots.
func (e Equipment) TwoHanded() bool {
	return e.OccupiedSlots.Contains(SlotWeapon) && e.OccupiedSlots.Contains(SlotShield)
}

// MeetsLevel reports whether the given skill levels satisfy every skill
// requirement on the item. Quest and worn-item requirements are not level
// checks and are ignored here.
func (e Equipment) MeetsLevel(levels map[Skill]int) bool {
	for _, req := range e.Requirements {
		if req.Kind != RequirementSkill {
			continue
		}
		if levels[req.Skill] < req.Level {
			return false
		}
	}
	return true
}
