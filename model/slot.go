package model

import (
	"fmt"
	"sort"
	"strings"
)

// EquipmentSlot is one of the eleven worn-equipment slots. Equipment gives a
// character its bonuses only while occupying its slots; two items can never
// occupy the same slot at the same time.
type EquipmentSlot string

const (
	SlotAmmunition EquipmentSlot = "ammunition"
	SlotBody       EquipmentSlot = "body"
	SlotCape       EquipmentSlot = "cape"
	SlotFeet       EquipmentSlot = "feet"
	SlotHands      EquipmentSlot = "hands"
	SlotHead       EquipmentSlot = "head"
	SlotLegs       EquipmentSlot = "legs"
	SlotNeck       EquipmentSlot = "neck"
	SlotRing       EquipmentSlot = "ring"
	SlotShield     EquipmentSlot = "shield"
	SlotWeapon     EquipmentSlot = "weapon"
)

// AllSlots lists every equipment slot in stable order.
func AllSlots() []EquipmentSlot {
	return []EquipmentSlot{
		SlotAmmunition, SlotBody, SlotCape, SlotFeet, SlotHands, SlotHead,
		SlotLegs, SlotNeck, SlotRing, SlotShield, SlotWeapon,
	}
}

// Valid reports whether s is one of the known slots.
func (s EquipmentSlot) Valid() bool {
	switch s {
	case SlotAmmunition, SlotBody, SlotCape, SlotFeet, SlotHands, SlotHead,
		SlotLegs, SlotNeck, SlotRing, SlotShield, SlotWeapon:
		return true
	default:
		return false
	}
}

// SlotSet is a small value set of equipment slots. Two-handed weapons are the
// only equipment occupying more than one slot (weapon and shield), so sets
// stay tiny; operations are linear scans on purpose.
type SlotSet []EquipmentSlot

// Contains reports whether the set holds slot.
func (s SlotSet) Contains(slot EquipmentSlot) bool {
	for _, have := range s {
		if have == slot {
			return true
		}
	}
	return false
}

// Intersects reports whether the two sets share a slot.
func (s SlotSet) Intersects(other SlotSet) bool {
	for _, slot := range s {
		if other.Contains(slot) {
			return true
		}
	}
	return false
}

// Key returns a canonical string for the set, independent of element order.
// It is used to group equipment by exact slot occupancy.
func (s SlotSet) Key() string {
	sorted := make([]string, len(s))
	for i, slot := range s {
		sorted[i] = string(slot)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}

// Validate checks that the set is non-empty, has no duplicates, and names
// only known slots.
func (s SlotSet) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("model: slot set must not be empty")
	}
	seen := make(map[EquipmentSlot]struct{}, len(s))
	for _, slot := range s {
		if !slot.Valid() {
			return fmt.Errorf("model: unknown equipment slot %q", slot)
		}
		if _, dup := seen[slot]; dup {
			return fmt.Errorf("model: duplicate equipment slot %q", slot)
		}
		seen[slot] = struct{}{}
	}
	return nil
}
