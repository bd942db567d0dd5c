// Package model defines the Old School Runescape equipment value model.
//
// # Core Types
//
//   - Equipment: one wearable item with its occupied slots, combat bonuses,
//     optional attack speed, and usage requirements
//   - EquipmentSlot / SlotSet: the eleven worn-equipment slots and small
//     value-set helpers over them
//   - CombatBonuses / AttackTypeBonuses: the bonus block shown on an item's
//     stats panel
//
// # Variant Types
//
// AttackSpeed and Requirement are tagged unions: a Kind discriminator plus
// the fields of the active variant. Construct them through the typed
// constructors (FixedSpeed, SkillReq, ...) and branch on Kind structurally
// instead of a visitor hierarchy. Both unions serialize to flat JSON objects
// with a "kind" field, which is the on-disk snapshot format.
//
// All types are plain values: copy them freely, never mutate shared slices
// after handing them off.
package model
