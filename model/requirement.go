package model

import "fmt"

// Skill is one of the trainable character skills.
type Skill string

const (
	SkillAgility      Skill = "agility"
	SkillAttack       Skill = "attack"
	SkillConstruction Skill = "construction"
	SkillCooking      Skill = "cooking"
	SkillCrafting     Skill = "crafting"
	SkillDefence      Skill = "defence"
	SkillFarming      Skill = "farming"
	SkillFiremaking   Skill = "firemaking"
	SkillFishing      Skill = "fishing"
	SkillFletching    Skill = "fletching"
	SkillHerblore     Skill = "herblore"
	SkillHitpoints    Skill = "hitpoints"
	SkillHunter       Skill = "hunter"
	SkillMagic        Skill = "magic"
	SkillMining       Skill = "mining"
	SkillPrayer       Skill = "prayer"
	SkillRanged       Skill = "ranged"
	SkillRunecrafting Skill = "runecrafting"
	SkillSlayer       Skill = "slayer"
	SkillSmithing     Skill = "smithing"
	SkillStrength     Skill = "strength"
	SkillThieving     Skill = "thieving"
	SkillWoodcutting  Skill = "woodcutting"
)

// RequirementKind discriminates the Requirement union.
type RequirementKind string

const (
	// RequirementSkill gates equipment behind a minimum skill level.
	RequirementSkill RequirementKind = "skill"
	// RequirementQuest gates equipment behind quest completion.
	RequirementQuest RequirementKind = "quest"
	// RequirementWornItem gates equipment behind wearing another item.
	RequirementWornItem RequirementKind = "worn_item"
)

// Requirement is a tagged union describing one condition a character must
// meet before equipping an item. Exactly the fields of the active Kind are
// meaningful:
//
//   - RequirementSkill: Skill and Level
//   - RequirementQuest: QuestName
//   - RequirementWornItem: ItemID
type Requirement struct {
	Kind      RequirementKind `json:"kind"`
	Skill     Skill           `json:"skill,omitempty"`
	Level     int             `json:"level,omitempty"`
	QuestName string          `json:"quest_name,omitempty"`
	ItemID    int             `json:"item_id,omitempty"`
}

// SkillReq returns a minimum skill level requirement.
func SkillReq(skill Skill, level int) Requirement {
	return Requirement{Kind: RequirementSkill, Skill: skill, Level: level}
}

// QuestReq returns a quest completion requirement.
func QuestReq(questName string) Requirement {
	return Requirement{Kind: RequirementQuest, QuestName: questName}
}

// WornItemReq returns a requirement to be wearing another item.
func WornItemReq(itemID int) Requirement {
	return Requirement{Kind: RequirementWornItem, ItemID: itemID}
}

// Validate checks the active variant's fields.
func (r Requirement) Validate() error {
	switch r.Kind {
	case RequirementSkill:
		if r.Skill == "" {
			return fmt.Errorf("model: skill requirement names no skill")
		}
		if r.Level < 1 || r.Level > 99 {
			return fmt.Errorf("model: skill requirement level %d outside [1, 99]", r.Level)
		}
		return nil
	case RequirementQuest:
		if r.QuestName == "" {
			return fmt.Errorf("model: quest requirement names no quest")
		}
		return nil
	case RequirementWornItem:
		if r.ItemID <= 0 {
			return fmt.Errorf("model: worn item requirement has invalid item id %d", r.ItemID)
		}
		return nil
	default:
		return fmt.Errorf("model: unknown requirement kind %q", r.Kind)
	}
}
