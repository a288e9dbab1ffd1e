package testutils

import (
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Damsel"

// CreateTestPredatorType returns a small predator type with one shared
// three point pool
func CreateTestPredatorType() *vtm.PredatorType {
	return &vtm.PredatorType{
		Name:     "Alleycat",
		Category: vtm.CategoryViolent,
		SpecialtyOptions: []vtm.Specialty{
			{Skill: vtm.SkillIntimidation, Name: "Stickups"},
			{Skill: vtm.SkillBrawl, Name: "Grappling"},
		},
		SubChoiceOptions: []vtm.SubChoiceOption{
			{Name: vtm.DisciplineCelerity},
			{Name: vtm.DisciplinePotence},
		},
		OptionGroups: []vtm.OptionGroup{
			{
				Name:        "Criminal Contacts",
				TotalPoints: 3,
				Options: []vtm.Option{
					{Name: "Contacts", MaxLevel: 2},
					{Name: "Allies", MaxLevel: 2},
				},
			},
		},
		HumanityChange: -1,
	}
}

// CreateTestCharacter returns a character with no predator type yet
func CreateTestCharacter(playerID string) *vtm.Character {
	return &vtm.Character{
		ID:          "char-test-001",
		PlayerID:    playerID,
		Name:        TestCharacterName,
		Clan:        vtm.ClanBrujah,
		Disciplines: []vtm.Power{},
		Rituals:     []vtm.Ritual{},
		CreatedAt:   1700000000,
		UpdatedAt:   1700000000,
	}
}

// CreateTestCharacterWithCelerity returns a character that took Alleycat with
// a bonus dot of Celerity and has already learned a Celerity power
func CreateTestCharacterWithCelerity(playerID string) *vtm.Character {
	char := CreateTestCharacter(playerID)
	char.PredatorType = vtm.PredatorTypeRecord{
		Name:      "Alleycat",
		SubChoice: vtm.DisciplineCelerity,
		Specialty: vtm.Specialty{Skill: vtm.SkillBrawl, Name: "Grappling"},
		Selections: []vtm.Selection{
			{Name: "Contacts", Level: 2, Kind: vtm.KindMerit},
		},
	}
	char.Disciplines = []vtm.Power{
		{Name: "Swift Steps", Discipline: vtm.DisciplineCelerity, Level: 1},
	}
	return char
}
