// Package cascade commits a predator type choice into a character and clears
// the state that depended on the previous bonus discipline.
//
// Commit never modifies the character it is given. It returns a new value
// with the predator type record replaced as a whole, or an error and no
// character at all.
package cascade

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/vtm-builder/internal/allocation"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
)

// Result describes what the commit cleared
type Result struct {
	PreviousSubChoice  string
	SubChoiceChanged   bool
	ClearedDisciplines []vtm.Power
	ClearedRituals     []vtm.Ritual
}

// Commit applies the choice to a copy of character. The specialty may be
// given as a "<skill>_<name>" key or as a bare name.
func Commit(
	character *vtm.Character,
	choice *vtm.PredatorType,
	session *allocation.Session,
	specialtyKey string,
	subChoice string,
) (*vtm.Character, *Result, error) {
	if character == nil {
		return nil, nil, ErrNilCharacter
	}
	if session == nil || session.Choice() == nil || choice == nil || session.Choice().Name != choice.Name {
		return nil, nil, &SessionMismatchError{Choice: choiceName(choice), SessionChoice: sessionChoice(session)}
	}

	specialty, err := resolveSpecialty(choice, specialtyKey)
	if err != nil {
		return nil, nil, err
	}
	discipline, err := resolveSubChoice(choice, subChoice)
	if err != nil {
		return nil, nil, err
	}
	if err := allocation.Validate(choice, session.Snapshot().Levels); err != nil {
		return nil, nil, err
	}

	updated := character.Clone()
	updated.PredatorType = vtm.PredatorTypeRecord{
		Name:       choice.Name,
		SubChoice:  discipline,
		Specialty:  specialty,
		Selections: session.Selections(),
	}

	previous := character.PredatorType.SubChoice
	result := &Result{
		PreviousSubChoice: previous,
		SubChoiceChanged:  previous != discipline,
	}
	if result.SubChoiceChanged {
		result.ClearedDisciplines = character.Disciplines
		result.ClearedRituals = character.Rituals
		updated.Disciplines = []vtm.Power{}
		updated.Rituals = []vtm.Ritual{}
	}

	return updated, result, nil
}

// resolveSpecialty matches by name, and by skill too when the key carries one
func resolveSpecialty(choice *vtm.PredatorType, key string) (vtm.Specialty, error) {
	skill, name := vtm.ParseSpecialtyKey(key)
	if name != "" {
		for _, s := range choice.SpecialtyOptions {
			if skill != "" && !strings.EqualFold(s.Skill, skill) {
				continue
			}
			if strings.EqualFold(s.Name, name) {
				return s, nil
			}
		}
	}

	return vtm.Specialty{}, &UnresolvedSpecialtyError{
		Choice:     choice.Name,
		Specialty:  key,
		Suggestion: suggest(key, choice.SpecialtyKeys()),
	}
}

func resolveSubChoice(choice *vtm.PredatorType, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name != "" {
		for _, o := range choice.SubChoiceOptions {
			if strings.EqualFold(o.Name, name) {
				return o.Name, nil
			}
		}
	}

	return "", &UnresolvedSubChoiceError{
		Choice:     choice.Name,
		SubChoice:  name,
		Suggestion: suggest(name, choice.SubChoiceNames()),
	}
}

// suggest returns the closest candidate within a third of the input's length
func suggest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	best := ""
	bestDistance := len(input)/3 + 2
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(input, strings.ToLower(c)); d < bestDistance {
			best = c
			bestDistance = d
		}
	}
	return best
}

func choiceName(choice *vtm.PredatorType) string {
	if choice == nil {
		return ""
	}
	return choice.Name
}

func sessionChoice(session *allocation.Session) string {
	if session == nil {
		return ""
	}
	return choiceName(session.Choice())
}
