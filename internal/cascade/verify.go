package cascade

import (
	"fmt"

	"github.com/KirkDiggler/vtm-builder/internal/allocation"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
)

// Verify checks that a stored record still fits its predator type: the
// specialty and bonus discipline are offered and the selections respect
// every group's caps and budget.
func Verify(record vtm.PredatorTypeRecord, choice *vtm.PredatorType) error {
	if choice == nil || record.Name != choice.Name {
		return fmt.Errorf("record is for %q, not %q", record.Name, choiceName(choice))
	}
	if _, err := resolveSpecialty(choice, record.Specialty.Key()); err != nil {
		return err
	}
	if _, err := resolveSubChoice(choice, record.SubChoice); err != nil {
		return err
	}

	levels := make(map[string]map[string]int)
	for _, sel := range record.Selections {
		group, ok := groupOf(choice, sel.Name)
		if !ok {
			return &allocation.UnknownOptionError{Option: sel.Name}
		}
		if levels[group] == nil {
			levels[group] = make(map[string]int)
		}
		levels[group][sel.Name] += sel.Level
	}

	return allocation.Validate(choice, levels)
}

// groupOf finds the first group offering option
func groupOf(choice *vtm.PredatorType, option string) (string, bool) {
	for i := range choice.OptionGroups {
		if _, ok := choice.OptionGroups[i].Option(option); ok {
			return choice.OptionGroups[i].Name, true
		}
	}
	return "", false
}
