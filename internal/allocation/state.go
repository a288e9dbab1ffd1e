package allocation

import (
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
)

// State is the serializable form of a session. Levels maps group name to
// option name to level and only carries non-zero entries.
type State struct {
	Choice string                    `json:"choice"`
	Levels map[string]map[string]int `json:"levels"`
}

// Snapshot captures the session so it can be stored between requests
func (s *Session) Snapshot() State {
	state := State{Levels: make(map[string]map[string]int)}
	if s.choice != nil {
		state.Choice = s.choice.Name
	}
	for k, level := range s.levels {
		if level == 0 {
			continue
		}
		if state.Levels[k.group] == nil {
			state.Levels[k.group] = make(map[string]int)
		}
		state.Levels[k.group][k.option] = level
	}
	return state
}

// Restore rebuilds a session from a snapshot. The snapshot must belong to the
// given choice and still satisfy both invariants.
func Restore(choice *vtm.PredatorType, state State) (*Session, error) {
	if choice == nil || choice.Name != state.Choice {
		return nil, &CorruptStateError{Choice: state.Choice}
	}
	if err := Validate(choice, state.Levels); err != nil {
		return nil, &CorruptStateError{Choice: state.Choice, Cause: err}
	}

	s := Open(choice)
	for group, options := range state.Levels {
		for option, level := range options {
			s.levels[slot{group: group, option: option}] = level
		}
	}
	return s, nil
}

// Validate checks a full level table against the choice's groups
func Validate(choice *vtm.PredatorType, levels map[string]map[string]int) error {
	for group, options := range levels {
		g, ok := choice.Group(group)
		if !ok {
			return &UnknownOptionError{Group: group}
		}
		for option := range options {
			if _, ok := g.Option(option); !ok {
				return &UnknownOptionError{Group: group, Option: option}
			}
		}
	}

	for i := range choice.OptionGroups {
		g := &choice.OptionGroups[i]
		options := levels[g.Name]
		total := 0
		for _, level := range options {
			total += level
		}
		for j := range g.Options {
			o := &g.Options[j]
			level := options[o.Name]
			if err := check(g, o, level, total-level); err != nil {
				return err
			}
		}
	}
	return nil
}
