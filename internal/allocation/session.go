package allocation

import (
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
)

type slot struct {
	group  string
	option string
}

// Session is the ephemeral allocation table for one open choice
type Session struct {
	choice *vtm.PredatorType
	levels map[slot]int
}

// Open returns a session with every option of the choice at zero
func Open(choice *vtm.PredatorType) *Session {
	s := &Session{
		choice: choice,
		levels: make(map[slot]int),
	}
	if choice == nil {
		return s
	}
	for _, g := range choice.OptionGroups {
		for _, o := range g.Options {
			s.levels[slot{group: g.Name, option: o.Name}] = 0
		}
	}
	return s
}

// Choice returns the predator type the session was opened for
func (s *Session) Choice() *vtm.PredatorType {
	return s.choice
}

// Level returns the points currently held by an option, zero if unknown
func (s *Session) Level(group, option string) int {
	return s.levels[slot{group: group, option: option}]
}

// SetPoints assigns level to one option. It refuses, in order: an unknown
// group or option, a negative level, a level above the option's MaxLevel,
// and a level that would take the group past its TotalPoints. A refused
// call leaves the session unchanged.
func (s *Session) SetPoints(group, option string, level int) error {
	g, o, err := s.lookup(group, option)
	if err != nil {
		return err
	}
	if err := check(g, o, level, s.spentByOthers(g, option)); err != nil {
		return err
	}

	s.levels[slot{group: group, option: option}] = level
	return nil
}

// Remaining returns the group's unspent points
func (s *Session) Remaining(group string) int {
	if s.choice == nil {
		return 0
	}
	g, ok := s.choice.Group(group)
	if !ok {
		return 0
	}
	return g.TotalPoints - s.spent(g)
}

// Selections flattens non-zero allocations into selection entries, in
// catalog order
func (s *Session) Selections() []vtm.Selection {
	selections := []vtm.Selection{}
	if s.choice == nil {
		return selections
	}
	for _, g := range s.choice.OptionGroups {
		for _, o := range g.Options {
			level := s.levels[slot{group: g.Name, option: o.Name}]
			if level == 0 {
				continue
			}
			selections = append(selections, vtm.Selection{
				Name:    o.Name,
				Summary: o.Summary,
				Level:   level,
				Kind:    o.SelectionKind(),
			})
		}
	}
	return selections
}

func (s *Session) lookup(group, option string) (*vtm.OptionGroup, *vtm.Option, error) {
	if s.choice == nil {
		return nil, nil, &UnknownOptionError{Group: group}
	}
	g, ok := s.choice.Group(group)
	if !ok {
		return nil, nil, &UnknownOptionError{Group: group}
	}
	o, ok := g.Option(option)
	if !ok {
		return nil, nil, &UnknownOptionError{Group: group, Option: option}
	}
	return g, o, nil
}

func (s *Session) spent(g *vtm.OptionGroup) int {
	total := 0
	for _, o := range g.Options {
		total += s.levels[slot{group: g.Name, option: o.Name}]
	}
	return total
}

func (s *Session) spentByOthers(g *vtm.OptionGroup, option string) int {
	total := 0
	for _, o := range g.Options {
		if o.Name == option {
			continue
		}
		total += s.levels[slot{group: g.Name, option: o.Name}]
	}
	return total
}

func check(g *vtm.OptionGroup, o *vtm.Option, level, spentByOthers int) error {
	if level < 0 {
		return &NegativeLevelError{Group: g.Name, Option: o.Name, Level: level}
	}
	if level > o.MaxLevel {
		return &OverCapError{Group: g.Name, Option: o.Name, Requested: level, MaxLevel: o.MaxLevel}
	}
	if spentByOthers+level > g.TotalPoints {
		return &OverBudgetError{
			Group:         g.Name,
			Option:        o.Name,
			Requested:     level,
			SpentByOthers: spentByOthers,
			TotalPoints:   g.TotalPoints,
		}
	}
	return nil
}
