package allocation

// SessionView is the read model handed back after every change
type SessionView struct {
	Choice string      `json:"choice"`
	Groups []GroupView `json:"groups"`
}

// GroupView describes one group's budget
type GroupView struct {
	Name        string       `json:"name"`
	TotalPoints int          `json:"total_points"`
	Remaining   int          `json:"remaining"`
	Options     []OptionView `json:"options"`
}

// OptionView describes one option. Ceiling is the highest level SetPoints
// would currently accept, for capping an input's range.
type OptionView struct {
	Name     string `json:"name"`
	Summary  string `json:"summary,omitempty"`
	Kind     string `json:"kind"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"max_level"`
	Ceiling  int    `json:"ceiling"`
}

// View builds the current read model
func (s *Session) View() SessionView {
	view := SessionView{Groups: []GroupView{}}
	if s.choice == nil {
		return view
	}
	view.Choice = s.choice.Name

	for i := range s.choice.OptionGroups {
		g := &s.choice.OptionGroups[i]
		remaining := g.TotalPoints - s.spent(g)
		gv := GroupView{
			Name:        g.Name,
			TotalPoints: g.TotalPoints,
			Remaining:   remaining,
			Options:     make([]OptionView, 0, len(g.Options)),
		}
		for _, o := range g.Options {
			level := s.levels[slot{group: g.Name, option: o.Name}]
			gv.Options = append(gv.Options, OptionView{
				Name:     o.Name,
				Summary:  o.Summary,
				Kind:     o.SelectionKind(),
				Level:    level,
				MaxLevel: o.MaxLevel,
				Ceiling:  min(o.MaxLevel, level+remaining),
			})
		}
		view.Groups = append(view.Groups, gv)
	}
	return view
}
