// Package vtm holds the Vampire: The Masquerade entities used by the builder.
//
// Reference data (PredatorType, OptionGroup, Option) is immutable once the
// catalog is loaded. Character is the aggregate that owns the confirmed
// PredatorTypeRecord.
package vtm

import "strings"

// SpecialtyKeySeparator joins a specialty's skill and name into its key
const SpecialtyKeySeparator = "_"

// Option is one selectable merit or flaw within an OptionGroup
type Option struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	MaxLevel int    `json:"max_level" yaml:"max_level" validate:"gte=0,lte=5"`
	Summary  string `json:"summary,omitempty" yaml:"summary"`
	Kind     string `json:"kind,omitempty" yaml:"kind" validate:"omitempty,oneof=merit flaw"`
}

// SelectionKind returns the option's kind, defaulting to merit
func (o Option) SelectionKind() string {
	if o.Kind == "" {
		return KindMerit
	}
	return o.Kind
}

// OptionGroup is a named budget of points shared across its options
type OptionGroup struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	TotalPoints int      `json:"total_points" yaml:"total_points" validate:"gte=0"`
	Options     []Option `json:"options" yaml:"options" validate:"required,min=1,dive"`
}

// Option finds an option by name
func (g *OptionGroup) Option(name string) (*Option, bool) {
	for i := range g.Options {
		if g.Options[i].Name == name {
			return &g.Options[i], true
		}
	}
	return nil, false
}

// Specialty is a skill specialty a predator type may grant
type Specialty struct {
	Skill string `json:"skill" yaml:"skill" validate:"required,skill"`
	Name  string `json:"name" yaml:"name" validate:"required"`
}

// Key returns the "<skill>_<name>" form used to pick a specialty
func (s Specialty) Key() string {
	return s.Skill + SpecialtyKeySeparator + s.Name
}

// ParseSpecialtyKey splits a "<skill>_<name>" key. A key without a separator
// is treated as a bare specialty name.
func ParseSpecialtyKey(key string) (skill, name string) {
	key = strings.TrimSpace(key)
	if idx := strings.Index(key, SpecialtyKeySeparator); idx >= 0 {
		return key[:idx], key[idx+len(SpecialtyKeySeparator):]
	}
	return "", key
}

// SubChoiceOption is one discipline a predator type offers a bonus dot in
type SubChoiceOption struct {
	Name string `json:"name" yaml:"name" validate:"required,discipline"`
}

// FixedGrant is a merit or flaw every character of a predator type receives
type FixedGrant struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Summary string `json:"summary,omitempty" yaml:"summary"`
	Level   int    `json:"level" yaml:"level" validate:"gte=1,lte=5"`
	Kind    string `json:"kind" yaml:"kind" validate:"required,oneof=merit flaw"`
}

// PredatorType is the top-level choice of how a vampire feeds
type PredatorType struct {
	Name               string            `json:"name" yaml:"name" validate:"required"`
	Summary            string            `json:"summary" yaml:"summary"`
	Category           string            `json:"category" yaml:"category" validate:"required,oneof=violent sociable stealth excluding_mortals"`
	SpecialtyOptions   []Specialty       `json:"specialty_options" yaml:"specialty_options" validate:"required,min=1,dive"`
	SubChoiceOptions   []SubChoiceOption `json:"sub_choice_options" yaml:"sub_choice_options" validate:"required,min=1,dive"`
	FixedGrants        []FixedGrant      `json:"fixed_grants,omitempty" yaml:"fixed_grants" validate:"dive"`
	OptionGroups       []OptionGroup     `json:"option_groups,omitempty" yaml:"option_groups" validate:"dive"`
	BloodPotencyChange int               `json:"blood_potency_change" yaml:"blood_potency_change"`
	HumanityChange     int               `json:"humanity_change" yaml:"humanity_change"`
	ExcludedClans      []string          `json:"excluded_clans,omitempty" yaml:"excluded_clans" validate:"dive,clan"`
}

// Group finds an option group by name
func (p *PredatorType) Group(name string) (*OptionGroup, bool) {
	for i := range p.OptionGroups {
		if p.OptionGroups[i].Name == name {
			return &p.OptionGroups[i], true
		}
	}
	return nil, false
}

// AvailableTo reports whether a character of the given clan may take this
// predator type
func (p *PredatorType) AvailableTo(clan string) bool {
	return !contains(p.ExcludedClans, clan)
}

// SpecialtyKeys lists the keys of every offered specialty
func (p *PredatorType) SpecialtyKeys() []string {
	keys := make([]string, 0, len(p.SpecialtyOptions))
	for _, s := range p.SpecialtyOptions {
		keys = append(keys, s.Key())
	}
	return keys
}

// SubChoiceNames lists the names of every offered sub-choice
func (p *PredatorType) SubChoiceNames() []string {
	names := make([]string, 0, len(p.SubChoiceOptions))
	for _, o := range p.SubChoiceOptions {
		names = append(names, o.Name)
	}
	return names
}
