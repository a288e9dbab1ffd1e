package vtm

// Selection is one confirmed allocation, flattened out of its option group
type Selection struct {
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
	Level   int    `json:"level"`
	Kind    string `json:"kind"`
}

// PredatorTypeRecord is the confirmed predator type step of a character.
// It is only ever replaced as a whole.
type PredatorTypeRecord struct {
	Name       string      `json:"name"`
	SubChoice  string      `json:"sub_choice"`
	Specialty  Specialty   `json:"specialty"`
	Selections []Selection `json:"selections"`
}

// IsZero reports whether no predator type has been confirmed
func (r PredatorTypeRecord) IsZero() bool {
	return r.Name == ""
}

// Power is a discipline power acquired in a later build step
type Power struct {
	Name       string `json:"name"`
	Discipline string `json:"discipline"`
	Level      int    `json:"level"`
	Summary    string `json:"summary,omitempty"`
}

// Ritual is a blood sorcery ritual tied to acquired powers
type Ritual struct {
	Name    string `json:"name"`
	Level   int    `json:"level"`
	Summary string `json:"summary,omitempty"`
}

// Character is the aggregate the builder produces
type Character struct {
	ID           string             `json:"id"`
	PlayerID     string             `json:"player_id"`
	Name         string             `json:"name"`
	Clan         string             `json:"clan"`
	PredatorType PredatorTypeRecord `json:"predator_type"`

	// Derived from PredatorType.SubChoice; cleared when it changes
	Disciplines []Power  `json:"disciplines"`
	Rituals     []Ritual `json:"rituals"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Clone returns a deep copy so callers can build a replacement without
// touching the original
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.PredatorType.Selections = append([]Selection(nil), c.PredatorType.Selections...)
	out.Disciplines = append([]Power(nil), c.Disciplines...)
	out.Rituals = append([]Ritual(nil), c.Rituals...)
	return &out
}
