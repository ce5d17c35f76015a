package entity

// MoveID names a move a roster member knows. Overworld abilities such as
// "surf" or "cut" are gated on these.
type MoveID string

// Member is one creature in a roster.
type Member struct {
	Species  string   `json:"species"`
	Nickname string   `json:"nickname,omitempty"`
	Level    int      `json:"level"`
	HP       int      `json:"hp"`
	MaxHP    int      `json:"maxHp"`
	Moves    []MoveID `json:"moves"`
}

// NewMember creates a member at full health.
func NewMember(species string, level, maxHP int, moves ...MoveID) Member {
	return Member{
		Species: species,
		Level:   level,
		HP:      maxHP,
		MaxHP:   maxHP,
		Moves:   moves,
	}
}

// Name returns the nickname, or the species if none was given.
func (m *Member) Name() string {
	if m.Nickname != "" {
		return m.Nickname
	}
	return m.Species
}

// IsAlive returns true if the member has HP remaining.
func (m *Member) IsAlive() bool { return m.HP > 0 }

// Knows reports whether the member has learned the move.
func (m *Member) Knows(move MoveID) bool {
	for _, known := range m.Moves {
		if known == move {
			return true
		}
	}
	return false
}

// Heal restores HP and returns actual amount healed.
func (m *Member) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if m.HP+actual > m.MaxHP {
		actual = m.MaxHP - m.HP
	}
	m.HP += actual
	return actual
}

// TakeDamage reduces HP and returns actual damage taken.
func (m *Member) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > m.HP {
		actual = m.HP
	}
	m.HP -= actual
	return actual
}

// Party is an ordered roster.
type Party []Member

// Knows reports whether any member has learned the move.
func (p Party) Knows(move MoveID) bool {
	for i := range p {
		if p[i].Knows(move) {
			return true
		}
	}
	return false
}

// HealAll fully restores every member.
func (p Party) HealAll() {
	for i := range p {
		p[i].Heal(p[i].MaxHP)
	}
}

// IsDefeated returns true if no member can fight.
func (p Party) IsDefeated() bool {
	for i := range p {
		if p[i].IsAlive() {
			return false
		}
	}
	return true
}

// Lead returns the first member able to fight, or nil.
func (p Party) Lead() *Member {
	for i := range p {
		if p[i].IsAlive() {
			return &p[i]
		}
	}
	return nil
}
