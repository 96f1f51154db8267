package variant

import "github.com/daystram/sandgoby/position"

// Offset is a displacement in a team's frame: Forward steps along its forward direction and
// Sideways steps along its sideways one.
type Offset struct {
	Forward, Sideways int8
}

// Orientation is the frame a team moves in.
type Orientation struct {
	Forwards, Sideways position.Direction
}

var (
	// TwoTeams orients team 0 up the board and team 1 down it.
	TwoTeams = []Orientation{
		{Forwards: position.North, Sideways: position.East},
		{Forwards: position.South, Sideways: position.East},
	}

	// FourTeams seats one team on every edge: bottom, left, top, then right.
	FourTeams = []Orientation{
		{Forwards: position.North, Sideways: position.East},
		{Forwards: position.East, Sideways: position.South},
		{Forwards: position.South, Sideways: position.East},
		{Forwards: position.West, Sideways: position.South},
	}
)

// Role is a data-driven piece kind. Leaps jump straight to their target, Rides repeat their offset until
// blocked, Pushes only move to empty squares and Strikes only capture.
type Role struct {
	Name   string
	Symbol byte

	Leaps   []Offset
	Rides   []Offset
	Pushes  []Offset
	Strikes []Offset

	Royal bool
	// PromotesTo replaces the piece once no square lies ahead of it.
	PromotesTo *Role
}

// symmetric expands (f, s) into every reflection and transposition, deduplicated.
func symmetric(f, s int8) []Offset {
	var os []Offset
	seen := make(map[Offset]bool)
	for _, o := range []Offset{{f, s}, {s, f}} {
		for _, fs := range [2]int8{1, -1} {
			for _, ss := range [2]int8{1, -1} {
				v := Offset{Forward: o.Forward * fs, Sideways: o.Sideways * ss}
				if !seen[v] {
					seen[v] = true
					os = append(os, v)
				}
			}
		}
	}
	return os
}

func join(oss ...[]Offset) []Offset {
	var os []Offset
	for _, o := range oss {
		os = append(os, o...)
	}
	return os
}

var (
	orthogonal = symmetric(1, 0)
	diagonal   = symmetric(1, 1)
	knight     = symmetric(1, 2)

	King       = &Role{Name: "King", Symbol: 'K', Leaps: join(orthogonal, diagonal), Royal: true}
	Queen      = &Role{Name: "Queen", Symbol: 'Q', Rides: join(orthogonal, diagonal)}
	Rook       = &Role{Name: "Rook", Symbol: 'R', Rides: orthogonal}
	Bishop     = &Role{Name: "Bishop", Symbol: 'B', Rides: diagonal}
	Knight     = &Role{Name: "Knight", Symbol: 'N', Leaps: knight}
	Pawn       = &Role{Name: "Pawn", Symbol: 'P', Pushes: []Offset{{1, 0}}, Strikes: []Offset{{1, -1}, {1, 1}}, PromotesTo: Queen}
	Wazir      = &Role{Name: "Wazir", Symbol: 'W', Leaps: orthogonal}
	Ferz       = &Role{Name: "Ferz", Symbol: 'F', Leaps: diagonal}
	Camel      = &Role{Name: "Camel", Symbol: 'L', Leaps: symmetric(1, 3)}
	Archbishop = &Role{Name: "Archbishop", Symbol: 'A', Rides: diagonal, Leaps: knight}
	Chancellor = &Role{Name: "Chancellor", Symbol: 'C', Rides: orthogonal, Leaps: knight}
)

// Roster maps an upper-case letter to its role.
type Roster map[byte]*Role

var (
	ClassicalRoster = NewRoster(King, Queen, Rook, Bishop, Knight, Pawn)
	FairyRoster     = NewRoster(King, Queen, Rook, Bishop, Knight, Pawn, Wazir, Ferz, Camel, Archbishop, Chancellor)
)

func NewRoster(roles ...*Role) Roster {
	r := make(Roster, len(roles))
	for _, role := range roles {
		r[role.Symbol] = role
	}
	return r
}

// Man is a Role owned by a team.
type Man struct {
	role   *Role
	team   int
	orient Orientation
}

var _ Piece[Man] = Man{}

func NewMan(role *Role, team int, orient Orientation) Man {
	return Man{role: role, team: team, orient: orient}
}

func (m Man) Role() *Role {
	return m.role
}

func (m Man) Team() int {
	return m.team
}

func (m Man) Forwards() position.Direction {
	return m.orient.Forwards
}

func (m Man) Sideways() position.Direction {
	return m.orient.Sideways
}

func (m Man) CanCapture(other Man) bool {
	return other.team != m.team
}

func (m Man) IsKing() bool {
	return m.role.Royal
}

func (m Man) Promote() Man {
	if m.role.PromotesTo == nil {
		return m
	}
	return NewMan(m.role.PromotesTo, m.team, m.orient)
}

func (m Man) ResetsClock() bool {
	return len(m.role.Pushes) != 0
}

// Symbol is the role letter, lower case for every team but the first.
func (m Man) Symbol() byte {
	if m.team == 0 {
		return m.role.Symbol
	}
	return m.role.Symbol | 0x20
}

func (m Man) String() string {
	return string(m.Symbol())
}

func (m Man) at(from position.Square, o Offset, n int8) position.Square {
	return from.Offset(m.orient.Forwards, m.orient.Sideways, n*o.Forward, n*o.Sideways)
}

func (m Man) promotes(shape position.Shape, to position.Square) bool {
	return m.role.PromotesTo != nil && !shape.InBounds(to.Step(m.orient.Forwards, 1))
}

func (m Man) Steps(g Grid[Man], from position.Square) []Step {
	var steps []Step
	shape := g.Shape()
	add := func(to position.Square, capture bool) {
		steps = append(steps, Step{From: from, To: to, IsCapture: capture, IsPromote: m.promotes(shape, to)})
	}
	for _, o := range m.role.Leaps {
		to := m.at(from, o, 1)
		if !shape.InBounds(to) {
			continue
		}
		if other, ok := g.Get(to); !ok {
			add(to, false)
		} else if m.CanCapture(other) {
			add(to, true)
		}
	}
	for _, o := range m.role.Rides {
		for n := int8(1); ; n++ {
			to := m.at(from, o, n)
			if !shape.InBounds(to) {
				break
			}
			other, ok := g.Get(to)
			if !ok {
				add(to, false)
				continue
			}
			if m.CanCapture(other) {
				add(to, true)
			}
			break
		}
	}
	for _, o := range m.role.Pushes {
		to := m.at(from, o, 1)
		if _, ok := g.Get(to); shape.InBounds(to) && !ok {
			add(to, false)
		}
	}
	for _, o := range m.role.Strikes {
		to := m.at(from, o, 1)
		if other, ok := g.Get(to); ok && m.CanCapture(other) {
			add(to, true)
		}
	}
	return steps
}

func (m Man) Attacks(g Grid[Man], from position.Square) []position.Square {
	var sqs []position.Square
	shape := g.Shape()
	for _, o := range m.role.Leaps {
		if to := m.at(from, o, 1); shape.InBounds(to) {
			sqs = append(sqs, to)
		}
	}
	for _, o := range m.role.Rides {
		for n := int8(1); ; n++ {
			to := m.at(from, o, n)
			if !shape.InBounds(to) {
				break
			}
			sqs = append(sqs, to)
			if _, ok := g.Get(to); ok {
				break
			}
		}
	}
	for _, o := range m.role.Strikes {
		if to := m.at(from, o, 1); shape.InBounds(to) {
			sqs = append(sqs, to)
		}
	}
	return sqs
}
