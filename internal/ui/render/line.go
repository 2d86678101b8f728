package render

import "strings"

// Role says what a piece of text represents; frontends map roles to colors.
type Role int

const (
	RoleNormal Role = iota
	RoleDim
	RoleAccent // inside the highlighted span
	RoleMarker
	RoleHelix
	RoleStrand
	RoleCoil
	RoleWarning
)

// Segment is a run of text sharing one role.
type Segment struct {
	Text string
	Role Role
}

// Line is one rendered row.
type Line []Segment

// Plain returns the text without roles.
func (l Line) Plain() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the number of runes in the line.
func (l Line) Width() int {
	n := 0
	for _, s := range l {
		n += len([]rune(s.Text))
	}
	return n
}

// Text builds a single-segment line.
func Text(s string, role Role) Line {
	return Line{{Text: s, Role: role}}
}

// canvas is a fixed-width row of cells that compresses into a Line.
type canvas struct {
	runes []rune
	roles []Role
}

func newCanvas(width int, fill rune, role Role) *canvas {
	c := &canvas{runes: make([]rune, width), roles: make([]Role, width)}
	for i := range c.runes {
		c.runes[i] = fill
		c.roles[i] = role
	}
	return c
}

func (c *canvas) set(col int, r rune, role Role) {
	if col < 0 || col >= len(c.runes) {
		return
	}
	c.runes[col] = r
	c.roles[col] = role
}

func (c *canvas) write(col int, s string, role Role) {
	for i, r := range []rune(s) {
		c.set(col+i, r, role)
	}
}

func (c *canvas) line() Line {
	var out Line
	for i := 0; i < len(c.runes); {
		j := i
		for j < len(c.runes) && c.roles[j] == c.roles[i] {
			j++
		}
		out = append(out, Segment{Text: string(c.runes[i:j]), Role: c.roles[i]})
		i = j
	}
	return out
}
