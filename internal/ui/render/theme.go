package render

import "strings"

// ANSI color codes for terminal output.
const (
	Reset   = "\x1b[0m"
	Red     = "\x1b[0;31m"
	Green   = "\x1b[0;32m"
	Yellow  = "\x1b[0;33m"
	Blue    = "\x1b[0;34m"
	Magenta = "\x1b[0;35m"
	Cyan    = "\x1b[0;36m"
	Bold    = "\x1b[1m"
	Dim     = "\x1b[2m"
)

var roleCodes = map[Role]string{
	RoleDim:     Dim,
	RoleAccent:  Magenta,
	RoleMarker:  Cyan,
	RoleHelix:   Red,
	RoleStrand:  Yellow,
	RoleCoil:    Dim,
	RoleWarning: Yellow,
}

// ANSI renders a line with 8-color escape codes.
func ANSI(l Line) string {
	var b strings.Builder
	for _, s := range l {
		code, ok := roleCodes[s.Role]
		if !ok {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(code)
		b.WriteString(s.Text)
		b.WriteString(Reset)
	}
	return b.String()
}
