/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/trackview/internal/ui/render"
)

// -----------------------------------------------------------------------------
// Render Roles
// -----------------------------------------------------------------------------

var roleStyles = map[render.Role]lipgloss.Style{
	render.RoleNormal:  lipgloss.NewStyle().Foreground(ColorText),
	render.RoleDim:     lipgloss.NewStyle().Foreground(ColorDarkGray),
	render.RoleAccent:  lipgloss.NewStyle().Foreground(ColorAccent).Bold(true),
	render.RoleMarker:  lipgloss.NewStyle().Foreground(ColorPrimary),
	render.RoleHelix:   lipgloss.NewStyle().Foreground(ColorDanger),
	render.RoleStrand:  lipgloss.NewStyle().Foreground(ColorYellow),
	render.RoleCoil:    lipgloss.NewStyle().Foreground(ColorMuted),
	render.RoleWarning: lipgloss.NewStyle().Foreground(ColorWarning).Bold(true),
}

// RoleStyle returns the lipgloss style for a render role.
func RoleStyle(r render.Role) lipgloss.Style {
	if s, ok := roleStyles[r]; ok {
		return s
	}
	return ValueStyle
}

// RenderLine styles every segment of l.
func RenderLine(l render.Line) string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(RoleStyle(seg.Role).Render(seg.Text))
	}
	return b.String()
}

// RenderLines styles and joins lines with newlines.
func RenderLines(lines []render.Line) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = RenderLine(l)
	}
	return strings.Join(out, "\n")
}
