/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/trackview/internal/analysis"
	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/model"
	"github.com/ijuttt/trackview/internal/processor"
	"github.com/ijuttt/trackview/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	widthLabel    = 11 // Fixed width for metadata labels
	minPeptideRow = 3
)

var keySelect = key.NewBinding(
	key.WithKeys("enter", " "),
)

// -----------------------------------------------------------------------------
// Inspector Component
// -----------------------------------------------------------------------------

// Inspector shows file metadata, the shared window and highlight, and the
// peptide list. Selecting a peptide highlights it on every track.
type Inspector struct {
	state        *app.State
	selectedFile *processor.FileInfo

	cursor int // peptide list position

	width   int
	height  int
	focused bool
	title   string
}

// NewInspector creates an inspector reading from state.
func NewInspector(state *app.State) Inspector {
	return Inspector{
		state: state,
		title: "🔎 Inspector",
	}
}

// SetSelectedFile updates the selected file metadata.
func (in *Inspector) SetSelectedFile(file *processor.FileInfo) {
	in.selectedFile = file
}

// SetSize updates the component dimensions.
func (in *Inspector) SetSize(width, height int) {
	in.width = width
	in.height = height
}

// SetFocused sets the focus state.
func (in *Inspector) SetFocused(focused bool) {
	in.focused = focused
}

// Cursor returns the peptide list position.
func (in *Inspector) Cursor() int {
	return in.cursor
}

// ResetCursor moves the cursor back to the first peptide.
func (in *Inspector) ResetCursor() {
	in.cursor = 0
}

// FollowHighlight moves the cursor onto the highlighted peptide, if any.
func (in *Inspector) FollowHighlight() {
	if i := in.state.HighlightedPeptide(); i >= 0 {
		in.cursor = i
	}
}

func (in *Inspector) peptideCount() int {
	if ds := in.state.Dataset(); ds != nil {
		return len(ds.Peptides)
	}
	return 0
}

// Update handles input for the inspector.
func (in *Inspector) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := in.peptideCount()
		switch {
		case key.Matches(msg, keyUp):
			if in.cursor > 0 {
				in.cursor--
			}
		case key.Matches(msg, keyDown):
			if in.cursor < n-1 {
				in.cursor++
			}
		case msg.String() == "g":
			in.cursor = 0
		case msg.String() == "G":
			in.cursor = max(0, n-1)
		case key.Matches(msg, keySelect):
			in.Select()
		}
	}
	return nil
}

// Select highlights the peptide under the cursor.
func (in *Inspector) Select() bool {
	p, ok := in.state.Peptide(in.cursor)
	if !ok {
		return false
	}
	in.state.Highlight().Set(p)
	return true
}

// View renders the inspector.
func (in Inspector) View() string {
	var b strings.Builder

	b.WriteString(styles.PanelTitleStyle.Render(in.title))
	b.WriteString("\n")

	if in.selectedFile != nil {
		b.WriteString(in.renderFileInfo())
		b.WriteString("\n")
	}

	ds := in.state.Dataset()
	if ds == nil {
		if in.selectedFile == nil {
			b.WriteString(styles.DimItemStyle.Render("Select a dataset to inspect"))
		}
		return in.applyPanelStyle(b.String())
	}

	b.WriteString(in.renderDataset(ds))
	b.WriteString("\n")
	b.WriteString(in.renderViewport(ds))
	b.WriteString("\n")
	b.WriteString(in.renderHighlight(ds))
	b.WriteString("\n")
	b.WriteString(in.renderPeptides(ds))

	return in.applyPanelStyle(b.String())
}

func label(s string) string {
	return styles.LabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, s))
}

// renderFileInfo renders the selected file metadata.
func (in Inspector) renderFileInfo() string {
	var b strings.Builder
	f := in.selectedFile

	b.WriteString(styles.SectionTitleStyle.Render("File"))
	b.WriteString("\n")

	valWidth := max(in.width-widthLabel-4, 10)
	name := f.Name
	if len(name) > valWidth {
		// Truncate middle: "very...long.json"
		prefixLen := (valWidth - 3) / 2
		suffixLen := valWidth - 3 - prefixLen
		name = name[:prefixLen] + "..." + name[len(name)-suffixLen:]
	}
	b.WriteString(label("Name:"))
	b.WriteString(styles.HighlightValueStyle.Render(name))
	b.WriteString("\n")

	b.WriteString(label("Size:"))
	b.WriteString(styles.ValueStyle.Render(FormatFileSize(f.Size)))
	b.WriteString("\n")

	b.WriteString(label("Modified:"))
	b.WriteString(styles.ValueStyle.Render(FormatDateTime(f.ModTime)))
	b.WriteString("\n")

	if in.state.Path() == f.Path {
		b.WriteString(styles.SuccessStyle.Render("✓ Loaded"))
	} else {
		b.WriteString(styles.DimItemStyle.Render("Press Enter to load"))
	}

	return b.String()
}

// renderDataset renders the dataset summary.
func (in Inspector) renderDataset(ds *model.Dataset) string {
	var b strings.Builder

	b.WriteString(styles.SectionTitleStyle.Render("Dataset"))
	b.WriteString("\n")

	b.WriteString(label("Name:"))
	b.WriteString(styles.HighlightValueStyle.Render(ds.GetName()))
	if ds.Accession != "" {
		b.WriteString(styles.SecondaryStyle.Render(" " + ds.Accession))
	}
	b.WriteString("\n")

	b.WriteString(label("Residues:"))
	b.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%d", ds.Length())))
	b.WriteString("\n")

	b.WriteString(label("Peptides:"))
	b.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%d", len(ds.Peptides))))
	b.WriteString(styles.SecondaryStyle.Render(fmt.Sprintf(" (%.0f%% coverage)", analysis.Coverage(ds)*100)))
	b.WriteString("\n")

	b.WriteString(label("Mods:"))
	b.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%d", len(ds.Modifications))))

	return b.String()
}

// renderViewport renders the live and finalized windows and who wrote them.
func (in Inspector) renderViewport(ds *model.Dataset) string {
	var b strings.Builder
	vp := in.state.Viewport()
	live := vp.Live()

	b.WriteString(styles.SectionTitleStyle.Render("Viewport"))
	b.WriteString("\n")

	b.WriteString(label("Live:"))
	b.WriteString(styles.CoordStyle.Render(live.Window.String()))
	b.WriteString(styles.SecondaryStyle.Render(fmt.Sprintf(" %d aa", live.Window.Len())))
	b.WriteString("\n")

	b.WriteString(label("Updater:"))
	b.WriteString(styles.TokenStyle.Render(live.Updater.String()))
	b.WriteString("\n")

	b.WriteString(label("Finalized:"))
	b.WriteString(styles.CoordStyle.Render(vp.Finalized().String()))

	if warn := windowWarning(live.Window, ds.Length()); warn != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render("⚠ " + warn))
	}

	return b.String()
}

// windowWarning describes a window the services accepted but the tracks
// cannot show as given.
func windowWarning(w coord.Window, length int) string {
	err := coord.Check(w, length)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, coord.ErrReversed):
		return "reversed window, drawn swapped"
	case errors.Is(err, coord.ErrOutOfRange):
		return "window exceeds the sequence"
	}
	return err.Error()
}

// renderHighlight renders the highlighted span.
func (in Inspector) renderHighlight(ds *model.Dataset) string {
	var b strings.Builder
	span := in.state.Highlight().Span()

	b.WriteString(styles.SectionTitleStyle.Render("Highlight"))
	b.WriteString("\n")

	b.WriteString(label("Span:"))
	if span.IsZero() {
		b.WriteString(styles.DimItemStyle.Render("none"))
		return b.String()
	}
	b.WriteString(styles.HighlightValueStyle.Render(span.String()))

	if i := in.state.HighlightedPeptide(); i >= 0 {
		p := ds.Peptides[i]
		b.WriteString("\n")
		b.WriteString(label("Peptide:"))
		b.WriteString(styles.ValueStyle.Render(truncateRunes(p.Sequence, max(in.width-widthLabel-4, 10))))
	}
	return b.String()
}

// renderPeptides renders the peptide list around the cursor.
func (in Inspector) renderPeptides(ds *model.Dataset) string {
	var b strings.Builder

	b.WriteString(styles.SectionTitleStyle.Render(fmt.Sprintf("Peptides %d/%d", in.cursor+1, len(ds.Peptides))))
	b.WriteString("\n")

	if len(ds.Peptides) == 0 {
		b.WriteString(styles.DimItemStyle.Render("No peptides"))
		return b.String()
	}

	// Whatever the sections above left over.
	rows := max(in.height-lineCount(in.headerHeightHint())-2, minPeptideRow)
	start := 0
	if in.cursor >= rows {
		start = in.cursor - rows + 1
	}
	end := min(start+rows, len(ds.Peptides))
	hl := in.state.HighlightedPeptide()

	seqWidth := max(in.width-22, 4)
	for i := start; i < end; i++ {
		p := ds.Peptides[i]
		marker := "  "
		if i == hl {
			marker = "● "
		}
		line := fmt.Sprintf("%s%4d-%-4d %s", marker, p.PeptideStart, p.PeptideEnd, truncateRunes(p.Sequence, seqWidth))

		switch {
		case i == in.cursor && in.focused:
			b.WriteString(styles.SelectedItemStyle.Render(line))
		case i == hl:
			b.WriteString(styles.HighlightValueStyle.Render(line))
		default:
			b.WriteString(styles.NormalItemStyle.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// headerHeightHint renders the sections above the peptide list so the list
// can take the remaining height.
func (in Inspector) headerHeightHint() string {
	ds := in.state.Dataset()
	parts := []string{styles.PanelTitleStyle.Render(in.title)}
	if in.selectedFile != nil {
		parts = append(parts, in.renderFileInfo())
	}
	parts = append(parts,
		in.renderDataset(ds),
		in.renderViewport(ds),
		in.renderHighlight(ds),
		styles.SectionTitleStyle.Render("Peptides"))
	return strings.Join(parts, "\n")
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

func truncateRunes(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:max(width, 0)])
	}
	return string(r[:width-3]) + "..."
}

// applyPanelStyle applies the appropriate panel style.
func (in Inspector) applyPanelStyle(content string) string {
	style := styles.BasePanelStyle
	if in.focused {
		style = styles.ActivePanelStyle
	}

	return style.
		Width(in.width).
		Height(in.height).
		MaxHeight(in.height + 2).
		Render(content)
}
