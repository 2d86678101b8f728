// Package render rasterizes tracks into styled text lines for any frontend.
package render

// -----------------------------------------------------------------------------
// Display Limits
// -----------------------------------------------------------------------------

const (
	// MinTickSpacing is the minimum number of columns between ruler labels.
	MinTickSpacing = 10

	// MaxPeptideRows caps how many stacked rows the peptide track uses.
	MaxPeptideRows = 6

	// LollipopHeight is the number of lines the lollipop track occupies.
	LollipopHeight = 3

	// StrongModificationCount is the site count drawn with a filled head.
	StrongModificationCount = 3
)

// -----------------------------------------------------------------------------
// Glyphs
// -----------------------------------------------------------------------------

const (
	GlyphAxis       = '─'
	GlyphTick       = '┴'
	GlyphStem       = '│'
	GlyphHead       = '○'
	GlyphHeadStrong = '●'
	GlyphPeptide    = '━'
	GlyphHelix      = '▇'
	GlyphStrand     = '▬'
	GlyphCoil       = '─'
	GlyphDense      = '▒'
	GlyphGap        = ' '
	GlyphNode       = '◆'
)
