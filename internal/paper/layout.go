package paper

import (
	"math"
	"sort"
	"strings"
)

// Layout thresholds, as multiples of the glyph font size.
const (
	lineTolerance = 0.5
	wordGap       = 0.3
	cellGap       = 1.5

	defaultFontSize = 10.0
)

// glyph is one positioned character in PDF user space.
type glyph struct {
	x, y, w float64
	size    float64
	s       string
}

type textCell struct {
	x0, x1 float64
	size   float64
	text   string
}

type textLine struct {
	y     float64
	cells []textCell
}

// text joins the cells of a line with single spaces.
func (l textLine) text() string {
	parts := make([]string, len(l.cells))
	for i, c := range l.cells {
		parts[i] = c.text
	}
	return strings.Join(parts, " ")
}

func (g glyph) fontSize() float64 {
	s := math.Abs(g.size)
	if s == 0 {
		return defaultFontSize
	}
	return s
}

// layoutLines groups glyphs into lines from the top of the page down, each
// line split into cells left to right. Only positions count: the text
// operators that placed the glyphs are irrelevant.
func layoutLines(glyphs []glyph) []textLine {
	visible := make([]glyph, 0, len(glyphs))
	for _, g := range glyphs {
		if strings.TrimSpace(g.s) != "" {
			visible = append(visible, g)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].y > visible[j].y
	})

	var groups [][]glyph
	for _, g := range visible {
		if n := len(groups); n > 0 {
			ref := groups[n-1][0]
			if math.Abs(ref.y-g.y) <= lineTolerance*ref.fontSize() {
				groups[n-1] = append(groups[n-1], g)
				continue
			}
		}
		groups = append(groups, []glyph{g})
	}

	lines := make([]textLine, 0, len(groups))
	for _, grp := range groups {
		sort.SliceStable(grp, func(i, j int) bool {
			return grp[i].x < grp[j].x
		})
		lines = append(lines, textLine{y: grp[0].y, cells: splitCells(grp)})
	}
	return lines
}

func splitCells(glyphs []glyph) []textCell {
	var cells []textCell
	for _, g := range glyphs {
		size := g.fontSize()
		if n := len(cells); n > 0 {
			c := &cells[n-1]
			gap := g.x - c.x1
			if gap <= cellGap*size {
				if gap > wordGap*size {
					c.text += " "
				}
				c.text += g.s
				if end := g.x + g.w; end > c.x1 {
					c.x1 = end
				}
				continue
			}
		}
		cells = append(cells, textCell{x0: g.x, x1: g.x + g.w, size: size, text: g.s})
	}
	return cells
}

// pageText renders a page one layout line per text line.
func pageText(glyphs []glyph) string {
	lines := layoutLines(glyphs)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text()
	}
	return strings.Join(out, "\n")
}
