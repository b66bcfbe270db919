package ui

import (
	"fmt"
	"math"

	"github.com/pstuifzand/tui-codesurfer/internal/surfer"
)

// GapMarker is drawn in place of a collapsed run of lines
const GapMarker = "⋯"

// invisible is the opacity below which text is not drawn at all
const invisible = 0.05

// CodeView paints surfer frames: the step title, the code listing and the
// subtitle
type CodeView struct {
	TabWidth int
	Gutter   int // width of the line number column, zero to hide numbers
	Footer   int // rows kept free at the bottom of the screen
}

// NewCodeView creates a code view
func NewCodeView(gutter int) *CodeView {
	return &CodeView{TabWidth: 4, Gutter: gutter}
}

// Row is one laid out row of the listing
type Row struct {
	Line surfer.Line
	Gap  bool
}

// Layout decides which frame lines get a terminal row. Lines whose animated
// height is below half a row are collapsed, and a hidden gap marker takes a
// single row.
func Layout(f surfer.Frame) []Row {
	lineHeight := f.Dimensions.LineHeight
	if lineHeight <= 0 || math.IsNaN(lineHeight) {
		lineHeight = 1
	}

	var rows []Row
	for _, l := range f.Lines {
		if l.Hidden() {
			if l.IsMarker {
				rows = append(rows, Row{Line: l, Gap: true})
			}
			continue
		}
		if l.Rows(lineHeight) < lineHeight/2 {
			continue
		}
		rows = append(rows, Row{Line: l})
	}
	return rows
}

// Render draws the frame. The listing is centered when it fits and clipped
// at the bottom otherwise.
func (v *CodeView) Render(screen *Screen, f surfer.Frame) {
	width, height := screen.Size()
	height = max(0, height-v.Footer)
	top, bottom := 0, height

	if f.Title != "" {
		screen.DrawStringEllipsis(1, 0, f.Title, width-2, screen.TitleStyle())
		top = 2
	}
	if f.Subtitle != "" && height > top+2 {
		bottom = height - 2
		screen.DrawStringEllipsis(1, bottom+1, f.Subtitle, width-2, screen.SubtitleStyle())
	}

	rows := Layout(f)
	area := bottom - top
	y := top
	if len(rows) < area {
		y += (area - len(rows)) / 2
	}

	x := 0
	if cw := int(f.Dimensions.ContentWidth); cw > 0 && cw < width {
		x = (width - cw) / 2
	}

	for _, row := range rows {
		if y >= bottom {
			break
		}
		if row.Gap {
			v.drawGap(screen, x, y)
		} else {
			v.drawLine(screen, x, y, width, row.Line)
		}
		y++
	}
}

func (v *CodeView) drawGap(screen *Screen, x, y int) {
	screen.DrawString(x+v.numberWidth(), y, GapMarker, screen.GapStyle())
}

func (v *CodeView) numberWidth() int {
	if v.Gutter <= 0 {
		return 0
	}
	return v.Gutter + 1
}

func (v *CodeView) drawLine(screen *Screen, x, y, width int, l surfer.Line) {
	if v.Gutter > 0 {
		number := l.Number
		if number == "" {
			number = fmt.Sprintf("%*d", v.Gutter, l.LineNumber)
		}
		if l.Opacity >= invisible {
			screen.DrawString(x, y, number, screen.LineNumberStyle(l.Opacity))
		}
	}

	col := v.numberWidth()
	for _, tok := range l.Tokens {
		if x+col >= width {
			return
		}
		text := ExpandTabs(tok.Text, col-v.numberWidth(), v.TabWidth)
		opacity := l.Opacity * tok.Opacity
		if opacity < invisible {
			col += StringWidth(text)
			continue
		}
		col += screen.DrawStringLimited(x+col, y, text, width-x-col, screen.TokenStyle(tok.Type, opacity))
	}
}
