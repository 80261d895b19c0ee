package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		width := r.runeWidthCache[ru]
		if width == 0 && ru != 0 {
			actualWidth := runewidth.RuneWidth(ru)
			if actualWidth < 0 {
				actualWidth = 0
			}
			r.runeWidthCache[ru] = actualWidth + 1
			return actualWidth
		}
		return width - 1
	}

	width := runewidth.RuneWidth(ru)
	if width < 0 {
		width = 0
	}
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		runeWidth := r.cachedRuneWidth(ru)
		if runeWidth < 0 {
			runeWidth = 0
		}
		width += runeWidth
	}
	return width
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}

	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	const ellipsis = "…"
	ellipsisWidth := r.cachedRuneWidth([]rune(ellipsis)[0])
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	currentWidth := 0

	for _, ru := range text {
		runeWidth := r.cachedRuneWidth(ru)
		if runeWidth < 0 {
			runeWidth = 0
		}
		if currentWidth+runeWidth > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += runeWidth
	}

	builder.WriteString(ellipsis)
	return builder.String()
}

// drawTextLine draws text starting at startX, clipped to maxWidth columns,
// and returns the x position after the last drawn cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		width := r.cachedRuneWidth(ru)
		if width < 1 {
			continue
		}
		if x+width > startX+maxWidth {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += width
	}
	return x
}

// drawCell draws text inside a fixed-width column, truncating with an
// ellipsis and padding the remainder with spaces.
func (r *Renderer) drawCell(x, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	truncated := r.truncateTextToWidth(text, width)
	endX := r.drawTextLine(x, y, width, truncated, style)
	for ; endX < x+width; endX++ {
		r.screen.SetContent(endX, y, ' ', nil, style)
	}
}
