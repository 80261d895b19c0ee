package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dcmtag/internal/state"
)

// Column layout for the tree panel. The tag column also carries the depth
// indentation, mirroring the original four-column table.
const (
	tagColumnWidth  = 24
	nameColumnWidth = 34
	vrColumnWidth   = 4
	columnGap       = 2
	indentPerDepth  = 2
)

// Renderer handles all UI rendering
type Renderer struct {
	screen         tcell.Screen
	theme          ColorTheme
	runeWidthCache [128]int // ASCII cache (0-127)
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()

	r.drawHeader(state, w)
	r.drawSearchBar(state, w)
	r.drawTree(state, w, h)
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with the app name and the open file.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)

	title := "dcmtag"
	if state.FilePath != "" {
		title = "dcmtag - " + filepath.Base(state.FilePath)
	}
	endX := r.drawTextLine(0, 0, w, title, style)
	for ; endX < w; endX++ {
		r.screen.SetContent(endX, 0, ' ', nil, style)
	}
}

// drawSearchBar renders the search input, the field checkboxes and the
// result position, or the open-file prompt when it is active.
func (r *Renderer) drawSearchBar(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.SearchFg)
	dim := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.SearchDimFg)

	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 1, ' ', nil, style)
	}

	if state.PromptActive {
		endX := r.drawTextLine(0, 1, w, "open: ", dim)
		endX = r.drawTextLine(endX, 1, w-endX, state.PromptInput, style)
		if endX < w {
			r.screen.SetContent(endX, 1, '▌', nil, style)
		}
		return
	}

	label := "search: "
	labelStyle := dim
	if state.SearchActive {
		labelStyle = style.Bold(true)
	}
	endX := r.drawTextLine(0, 1, w, label, labelStyle)
	endX = r.drawTextLine(endX, 1, w-endX, state.SearchQuery, style)
	if state.SearchActive && endX < w {
		r.screen.SetContent(endX, 1, '▌', nil, style)
		endX++
	}

	flags := fmt.Sprintf("  %s Tag  %s Name  %s Value",
		checkbox(state.SearchFields.Tag),
		checkbox(state.SearchFields.Name),
		checkbox(state.SearchFields.Value))
	endX = r.drawTextLine(endX, 1, w-endX, flags, dim)

	if n := len(state.Engine.Matches()); n > 0 && state.Engine.Cursor() >= 0 {
		position := fmt.Sprintf("  %d/%d", state.Engine.Cursor()+1, n)
		r.drawTextLine(endX, 1, w-endX, position, style)
	}
}

func checkbox(enabled bool) string {
	if enabled {
		return "[x]"
	}
	return "[ ]"
}

// drawTree renders the visible rows in four columns: Tag, Name, VR, Value.
func (r *Renderer) drawTree(state *statepkg.AppState, w, h int) {
	top := 2
	bottom := h - 1
	if bottom <= top {
		return
	}

	tagW, nameW, vrW, valueStart, valueW := r.computeColumns(w)

	for y := top; y < bottom; y++ {
		idx := state.ScrollOffset + (y - top)
		if idx >= len(state.Rows) {
			break
		}
		row := state.Rows[idx]
		node := row.Node

		base := tcell.StyleDefault.Background(r.theme.Background)
		tagStyle := base.Foreground(r.theme.TagFg)
		nameStyle := base.Foreground(r.theme.Foreground)
		vrStyle := base.Foreground(r.theme.VRFg)
		valueStyle := base.Foreground(r.theme.Foreground)

		switch {
		case node.IsItemHeader:
			tagStyle = base.Foreground(r.theme.ItemHeaderFg)
		case len(node.Children) > 0:
			nameStyle = base.Foreground(r.theme.SequenceFg)
		}

		// The current search result wins over the selection bar.
		if state.Engine.IsCurrent(node) {
			result := tcell.StyleDefault.Background(r.theme.ResultBg).Foreground(r.theme.ResultFg)
			tagStyle, nameStyle, vrStyle, valueStyle = result, result, result, result
		} else if idx == state.SelectedIndex {
			selected := tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			tagStyle, nameStyle, vrStyle, valueStyle = selected, selected, selected, selected
		}

		indent := strings.Repeat(" ", row.Depth*indentPerDepth)
		tagText := indent + node.TagLabel
		if len(node.Children) > 0 {
			if state.IsExpanded(node) {
				tagText = indent + "▾ " + node.TagLabel
			} else {
				tagText = indent + "▸ " + node.TagLabel
			}
		}

		r.drawCell(0, y, tagW, tagText, tagStyle)
		r.drawCell(tagW+columnGap, y, nameW, node.Name, nameStyle)
		r.drawCell(tagW+nameW+2*columnGap, y, vrW, node.VR, vrStyle)
		r.drawCell(valueStart, y, valueW, node.Value, valueStyle)
	}
}

// computeColumns fits the four columns into the screen width, shrinking tag
// and name proportionally on narrow terminals.
func (r *Renderer) computeColumns(w int) (tagW, nameW, vrW, valueStart, valueW int) {
	tagW = tagColumnWidth
	nameW = nameColumnWidth
	vrW = vrColumnWidth

	fixed := tagW + nameW + vrW + 3*columnGap
	if fixed >= w {
		// Narrow terminal: halve tag and name, drop the value column if
		// it still does not fit.
		tagW = tagW / 2
		nameW = nameW / 2
		fixed = tagW + nameW + vrW + 3*columnGap
	}
	valueStart = tagW + nameW + vrW + 3*columnGap
	valueW = w - valueStart
	if valueW < 0 {
		valueW = 0
	}
	return tagW, nameW, vrW, valueStart, valueW
}

// drawStatusLine renders the status text and key hints at the bottom.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	r.drawTextLine(0, y, w, state.Status, style)

	hints := "/ search · F2/F3 prev/next · o open · q quit"
	hintsWidth := r.measureTextWidth(hints)
	statusWidth := r.measureTextWidth(state.Status)
	if statusWidth+2+hintsWidth <= w {
		dim := style.Foreground(r.theme.SearchDimFg)
		r.drawTextLine(w-hintsWidth, y, hintsWidth, hints, dim)
	}
}
