package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dcmtag/internal/state"
	treepkg "github.com/kk-code-lab/dcmtag/internal/tree"
)

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "(0010,0010)",
			width:  20,
			expect: "(0010,0010)",
		},
		{
			name:   "adds ellipsis when needed",
			text:   "Other Patient IDs Sequence",
			width:  8,
			expect: "Other P…",
		},
		{
			name:   "only ellipsis when width too small",
			text:   "Modality",
			width:  1,
			expect: "…",
		},
		{
			name:   "returns empty when width is zero",
			text:   "anything",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTextToWidth(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil)
	if w := r.measureTextWidth("Doe^John"); w != 8 {
		t.Errorf("ascii width = %d, want 8", w)
	}
	if w := r.measureTextWidth(""); w != 0 {
		t.Errorf("empty width = %d, want 0", w)
	}
}

func simulationScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func screenRow(screen tcell.SimulationScreen, row int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[row*w+x]
		if len(cell.Runes) > 0 {
			b.WriteRune(cell.Runes[0])
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func renderedState() *statepkg.AppState {
	state := statepkg.NewAppState()
	state.ScreenWidth = 100
	state.ScreenHeight = 10
	state.FilePath = "/scans/chest.dcm"
	state.Forest = []*treepkg.Node{
		{TagLabel: "(0008,0060)", Name: "Modality", VR: "CS", Value: "CT"},
		{TagLabel: "(0010,0010)", Name: "Patient Name", VR: "PN", Value: "Doe^John"},
	}
	state.Rows = []statepkg.Row{
		{Node: state.Forest[0]},
		{Node: state.Forest[1]},
	}
	state.Status = "opened chest.dcm"
	return state
}

func TestRenderHeaderAndColumns(t *testing.T) {
	screen := simulationScreen(t, 100, 10)
	state := renderedState()

	NewRenderer(screen).Render(state)

	header := screenRow(screen, 0)
	if !strings.Contains(header, "dcmtag - chest.dcm") {
		t.Errorf("header = %q", header)
	}

	first := screenRow(screen, 2)
	for _, want := range []string{"(0008,0060)", "Modality", "CS", "CT"} {
		if !strings.Contains(first, want) {
			t.Errorf("first tree row missing %q: %q", want, first)
		}
	}

	status := screenRow(screen, 9)
	if !strings.Contains(status, "opened chest.dcm") {
		t.Errorf("status row = %q", status)
	}
}

func TestRenderSearchBarShowsFlagsAndPosition(t *testing.T) {
	screen := simulationScreen(t, 100, 10)
	state := renderedState()
	state.SearchQuery = "doe"
	state.Engine.Run(state.Forest, "doe", state.SearchFields)

	NewRenderer(screen).Render(state)

	bar := screenRow(screen, 1)
	for _, want := range []string{"search: doe", "[x] Tag", "[x] Name", "[x] Value", "1/1"} {
		if !strings.Contains(bar, want) {
			t.Errorf("search bar missing %q: %q", want, bar)
		}
	}
}

func TestRenderPromptReplacesSearchBar(t *testing.T) {
	screen := simulationScreen(t, 100, 10)
	state := renderedState()
	state.PromptActive = true
	state.PromptInput = "/tmp/x.dcm"

	NewRenderer(screen).Render(state)

	bar := screenRow(screen, 1)
	if !strings.Contains(bar, "open: /tmp/x.dcm") {
		t.Errorf("prompt bar = %q", bar)
	}
}
