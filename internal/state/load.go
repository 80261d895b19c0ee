package state

import (
	"fmt"
	"path/filepath"

	dicomio "github.com/kk-code-lab/dcmtag/internal/dicom"
	searchpkg "github.com/kk-code-lab/dcmtag/internal/search"
	treepkg "github.com/kk-code-lab/dcmtag/internal/tree"
)

var readFileFn = dicomio.ReadFile

// LoadFile reads path and replaces the whole display state: forest, rows,
// expansion, search engine and highlight are swapped in as one unit only
// after a successful read. A read failure leaves every piece of the prior
// state untouched and is returned for reporting.
func LoadFile(s *AppState, path string) error {
	elements, err := readFileFn(path)
	if err != nil {
		return fmt.Errorf("cannot open DICOM file: %w", err)
	}

	forest := treepkg.Build(elements)

	s.FilePath = path
	s.Forest = forest
	s.expanded = make(map[*treepkg.Node]bool)
	s.rebuildParents()
	s.Engine = searchpkg.NewEngine()
	s.SearchActive = false
	s.SearchQuery = ""
	s.PromptActive = false
	s.PromptInput = ""
	s.SelectedIndex = 0
	s.ScrollOffset = 0
	s.rebuildRows()
	s.Status = "opened " + filepath.Base(path)
	s.LastError = nil
	return nil
}
