package tree

// Placeholders for element attributes that are absent or unusable.
const (
	UnknownTagLabel = "Unknown"
	UnknownVR       = "N/A"
	ElidedValue     = "[Image Data]"
)

// Node is one display row of the element tree: either a decoded element or a
// synthetic "Item k" header grouping one sequence item's sub-tree. Nodes are
// immutable once built; the currently highlighted search result is tracked
// out of band by search.Highlight.
type Node struct {
	TagLabel     string
	Name         string
	VR           string
	Value        string
	Children     []*Node
	IsItemHeader bool
}
