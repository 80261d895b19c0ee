package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kk-code-lab/dcmtag/internal/dicom"
)

// PixelDataName is the one display name whose value is never stringified.
// The payload is replaced by ElidedValue regardless of its declared VR.
const PixelDataName = "Pixel Data"

// Build converts a decoded element sequence into its display forest. The
// source has no single root, so the result is the ordered list of top-level
// nodes. Exactly one node is produced per element, plus one "Item k" header
// per sequence item; nothing is dropped or reordered. Build is a pure
// function of its input.
func Build(elements []dicom.Element) []*Node {
	nodes := make([]*Node, 0, len(elements))
	for i := range elements {
		nodes = append(nodes, buildElement(&elements[i]))
	}
	return nodes
}

func buildElement(el *dicom.Element) *Node {
	node := &Node{
		TagLabel: formatTagLabel(el.Tag),
		Name:     el.Name,
	}

	switch {
	case el.IsSequence():
		node.VR = "SQ"
		node.Value = fmt.Sprintf("Sequence: %d items", len(el.Items))
		node.Children = make([]*Node, 0, len(el.Items))
		for i, item := range el.Items {
			header := &Node{
				TagLabel:     fmt.Sprintf("Item %d", i+1),
				IsItemHeader: true,
				Children:     Build(item),
			}
			node.Children = append(node.Children, header)
		}

	case el.Name == PixelDataName:
		node.VR = vrOrUnknown(el.VR)
		node.Value = ElidedValue

	default:
		value, err := formatValue(el.Value)
		if err != nil {
			// Local failure: this node only, siblings and ancestors
			// are unaffected.
			node.VR = UnknownVR
			node.Value = fmt.Sprintf("Cannot display: %v", err)
			break
		}
		node.VR = vrOrUnknown(el.VR)
		node.Value = value
	}
	return node
}

func vrOrUnknown(vr string) string {
	if vr == "" {
		return UnknownVR
	}
	return vr
}

func formatTagLabel(t *dicom.Tag) string {
	if t == nil {
		return UnknownTagLabel
	}
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// formatValue stringifies a leaf payload. Multi-valued attributes keep the
// DICOM backslash separator. An unrecognized payload type is the one way
// stringification fails.
func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []string:
		return strings.Join(v, `\`), nil
	case int:
		return strconv.Itoa(v), nil
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, `\`), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case []float64:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, `\`), nil
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(v)), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}
