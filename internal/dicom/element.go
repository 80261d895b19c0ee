package dicom

// Tag is the (group, element) pair identifying a field within a data set.
type Tag struct {
	Group   uint16
	Element uint16
}

// Element is one decoded record of a DICOM data set. Attributes are
// independently optional: Tag is nil when the source carried none, VR is
// empty when the representation could not be determined, Value is nil when
// there is no leaf payload. Items is populated only for sequences (VR "SQ");
// each item is itself an ordered element sequence.
type Element struct {
	Tag   *Tag
	Name  string
	VR    string
	Value any
	Items [][]Element
}

// IsSequence reports whether the element nests further item groups.
func (e Element) IsSequence() bool {
	return e.VR == "SQ"
}
