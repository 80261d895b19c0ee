package dicom

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	dcm "github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
	"golang.org/x/text/encoding/charmap"
)

// maxInlineTextBytes caps how large a raw byte payload may be before we stop
// trying to present it as text.
const maxInlineTextBytes = 128

// ReadFile decodes the DICOM file at path into its ordered element sequence.
// Pixel data frames are skipped during parsing; the element itself is still
// present so downstream display can elide it.
func ReadFile(path string) ([]Element, error) {
	ds, err := dcm.ParseFile(path, nil, dcm.SkipPixelData())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	elements := make([]Element, 0, len(ds.Elements))
	for _, el := range ds.Elements {
		if el == nil {
			continue
		}
		elements = append(elements, convertElement(el))
	}
	return elements, nil
}

func convertElement(src *dcm.Element) Element {
	out := Element{
		Tag:  &Tag{Group: src.Tag.Group, Element: src.Tag.Element},
		Name: elementName(src.Tag),
		VR:   src.RawValueRepresentation,
	}
	if src.Value == nil {
		return out
	}

	switch src.Value.ValueType() {
	case dcm.Sequences:
		out.VR = "SQ"
		items, _ := src.Value.GetValue().([]*dcm.SequenceItemValue)
		out.Items = make([][]Element, 0, len(items))
		for _, item := range items {
			if item == nil {
				out.Items = append(out.Items, nil)
				continue
			}
			elems, _ := item.GetValue().([]*dcm.Element)
			converted := make([]Element, 0, len(elems))
			for _, el := range elems {
				if el == nil {
					continue
				}
				converted = append(converted, convertElement(el))
			}
			out.Items = append(out.Items, converted)
		}
	case dcm.Bytes:
		raw, _ := src.Value.GetValue().([]byte)
		if text, ok := decodeTextBytes(raw); ok {
			out.Value = text
		} else {
			out.Value = raw
		}
	default:
		out.Value = src.Value.GetValue()
	}
	return out
}

// elementName resolves the display name from the standard dictionary.
// Private and retired tags outside the dictionary fall back to a generic
// label; every element that reaches display carries some name.
func elementName(t tag.Tag) string {
	info, err := tag.Find(t)
	if err != nil || info.Name == "" {
		return "Unknown Tag"
	}
	return humanizeKeyword(info.Name)
}

// humanizeKeyword converts a dictionary keyword such as "PatientName" or
// "SOPInstanceUID" into its spaced display form ("Patient Name",
// "SOP Instance UID").
func humanizeKeyword(keyword string) string {
	runes := []rune(keyword)
	var b strings.Builder
	b.Grow(len(keyword) + 8)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// A lone trailing 's' after an acronym ("IDs", "UIDs") is a
			// plural, not a new word.
			plural := nextLower && runes[i+1] == 's' &&
				(i+2 == len(runes) || unicode.IsUpper(runes[i+2]))
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				b.WriteByte(' ')
			case unicode.IsUpper(prev) && nextLower && !plural:
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decodeTextBytes attempts to present a raw byte payload as text. DICOM
// text stored with an unknown VR arrives as bytes in the default repertoire
// (ISO-IR 6/100), so printable payloads are decoded as Latin-1. Binary or
// oversized payloads are left alone.
func decodeTextBytes(raw []byte) (string, bool) {
	trimmed := bytes.TrimRight(raw, "\x00 ")
	if len(trimmed) == 0 || len(trimmed) > maxInlineTextBytes {
		return "", false
	}
	for _, c := range trimmed {
		if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			return "", false
		}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(trimmed)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}
