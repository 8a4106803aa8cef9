package typesystem

import "strings"

// Name renders a single descriptor for diagnostics.
func Name(d Descriptor) string {
	if d == nil {
		return "<none>"
	}
	return d.String()
}

// NameList renders descriptors as a comma-joined list, the form used for an
// expected argument tuple in diagnostics.
func NameList(ds []Descriptor) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = Name(d)
	}
	return strings.Join(parts, ", ")
}
