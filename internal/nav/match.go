package nav

import "strings"

// Canonical normalizes a location for comparison: the query and fragment are
// dropped, surrounding space is trimmed and a single trailing slash is
// removed unless the path is the root.
func Canonical(location string) string {
	s := strings.TrimSpace(location)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if len(s) > 1 && strings.HasSuffix(s, "/") {
		s = s[:len(s)-1]
	}
	return s
}

// IsActive reports whether leaf is the page at currentPath. Both sides are
// canonicalized once and must then be equal; there is no prefix matching.
func IsActive(leaf *Leaf, currentPath string) bool {
	if leaf == nil {
		return false
	}
	target := Canonical(leaf.Target)
	if target == "" {
		return false
	}
	return target == Canonical(currentPath)
}

// ActiveLeaves returns every leaf matching currentPath in declaration order.
// More than one result means the model repeats a target.
func (m *Model) ActiveLeaves(currentPath string) []LeafRef {
	var out []LeafRef
	for _, ref := range m.Leaves() {
		if IsActive(ref.Leaf, currentPath) {
			out = append(out, ref)
		}
	}
	return out
}
