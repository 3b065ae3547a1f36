package nav

import "strings"

const (
	keySeparator     = "\x1f"
	displaySeparator = " → "
)

// Path is the list of titles from a section down to a node. It identifies
// groups for expansion state, since titles are the only stable identifier a
// node has.
type Path []string

// Child returns a new path with title appended. The receiver is not modified.
func (p Path) Child(title string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, strings.TrimSpace(title))
}

// Parent returns the enclosing path, or nil for a section path.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	out := make(Path, len(p)-1)
	copy(out, p[:len(p)-1])
	return out
}

// Depth is 0 for a section, 1 for its direct items and so on.
func (p Path) Depth() int {
	if len(p) == 0 {
		return -1
	}
	return len(p) - 1
}

// Section returns the section title, or "" for an empty path.
func (p Path) Section() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Title returns the last element, or "" for an empty path.
func (p Path) Title() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Key encodes the path as a single map key. Distinct paths never share a key.
func (p Path) Key() string {
	return strings.Join(p, keySeparator)
}

func (p Path) String() string {
	return strings.Join(p, displaySeparator)
}

// Equal reports whether both paths hold the same titles in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// IsAncestorOf reports whether p is a strict prefix of other.
func (p Path) IsAncestorOf(other Path) bool {
	if len(p) >= len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// ParseKey reverses Key.
func ParseKey(key string) Path {
	if key == "" {
		return nil
	}
	return Path(strings.Split(key, keySeparator))
}

// ParsePath splits a human-written path such as "API Reference/Core Types".
func ParsePath(s string) Path {
	parts := strings.Split(s, "/")
	out := make(Path, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
