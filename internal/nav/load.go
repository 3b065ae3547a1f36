package nav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type fileModel struct {
	Sections []fileSection `yaml:"sections"`
}

type fileSection struct {
	Title string     `yaml:"title"`
	Icon  string     `yaml:"icon"`
	Items []fileNode `yaml:"items"`
}

// fileNode keeps href and items as pointers so that "present but empty" can be
// told apart from "absent".
type fileNode struct {
	Title string      `yaml:"title"`
	Href  *string     `yaml:"href"`
	Items *[]fileNode `yaml:"items"`
}

// Load reads and validates a YAML navigation file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read navigation file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML navigation document. Unknown keys are rejected, as is
// any node that carries both or neither of href and items.
func Parse(data []byte) (*Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc fileModel
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Err: ErrNoSections}
		}
		return nil, fmt.Errorf("decode navigation: %w", err)
	}

	var errs []error
	sections := make([]Section, 0, len(doc.Sections))
	for _, fs := range doc.Sections {
		p := Path{strings.TrimSpace(fs.Title)}
		items, itemErrs := convertNodes(p, fs.Items)
		errs = append(errs, itemErrs...)
		sections = append(sections, Section{Title: fs.Title, Icon: fs.Icon, Items: items})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return New(sections...)
}

func convertNodes(parent Path, nodes []fileNode) ([]Item, []error) {
	var errs []error
	items := make([]Item, 0, len(nodes))
	for _, node := range nodes {
		p := parent.Child(node.Title)
		switch {
		case node.Href != nil && node.Items != nil:
			errs = append(errs, &ValidationError{Path: p, Err: fmt.Errorf("%w: has both href and items", ErrMalformedNode)})
		case node.Href == nil && node.Items == nil:
			errs = append(errs, &ValidationError{Path: p, Err: fmt.Errorf("%w: has neither href nor items", ErrMalformedNode)})
		case node.Href != nil:
			items = append(items, &Leaf{Title: node.Title, Target: *node.Href})
		default:
			children, childErrs := convertNodes(p, *node.Items)
			errs = append(errs, childErrs...)
			items = append(items, &Group{Title: node.Title, Children: children})
		}
	}
	return items, errs
}
