package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiSection() Section {
	return Section{
		Title: "API Reference",
		Icon:  IconCode,
		Items: []Item{
			&Group{
				Title: "Core Types",
				Children: []Item{
					&Leaf{Title: "Request", Target: "/docs/api/request"},
					&Leaf{Title: "Response", Target: "/docs/api/response"},
				},
			},
		},
	}
}

func TestNewCopiesInput(t *testing.T) {
	sec := apiSection()
	m, err := New(sec)
	require.NoError(t, err)

	sec.Items[0].(*Group).Children[0].(*Leaf).Title = "changed"
	sec.Title = "changed"

	got := m.Sections()
	require.Len(t, got, 1)
	assert.Equal(t, "API Reference", got[0].Title)
	group := got[0].Items[0].(*Group)
	assert.Equal(t, "Request", group.Children[0].ItemTitle())
}

func TestSectionsReturnsCopy(t *testing.T) {
	m := MustNew(apiSection())

	got := m.Sections()
	got[0].Title = "changed"
	got[0].Items[0].(*Group).Children[0].(*Leaf).Target = "/elsewhere"

	again := m.Sections()
	assert.Equal(t, "API Reference", again[0].Title)
	leaf := again[0].Items[0].(*Group).Children[0].(*Leaf)
	assert.NotEqual(t, "/elsewhere", leaf.Target)
}

func TestNewRejectsMalformedTrees(t *testing.T) {
	cyclic := &Group{Title: "Loop"}
	cyclic.Children = []Item{&Leaf{Title: "Page", Target: "/p"}, cyclic}

	var nilLeaf *Leaf
	tests := []struct {
		name     string
		sections []Section
		want     error
		path     Path
	}{
		{
			name: "no sections",
			want: ErrNoSections,
		},
		{
			name:     "empty section",
			sections: []Section{{Title: "Guides"}},
			want:     ErrEmptySection,
			path:     Path{"Guides"},
		},
		{
			name: "empty group",
			sections: []Section{{Title: "API", Items: []Item{
				&Group{Title: "Core Types"},
			}}},
			want: ErrEmptyGroup,
			path: Path{"API", "Core Types"},
		},
		{
			name: "leaf without target",
			sections: []Section{{Title: "API", Items: []Item{
				&Leaf{Title: "Request", Target: "  "},
			}}},
			want: ErrEmptyTarget,
			path: Path{"API", "Request"},
		},
		{
			name: "leaf with fragment-only target",
			sections: []Section{{Title: "API", Items: []Item{
				&Leaf{Title: "Anchor", Target: "#top"},
			}}},
			want: ErrEmptyTarget,
			path: Path{"API", "Anchor"},
		},
		{
			name: "leaf with query-only target",
			sections: []Section{{Title: "API", Items: []Item{
				&Leaf{Title: "Search", Target: "?q=x"},
			}}},
			want: ErrEmptyTarget,
			path: Path{"API", "Search"},
		},
		{
			name: "blank title",
			sections: []Section{{Title: "API", Items: []Item{
				&Leaf{Title: "", Target: "/docs"},
			}}},
			want: ErrEmptyTitle,
			path: Path{"API", ""},
		},
		{
			name: "nil item",
			sections: []Section{{Title: "API", Items: []Item{
				nil,
			}}},
			want: ErrMalformedNode,
			path: Path{"API"},
		},
		{
			name: "typed nil leaf",
			sections: []Section{{Title: "API", Items: []Item{
				nilLeaf,
			}}},
			want: ErrMalformedNode,
			path: Path{"API"},
		},
		{
			name:     "group is its own ancestor",
			sections: []Section{{Title: "API", Items: []Item{cyclic}}},
			want:     ErrCycle,
			path:     Path{"API", "Loop", "Loop"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.sections...)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.want)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			if tt.path != nil {
				assert.Equal(t, tt.path, verr.Path)
			}
		})
	}
}

func TestNewReportsEveryViolation(t *testing.T) {
	_, err := New(
		Section{Title: "A", Items: []Item{&Group{Title: "Empty"}}},
		Section{Title: "B", Items: []Item{&Leaf{Title: "Page"}}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyGroup)
	assert.ErrorIs(t, err, ErrEmptyTarget)
	assert.Contains(t, err.Error(), "A → Empty: group has no children")
	assert.Contains(t, err.Error(), "B → Page: leaf has no target")
}

func TestMustNewPanicsOnInvalidModel(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Section{Title: "Empty"})
	})
}

func TestWalkPreservesDeclarationOrder(t *testing.T) {
	m := Site()
	var titles []string
	m.Walk(func(p Path, item Item) bool {
		if p.Section() == "API Reference" {
			titles = append(titles, p.String())
		}
		return true
	})
	assert.Equal(t, []string{
		"API Reference → Overview",
		"API Reference → Core Types",
		"API Reference → Core Types → Request",
		"API Reference → Core Types → Response",
		"API Reference → Core Types → SqurlMux",
		"API Reference → Core Types → HandlerFunc",
		"API Reference → Middleware",
		"API Reference → Middleware → Middleware Type",
		"API Reference → Middleware → Built-in Middleware",
		"API Reference → Utilities",
		"API Reference → Utilities → Cookies",
		"API Reference → Utilities → Static Files",
		"API Reference → Utilities → Server Functions",
	}, titles)
}

func TestWalkSkipsChildrenWhenCallbackDeclines(t *testing.T) {
	m := Site()
	count := 0
	m.Walk(func(p Path, item Item) bool {
		count++
		_, isGroup := item.(*Group)
		return !isGroup
	})
	// 23 leaves in total, 9 of them inside the three groups.
	assert.Equal(t, 23-9+3, count)
}

func TestFind(t *testing.T) {
	m := Site()

	item, ok := m.Find(Path{"API Reference", "Core Types", "Response"})
	require.True(t, ok)
	leaf, isLeaf := item.(*Leaf)
	require.True(t, isLeaf)
	assert.Equal(t, "/docs/api/response", leaf.Target)

	item, ok = m.Find(Path{"API Reference", "Middleware"})
	require.True(t, ok)
	_, isGroup := item.(*Group)
	assert.True(t, isGroup)

	_, ok = m.Find(Path{"Guides", "Middleware", "Middleware Type"})
	assert.False(t, ok)
	_, ok = m.Find(Path{"Guides"})
	assert.False(t, ok)
}

func TestSiteShape(t *testing.T) {
	m := Site()
	require.Len(t, m.Sections(), 4)
	assert.Len(t, m.Leaves(), 23)
	assert.Equal(t, []Path{
		{"API Reference", "Core Types"},
		{"API Reference", "Middleware"},
		{"API Reference", "Utilities"},
	}, m.Groups())
	assert.Equal(t, 26, m.Count())
	assert.Empty(t, m.Duplicates())
}

func TestDuplicatesReportsSharedTargets(t *testing.T) {
	m, err := New(Section{Title: "Docs", Items: []Item{
		&Leaf{Title: "Intro", Target: "/docs"},
		&Group{Title: "More", Children: []Item{
			&Leaf{Title: "Intro again", Target: "/docs/"},
		}},
	}})
	require.NoError(t, err)
	dups := m.Duplicates()
	require.Contains(t, dups, "/docs")
	assert.Equal(t, []Path{{"Docs", "Intro"}, {"Docs", "More", "Intro again"}}, dups["/docs"])
}

func TestPathHelpers(t *testing.T) {
	p := Path{"API Reference", "Core Types"}
	child := p.Child(" Request ")
	assert.Equal(t, Path{"API Reference", "Core Types", "Request"}, child)
	assert.Equal(t, Path{"API Reference", "Core Types"}, p, "Child must not alias the receiver")
	assert.Equal(t, p, child.Parent())
	assert.Nil(t, Path{"Guides"}.Parent())
	assert.Equal(t, 2, child.Depth())
	assert.Equal(t, "Request", child.Title())
	assert.Equal(t, "API Reference", child.Section())
	assert.True(t, p.IsAncestorOf(child))
	assert.False(t, child.IsAncestorOf(p))
	assert.False(t, p.IsAncestorOf(p))
	assert.Equal(t, child, ParseKey(child.Key()))
	assert.Equal(t, p, ParsePath(" API Reference / Core Types/"))
	assert.Nil(t, ParsePath(" / "))
}

func TestPathKeysDoNotCollide(t *testing.T) {
	a := Path{"API", "Core Types"}
	b := Path{"API Core", "Types"}
	c := Path{"Guides", "Core Types"}
	assert.NotEqual(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
