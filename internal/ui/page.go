package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/squirrel-docs/internal/nav"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	pagePanelMinWidth = 40
	pagePanelFraction = 0.5
)

var (
	pageBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pageTargetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// page describes the document at the current location.
type page struct {
	location string
	pending  string
	trail    nav.Path
	target   string
	also     []nav.Path
}

func (m *Model) activePage() page {
	p := page{location: m.current, pending: m.pending}
	matches := m.nav.ActiveLeaves(m.current)
	if len(matches) == 0 {
		return p
	}
	p.trail = matches[0].Path
	p.target = matches[0].Leaf.Target
	for _, ref := range matches[1:] {
		p.also = append(p.also, ref.Path)
	}
	return p
}

func (p page) title() string {
	if p.trail == nil {
		return "Page"
	}
	return "Page: " + p.trail.Title()
}

// lines returns the panel body, or an error line when the location is not
// part of the navigation.
func (p page) lines() (body []string, errLine string) {
	if p.pending != "" {
		return []string{fmt.Sprintf("Opening %s…", p.pending)}, ""
	}
	if p.trail == nil {
		return nil, fmt.Sprintf("No page in the navigation matches %q", p.location)
	}
	body = []string{
		p.trail.Parent().String(),
		"",
		p.trail.Title(),
		p.target,
	}
	if len(p.also) > 0 {
		body = append(body, "", "Also listed under:")
		for _, other := range p.also {
			body = append(body, "  "+other.String())
		}
	}
	return body, ""
}

// pagePanelWidth returns the width of the right-hand page panel, or 0 when
// the terminal is too narrow to split.
func (m *Model) pagePanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * pagePanelFraction)
	if w < pagePanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) sidebarWidth() int {
	return m.width - m.pagePanelWidth()
}

// renderPagePanel draws the bordered page box with exactly height rows and
// totalWidth columns.
func renderPagePanel(p page, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	titleSeg := " " + p.title() + " "
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := pageBorderStyle.Render(tlc+hz) +
		styles.PageTitle.Render(titleSeg) +
		pageBorderStyle.Render(strings.Repeat(hz, dashes)+hz+trc)
	bottomLine := pageBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	body, errLine := p.lines()
	bodyStyle := styles.PageBody
	if errLine != "" {
		body = []string{errLine}
		bodyStyle = styles.PageError
	}

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(body) {
			content = body[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		style := bodyStyle
		if errLine == "" && p.pending == "" {
			switch i {
			case 0:
				style = styles.Breadcrumb
			case 3:
				style = &pageTargetStyle
			}
		}
		if style != nil {
			content = style.Render(content)
		}
		rows = append(rows, pageBorderStyle.Render(vt)+content+pageBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}
