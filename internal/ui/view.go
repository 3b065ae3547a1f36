package ui

import (
	"fmt"
	"strings"
	"time"

	uistate "github.com/atomicstack/squirrel-docs/internal/ui/state"
	"github.com/atomicstack/squirrel-docs/internal/ui/tree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerText = "↑/↓ move  ←/→ close/open  enter open  ctrl+r reset  type to search  esc clear  ctrl+c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.header()
	if m.pagePanelWidth() > 0 {
		return m.viewSideBySide(header)
	}
	return m.viewVertical(header)
}

// sidebarLines renders the visible window of rows.
func (m *Model) sidebarLines(width int) []styledLine {
	current := m.sidebar
	m.syncViewport()
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	displayItems := current.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
		start = current.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(displayItems) {
			start = len(displayItems) - maxItems
			if start < 0 {
				start = 0
			}
			current.ViewportOffset = start
		}
		displayItems = displayItems[start : start+maxItems]
	}
	lines := make([]styledLine, 0, len(displayItems))
	for i, row := range displayItems {
		lines = append(lines, m.buildRowLine(row, start+i == current.Cursor, width))
	}
	return lines
}

// viewVertical stacks the sidebar above a one-line page summary. It is used
// when the terminal is too narrow for the page panel.
func (m *Model) viewVertical(header string) string {
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	lines = append(lines, m.sidebarLines(m.width)...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.pageSummaryLine())
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines) + "\n" + m.bottomBar(m.width)
}

// viewSideBySide renders the sidebar on the left and the page panel on the
// right.
func (m *Model) viewSideBySide(header string) string {
	sideW := m.sidebarWidth()
	pageW := m.pagePanelWidth()
	const bottomBarRows = 2

	contentLines := make([]styledLine, 0, 16)
	if header != "" {
		contentLines = append(contentLines, styledLine{text: header, style: styles.Header})
	}
	contentLines = append(contentLines, m.sidebarLines(sideW)...)
	if info := m.currentInfo(); info != "" {
		contentLines = append(contentLines, styledLine{})
		contentLines = append(contentLines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		contentLines = append(contentLines, styledLine{})
		contentLines = append(contentLines, styledLine{text: footerText, style: styles.Footer})
	}

	panelH := m.height - bottomBarRows
	if panelH < 3 {
		panelH = 3
	}
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}
	contentLines = applyWidth(contentLines, sideW)

	// pad every row to sideW visible columns so the panel stays flush right
	leftRows := strings.Split(renderLines(contentLines), "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > sideW {
			leftRows[i] = truncate.StringWithTail(row, uint(sideW-1), "…")
		} else if w < sideW {
			leftRows[i] = row + strings.Repeat(" ", sideW-w)
		}
	}
	leftStr := strings.Join(leftRows, "\n")
	rightStr := renderPagePanel(m.activePage(), pageW, panelH)

	top := lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)
	return top + "\n" + m.bottomBar(m.width)
}

func (m *Model) bottomBar(width int) string {
	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	lines := applyWidth([]styledLine{status}, width)
	return renderLines(lines) + "\n" + m.filterPrompt()
}

// buildRowLine constructs the line for a row. width pads the text so that
// the cursor highlight spans the column.
func (m *Model) buildRowLine(row uistate.Row, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	switch {
	case row.Kind == uistate.RowSection:
		lineStyle = styles.Section
	case row.Kind == uistate.RowGroup:
		lineStyle = styles.Group
	case row.Active:
		lineStyle = styles.ActiveItem
	}
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	label := tree.Line(row)
	if m.sidebar.Filtering() {
		label = searchLabel(row)
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// searchLabel shows a search hit with the groups it lives under, since the
// flat result list has no indentation to convey that.
func searchLabel(row uistate.Row) string {
	marker := "  "
	if row.Active {
		marker = "• "
	}
	crumb := row.Breadcrumb()
	if crumb == "" {
		return marker + row.Title
	}
	return marker + row.Title + "  · " + crumb
}

func (m *Model) pageSummaryLine() styledLine {
	p := m.activePage()
	body, errLine := p.lines()
	if errLine != "" {
		return styledLine{text: errLine, style: styles.PageError}
	}
	if p.pending != "" {
		return styledLine{text: body[0], style: styles.PageBody}
	}
	return styledLine{text: fmt.Sprintf("%s (%s)", p.title(), p.target), style: styles.PageTitle}
}

// header is the breadcrumb of the current page.
func (m *Model) header() string {
	segments := []string{rootTitle}
	segments = append(segments, tree.ActiveTrail(m.nav, m.current)...)
	return strings.Join(segments, headerSeparator)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header plus the bottom bar: error/status + filter prompt
	if m.pagePanelWidth() == 0 {
		used += 2 // blank + page summary
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
