package ui

import (
	"fmt"
	"strings"

	"rdct/internal/catalog"
	"rdct/internal/ui/state"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	previewMaxDisplayLines = 12  // inline preview below the menu while browsing
	panelMinWidth          = 40  // minimum cols for the script panel; below this no split
	panelFraction          = 0.6 // fraction of total width given to the script panel
)

var panelBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeReviewing, ModeSaving:
		return m.viewReview()
	default:
		return m.viewBrowsing()
	}
}

func (m *Model) viewBrowsing() string {
	lines := make([]string, 0, 16)
	title := fmt.Sprintf("RHEL/CentOS 10 TUI Manager (Detected: %s)", m.dist)
	lines = append(lines, styles.Title.Render(truncateText(title, m.width)))
	crumb := strings.Join(m.nav.Breadcrumb(), " > ")
	lines = append(lines, styles.Breadcrumb.Render(truncateText(crumb, m.width)))
	lines = append(lines, "")

	rows := m.nav.Rows()
	if len(rows) == 0 {
		lines = append(lines, styles.Info.Render("(no entries)"))
	} else {
		m.nav.EnsureCursorVisible(m.maxVisibleItems())
		start := 0
		displayRows := rows
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(rows) > maxItems {
			start = m.nav.ViewportOffset()
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(rows) {
				start = len(rows) - maxItems
			}
			displayRows = rows[start : start+maxItems]
		}
		for i, row := range displayRows {
			lines = append(lines, m.buildMenuLine(row, start+i))
		}
	}

	preview := m.previewScript()
	lines = append(lines, "")
	lines = append(lines, styles.PreviewTitle.Render("Script Preview"))
	previewLines := strings.Split(strings.TrimRight(preview, "\n"), "\n")
	shown := previewLines
	if len(shown) > previewMaxDisplayLines {
		shown = shown[:previewMaxDisplayLines]
	}
	for _, line := range shown {
		lines = append(lines, styles.PreviewBody.Render(truncateText(line, m.width)))
	}
	if rest := len(previewLines) - len(shown); rest > 0 {
		lines = append(lines, styles.Info.Render(fmt.Sprintf("… (%d more lines)", rest)))
	}

	if m.showFooter {
		lines = append(lines, "")
		lines = append(lines, styles.Footer.Render("↑/↓ move  enter toggle/open  backspace up  i install  r install+reboot  q quit"))
	}
	return limitHeight(lines, m.height)
}

// buildMenuLine renders a single menu row: cursor indicator, one-level
// indentation for eagerly expanded root children, a selection marker for
// items and a ">" suffix for groups.
func (m *Model) buildMenuLine(row state.Row, idx int) string {
	node := m.tree.Node(row.ID)
	indent := strings.Repeat("  ", row.Depth)
	var text string
	if node.Kind == catalog.KindGroup {
		text = fmt.Sprintf("%s%s >", indent, node.Name)
	} else {
		mark := " "
		if node.Selected {
			mark = "x"
		}
		text = fmt.Sprintf("%s[%s] %s", indent, mark, node.Name)
	}

	indicator := "▌"
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if node.Kind == catalog.KindGroup {
		lineStyle = styles.Group
	}
	if idx == m.nav.Cursor() {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	full := " " + text
	if m.width > 0 {
		if pad := m.width - 1 - len([]rune(full)); pad > 0 && idx == m.nav.Cursor() {
			full += strings.Repeat(" ", pad)
		}
		full = truncateText(full, m.width-1)
	}
	return indicatorStyle.Render(indicator) + lineStyle.Render(full)
}

func (m *Model) viewReview() string {
	if w := m.panelWidth(); w > 0 {
		return m.viewReviewSideBySide(w)
	}
	return m.viewReviewVertical()
}

// panelWidth returns the width in columns for the right-hand script panel.
// Returns 0 when the terminal is too narrow to split.
func (m *Model) panelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * panelFraction)
	if w < panelMinWidth {
		return 0
	}
	return w
}

func (m *Model) reviewHeader() string {
	header := "Install Review"
	if m.reboot {
		header += " (reboot after install)"
	}
	return styles.Title.Render(truncateText(header, m.width))
}

func (m *Model) selectedLines(width int) []string {
	names := m.tree.SelectedNames()
	filtered := state.FilterNames(names, m.filter)
	lines := make([]string, 0, len(filtered)+4)
	lines = append(lines, styles.PreviewTitle.Render(fmt.Sprintf("Selected items (%d)", len(names))))
	if m.filterOn || m.filter != "" {
		query := m.filter
		if m.filterOn {
			query += "▏"
		}
		lines = append(lines, styles.FilterPrompt.Render("» ")+truncateText(query, width-2))
	}
	if len(names) == 0 {
		lines = append(lines, styles.Info.Render("(nothing selected)"))
		return lines
	}
	if len(filtered) == 0 {
		lines = append(lines, styles.Info.Render(fmt.Sprintf("No matches for %q", m.filter)))
		return lines
	}
	for _, name := range filtered {
		lines = append(lines, styles.Item.Render(truncateText("- "+name, width)))
	}
	return lines
}

func (m *Model) reviewStatusLines() []string {
	lines := []string{}
	if m.statusMsg != "" {
		style := styles.Info
		if m.statusErr {
			style = styles.Error
		}
		lines = append(lines, style.Render(truncateText(m.statusMsg, m.width)))
	}
	hint := "s save  r run with sudo  / filter  esc back  q quit"
	lines = append(lines, styles.Footer.Render(truncateText(hint, m.width)))
	return lines
}

func (m *Model) saveFormLines() []string {
	if m.mode != ModeSaving || m.saveForm == nil {
		return nil
	}
	lines := []string{
		"",
		styles.FormTitle.Render("Save script as:"),
		m.saveForm.InputView(),
		styles.FormHelp.Render("Press Enter to save. Esc to cancel."),
	}
	if errMsg := m.saveForm.Error(); errMsg != "" {
		lines = append(lines, styles.Error.Render(errMsg))
	}
	return lines
}

func (m *Model) viewReviewVertical() string {
	lines := make([]string, 0, 24)
	lines = append(lines, m.reviewHeader(), "")
	lines = append(lines, m.selectedLines(m.width)...)
	lines = append(lines, "", styles.PreviewTitle.Render("Generated script"))
	for _, line := range strings.Split(strings.TrimRight(m.synthesize(), "\n"), "\n") {
		lines = append(lines, styles.PreviewBody.Render(truncateText(line, m.width)))
	}
	lines = append(lines, m.saveFormLines()...)
	lines = append(lines, "")
	lines = append(lines, m.reviewStatusLines()...)
	return limitHeight(lines, m.height)
}

func (m *Model) viewReviewSideBySide(panelW int) string {
	menuW := m.width - panelW
	bottom := m.saveFormLines()
	bottom = append(bottom, "")
	bottom = append(bottom, m.reviewStatusLines()...)

	panelH := m.height - len(bottom)
	if panelH < 3 {
		panelH = 3
	}

	left := make([]string, 0, panelH)
	left = append(left, m.reviewHeader(), "")
	left = append(left, m.selectedLines(menuW)...)
	if len(left) > panelH {
		left = left[:panelH]
	}
	for len(left) < panelH {
		left = append(left, "")
	}
	// Pad every row to exactly menuW visible columns so JoinHorizontal keeps
	// the script panel flush to the right edge. lipgloss.Width measures
	// visual width; reflow truncate is ANSI-safe.
	for i, row := range left {
		w := lipgloss.Width(row)
		if w > menuW {
			left[i] = truncate.StringWithTail(row, uint(menuW-1), "…")
		} else if w < menuW {
			left[i] = row + strings.Repeat(" ", menuW-w)
		}
	}

	right := m.renderScriptPanel(panelW, panelH)
	top := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), right)
	return top + "\n" + strings.Join(bottom, "\n")
}

// renderScriptPanel builds the bordered script box with exactly height rows
// and totalWidth columns.
func (m *Model) renderScriptPanel(totalWidth, height int) string {
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

	content := strings.Split(strings.TrimRight(m.synthesize(), "\n"), "\n")
	countSeg := fmt.Sprintf(" %d lines ", len(content))
	if len(content) > innerH {
		content = content[:innerH]
	}

	titleSeg := " Generated script "
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(countSeg))
	if dashes < 0 {
		countSeg = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := panelBorderStyle.Render(tlc+hz) +
		styles.PreviewTitle.Render(titleSeg) +
		panelBorderStyle.Render(strings.Repeat(hz, dashes)) +
		styles.Info.Render(countSeg) +
		panelBorderStyle.Render(hz + trc)
	bottomLine := panelBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(content) {
			line = content[i]
		}
		w := lipgloss.Width(line)
		if w > innerW {
			line = truncate.StringWithTail(line, uint(innerW-1), "…")
			w = lipgloss.Width(line)
		}
		if w < innerW {
			line += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, panelBorderStyle.Render(vt)+styles.PreviewBody.Render(line)+panelBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // title + breadcrumb + blank
	used += 2 + previewMaxDisplayLines + 1
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []string, height int) string {
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
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
