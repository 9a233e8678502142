package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/annedawson/amphibians/internal/logtail"
	"github.com/annedawson/amphibians/internal/photos"
	"github.com/annedawson/amphibians/internal/state"
)

// Layout thresholds.
const (
	// listPaneMinWidth is the narrowest the photo list gets before the
	// detail pane is dropped.
	listPaneMinWidth = 24

	// detailPaneMinWidth is the narrowest detail pane worth drawing.
	detailPaneMinWidth = 30
)

// layout sizes the viewports from the window dimensions.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	height := m.contentHeight()
	_, detailWidth := m.paneWidths()

	m.detail.Width = max(detailWidth-4, 0)
	m.detail.Height = max(height-2, 0)
	m.logView.Width = max(m.width-4, 0)
	m.logView.Height = max(height-3, 0)
	m.updateDetail()
}

// contentHeight is what remains after the header, notice line and help.
func (m Model) contentHeight() int {
	h := m.height - 2 - lipgloss.Height(m.help.View(m.keys))
	return max(h, 3)
}

// paneWidths splits the width between list and detail panes. A zero detail
// width means the detail pane is hidden.
func (m Model) paneWidths() (int, int) {
	if m.prefs.HideDetails {
		return m.width, 0
	}
	list := max(m.width*2/5, listPaneMinWidth)
	detail := m.width - list
	if detail < detailPaneMinWidth {
		return m.width, 0
	}
	return list, detail
}

// updateDetail refreshes the detail viewport for the selected photo.
func (m *Model) updateDetail() {
	items := m.photoList()
	if len(items) == 0 || m.selected >= len(items) {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.renderDetail(items[m.selected], m.detail.Width))
	m.detail.GotoTop()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderContent())
	b.WriteString("\n")

	b.WriteString(m.renderNotice())
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	s := m.styles
	sep := "  "

	label := state.Match(m.state,
		func() string { return "loading" },
		func([]photos.Photo) string { return "ready" },
		func() string { return "error" },
	)

	parts := []string{
		s.Logo.Render("amphibians"),
		s.StateBadge(label).Render(strings.ToUpper(label)),
	}
	if succ, ok := m.state.(state.Success); ok {
		parts = append(parts, s.Text.Render(fmt.Sprintf("%d photos", len(succ.Photos))))
	}
	if !m.lastUpdated.IsZero() {
		parts = append(parts, s.FaintText.Render("updated "+humanizeDuration(time.Since(m.lastUpdated))))
	}
	if m.baseURL != "" && m.width >= 80 {
		parts = append(parts, s.MutedText.Render(truncateMiddle(m.baseURL, 40)))
	}

	return s.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewPhotos:
		return m.renderPhotos()
	case ViewLogs:
		return m.renderLogs()
	default:
		return ""
	}
}

func (m Model) renderPhotos() string {
	height := m.contentHeight()
	return state.Match(m.state,
		func() string { return m.renderLoading(height) },
		func(items []photos.Photo) string { return m.renderSuccess(items, height) },
		func() string { return m.renderError(height) },
	)
}

func (m Model) renderLoading(height int) string {
	body := m.spinner.View() + " " + m.styles.Text.Render("Loading amphibians…")
	return m.pane(m.width, height, body, false)
}

func (m Model) renderError(height int) string {
	s := m.styles
	lines := []string{
		s.DangerText.Render("Couldn't load amphibians."),
		"",
		s.MutedText.Render("Check your connection, then press r to retry."),
	}
	if m.logFile != "" {
		lines = append(lines, s.FaintText.Render("Details: "+truncateMiddle(m.logFile, max(m.width-16, 10))))
	}
	return m.pane(m.width, height, strings.Join(lines, "\n"), true)
}

func (m Model) renderSuccess(items []photos.Photo, height int) string {
	if len(items) == 0 {
		return m.pane(m.width, height, m.styles.MutedText.Render("No amphibians found."), false)
	}

	listWidth, detailWidth := m.paneWidths()
	list := m.pane(listWidth, height, m.renderList(items, listWidth-4, height-2), true)
	if detailWidth == 0 {
		return list
	}
	detail := m.pane(detailWidth, height, m.detail.View(), false)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

// renderList renders the photo names, keeping the selection visible.
func (m Model) renderList(items []photos.Photo, width, height int) string {
	s := m.styles
	title := s.AccentText.Render(fmt.Sprintf("Amphibians (%d)", len(items)))

	start, end := visibleWindow(len(items), m.selected, height-1)
	rows := make([]string, 0, end-start+1)
	rows = append(rows, title)
	for i := start; i < end; i++ {
		text := truncate(items[i].Title(), width)
		if i == m.selected {
			rows = append(rows, s.Selected.Width(width).Render(text))
			continue
		}
		rows = append(rows, s.Text.Render(text))
	}
	return strings.Join(rows, "\n")
}

// renderDetail renders one photo's full record.
func (m Model) renderDetail(p photos.Photo, width int) string {
	s := m.styles
	wrap := lipgloss.NewStyle()
	if width > 0 {
		wrap = wrap.Width(width)
	}

	var b strings.Builder
	b.WriteString(s.AccentText.Render(p.Title()))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(s.Text.Render(p.Description)))
	b.WriteString("\n\n")
	b.WriteString(s.FaintText.Render("id    ") + s.MutedText.Render(p.ID))
	b.WriteString("\n")
	b.WriteString(s.FaintText.Render("image ") + s.InfoText.Render(truncateMiddle(p.ImgSrc, max(width-6, 10))))
	return b.String()
}

func (m Model) renderLogs() string {
	height := m.contentHeight()
	title := m.styles.AccentText.Render("Log") + "  " + m.styles.FaintText.Render(truncateMiddle(m.logFile, max(m.width-12, 10)))
	return m.pane(m.width, height, title+"\n"+m.logView.View(), true)
}

// renderLogLines colours logrus text lines by level.
func (m Model) renderLogLines(lines []string) string {
	s := m.styles
	if m.logErr != nil {
		return s.DangerText.Render("read log: " + m.logErr.Error())
	}
	if len(lines) == 0 {
		return s.MutedText.Render("No log entries yet.")
	}

	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		line := logtail.Parse(raw)
		if line.Level == "" {
			out = append(out, s.FaintText.Render(line.Raw))
			continue
		}
		var b strings.Builder
		if line.Time != "" {
			b.WriteString(s.FaintText.Render(line.Time))
			b.WriteString(" ")
		}
		b.WriteString(s.LevelStyle(line.Level).Render(fmt.Sprintf("%-5.5s", strings.ToUpper(line.Level))))
		b.WriteString(" ")
		b.WriteString(s.Text.Render(line.Message))
		for _, f := range line.Fields {
			b.WriteString(" ")
			b.WriteString(s.MutedText.Render(f.Key + "=" + f.Value))
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	return m.styles.WarningText.Render(m.notice)
}

// pane wraps body in a bordered box of the given outer size.
func (m Model) pane(width, height int, body string, focused bool) string {
	style := m.styles.Pane
	if focused {
		style = m.styles.FocusedPane
	}
	return style.
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		MaxHeight(height).
		Render(body)
}

// RenderPlain writes s as plain text, for non-interactive output.
func RenderPlain(w io.Writer, s state.UIState) error {
	text := state.Match(s,
		func() string { return "Loading amphibians…\n" },
		renderPlainPhotos,
		func() string { return "Couldn't load amphibians.\n" },
	)
	_, err := io.WriteString(w, text)
	return err
}

func renderPlainPhotos(items []photos.Photo) string {
	if len(items) == 0 {
		return "No amphibians found.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d amphibians\n", len(items))
	for _, p := range items {
		fmt.Fprintf(&b, "\n%s\n", p.Title())
		if p.Description != "" {
			fmt.Fprintf(&b, "  %s\n", p.Description)
		}
		fmt.Fprintf(&b, "  %s\n", p.ImgSrc)
	}
	return b.String()
}
