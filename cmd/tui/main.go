package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solnyshko2009/qui-task/internal/stats"
)

// Colors for modern design
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	goodColor    = lipgloss.Color("#10B981") // Green
	mediumColor  = lipgloss.Color("#F59E0B") // Amber
	poorColor    = lipgloss.Color("#EF4444") // Red
	surfaceColor = lipgloss.Color("#1F2937") // Dark gray
	textColor    = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor   = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor  = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(mutedColor)
	goodStyle  = lipgloss.NewStyle().Foreground(goodColor).Bold(true)
	medStyle   = lipgloss.NewStyle().Foreground(mediumColor).Bold(true)
	poorStyle  = lipgloss.NewStyle().Foreground(poorColor).Bold(true)

	// FastQC-style base colors
	baseAStyle = lipgloss.NewStyle().Foreground(poorColor)
	baseTStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	baseGStyle = lipgloss.NewStyle().Foreground(goodColor)
	baseCStyle = lipgloss.NewStyle().Foreground(textColor)

	barStyle = lipgloss.NewStyle().Foreground(primaryColor)
)

type view int

const (
	viewSummary view = iota
	viewQuality
	viewContent
	viewLengths
)

func (v view) title() string {
	switch v {
	case viewSummary:
		return "Summary"
	case viewQuality:
		return "Per base quality"
	case viewContent:
		return "Per base content"
	case viewLengths:
		return "Length distribution"
	default:
		return "Unknown"
	}
}

type listItem struct {
	view view
	rep  *stats.Report
}

func (i listItem) FilterValue() string { return i.view.title() }
func (i listItem) Title() string       { return i.view.title() }

func (i listItem) Description() string {
	switch i.view {
	case viewSummary:
		return fmt.Sprintf("%d reads", i.rep.Summary.TotalSequences)
	case viewQuality:
		return fmt.Sprintf("%d positions", len(i.rep.Quality))
	case viewContent:
		return fmt.Sprintf("%d positions", len(i.rep.Content))
	case viewLengths:
		return fmt.Sprintf("%d bins", len(i.rep.Lengths))
	default:
		return ""
	}
}

type model struct {
	list     list.Model
	report   *stats.Report
	showHelp bool
	width    int
	height   int
}

// loadReport reads the report JSON produced by the report command.
func loadReport(path string) (*stats.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rep stats.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

func initialModel(rep *stats.Report) model {
	views := []view{viewSummary, viewQuality, viewContent, viewLengths}
	items := make([]list.Item, len(views))
	for i, v := range views {
		items[i] = listItem{view: v, rep: rep}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "FASTQ Report"
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	return model{list: l, report: rep}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.showHelp = !m.showHelp
			return m, nil
		case "1", "2", "3", "4":
			m.list.Select(int(msg.String()[0] - '1'))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderLeftPanel(),
		m.renderRightPanel(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m model) renderLeftPanel() string {
	return containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3
	selected := m.list.SelectedItem()
	if selected == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No view selected")
	}

	v := selected.(listItem).view
	header := titleStyle.Render(v.title())

	// Rows available for table content inside the panel.
	rows := m.height - 10
	if rows < 1 {
		rows = 1
	}

	var content string
	switch v {
	case viewSummary:
		content = m.renderSummary()
	case viewQuality:
		content = m.renderQuality(rows)
	case viewContent:
		content = m.renderContent(rows)
	case viewLengths:
		content = m.renderLengths(rows)
	}

	panel := lipgloss.JoinVertical(lipgloss.Left, header, "", content)
	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(panel)
}

func (m model) renderSummary() string {
	s := m.report.Summary
	lines := []string{
		labelStyle.Render("Input:            ") + m.report.Input,
		labelStyle.Render("Generated:        ") + m.report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"),
		labelStyle.Render("Total sequences:  ") + fmt.Sprintf("%d", s.TotalSequences),
		labelStyle.Render("Total length:     ") + fmt.Sprintf("%d bp", s.TotalLength),
		labelStyle.Render("Average length:   ") + fmt.Sprintf("%.2f bp", s.AverageLength),
	}
	return strings.Join(lines, "\n")
}

// bandStyle picks the quality band color for a median score.
func bandStyle(median float64) lipgloss.Style {
	switch {
	case median < stats.PoorMax:
		return poorStyle
	case median < stats.MediumMax:
		return medStyle
	default:
		return goodStyle
	}
}

func (m model) renderQuality(rows int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("pos    q10   q25   med   q75   q90"))
	b.WriteString("\n")
	shown := truncated(len(m.report.Quality), rows)
	for _, r := range m.report.Quality[:shown] {
		line := fmt.Sprintf("%-5d %5.1f %5.1f %5.1f %5.1f %5.1f",
			r.Position, r.Q10, r.Q25, r.Median, r.Q75, r.Q90)
		b.WriteString(bandStyle(r.Median).Render(line))
		b.WriteString("\n")
	}
	if shown < len(m.report.Quality) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("… showing %d of %d positions", shown, len(m.report.Quality))))
	}
	return b.String()
}

func (m model) renderContent(rows int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("pos     ") +
		baseAStyle.Render("%A     ") +
		baseTStyle.Render("%T     ") +
		baseCStyle.Render("%C     ") +
		baseGStyle.Render("%G"))
	b.WriteString("\n")
	shown := truncated(len(m.report.Content), rows)
	for _, r := range m.report.Content[:shown] {
		b.WriteString(fmt.Sprintf("%-6d ", r.Position))
		b.WriteString(baseAStyle.Render(fmt.Sprintf("%6.2f ", r.PercentA)))
		b.WriteString(baseTStyle.Render(fmt.Sprintf("%6.2f ", r.PercentT)))
		b.WriteString(baseCStyle.Render(fmt.Sprintf("%6.2f ", r.PercentC)))
		b.WriteString(baseGStyle.Render(fmt.Sprintf("%6.2f", r.PercentG)))
		b.WriteString("\n")
	}
	if shown < len(m.report.Content) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("… showing %d of %d positions", shown, len(m.report.Content))))
	}
	return b.String()
}

func (m model) renderLengths(rows int) string {
	maxCount := 0
	for _, bin := range m.report.Lengths {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}
	barWidth := m.width/3 - 8
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("length  count"))
	b.WriteString("\n")
	shown := truncated(len(m.report.Lengths), rows)
	for _, bin := range m.report.Lengths[:shown] {
		b.WriteString(fmt.Sprintf("%-7.1f %-6d %s\n",
			bin.Center, bin.Count, barStyle.Render(bar(bin.Count, maxCount, barWidth))))
	}
	if shown < len(m.report.Lengths) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("… showing %d of %d bins", shown, len(m.report.Lengths))))
	}
	return b.String()
}

// bar scales count against maxCount into a block bar of at most width runes.
// A non-zero count always draws at least one block.
func bar(count, maxCount, width int) string {
	if count == 0 || maxCount == 0 {
		return ""
	}
	n := count * width / maxCount
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// truncated caps table rows to what fits in the panel.
func truncated(total, rows int) int {
	if total < rows {
		return total
	}
	return rows
}

func (m model) renderStatusBar() string {
	left := fmt.Sprintf("%d reads · %d bp", m.report.Summary.TotalSequences, m.report.Summary.TotalLength)
	right := "Press 'h' for help · 'q' to quit"
	spacing := m.width - len(left) - len(right) - 4
	if spacing < 1 {
		spacing = 1
	}
	return statusBarStyle.
		Width(m.width).
		Render(left + strings.Repeat(" ", spacing) + right)
}

func (m model) renderHelpModal() string {
	helpContent := `FASTQ Report Browser - Help

Navigation:
  up/down, j/k   Navigate views
  1-4            Jump to view

Views:
  1              Summary
  2              Per base quality (colored by band: <20 poor, <28 medium)
  3              Per base content
  4              Length distribution

Other:
  h              Toggle this help
  q, ctrl+c      Quit`

	return containerStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(helpContent)
}

func main() {
	path := "report.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	rep, err := loadReport(path)
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(initialModel(rep), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
