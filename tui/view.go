package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
	"github.com/scottkirkwood/forma/studio"
)

const (
	barWidth   = 10 // parameter bar cells
	chartWidth = 30
	labelCap   = 24 // gallery label runes before truncation
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	sideStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(sideWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	busyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

const helpFooter = `─────────────────────────
1-4:mode tab:select  k/j:tune
space:pause w:wind r:roll/reset
s:svg p:png g:gif ?:help q:quit`

const helpScreen = `╔══════════════════════════════════════════╗
║             KEYBOARD CONTROLS            ║
╠══════════════════════════════════════════╣
║  1..4      shape / tree / generate / edit║
║  tab       next parameter or input field ║
║  up/down   nudge the selected parameter  ║
║  space     pause or resume tree growth   ║
║  w         toggle the wind sway          ║
║  r         roll a shape / regrow a tree  ║
║  s / p / g export svg / png / growth gif ║
║  enter     focus or send the AI prompt   ║
║  esc       leave the prompt line         ║
║  ?         toggle this help              ║
║  q         quit                          ║
╚══════════════════════════════════════════╝`

// View renders the canvas pane beside the control panel.
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		sideStyle.Render(m.sidePanel()),
	)
	if m.showHelp {
		return helpScreen + "\n" + body
	}
	return body
}

func (m Model) sidePanel() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("FORMA  "+strings.ToUpper(m.studio.Mode.String())) + "\n")
	s.WriteString(m.statusLine() + "\n\n")
	switch m.studio.Mode {
	case studio.Shape:
		m.shapePanel(&s)
	case studio.Tree:
		m.treePanel(&s)
	case studio.Generate:
		m.promptPanel(&s, false)
	case studio.Edit:
		m.promptPanel(&s, true)
	}
	m.galleryPanel(&s)
	s.WriteString(helpStyle.Render(helpFooter))
	return s.String()
}

func (m Model) statusLine() string {
	if m.busy {
		return busyStyle.Render("* " + m.status)
	}
	if m.status == "" {
		return labelStyle.Render("ready")
	}
	return valueStyle.Render(m.status)
}

func (m Model) shapePanel(s *strings.Builder) {
	m.paramLines(s)
	if m.crossed {
		s.WriteString(warnStyle.Render("  outline crosses itself") + "\n")
	}
	if len(m.profile) > 1 {
		chart := asciigraph.Plot(m.profile,
			asciigraph.Height(5), asciigraph.Width(chartWidth),
			asciigraph.Caption("radius profile"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
}

func (m Model) treePanel(s *strings.Builder) {
	m.paramLines(s)
	t := m.studio.Tree
	g := m.studio.Growth
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("  growth   ") + valueStyle.Render(fmt.Sprintf("%3.0f%% (%s)", g.Growth*100, g.Phase())) + "\n")
	wind := "off"
	if g.Wind {
		wind = fmt.Sprintf("on, t=%.1fs", g.Time)
	}
	s.WriteString(labelStyle.Render("  wind     ") + valueStyle.Render(wind) + "\n")
	s.WriteString(labelStyle.Render("  segments ") + valueStyle.Render(fmt.Sprintf("%d", fractal.SegmentCount(t.BranchCount, t.Depth))) + "\n")
	if len(m.growthHist) > 1 {
		chart := asciigraph.Plot(m.growthHist,
			asciigraph.Height(4), asciigraph.Width(chartWidth),
			asciigraph.Caption("growth"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
}

func (m Model) promptPanel(s *strings.Builder, edit bool) {
	if edit {
		s.WriteString(m.inputLine("image", m.imgPath, m.field == fieldPath) + "\n")
		s.WriteString(m.inputLine("prompt", m.prompt, m.field == fieldPrompt) + "\n")
	} else {
		s.WriteString(m.inputLine("prompt", m.prompt, true) + "\n")
	}
	s.WriteString("\n")
	if m.typing {
		s.WriteString(labelStyle.Render("  enter sends, esc leaves the line") + "\n")
	} else {
		s.WriteString(labelStyle.Render("  enter focuses the prompt") + "\n")
	}
}

func (m Model) inputLine(label, text string, focused bool) string {
	cursor := ""
	if focused && m.typing {
		cursor = "_"
	}
	line := fmt.Sprintf("%-7s %s%s", label, text, cursor)
	if focused {
		return cursorStyle.Render("> " + line)
	}
	return "  " + labelStyle.Render(line)
}

func (m Model) paramLines(s *strings.Builder) {
	for i, p := range m.modeParams() {
		val := p.get(m.studio)
		ratio := forma.Clamp((val-p.lo)/(p.hi-p.lo), 0, 1)
		filled := int(ratio * barWidth)
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-9s %s %.2f", p.name, bar, val)
		if i == m.selected {
			s.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
}

func (m Model) galleryPanel(s *strings.Builder) {
	entries := m.studio.Hist.Entries()
	if len(entries) == 0 {
		return
	}
	s.WriteString("\n" + labelStyle.Render("GALLERY") + "\n")
	shown := entries
	if len(shown) > 4 {
		shown = shown[:4]
	}
	for _, e := range shown {
		line := fmt.Sprintf("  %s %-8s %s", e.At.Format("15:04:05"), e.Mode, truncate(e.Label, labelCap))
		s.WriteString(valueStyle.Render(line) + "\n")
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
