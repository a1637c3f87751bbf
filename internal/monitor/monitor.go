// Package monitor provides a live terminal view of the cognitive state
// engine: a text input feeding the friction detector, simulated facial and
// vocal labels, and the resulting classification updating in real time.
package monitor

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cognify/internal/cognitive"
	"github.com/abhisek/cognify/internal/friction"
	"github.com/abhisek/cognify/internal/ui/theme"
)

// decayTickMsg drives friction intensity decay at the frame rate.
type decayTickMsg time.Time

// Label cycles for simulating the external classifiers. The empty entry
// means "no signal yet".
var (
	facialLabels = []string{"", "neutral", "sad", "fear", "angry", "frustrated", "surprise"}
	vocalLabels  = []string{"", "neutral", "stressed", "hesitant", "frustrated"}
)

// Model is the Bubble Tea model for the monitor. The engine, the decay tick,
// and all input events share the single Bubble Tea loop, so the intensity
// value has exactly one writer at any instant.
type Model struct {
	engine *cognitive.Engine
	input  textinput.Model

	facialIdx int
	vocalIdx  int

	width  int
	height int
}

// New creates a monitor around the given engine.
func New(engine *cognitive.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer here..."

	return Model{
		engine: engine,
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), decayTick())
}

func decayTick() tea.Cmd {
	return tea.Tick(friction.DecayInterval, func(t time.Time) tea.Msg {
		return decayTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case decayTickMsg:
		m.engine.DecayFriction()
		return m, decayTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			// New question: friction must not leak across inputs.
			m.engine.ResetFriction()
			m.input.SetValue("")
			return m, nil
		case "ctrl+e":
			m.facialIdx = (m.facialIdx + 1) % len(facialLabels)
			m.engine.SetFacialExpression(facialLabels[m.facialIdx])
			return m, nil
		case "ctrl+o":
			m.vocalIdx = (m.vocalIdx + 1) % len(vocalLabels)
			m.engine.SetVocalState(vocalLabels[m.vocalIdx])
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.engine.ObserveText(m.input.Value())
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	fs := m.engine.Friction()
	sig := m.engine.Signals()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Cognify Monitor"))
	b.WriteString("\n\n")

	badge := theme.ForState(string(m.engine.State())).Render(m.engine.State().Label())
	b.WriteString(fmt.Sprintf("State: %s   Score: %d\n\n", badge, m.engine.Score()))

	b.WriteString(fmt.Sprintf("Friction  %s %.2f\n", renderBar(fs.Intensity, 24), fs.Intensity))
	b.WriteString(theme.Body.Render(fmt.Sprintf("Backspaces: %d   Rephrases: %d", fs.BackspaceCount, fs.RephraseCount)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("Facial: %s   Vocal: %s", orNone(sig.FacialExpression), orNone(sig.VocalState))))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	events := m.engine.RecentEvents(5)
	if len(events) > 0 {
		b.WriteString(theme.Hint.Render("Recent:"))
		b.WriteString("\n")
		for i := len(events) - 1; i >= 0; i-- {
			e := events[i]
			line := fmt.Sprintf("  %s  %s (score %d)",
				e.Timestamp.Format("15:04:05"),
				theme.ForState(string(e.State)).Render(e.State.Label()),
				e.Score)
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render("Enter new question · Ctrl+E facial · Ctrl+O vocal · Ctrl+C quit"))

	v.SetContent(lipgloss.NewStyle().Padding(1, 2).Render(b.String()))
	return v
}

// renderBar draws a fixed-width intensity bar.
func renderBar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(bar)
}

func orNone(label string) string {
	if label == "" {
		return "—"
	}
	return label
}

// Run starts the monitor program.
func Run(engine *cognitive.Engine) error {
	p := tea.NewProgram(New(engine))
	_, err := p.Run()
	return err
}
