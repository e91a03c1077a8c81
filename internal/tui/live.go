// Package tui is the terminal front end: a live side view of the arena with
// the same key bindings as the GUI.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/michael-hamilton/physbox/internal/arena"
	"github.com/michael-hamilton/physbox/internal/config"
	"github.com/michael-hamilton/physbox/internal/metrics"
	"github.com/michael-hamilton/physbox/internal/sandbox"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const tickDt = 1.0 / 60.0

// World window shown in the side view.
const (
	viewHalfX = 13.0
	viewMaxY  = 28.0
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	cfg    *config.Config
	sb     *arena.Sandbox
	paused bool

	history []float64 // kinetic energy trace
	ticks   int

	width  int
	height int
}

func newModel(cfg *config.Config) model {
	return model{
		cfg:     cfg,
		sb:      arena.NewHeadless(cfg),
		history: make([]float64, 0, 240),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.paused {
			m.sb.Loop.Tick(tickDt)
			m.ticks++
			m.history = append(m.history, metrics.TotalKinetic(m.sb.World))
			if len(m.history) > 240 {
				m.history = m.history[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	ctrl := m.sb.Controller
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
	case "s":
		ctrl.HandleKey(sandbox.KeySphere)
	case "b":
		ctrl.HandleKey(sandbox.KeyBox)
	case "c":
		ctrl.HandleKey(sandbox.KeyCapsule)
	case " ":
		ctrl.HandleKey(sandbox.KeyRandom)
	case "r":
		ctrl.HandleKey(sandbox.KeyClear)
	case "f":
		ctrl.HandleKey(sandbox.KeyFloor)
	case "g":
		ctrl.HandleKey(sandbox.KeyAuto)
	}
	return m, nil
}

func (m model) View() string {
	cw := m.width - 6
	ch := m.height - 10
	if cw < 50 {
		cw = 50
	}
	if ch < 14 {
		ch = 14
	}

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	m.drawArena(canvas, cw, ch)

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	auto := ""
	if m.sb.Loop.AutoSpawnOn() {
		auto = "  " + yellow.Render("auto")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s%s\n\n",
		statusIcon, cyan.Render("physbox :: "+m.cfg.Preset), statusText, auto))

	for _, row := range canvas {
		b.WriteString("   " + string(row) + "\n")
	}

	reg := m.sb.Registry
	dynamic := reg.Len() - reg.CountTag(sandbox.TagFloor)
	floor := "off"
	if m.sb.Controller.FloorPresent() {
		floor = "on"
	}
	b.WriteString(fmt.Sprintf("\n   %s%s  %s%s  %s%s  %s%s\n",
		dim.Render("objects="), white.Render(fmt.Sprintf("%d", dynamic)),
		dim.Render("floor="), white.Render(floor),
		dim.Render("t="), white.Render(fmt.Sprintf("%.1fs", float64(m.ticks)*tickDt)),
		dim.Render("ke="), white.Render(fmt.Sprintf("%.1f", metrics.TotalKinetic(m.sb.World)))))

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("ke"), cyan.Render(sparkline(m.history, 32))))
	}

	b.WriteString("\n" + dim.Render("   s sphere  b box  c capsule  space random  r clear  f floor  g auto  p pause  q quit") + "\n")

	return b.String()
}

// drawArena projects body centers onto the side view: world x maps to
// columns, world y to rows, z is flattened.
func (m model) drawArena(canvas [][]rune, cw, ch int) {
	for _, o := range m.sb.Registry.Objects() {
		t, ok := o.Body.MotionState()
		if !ok {
			continue
		}

		x := float64(t.Position.X())
		y := float64(t.Position.Y())

		col := int((x + viewHalfX) / (2 * viewHalfX) * float64(cw))
		row := ch - 1 - int(y/viewMaxY*float64(ch))
		if col < 0 || col >= cw || row < 0 || row >= ch {
			continue
		}

		var c rune
		switch o.Tag {
		case sandbox.TagFloor:
			c = '='
		case string(sandbox.KindSphere):
			c = 'o'
		case string(sandbox.KindCapsule):
			c = '|'
		default:
			c = '#'
		}
		canvas[row][col] = c
	}
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// RunLive starts the terminal front end and blocks until quit.
func RunLive(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
