package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spinlab/internal/elements"
	"github.com/san-kum/spinlab/internal/notation"
	"github.com/san-kum/spinlab/internal/precession"
	"github.com/san-kum/spinlab/internal/relativity"
	"github.com/san-kum/spinlab/internal/shell"
)

const (
	canvasWidth   = 40
	canvasHeight  = 20
	traceCapacity = 120
	frameRate     = 30
	minField      = 1e-3
	maxField      = 1e3
)

type TickMsg time.Time

// ExplorerOptions seed the explorer state.
type ExplorerOptions struct {
	AtomicNumber     int
	MagneticField    float64
	ThomasCorrection bool
	Electron         int
	Permissive       bool
	Theme            string
}

// Explorer is the bubbletea model behind `spinlab explore`: the shell diagram
// of one atom with the selected electron's spin precessing.
type Explorer struct {
	z          int
	field      float64
	thomas     bool
	permissive bool
	initial    ExplorerOptions

	config    shell.Configuration
	electrons []shell.Electron
	selected  int

	gamma float64
	omega float64
	freq  float64
	err   error

	angle    float64
	trace    []float64
	running  bool
	showHelp bool

	theme  int
	styles styles
	canvas *Canvas
}

func NewExplorer(opts ExplorerOptions) Explorer {
	m := Explorer{
		initial: opts,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		trace:   make([]float64, 0, traceCapacity),
	}
	for i, name := range ThemeNames() {
		if name == opts.Theme {
			m.theme = i
		}
	}
	m.styles = newStyles(Themes[m.theme])
	m.reset()
	return m
}

func (m Explorer) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.setAtomicNumber(m.z + 1)
		case "down", "j":
			m.setAtomicNumber(m.z - 1)
		case "pgup":
			m.setAtomicNumber(m.z + 10)
		case "pgdown":
			m.setAtomicNumber(m.z - 10)
		case "right", "l", "tab":
			m.selectElectron(m.selected + 1)
		case "left", "h", "shift+tab":
			m.selectElectron(m.selected - 1)
		case "]", "+", "=":
			m.setField(m.field * 2)
		case "[", "-", "_":
			m.setField(m.field / 2)
		case "t":
			m.thomas = !m.thomas
			m.recompute()
		case "c":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = newStyles(Themes[m.theme])
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Explorer) reset() {
	m.z = m.initial.AtomicNumber
	m.field = m.initial.MagneticField
	m.thomas = m.initial.ThomasCorrection
	m.permissive = m.initial.Permissive
	m.selected = m.initial.Electron
	m.angle = 0
	m.trace = m.trace[:0]
	m.running = true
	m.setAtomicNumber(m.z)
}

func (m *Explorer) setAtomicNumber(z int) {
	upper := shell.MaxAtomicNumber
	if m.permissive {
		upper = shellCapacity()
	}
	m.z = max(1, min(z, upper))
	m.config = shell.Fill(m.z)
	m.electrons = shell.Electrons(m.config)
	m.selectElectron(m.selected)
}

func (m *Explorer) setField(b float64) {
	m.field = max(minField, min(b, maxField))
	m.recompute()
}

func (m *Explorer) selectElectron(i int) {
	n := len(m.electrons)
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = ((i % n) + n) % n
	m.recompute()
}

func (m *Explorer) recompute() {
	m.err = nil
	m.gamma = relativity.FromAtomicNumber(m.z)
	m.omega = precession.Larmor(m.field)
	if len(m.electrons) == 0 {
		m.freq = 0
		return
	}
	qn := m.electrons[m.selected].Numbers
	if m.permissive {
		m.freq = precession.Spin(m.z, m.field, qn, m.thomas)
		return
	}
	m.freq, m.err = precession.SpinChecked(m.z, m.field, qn, m.thomas)
}

// advance turns the spin arrow by an amount that grows with the decade of
// the frequency, since real rates are far too fast to show.
func (m *Explorer) advance() {
	m.angle = math.Mod(m.angle+AnimationStep(m.freq), 2*math.Pi)
	m.trace = append(m.trace, math.Cos(m.angle))
	if len(m.trace) > traceCapacity {
		m.trace = m.trace[1:]
	}
}

// AnimationStep is the per-frame angle increment for a precession frequency.
// Clockwise (positive) frequencies turn the arrow clockwise.
func AnimationStep(freq float64) float64 {
	if freq == 0 || math.IsNaN(freq) {
		return 0
	}
	decades := math.Log10(1 + math.Abs(freq))
	step := 0.02 + 0.1*math.Min(1, decades/15)
	return -math.Copysign(step, freq)
}

func shellCapacity() int {
	total := 0
	for _, c := range shell.Capacities {
		total += c
	}
	return total
}

func (m Explorer) title() string {
	catalog, err := elements.Default()
	if err == nil {
		if el, err := catalog.ByNumber(m.z); err == nil {
			return fmt.Sprintf("%s  %s  Z=%d", el.Symbol, strings.ToUpper(el.Name), m.z)
		}
	}
	return fmt.Sprintf("Z=%d", m.z)
}

func (m Explorer) View() string {
	m.canvas.Clear()
	DrawAtom(m.canvas, m.config, m.selected, m.angle)
	canvasView := m.styles.canvas.Render(m.canvas.String())

	st := m.styles
	var s strings.Builder
	s.WriteString(st.header.Render(m.title()) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(st.row("Field", fmt.Sprintf("%g T", m.field)))
	s.WriteString(st.row("Thomas", onOff(m.thomas)))
	s.WriteString(st.row("γ", strconv.FormatFloat(m.gamma, 'f', 4, 64)))
	s.WriteString(st.row("Larmor", notation.Frequency(m.omega)))

	if len(m.electrons) > 0 {
		e := m.electrons[m.selected]
		s.WriteString(st.row("Electron", fmt.Sprintf("%d/%d  shell %d", m.selected+1, len(m.electrons), e.Shell+1)))
		s.WriteString(st.row("Numbers", e.Numbers.String()))
	}

	if m.err != nil {
		s.WriteString(st.warn.Render(m.err.Error()) + "\n")
	} else {
		s.WriteString(st.row("Spin", st.active.Render(notation.Frequency(m.freq))))
		s.WriteString(st.row("Speed", precession.Describe(m.freq)))
		s.WriteString(st.row("Rotation", precession.Rotation(m.freq).String()))
	}
	if precession.IsRelativisticSignificant(m.z) {
		s.WriteString(st.active.Render("relativistic effects significant") + "\n")
	}

	if len(m.trace) > 1 {
		chart := asciigraph.Plot(m.trace,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.LowerBound(-1),
			asciigraph.UpperBound(1),
			asciigraph.Caption("spin projection"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString("\nSHELLS\n")
	for i, count := range m.config {
		capacity := shell.Capacities[i]
		line := fmt.Sprintf("n=%d %s %2d/%d", i+1, ProgressBar(float64(count)/float64(capacity), 10), count, capacity)
		if len(m.electrons) > 0 && m.electrons[m.selected].Shell == i {
			s.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.value.Render(line) + "\n")
		}
	}

	s.WriteString(st.help.Render("─────────────────────\n↑↓:Z  ←→:Electron  []:Field\nT:Thomas C:Theme SP:Pause Q:Quit ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.stats.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Up/K, Down/J  - Atomic number ±1    ║
║  PgUp, PgDown  - Atomic number ±10   ║
║  Left, Right   - Select electron     ║
║  [ ]           - Halve/double field  ║
║  T             - Toggle Thomas term  ║
║  C             - Cycle themes        ║
║  Space         - Pause/Resume        ║
║  R             - Reset               ║
║  ?             - Toggle this help    ║
║  Q             - Quit                ║
╚══════════════════════════════════════╝`

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Run starts the explorer in the alternate screen.
func Run(opts ExplorerOptions) error {
	p := tea.NewProgram(NewExplorer(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
