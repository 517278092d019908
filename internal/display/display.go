// Package display provides the guided-cooking terminal UI using Bubble Tea.
//
// The [UI] type keeps the current step card and an input prompt at the
// bottom of the terminal. Everything else is printed above the rendered
// area via Program.Println / Printf, so concurrent writes never garble
// the display.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/stovetop/internal/engine"
	"github.com/hammamikhairi/stovetop/internal/heat"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	timerRunStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	timerDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	timerIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#18181b")).
			Background(lipgloss.Color("#fde68a")).
			Bold(true)

	barFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#86efac"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f3f46"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

const prompt = "stovetop> "

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely
// call [UI.Show], [UI.Println], [UI.Printf] and read from
// [UI.InputChan] at any time.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	ready   atomic.Bool
	done    atomic.Bool
	latest  atomic.Pointer[engine.View]
}

// NewUI creates the display. Call Run() to start.
func NewUI() *UI {
	return &UI{
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Show replaces the step card. Thread-safe. Views sent before the
// program is running are kept and drawn on start.
func (u *UI) Show(v engine.View) {
	u.latest.Store(&v)
	if u.ready.Load() && !u.done.Load() {
		u.program.Send(viewMsg(v))
	}
}

// Println prints a line above the card. Thread-safe. Falls back to
// fmt.Println when the program is not running.
func (u *UI) Println(a ...interface{}) {
	if u.ready.Load() && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the card on its own line.
// Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.ready.Load() && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints a line the assistant says.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintVoice prints a transcribed voice command.
func (u *UI) PrintVoice(text string) {
	u.Println(secondaryStyle.Render("[voice] ") + primaryStyle.Render(text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("stovetop") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	m := newModel(u.inputCh, u.readyCh, u.PrintUserInput)
	if v := u.latest.Load(); v != nil {
		m.view, m.hasView = *v, true
	}

	u.program = tea.NewProgram(m)
	go func() {
		<-u.readyCh
		u.ready.Store(true)
		if v := u.latest.Load(); v != nil {
			u.program.Send(viewMsg(*v))
		}
	}()

	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type viewMsg engine.View

type model struct {
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string)
	view    engine.View
	hasView bool
	width   int
}

func newModel(inputCh chan<- string, readyCh chan struct{}, echoFn func(string)) model {
	ti := textinput.New()
	// A plain-text prompt keeps the textinput width math correct; styled
	// prompts add ANSI bytes that break its offset calculations.
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Placeholder = "next, back, start, pause, high heat, add a minute..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	return model{
		input:   ti,
		inputCh: inputCh,
		readyCh: readyCh,
		echoFn:  echoFn,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, signalReady(m.readyCh))
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) == "" {
				return m, nil
			}
			select {
			case m.inputCh <- v:
			default:
			}
			echoFn := m.echoFn
			return m, func() tea.Msg {
				if echoFn != nil {
					echoFn(v)
				}
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(prompt) {
			m.input.Width = msg.Width - len(prompt)
		}
		return m, nil

	case viewMsg:
		m.view = engine.View(msg)
		m.hasView = true
		return m, tea.SetWindowTitle(windowTitle(m.view))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	if m.hasView {
		b.WriteString(renderCard(m.view, m.width))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

// ── Rendering ────────────────────────────────────────────────────

const barWidth = 20

func renderCard(v engine.View, width int) string {
	if width <= 0 {
		width = 80
	}
	inner := max(width-4, 20)

	var lines []string
	lines = append(lines, headerStyle.Render(fmt.Sprintf("%s %s · Step %d/%d", v.Action.Icon(), v.RecipeName, v.Index+1, v.Count))+
		"  "+progressBar(v.Progress, barWidth))

	if v.Phase == engine.PhaseReviewing {
		lines = append(lines, primaryStyle.Render("All steps done. Rate this cook when you're ready."))
		return cardStyle.Width(inner).Render(strings.Join(lines, "\n"))
	}

	lines = append(lines, primaryStyle.Width(inner-2).Render(v.Instruction))
	lines = append(lines, timerLine(v))
	if opts := heatLine(v); opts != "" {
		lines = append(lines, opts)
	}
	if v.NextPreview != "" {
		lines = append(lines, secondaryStyle.Render("Next: "+v.NextPreview))
	}
	return cardStyle.Width(inner).Render(strings.Join(lines, "\n"))
}

func timerLine(v engine.View) string {
	style := timerIdleStyle
	switch v.Phase {
	case engine.PhaseRunning:
		style = timerRunStyle
	case engine.PhaseExpired, engine.PhaseAutoAdvancing:
		style = timerDoneStyle
	}
	if v.Highlight {
		style = highlightStyle
	}

	line := style.Render("⏱ "+v.Time) + "  " + secondaryStyle.Render(phaseLabel(v)) +
		"  " + primaryStyle.Render(v.Heat.ShortLabel())
	if v.Optimized {
		line += secondaryStyle.Render(" (optimized)")
	}
	return line
}

func phaseLabel(v engine.View) string {
	switch v.Phase {
	case engine.PhaseIdle:
		if v.Time == "00:00" {
			return "no timer"
		}
		return "ready"
	case engine.PhaseRunning:
		return "running"
	case engine.PhasePaused:
		return "paused"
	case engine.PhaseExpired:
		return "time's up"
	case engine.PhaseAutoAdvancing:
		return fmt.Sprintf("next step in %ds", v.AutoAdvance)
	default:
		return v.Phase.String()
	}
}

// heatLine lists what each flame level leaves on the clock, marking the
// current one.
func heatLine(v engine.View) string {
	if len(v.HeatOptions) == 0 || !v.CanOptimize {
		return ""
	}
	parts := make([]string, 0, len(v.HeatOptions))
	for _, o := range v.HeatOptions {
		s := fmt.Sprintf("%s %s", o.Level, heat.FormatTime(o.Seconds))
		if o.Level == v.Heat {
			s = "▸" + s
		}
		if !o.Safe {
			s += warnStyle.Render(" ⚠")
		}
		parts = append(parts, s)
	}
	return secondaryStyle.Render("Heat: ") + strings.Join(parts, secondaryStyle.Render(" · "))
}

func progressBar(p float64, width int) string {
	p = min(max(p, 0), 1)
	filled := int(p*float64(width) + 0.5)
	return barFillStyle.Render(strings.Repeat("━", filled)) +
		barEmptyStyle.Render(strings.Repeat("─", width-filled)) +
		secondaryStyle.Render(fmt.Sprintf(" %3.0f%%", p*100))
}

func windowTitle(v engine.View) string {
	if v.Phase == engine.PhaseReviewing {
		return "Stovetop · done"
	}
	return fmt.Sprintf("Stovetop · Step %d/%d · %s", v.Index+1, v.Count, v.Time)
}
