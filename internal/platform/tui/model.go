package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/game"
)

// Muter silences the audio output.
type Muter interface {
	SetMuted(muted bool)
}

// Options configures the terminal host.
type Options struct {
	Config    core.RuntimeConfig
	Shades    [4]string
	CellWidth int
	Muted     bool
	Muter     Muter // optional
	Logger    *log.Logger
}

var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BAC0F"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
)

// Model is the Bubble Tea model driving the runtime.
type Model struct {
	runtime  *game.Runtime
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	muter    Muter
	logger   *log.Logger

	buttons  core.Buttons // pressed since the previous tick
	debug    bool
	muted    bool
	quitting bool
	width    int
	height   int

	fps       float64
	fpsTicks  int
	fpsWindow time.Time
}

// NewModel creates a new Bubble Tea model for the given runtime.
func NewModel(rt *game.Runtime, opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.FrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.FatalLevel)
	}

	m := Model{
		runtime:  rt,
		renderer: NewRenderer(opts.Shades, opts.CellWidth),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		config:   cfg,
		muter:    opts.Muter,
		logger:   logger,
		muted:    opts.Muted,
	}
	if m.muter != nil {
		m.muter.SetMuted(m.muted)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Joypad keys are latched until the
// next tick so presses between frames are not lost.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Debug):
		m.debug = !m.debug
		m.help.ShowAll = m.debug
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		if m.muter != nil {
			m.muter.SetMuted(m.muted)
		}
		m.logger.Debug("audio toggled", "muted", m.muted)
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.buttons.Press(m.keys.Buttons(msg))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.runtime.Step(m.buttons)
	m.buttons.Clear()

	m.fpsTicks++
	if m.fpsWindow.IsZero() {
		m.fpsWindow = now
	} else if elapsed := now.Sub(m.fpsWindow); elapsed >= time.Second {
		m.fps = float64(m.fpsTicks) / elapsed.Seconds()
		m.fpsTicks = 0
		m.fpsWindow = now
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".snakeboy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snakeboy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(PlainText(m.runtime.Frame())+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// tooSmall reports whether the terminal cannot fit the frame.
// Unknown sizes are assumed to fit.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	return m.width < m.renderer.Width() || m.height < core.ScreenTilesH
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall() {
		return warnStyle.Render(fmt.Sprintf("terminal too small: need %dx%d, have %dx%d",
			m.renderer.Width(), core.ScreenTilesH, m.width, m.height))
	}

	var sb strings.Builder
	sb.WriteString(m.renderer.Render(m.runtime.Frame()))
	sb.WriteString("\n")
	if m.debug {
		sb.WriteString(debugStyle.Render(m.debugLine()))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) debugLine() string {
	st := m.runtime.Stats()
	muted := ""
	if m.muted {
		muted = " muted"
	}
	return fmt.Sprintf("tick %d  %s  score %d  level %d  len %d  best %d  games %d  %.1f fps%s",
		st.Tick, st.Phase, st.Board.Score, st.Board.Level, st.Board.SnakeLen,
		st.Best, st.Games, m.fps, muted)
}

// Run starts the Bubble Tea program for the runtime.
func Run(rt *game.Runtime, opts Options) error {
	p := tea.NewProgram(
		NewModel(rt, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
