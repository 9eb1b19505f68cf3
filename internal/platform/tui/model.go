package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/diffusion-adventure/internal/adventure"
	"github.com/vovakirdan/diffusion-adventure/internal/backdrop"
	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/levels"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
	"github.com/vovakirdan/diffusion-adventure/internal/storage"
)

// Layout constants
const (
	widgetHeight   = 12 // Rows handed to a lesson's Render
	widgetMaxWidth = 76
	widgetMinWidth = 40
	backdropMinH   = 32 // Terminal height below which the backdrop is hidden
)

// Options configure one adventure session.
type Options struct {
	Config  config.Config
	Pace    config.Pace
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil; finished runs are not recorded then
	Player  string
	Logger  *log.Logger // May be nil
}

// backdropSource is implemented by lessons whose state feeds the animation.
type backdropSource interface {
	BackdropData() []float64
}

// runLog remembers the last finished run of a session. It is shared by
// every copy of the model.
type runLog struct {
	last *storage.Run
	err  error
}

// Model is the Bubble Tea model for one adventure.
type Model struct {
	opts    Options
	logger  *log.Logger
	machine *adventure.Machine
	keys    *KeyMapper
	runs    *runLog

	level  core.LevelID
	lesson registry.Lesson // Lesson the views are synced to
	synced bool

	screen   *core.Screen
	input    core.InputFrame
	text     textinput.Model
	hasText  bool
	backdrop *backdrop.Backdrop
	bdData   []float64
	bar      progress.Model
	help     help.Model
	scores   *ScoreboardModel // Non-nil while the hall of fame is open

	notice   string
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for one adventure.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.TickRate
	}
	if opts.Player == "" {
		opts.Player = "player"
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runs := &runLog{}
	machine := adventure.New(adventure.Options{
		Config:  opts.Config,
		Runtime: opts.Runtime,
		Logger:  logger,
		OnFinish: func(s adventure.Summary) {
			runs.record(opts, logger, s)
		},
	})

	text := textinput.New()
	text.Prompt = "✎ "

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:    opts,
		logger:  logger,
		machine: machine,
		keys:    NewKeyMapper(),
		runs:    runs,
		screen:  core.NewScreen(widgetWidth(opts.Runtime.ScreenW), widgetHeight),
		input:   core.NewInputFrame(),
		text:    text,
		bar: progress.New(
			progress.WithGradient(string(colorIndigo), string(colorViolet)),
			progress.WithoutPercentage(),
		),
		help:   h,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
	m.bar.Width = min(widgetWidth(m.width), 40)
	m.syncLevel()
	return m
}

// record saves a finished run to the hall of fame.
func (r *runLog) record(opts Options, logger *log.Logger, s adventure.Summary) {
	run := storage.Run{
		Player:         opts.Player,
		PatternScore:   s.Progress.PatternScore,
		AttentionScore: s.Progress.AttentionScore,
		Lessons:        s.Progress.CompletedCount(),
		Duration:       s.Duration(),
		Pace:           string(opts.Pace),
		CreatedAt:      s.FinishedAt,
	}
	logger.Info("adventure finished", "player", run.Player, "points", run.Points(), "duration", run.Duration.Round(time.Second))

	r.last = &run
	r.err = nil
	if opts.Store == nil {
		return
	}
	id, err := opts.Store.SaveRun(run)
	if err != nil {
		logger.Warn("could not save run", "error", err)
		r.err = err
		return
	}
	run.ID = id
}

func widgetWidth(screenW int) int {
	return core.Clamp(screenW-4, widgetMinWidth, widgetMaxWidth)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.Runtime.TickRate), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	// Cursor blink and other field messages
	if m.hasText {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	focused := m.textFocused()
	action := m.keys.MapKeyToFrame(msg, focused, &m.input)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.machine.Close()
		if m.backdrop != nil {
			m.backdrop.Close()
		}
		return m, tea.Quit

	case core.ActionRestart:
		m.machine.Restart()
		m.notice = ""
		m.syncLevel()
		return m, nil

	case core.ActionNext:
		m.advance()
		return m, nil

	case core.ActionNone:
		if focused {
			var cmd tea.Cmd
			m.text, cmd = m.text.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.machine.Current() {
	case core.LevelWelcome:
		switch action {
		case core.ActionConfirm:
			m.advance()
		case core.ActionFocus:
			sb := NewScoreboardModel(m.opts.Store, m.width, m.height)
			sb.embedded = true
			m.scores = &sb
		}
		m.input.Clear()
	case core.LevelCompletion:
		if action == core.ActionConfirm {
			m.machine.Restart()
			m.syncLevel()
		}
		m.input.Clear()
	}

	return m, nil
}

// advance follows the next-level button when it is shown.
func (m *Model) advance() {
	if !m.machine.CanAdvance() {
		m.notice = "Finish the activity to unlock the next level!"
		return
	}
	if err := m.machine.Next(); err != nil {
		m.logger.Warn("transition rejected", "level", m.machine.Current(), "error", err)
		m.notice = err.Error()
		return
	}
	m.notice = ""
	m.syncLevel()
}

// updateScores forwards keys to the hall of fame until it is closed.
func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		m.scores = nil
		return m, nil
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		m.machine.Close()
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// handleResize processes window resize events. Lesson state is kept; only
// the buffers change size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height

	m.screen.Resize(widgetWidth(msg.Width), widgetHeight)
	m.bar.Width = min(widgetWidth(msg.Width), 40)
	m.help.Width = msg.Width
	m.text.Width = min(widgetWidth(msg.Width)-4, 60)
	if m.backdrop != nil {
		m.backdrop.Resize(msg.Width, m.opts.Config.Backdrop.Height)
	}

	if m.scores != nil {
		next, _ := m.scores.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scores = &sb
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.opts.Runtime.TickInterval()

	if m.hasText {
		m.input.SetText(m.text.Value())
	}
	m.machine.Step(m.input, dt)

	// Clear input for next frame
	m.input.Clear()

	m.refreshBackdrop()
	if m.backdrop != nil {
		m.backdrop.Step(dt)
	}
	m.syncTextFocus()

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// syncLevel rebuilds the per-level views after a transition.
func (m *Model) syncLevel() {
	id := m.machine.Current()
	lesson := m.machine.Lesson()
	if m.synced && id == m.level && lesson == m.lesson {
		return
	}
	m.synced = true
	m.level = id
	m.lesson = lesson
	m.screen.Clear()
	m.input = core.NewInputFrame()

	m.hasText = false
	m.text.Reset()
	if te, ok := lesson.(registry.TextEntry); ok {
		m.hasText = true
		m.text.Placeholder = te.Placeholder()
		m.text.CharLimit = te.CharLimit()
	}
	m.syncTextFocus()

	m.resetBackdrop(nil)
}

// syncTextFocus shows the cursor in the text field only when typed keys
// go there.
func (m *Model) syncTextFocus() {
	if m.textFocused() {
		if !m.text.Focused() {
			m.text.Focus()
		}
		return
	}
	m.text.Blur()
}

func (m Model) textFocused() bool {
	te, ok := m.machine.Lesson().(registry.TextEntry)
	return ok && te.TextFocused()
}

// resetBackdrop replaces the animation with a fresh one for the current
// level.
func (m *Model) resetBackdrop(data []float64) {
	if m.backdrop != nil {
		m.backdrop.Close()
		m.backdrop = nil
	}
	m.bdData = data
	if !m.opts.Config.Backdrop.Enabled {
		return
	}

	lvl := levels.Get(m.level)
	if lvl == nil {
		return
	}
	kind, err := backdrop.ParseKind(lvl.Backdrop)
	if err != nil {
		m.logger.Warn("no backdrop for level", "level", m.level, "error", err)
		return
	}
	b, err := backdrop.New(kind, data, m.width, m.opts.Config.Backdrop.Height, m.opts.Runtime.Seed)
	if err != nil {
		m.logger.Warn("backdrop failed", "kind", kind, "error", err)
		return
	}
	m.backdrop = b
}

// refreshBackdrop rebuilds the animation when the lesson's payload changed.
func (m *Model) refreshBackdrop() {
	src, ok := m.machine.Lesson().(backdropSource)
	if !ok {
		return
	}
	data := src.BackdropData()
	if !slices.Equal(data, m.bdData) {
		m.resetBackdrop(data)
	}
}

// saveScreenshot saves the current widget to a file.
func (m *Model) saveScreenshot() {
	lesson := m.machine.Lesson()
	if lesson == nil {
		return
	}
	m.screen.Clear()
	lesson.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".adventure", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.level, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.notice = "Screenshot saved to " + path
}

// Machine exposes the state machine, for tests and the SSH server.
func (m Model) Machine() *adventure.Machine {
	return m.machine
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// LastRun returns the run recorded when the adventure was last finished,
// or nil.
func (m Model) LastRun() *storage.Run {
	return m.runs.last
}

// Run starts the Bubble Tea program for one adventure.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.machine.Close()
	}
	return err
}
