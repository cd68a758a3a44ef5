package tui

import (
	"bytes"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/fchimpan/gh-matrix-rain/internal/intro"
	"github.com/fchimpan/gh-matrix-rain/internal/palette"
	"github.com/fchimpan/gh-matrix-rain/internal/rain"
	"github.com/fchimpan/gh-matrix-rain/internal/screen"
)

type Config struct {
	Seed         uint64
	CustomColors bool
	Flat         bool
	NoIntro      bool
	Logger       *log.Logger
}

// Model runs the rain inside a bubbletea program. The simulation draws into
// an in-memory canvas which View renders with cached lipgloss styles.
type Model struct {
	cfg    Config
	now    func() time.Time
	logger *log.Logger

	rng    *rand.Rand
	canvas *screen.Canvas
	ramp   palette.Ramp
	engine *rain.Engine

	ready bool
	w     int
	h     int

	// Startup intro: runs once per launch, before the first engine tick.
	introActive bool
	introDone   bool
	intro       *intro.Sequence
	introFrames int

	viewBuf bytes.Buffer
	styles  map[palette.Attr]lipgloss.Style
}

func NewModel(cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	canvas := screen.NewCanvas(0, 0, cfg.CustomColors)
	ramp := palette.Build(canvas, palette.Options{Flat: cfg.Flat})
	return &Model{
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
		rng:       rain.NewRand(cfg.Seed),
		canvas:    canvas,
		ramp:      ramp,
		introDone: cfg.NoIntro,
		styles:    map[palette.Attr]lipgloss.Style{},
	}
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = rain.FrameDelay
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.frameDuration())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		m.rebuild()
		return m, nil
	case tickMsg:
		if !m.ready {
			return m, tickCmd(m.frameDuration())
		}
		if m.introActive {
			if m.intro.Expired(time.Time(msg)) {
				m.endIntro(intro.ReasonTimeout)
			} else {
				m.intro.Fill(m.canvas)
				m.canvas.Flush()
				m.introFrames++
			}
			return m, tickCmd(m.frameDuration())
		}
		m.engine.Tick(m.canvas)
		m.canvas.Flush()
		return m, tickCmd(m.frameDuration())
	case tea.KeyMsg:
		if m.introActive {
			if msg.Type == tea.KeyCtrlC {
				m.endIntro(intro.ReasonInterrupt)
				return m, tea.Quit
			}
			m.endIntro(intro.ReasonKey)
			return m, nil
		}
		if rain.IsQuitKey(screen.Key(msg.String())) {
			frames := uint64(0)
			if m.engine != nil {
				frames = m.engine.Frame()
			}
			m.logger.Debug("rain stopped", "reason", "key", "key", msg.String(), "frames", frames)
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) frameDuration() time.Duration {
	if m.introActive || !m.ready {
		return intro.FrameDelay
	}
	return rain.FrameDelay
}

func (m *Model) rebuild() {
	m.canvas.Resize(m.h, m.w)
	m.canvas.Clear()
	m.engine = rain.NewEngine(m.h, m.w, m.rng, m.ramp)
	m.ready = true
	m.logger.Debug("rain started", "rows", m.h, "cols", m.w, "custom_colors", m.canvas.CustomColors())

	if !m.introDone && !m.introActive {
		m.introActive = true
		m.intro = intro.New(m.rng, m.ramp.Accent, m.now())
	}
}

func (m *Model) endIntro(reason intro.Reason) {
	m.introActive = false
	m.introDone = true
	m.canvas.Clear()
	m.logger.Debug("intro finished", "reason", reason, "frames", m.introFrames)
}

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}

	m.viewBuf.Reset()
	b := &m.viewBuf
	rows, cols := m.canvas.Size()

	var run []rune
	var runAttr palette.Attr
	runSet := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runSet {
			b.WriteString(m.style(runAttr).Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g, a, ok := m.canvas.Cell(row, col)
			if ok != runSet || (ok && a != runAttr) {
				flush()
				runSet = ok
				runAttr = a
			}
			run = append(run, g)
		}
		flush()
		// No newline after the last row: an extra line would scroll the
		// first row out of the alt screen.
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// style returns the cached lipgloss style for a.
func (m *Model) style(a palette.Attr) lipgloss.Style {
	if st, ok := m.styles[a]; ok {
		return st
	}
	st := lipgloss.NewStyle().Bold(a.Bold)
	if c, ok := m.canvas.Color(a.Slot); ok {
		st = st.Foreground(lipglossColor(c))
	}
	m.styles[a] = st
	return st
}

func lipglossColor(c palette.Color) lipgloss.Color {
	if c.IsBasic() {
		return lipgloss.Color(strconv.Itoa(int(c.Basic)))
	}
	return lipgloss.Color(c.RGB.Hex())
}
