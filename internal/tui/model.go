package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mazeview/internal/config"
	"github.com/san-kum/mazeview/internal/dims"
	"github.com/san-kum/mazeview/internal/playback"
	"github.com/san-kum/mazeview/internal/render"
	"github.com/san-kum/mazeview/internal/session"
	"github.com/san-kum/mazeview/internal/storage"
)

// headerHeight is the number of rows above the maze area.
const headerHeight = 4

const debugLog = "mazeview-debug.log"

type screen int

const (
	screenMain screen = iota
	screenSize
	screenSpeed
	screenAlgorithm
)

var screenNames = [...]string{"main", "size", "speed", "algorithm"}

func (s screen) String() string { return screenNames[s] }

type sizeField int

const (
	fieldWidth sizeField = iota
	fieldHeight
)

// Options configures the interactive viewer.
type Options struct {
	// StepsPath is loaded at startup and reloaded by the open key.
	StepsPath string
	// Store receives recordings on save. Saving is disabled when nil.
	Store *storage.Store
}

type model struct {
	sess *session.Session
	opts Options
	keys keyMap
	help help.Model

	screen screen
	field  sizeField
	size   int
	speed  int

	// playGen invalidates ticks scheduled before the last start or stop.
	playing bool
	playGen int

	message string
	width   int
	height  int
}

type stepMsg struct{ gen int }

type loadedMsg struct {
	path string
	text string
	err  error
}

func newModel(sess *session.Session, opts Options) model {
	return model{
		sess: sess,
		opts: opts,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m model) Init() tea.Cmd {
	if m.opts.StepsPath == "" {
		return nil
	}
	return openSteps(m.opts.StepsPath)
}

func openSteps(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return loadedMsg{path: path, text: string(data), err: err}
	}
}

func (m model) tick() tea.Cmd {
	gen := m.playGen
	return tea.Tick(m.sess.Seq.Period(), func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.sess.Resize(msg.Width, msg.Height-headerHeight)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case stepMsg:
		if !m.playing || msg.gen != m.playGen {
			return m, nil
		}
		moved, err := m.sess.StepForward()
		if err != nil {
			m.message = err.Error()
			log.Printf("play: %v", err)
		}
		if !moved {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	case loadedMsg:
		m.stop()
		if msg.err != nil {
			m.message = msg.err.Error()
			log.Printf("open %s: %v", msg.path, msg.err)
			return m, nil
		}
		if err := m.sess.LoadSteps(msg.text); err != nil {
			m.message = err.Error()
			log.Printf("load %s: %v", msg.path, err)
			return m, nil
		}
		m.message = "loaded " + filepath.Base(msg.path)
		log.Printf("loaded %s: %d steps", msg.path, m.sess.Seq.Len())
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.screen {
	case screenMain:
		return m.mainKey(msg)
	case screenSize:
		return m.sizeKey(msg)
	case screenSpeed:
		return m.speedKey(msg)
	case screenAlgorithm:
		return m.algorithmKey(msg)
	}
	return m, nil
}

func (m model) mainKey(msg tea.KeyMsg) (model, tea.Cmd) {
	k := m.keys.main
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Size):
		m.stop()
		m.screen = screenSize
		m.size = m.fieldValue()
	case key.Matches(msg, k.Speed):
		m.stop()
		m.screen = screenSpeed
		m.speed = m.sess.Seq.Speed()
	case key.Matches(msg, k.Algorithm):
		m.stop()
		m.screen = screenAlgorithm
	case key.Matches(msg, k.Open):
		if m.opts.StepsPath == "" {
			m.message = "no steps file given"
			return m, nil
		}
		return m, openSteps(m.opts.StepsPath)
	case key.Matches(msg, k.Run):
		if m.playing {
			m.stop()
			return m, nil
		}
		if !m.sess.Generated {
			return m, nil
		}
		return m, m.start()
	case key.Matches(msg, k.Prev):
		if m.sess.Generated {
			m.stop()
			_, err := m.sess.StepBack()
			m.message = stepMessage(err)
		}
	case key.Matches(msg, k.Next):
		if m.sess.Generated {
			m.stop()
			_, err := m.sess.StepForward()
			m.message = stepMessage(err)
		}
	case key.Matches(msg, k.Clear):
		m.stop()
		m.sess.ClearMaze()
		m.message = ""
	case key.Matches(msg, k.Theme):
		p := render.NextTheme(m.sess.Palette().Name)
		m.sess.SetPalette(p)
		m.message = "theme " + p.Name
	case key.Matches(msg, k.Save):
		m.message = m.save()
	}
	return m, nil
}

func stepMessage(err error) string {
	if err != nil {
		log.Printf("step: %v", err)
		return err.Error()
	}
	return ""
}

func (m *model) start() tea.Cmd {
	if m.sess.Seq.AtEnd() {
		m.sess.GoTo(0)
	}
	m.playing = true
	m.playGen++
	return m.tick()
}

func (m *model) stop() {
	if m.playing {
		m.playing = false
		m.playGen++
	}
}

func (m model) save() string {
	if m.opts.Store == nil {
		return "saving disabled"
	}
	if !m.sess.Generated {
		return "nothing to save"
	}
	name := ""
	if m.opts.StepsPath != "" {
		name = filepath.Base(m.opts.StepsPath)
	}
	id, err := m.opts.Store.Save(name, m.sess.Selector.Generator(), m.sess.Selector.Solver(), m.sess.Seq)
	if err != nil {
		log.Printf("save: %v", err)
		return err.Error()
	}
	log.Printf("saved recording %s", id)
	return "saved " + id
}

func (m model) fieldValue() int {
	if m.field == fieldHeight {
		return m.sess.Dims.Height()
	}
	return m.sess.Dims.Width()
}

func (m *model) applySize() {
	if m.field == fieldHeight {
		m.sess.Dims.SetHeight(m.size)
	} else {
		m.sess.Dims.SetWidth(m.size)
	}
}

func (m model) sizeKey(msg tea.KeyMsg) (model, tea.Cmd) {
	k := m.keys.size
	switch {
	case key.Matches(msg, k.Back):
		m.applySize()
		m.sess.ClearMaze()
		m.screen = screenMain
	case key.Matches(msg, k.Width):
		if m.field == fieldHeight {
			m.applySize()
		}
		m.field = fieldWidth
		m.size = m.fieldValue()
	case key.Matches(msg, k.Height):
		if m.field == fieldWidth {
			m.applySize()
		}
		m.field = fieldHeight
		m.size = m.fieldValue()
	case key.Matches(msg, k.Erase):
		m.size = dims.EraseDigit(m.size)
	case key.Matches(msg, k.Apply):
		m.applySize()
		m.size = m.fieldValue()
	default:
		if d, ok := digit(msg); ok {
			m.size = dims.EnterDigit(d, m.size, m.sess.Dims.Max())
		}
	}
	return m, nil
}

func (m model) speedKey(msg tea.KeyMsg) (model, tea.Cmd) {
	k := m.keys.speed
	switch {
	case key.Matches(msg, k.Back):
		m.sess.Seq.SetSpeed(m.speed)
		m.screen = screenMain
	case key.Matches(msg, k.Erase):
		m.speed = dims.EraseDigit(m.speed)
	case key.Matches(msg, k.Apply):
		m.sess.Seq.SetSpeed(m.speed)
		m.speed = m.sess.Seq.Speed()
	default:
		if d, ok := digit(msg); ok {
			m.speed = dims.EnterDigit(d, m.speed, playback.MaxSpeed)
		}
	}
	return m, nil
}

func (m model) algorithmKey(msg tea.KeyMsg) (model, tea.Cmd) {
	k := m.keys.algorithm
	sel := m.sess.Selector
	switch {
	case key.Matches(msg, k.Back):
		m.screen = screenMain
	case key.Matches(msg, k.Switch):
		sel.Toggle()
	case key.Matches(msg, k.Up):
		sel.Up()
	case key.Matches(msg, k.Down):
		sel.Down()
	case key.Matches(msg, k.Left):
		sel.Left()
	case key.Matches(msg, k.Right):
		sel.Right()
	case key.Matches(msg, k.Erase):
		sel.Backspace()
	case key.Matches(msg, k.Confirm):
		sel.Confirm()
		m.message = fmt.Sprintf("%s / %s", sel.Generator().DisplayName(), sel.Solver().DisplayName())
		m.screen = screenMain
	default:
		if d, ok := digit(msg); ok {
			sel.Digit(d)
		}
	}
	return m, nil
}

// Run starts the interactive viewer and blocks until it quits. With
// MAZEVIEW_DEBUG set, log output goes to mazeview-debug.log.
func Run(sess *session.Session, opts Options) error {
	if config.Debug() {
		f, err := tea.LogToFile(debugLog, "mazeview")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newModel(sess, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
