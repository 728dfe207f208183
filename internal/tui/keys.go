package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type mainKeyMap struct {
	Quit      key.Binding
	Size      key.Binding
	Speed     key.Binding
	Algorithm key.Binding
	Open      key.Binding
	Run       key.Binding
	Prev      key.Binding
	Next      key.Binding
	Clear     key.Binding
	Theme     key.Binding
	Save      key.Binding
}

func (k mainKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Size, k.Speed, k.Algorithm, k.Open, k.Run, k.Prev, k.Next}
}

func (k mainKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Prev, k.Next, k.Open},
		{k.Size, k.Speed, k.Algorithm},
		{k.Clear, k.Theme, k.Save, k.Quit},
	}
}

type sizeKeyMap struct {
	Width  key.Binding
	Height key.Binding
	Erase  key.Binding
	Apply  key.Binding
	Back   key.Binding
}

func (k sizeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Apply, k.Width, k.Height, k.Erase}
}

func (k sizeKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type speedKeyMap struct {
	Erase key.Binding
	Apply key.Binding
	Back  key.Binding
}

func (k speedKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Back, k.Apply, k.Erase} }
func (k speedKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type algorithmKeyMap struct {
	Switch  key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Erase   key.Binding
	Confirm key.Binding
	Back    key.Binding
}

func (k algorithmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Confirm, k.Switch, k.Up, k.Down, k.Left, k.Right, k.Erase}
}

func (k algorithmKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type keyMap struct {
	main      mainKeyMap
	size      sizeKeyMap
	speed     speedKeyMap
	algorithm algorithmKeyMap
}

func defaultKeyMap() keyMap {
	erase := key.NewBinding(key.WithKeys("backspace"), key.WithHelp("0-9/⌫", "edit"))
	apply := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "enter value"))
	back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit"))

	return keyMap{
		main: mainKeyMap{
			Quit:      key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
			Size:      key.NewBinding(key.WithKeys("z", "Z"), key.WithHelp("z", "size")),
			Speed:     key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "speed")),
			Algorithm: key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "algorithm")),
			Open:      key.NewBinding(key.WithKeys("o", "O"), key.WithHelp("o", "open steps")),
			Run:       key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "run/stop")),
			Prev:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev step")),
			Next:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next step")),
			Clear:     key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "clear")),
			Theme:     key.NewBinding(key.WithKeys("t", "T"), key.WithHelp("t", "theme")),
			Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save recording")),
		},
		size: sizeKeyMap{
			Width:  key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w", "width")),
			Height: key.NewBinding(key.WithKeys("h", "H"), key.WithHelp("h", "height")),
			Erase:  erase,
			Apply:  apply,
			Back:   back,
		},
		speed: speedKeyMap{
			Erase: erase,
			Apply: apply,
			Back:  back,
		},
		algorithm: algorithmKeyMap{
			Switch:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "generator/solver")),
			Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
			Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
			Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev option")),
			Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
			Erase:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("0-9/⌫", "ratio")),
			Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
			Back:    back,
		},
	}
}

// digit reports the value of a 0-9 key press.
func digit(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return int(s[0] - '0'), true
	}
	return 0, false
}
