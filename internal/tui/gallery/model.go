// Package gallery is the interactive showcase: every kind, variant and
// visual state of the control kit on one scrollable page, with a theme
// toggle and focus cycling.
package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/formkit/internal/logger"
	"github.com/alexisbeaulieu97/formkit/internal/theme"
	"github.com/alexisbeaulieu97/formkit/internal/tui/widget"
	"github.com/alexisbeaulieu97/formkit/internal/ui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxFieldWidth = 60
	// chromeHeight is the header and footer around the viewport.
	chromeHeight = 5
)

// Options configures the gallery.
type Options struct {
	Title    string
	Provider *theme.Provider
	// Sections defaults to Showcase().
	Sections []Section
	Logger   *logger.Logger
}

type section struct {
	title      string
	start, end int
}

// Model is the gallery's bubbletea model.
type Model struct {
	title    string
	provider *theme.Provider
	vars     *theme.VariableScope
	log      *logger.Logger

	sections []section
	widgets  []widget.Model
	offsets  []int
	focus    int

	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	theme    components.Theme

	width  int
	height int
	err    string
}

// New builds the gallery and focuses its first focusable control. The
// provider's tokens are mirrored into a variable table shown in the header.
func New(opts Options) Model {
	provider := opts.Provider
	if provider == nil {
		provider = theme.NewProvider(theme.NameLight)
	}
	sections := opts.Sections
	if len(sections) == 0 {
		sections = Showcase()
	}
	title := opts.Title
	if title == "" {
		title = "formkit gallery"
	}

	m := Model{
		title:    title,
		provider: provider,
		vars:     theme.NewVariableScope(),
		log:      opts.Logger.With("component", "gallery"),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
		focus:    -1,
	}
	if err := provider.Attach(m.vars); err != nil {
		m.err = err.Error()
	}

	tokens := provider.Theme()
	m.theme = components.FromTokens(tokens)
	for _, s := range sections {
		sec := section{title: s.Title, start: len(m.widgets)}
		for _, fo := range s.Fields {
			fo.Theme = tokens
			if fo.Field.Logger == nil {
				fo.Field.Logger = opts.Logger
			}
			m.widgets = append(m.widgets, widget.New(fo))
		}
		sec.end = len(m.widgets)
		m.sections = append(m.sections, sec)
	}
	m.offsets = make([]int, len(m.widgets))

	m.viewport = viewport.New(m.width, m.height-chromeHeight)
	// Arrow keys and letters belong to the focused control.
	m.viewport.KeyMap = viewport.KeyMap{}

	m.resize()
	m.moveFocus(1)
	m.log.DebugFields("gallery ready", map[string]any{"controls": len(m.widgets), "theme": string(provider.Name())})
	return m
}

// Init starts cursor blinking and the spinners of loading controls.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	for _, w := range m.widgets {
		cmds = append(cmds, w.Init())
	}
	return tea.Batch(cmds...)
}

// Focused returns the index of the focused control, or -1.
func (m Model) Focused() int { return m.focus }

// Widgets returns the controls in display order.
func (m Model) Widgets() []widget.Model { return m.widgets }

// ThemeName is the active theme.
func (m Model) ThemeName() theme.Name { return m.provider.Name() }

// Variable resolves a mirrored theme variable such as "colors-primary".
func (m Model) Variable(name string) string { return m.vars.Var(name) }

// moveFocus moves focus by step, skipping controls that refuse it. It
// returns the focus command of the newly focused control.
func (m *Model) moveFocus(step int) tea.Cmd {
	n := len(m.widgets)
	if n == 0 {
		return nil
	}
	start := m.focus
	if start >= 0 {
		m.widgets[start].Blur()
	}
	i := start
	for range n {
		i = ((i+step)%n + n) % n
		cmd := m.widgets[i].Focus()
		if m.widgets[i].Focused() {
			m.focus = i
			m.syncViewport()
			return cmd
		}
	}
	m.focus = -1
	m.syncViewport()
	return nil
}

func (m *Model) toggleTheme() {
	t, err := m.provider.Toggle()
	m.err = ""
	if err != nil {
		m.err = err.Error()
	}
	m.theme = components.FromTokens(t)
	for i := range m.widgets {
		m.widgets[i].SetTheme(t)
	}
	m.syncViewport()
}

func (m *Model) resize() {
	fieldWidth := min(m.width-4, maxFieldWidth)
	for i := range m.widgets {
		m.widgets[i].SetWidth(fieldWidth)
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chromeHeight, 1)
	m.help.Width = m.width
	m.syncViewport()
}
