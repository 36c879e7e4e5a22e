// Package tui is an interactive terminal view of the weekly load table.
// It follows bubbletea's Model/Update/View loop: key presses change the
// selected program, week or a 10RM value and the table is recomputed.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
	"github.com/claude/tenrm/internal/render"
)

// Step is the amount +/- changes a 10RM by.
const Step = 2.5

type keyMap struct {
	PrevWeek    key.Binding
	NextWeek    key.Binding
	PrevProgram key.Binding
	NextProgram key.Binding
	Up          key.Binding
	Down        key.Binding
	Increase    key.Binding
	Decrease    key.Binding
	Edit        key.Binding
	Commit      key.Binding
	Cancel      key.Binding
	Quit        key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevWeek, k.NextWeek, k.NextProgram, k.Down, k.Increase, k.Edit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevWeek, k.NextWeek},
		{k.PrevProgram, k.NextProgram},
		{k.Up, k.Down, k.Increase, k.Decrease, k.Edit},
		{k.Quit},
	}
}

var defaultKeys = keyMap{
	PrevWeek:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "forrige uke")),
	NextWeek:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "neste uke")),
	PrevProgram: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "forrige program")),
	NextProgram: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "neste program")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "forrige øvelse")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "neste øvelse")),
	Increase:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "10RM ±2,5 kg")),
	Decrease:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "10RM -2,5 kg")),
	Edit:        key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "skriv 10RM")),
	Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "lagre")),
	Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "avbryt")),
	Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "avslutt")),
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	panelStyle   = lipgloss.NewStyle().Padding(0, 2, 0, 0)
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	panelHeading = lipgloss.NewStyle().Bold(true).Render("10RM (kg)")
)

// Model holds the selection state. Maxes are kept per program, so the
// same exercise name in two programs is two separate inputs.
type Model struct {
	calc      *load.Calculator
	programs  []string
	exercises map[string][]string
	maxes     map[string]map[string]float64
	current   int
	week      int
	field     int

	editing  bool
	input    textinput.Model
	inputErr error

	table *load.Table
	err   error

	keys keyMap
	help help.Model
}

// New creates a model showing week 1 of the first program. Each program
// starts from its suggested maxes; overrides replace them per program.
func New(calc *load.Calculator, overrides map[string]map[string]float64) Model {
	catalog := calc.Catalog()
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 10
	input.Width = 10

	m := Model{
		calc:      calc,
		programs:  catalog.ListPrograms(),
		exercises: make(map[string][]string),
		maxes:     make(map[string]map[string]float64),
		week:      1,
		input:     input,
		keys:      defaultKeys,
		help:      help.New(),
	}
	for _, name := range m.programs {
		p, err := catalog.GetProgram(name)
		if err != nil {
			continue
		}
		maxes := load.DefaultMaxes(p)
		for ex, v := range overrides[name] {
			maxes[ex] = v
		}
		m.maxes[name] = maxes
		m.exercises[name] = p.ExerciseNames()
	}
	m.recompute()
	return m
}

// Select moves to a program by name; unknown names are ignored.
func (m Model) Select(name string) Model {
	for i, p := range m.programs {
		if p == name {
			m.current = i
			m.field = 0
			m.recompute()
		}
	}
	return m
}

func (m *Model) programName() string {
	return m.programs[m.current]
}

func (m *Model) focused() string {
	names := m.exercises[m.programName()]
	if len(names) == 0 {
		return ""
	}
	return names[m.field]
}

func (m *Model) recompute() {
	name := m.programName()
	m.table, m.err = m.calc.ComputeTable(name, m.week, m.maxes[name])
}

// setMax stores a 10RM for the focused exercise of the current program.
func (m *Model) setMax(v float64) {
	m.maxes[m.programName()][m.focused()] = v
	m.recompute()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevWeek):
		if m.week > 1 {
			m.week--
		}
	case key.Matches(msg, m.keys.NextWeek):
		if m.week < program.Weeks {
			m.week++
		}
	case key.Matches(msg, m.keys.NextProgram):
		m.current = (m.current + 1) % len(m.programs)
		m.field = 0
	case key.Matches(msg, m.keys.PrevProgram):
		m.current = (m.current + len(m.programs) - 1) % len(m.programs)
		m.field = 0
	case key.Matches(msg, m.keys.Up):
		if m.field > 0 {
			m.field--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.field < len(m.exercises[m.programName()])-1 {
			m.field++
		}
		return m, nil
	case key.Matches(msg, m.keys.Increase):
		m.setMax(m.maxes[m.programName()][m.focused()] + Step)
		return m, nil
	case key.Matches(msg, m.keys.Decrease):
		// 10RM stays positive.
		if v := m.maxes[m.programName()][m.focused()] - Step; v > 0 {
			m.setMax(v)
		}
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.inputErr = nil
		current := ""
		if v, ok := m.maxes[m.programName()][m.focused()]; ok {
			current = strconv.FormatFloat(v, 'f', -1, 64)
		}
		m.input.SetValue(current)
		m.input.CursorEnd()
		return m, m.input.Focus()
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.inputErr = nil
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Commit):
		v, err := load.ParseMax(m.focused(), m.input.Value())
		if err != nil {
			m.inputErr = err
			return m, nil
		}
		m.editing = false
		m.inputErr = nil
		m.input.Blur()
		m.setMax(v)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) maxesPanel() string {
	var b strings.Builder
	b.WriteString(panelHeading + "\n")
	name := m.programName()
	for i, ex := range m.exercises[name] {
		value := "-"
		if v, ok := m.maxes[name][ex]; ok {
			value = load.Kg(v).String()
		}
		line := fmt.Sprintf("  %s: %s", ex, value)
		if i == m.field {
			line = focusStyle.Render(fmt.Sprintf("▸ %s: %s", ex, value))
			if m.editing {
				line = focusStyle.Render("▸ "+ex+": ") + m.input.View()
			}
		} else {
			line = fieldStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if m.inputErr != nil {
		b.WriteString(errorStyle.Render(m.inputErr.Error()) + "\n")
	}
	return panelStyle.Render(b.String())
}

func (m Model) View() string {
	var body string
	if m.err != nil {
		body = errorStyle.Render(m.err.Error()) + "\n"
	} else {
		body = render.Table(m.table)
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.maxesPanel(), body)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.help.View(m.keys))
}

// Week returns the selected week.
func (m Model) Week() int {
	return m.week
}

// Table returns the table for the current selection, nil when inputs are
// invalid.
func (m Model) Table() *load.Table {
	return m.table
}

// Editing reports whether a 10RM field is being typed into.
func (m Model) Editing() bool {
	return m.editing
}
