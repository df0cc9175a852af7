// Package browse is an interactive terminal view of a template's layouts
// and their placeholders.
package browse

import (
	"fmt"
	"math"
	"strings"

	"tabdoc/internal/office"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateSelectLayout state = iota
	stateSelectPlaceholder
	stateDone
)

const defaultPerPage = 15

// Selection is the placeholder picked in the browser
type Selection struct {
	Layout      string
	Placeholder string
	Idx         int
	Type        string
}

type model struct {
	layouts []office.Layout

	state  state
	layout int

	cursor  int
	page    int
	perPage int

	picked *Selection

	width  int
	height int

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	helpStyle     lipgloss.Style
	typeStyle     lipgloss.Style
}

func initialModel(t office.Template, perPage int) model {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return model{
		layouts: t.Layouts(),
		state:   stateSelectLayout,
		perPage: perPage,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		typeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// items is the length of the list currently on screen
func (m model) items() int {
	if m.state == stateSelectPlaceholder {
		return len(m.layouts[m.layout].Placeholders())
	}
	return len(m.layouts)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveUp()
		case "down", "j":
			m.moveDown()
		case "left", "h":
			if m.page > 0 {
				m.page--
				m.cursor = 0
			}
		case "right", "l":
			if (m.page+1)*m.perPage < m.items() {
				m.page++
				m.cursor = 0
			}
		case "enter":
			return m.choose()
		case "esc":
			if m.state == stateSelectPlaceholder {
				m.state = stateSelectLayout
				m.page = m.layout / m.perPage
				m.cursor = m.layout % m.perPage
			}
		}
	}
	return m, nil
}

func (m *model) index() int {
	return m.page*m.perPage + m.cursor
}

func (m *model) moveUp() {
	if m.cursor > 0 {
		m.cursor--
	} else if m.page > 0 {
		m.page--
		m.cursor = m.perPage - 1
	}
}

func (m *model) moveDown() {
	if m.index()+1 >= m.items() {
		return
	}
	if m.cursor < m.perPage-1 {
		m.cursor++
	} else {
		m.page++
		m.cursor = 0
	}
}

func (m model) choose() (tea.Model, tea.Cmd) {
	idx := m.index()
	if idx >= m.items() {
		return m, nil
	}

	switch m.state {
	case stateSelectLayout:
		m.layout = idx
		m.state = stateSelectPlaceholder
		m.page = 0
		m.cursor = 0
		return m, nil
	case stateSelectPlaceholder:
		l := m.layouts[m.layout]
		ph := l.Placeholders()[idx]
		m.picked = &Selection{
			Layout:      l.Name(),
			Placeholder: ph.Name(),
			Idx:         ph.Idx(),
			Type:        ph.Type(),
		}
		m.state = stateDone
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateSelectLayout:
		return m.viewLayouts()
	case stateSelectPlaceholder:
		return m.viewPlaceholders()
	}
	return ""
}

func (m model) pageInfo() string {
	totalPages := int(math.Ceil(float64(m.items()) / float64(m.perPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	return fmt.Sprintf("Page %d/%d", m.page+1, totalPages)
}

func (m model) window() (int, int) {
	start := m.page * m.perPage
	end := start + m.perPage
	if end > m.items() {
		end = m.items()
	}
	return start, end
}

func (m model) line(b *strings.Builder, local int, text string) {
	if local == m.cursor {
		b.WriteString(m.selectedStyle.Render("> " + text))
	} else {
		b.WriteString(m.normalStyle.Render("  " + text))
	}
	b.WriteString("\n")
}

func (m model) viewLayouts() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render(fmt.Sprintf("Layouts (%d)", len(m.layouts))))
	b.WriteString("\n\n")
	b.WriteString(m.helpStyle.Render(m.pageInfo()))
	b.WriteString("\n\n")

	if len(m.layouts) == 0 {
		b.WriteString(m.normalStyle.Render("  template has no layouts"))
		b.WriteString("\n")
	}
	start, end := m.window()
	for i := start; i < end; i++ {
		l := m.layouts[i]
		m.line(&b, i-start, fmt.Sprintf("%s (%d placeholders)", l.Name(), len(l.Placeholders())))
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("↑↓: navigate | ←→: prev/next page | Enter: open | q: quit"))
	return b.String()
}

func (m model) viewPlaceholders() string {
	var b strings.Builder

	l := m.layouts[m.layout]
	b.WriteString(m.titleStyle.Render(fmt.Sprintf("Placeholders of '%s'", l.Name())))
	b.WriteString("\n\n")
	b.WriteString(m.helpStyle.Render(m.pageInfo()))
	b.WriteString("\n\n")

	placeholders := l.Placeholders()
	if len(placeholders) == 0 {
		b.WriteString(m.normalStyle.Render("  layout has no placeholders"))
		b.WriteString("\n")
	}
	start, end := m.window()
	for i := start; i < end; i++ {
		ph := placeholders[i]
		m.line(&b, i-start, fmt.Sprintf("[%d] %s %s", ph.Idx(), ph.Name(), m.typeStyle.Render(ph.Type())))
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("↑↓: navigate | Enter: pick | Esc: back | q: quit"))
	return b.String()
}

// Run opens the browser on t. It returns the picked placeholder, or nil
// when the user quit without picking one.
func Run(t office.Template, perPage int) (*Selection, error) {
	p := tea.NewProgram(initialModel(t, perPage), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running browser: %w", err)
	}
	return finalModel.(model).picked, nil
}
