package lessons

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "hindidrill/internal/modules/catalog/dto"
	"hindidrill/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListLessons(ctx context.Context) ([]catalogdto.LessonOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Lessons []catalogdto.LessonOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the lesson tab strip. The highlighted tab is only a cursor; the
// drill's active lesson changes when the user confirms a selection.
type Model struct {
	port    CatalogPort
	lessons []catalogdto.LessonOutput
	index   int
	loading bool
	err     error
	spinner spinner.Model
	width   int
}

func New(port CatalogPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload fetches the catalog again. Tabs stay on screen until it resolves.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.err = nil
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		current, hadCurrent := m.Selected()
		m.lessons = msg.Lessons
		m.index = 0
		if hadCurrent {
			for i, lesson := range m.lessons {
				if lesson.ID == current.ID {
					m.index = i
					break
				}
			}
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) NextTab() {
	if len(m.lessons) == 0 {
		return
	}
	m.index = (m.index + 1) % len(m.lessons)
}

func (m *Model) PrevTab() {
	if len(m.lessons) == 0 {
		return
	}
	m.index = (m.index + len(m.lessons) - 1) % len(m.lessons)
}

// Selected returns the highlighted lesson, if any.
func (m Model) Selected() (catalogdto.LessonOutput, bool) {
	if m.index < 0 || m.index >= len(m.lessons) {
		return catalogdto.LessonOutput{}, false
	}
	return m.lessons[m.index], true
}

// Find returns the lesson with the given id.
func (m Model) Find(id string) (catalogdto.LessonOutput, bool) {
	for _, lesson := range m.lessons {
		if lesson.ID == id {
			return lesson, true
		}
	}
	return catalogdto.LessonOutput{}, false
}

// View renders the tab strip. activeID marks the lesson being drilled.
func (m Model) View(activeID string) string {
	var line string
	switch {
	case m.loading && len(m.lessons) == 0:
		line = m.spinner.View() + " Loading lessons…"
	case m.err != nil:
		line = theme.Bad.Render("Error loading categories") + theme.Muted.Render("  (r to retry)")
	case len(m.lessons) == 0:
		line = theme.Muted.Render("No categories available")
	default:
		parts := make([]string, len(m.lessons))
		for i, lesson := range m.lessons {
			label := " " + lesson.Name + " "
			if lesson.ID == activeID {
				label = " ● " + lesson.Name + " "
			}
			if i == m.index {
				parts[i] = theme.Hot.Render(label)
			} else {
				parts[i] = theme.Muted.Render(label)
			}
		}
		line = strings.Join(parts, theme.Muted.Render("│"))
		if m.loading {
			line += " " + m.spinner.View()
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(line)
}

// Description returns the highlighted lesson's description, if it has one.
func (m Model) Description() string {
	if lesson, ok := m.Selected(); ok {
		return lesson.Description
	}
	return ""
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		lessons, err := m.port.ListLessons(context.Background())
		return LoadedMsg{Lessons: lessons, Err: err}
	}
}
