package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	drilldto "hindidrill/internal/modules/drill/dto"
	"hindidrill/internal/ui/components"
	"hindidrill/internal/ui/theme"
	lessonsview "hindidrill/internal/ui/views/lessons"
	wordview "hindidrill/internal/ui/views/word"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type drillPort interface {
	SelectLesson(ctx context.Context, lessonID string) (drilldto.SessionOutput, error)
	Next() drilldto.SessionOutput
	Previous() drilldto.SessionOutput
	Speak() drilldto.SessionOutput
	Pronounce() (drilldto.SessionOutput, error)
	Snapshot() drilldto.SessionOutput
}

// ─── messages ────────────────────────────────────────────────────────────────

// SessionMsg carries a controller snapshot pushed in with Program.Send.
type SessionMsg struct {
	Session drilldto.SessionOutput
}

type actionMsg struct {
	action  string
	session drilldto.SessionOutput
	err     error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Select    key.Binding
	Previous  key.Binding
	Next      key.Binding
	Pronounce key.Binding
	Speak     key.Binding
	Reload    key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next lesson")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev lesson")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start lesson")),
		Previous:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous word")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next word")),
		Pronounce: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play pronunciation")),
		Speak:     key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space/s", "speak the word")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload lessons")),
		Palette:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Select, k.Speak, k.Pronounce, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Select, k.Reload},
		{k.Previous, k.Next, k.Pronounce, k.Speak},
		{k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It forwards intents to the drill and
// renders whatever snapshot the drill last reported.
type Model struct {
	drill drillPort

	lessons  lessonsview.Model
	wordView wordview.Model

	session  drilldto.SessionOutput
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(catalog lessonsview.CatalogPort, drill drillPort) Model {
	m := Model{
		drill:    drill,
		lessons:  lessonsview.New(catalog),
		wordView: wordview.New(),
		keys:     defaultKeys(),
		help:     help.New(),
		palette:  components.NewPalette(paletteCommands),
		status:   "ready",
	}
	if drill != nil {
		m.applySession(drill.Snapshot())
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.lessons.Init(), m.wordView.Init())
}

// Session returns the snapshot currently on screen.
func (m Model) Session() drilldto.SessionOutput {
	return m.session
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.palette.SetWidth(min(msg.Width-4, 64))
		m.lessons, _ = m.lessons.Update(msg)
		m.wordView, _ = m.wordView.Update(tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-6, 1)})
		return m, nil

	case SessionMsg:
		m.applySession(msg.Session)
		return m, nil

	case actionMsg:
		m.applySession(msg.session)
		if msg.err != nil {
			m.status = msg.action + ": " + msg.err.Error()
		}
		return m, nil

	case lessonsview.LoadedMsg:
		if msg.Err != nil {
			m.status = "catalog: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("%d lessons", len(msg.Lessons))
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.NextTab):
			m.lessons.NextTab()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.lessons.PrevTab()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			lesson, ok := m.lessons.Selected()
			if !ok {
				m.status = "no lesson selected"
				return m, nil
			}
			m.status = "loading " + lesson.Name
			return m, m.selectCmd(lesson.ID)
		case key.Matches(msg, m.keys.Reload):
			m.status = "reloading lessons"
			return m, m.lessons.Reload()
		case key.Matches(msg, m.keys.Previous):
			return m, m.previousCmd()
		case key.Matches(msg, m.keys.Next):
			if m.session.NavigationLocked {
				m.status = "say the word correctly to unlock next"
			}
			return m, m.nextCmd()
		case key.Matches(msg, m.keys.Pronounce):
			if strings.TrimSpace(m.session.Word.HindiWord) == "" {
				m.status = "nothing to pronounce"
				return m, nil
			}
			return m, m.pronounceCmd()
		case key.Matches(msg, m.keys.Speak):
			if !m.session.CapabilityAvailable {
				m.status = "speech recognition unavailable"
				return m, nil
			}
			if m.session.VerificationPending {
				m.status = "already listening"
				return m, nil
			}
			return m, m.speakCmd()
		}
	}

	var cmd tea.Cmd
	m.lessons, cmd = m.lessons.Update(msg)
	cmds = append(cmds, cmd)
	m.wordView, cmd = m.wordView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// applySession keeps the newest snapshot; pushes from the controller may
// arrive after the reply of a later action.
func (m *Model) applySession(session drilldto.SessionOutput) {
	if session.Version < m.session.Version {
		return
	}
	m.session = session
	m.wordView.SetSession(session)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.wordView.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	title := theme.Title.Render("hindidrill") + "  " + m.lessons.View(m.session.ActiveLessonID)
	if desc := m.lessons.Description(); desc != "" {
		title += "\n" + theme.Muted.Render(desc)
	}
	return theme.Bar.Width(m.width).Render(title) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.session.Profile != "" {
		left = theme.Hot.Render("● "+m.session.Profile) +
			theme.Muted.Render(fmt.Sprintf("  ▶ %d plays", m.session.PlayCount)) + "  " + left
	}
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + theme.Bar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── palette execution ────────────────────────────────────────────────────────

// paletteCommands must stay in sync with the switch in executePalette.
var paletteCommands = []components.Command{
	{Name: "lesson", Args: "<id>", Help: "open a lesson"},
	{Name: "lessons:reload", Help: "fetch categories again"},
	{Name: "word:next", Help: "next word"},
	{Name: "word:prev", Help: "previous word"},
	{Name: "word:say", Help: "play pronunciation"},
	{Name: "word:listen", Help: "speak the word"},
}

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "lesson":
		if len(parts) < 2 {
			m.status = "usage: lesson <id>"
			return m, nil
		}
		return m, m.selectCmd(parts[1])
	case "lessons:reload":
		return m, m.lessons.Reload()
	case "word:next":
		return m, m.nextCmd()
	case "word:prev":
		return m, m.previousCmd()
	case "word:say":
		return m, m.pronounceCmd()
	case "word:listen":
		return m, m.speakCmd()
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── async commands ───────────────────────────────────────────────────────────
// Every drill call runs off the update loop: the controller pushes snapshots
// through Program.Send, which must not be called from inside Update.

func (m Model) selectCmd(lessonID string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.drill.SelectLesson(context.Background(), lessonID)
		return actionMsg{action: "lesson", session: session, err: err}
	}
}

func (m Model) nextCmd() tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: "next", session: m.drill.Next()}
	}
}

func (m Model) previousCmd() tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: "previous", session: m.drill.Previous()}
	}
}

func (m Model) speakCmd() tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: "speak", session: m.drill.Speak()}
	}
}

func (m Model) pronounceCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.drill.Pronounce()
		return actionMsg{action: "pronounce", session: session, err: err}
	}
}
