package word

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	drilldto "hindidrill/internal/modules/drill/dto"
	"hindidrill/internal/ui/theme"
)

// Model renders the current word card and the feedback line for one
// session snapshot.
type Model struct {
	session drilldto.SessionOutput
	spinner spinner.Model
	width   int
	height  int
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Sapphire)
	return Model{spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) SetSession(session drilldto.SessionOutput) {
	m.session = session
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	s := m.session
	var blocks []string

	if notice := m.noticeLine(); notice != "" {
		blocks = append(blocks, notice)
	}
	switch {
	case s.HasWord:
		blocks = append(blocks, m.card())
		if fb := m.feedbackLine(); fb != "" {
			blocks = append(blocks, fb)
		}
		blocks = append(blocks, m.controls())
	case s.ActiveLessonID == "" && s.LoadingLessonID == "":
		name := s.Profile
		if name == "" {
			name = "learner"
		}
		blocks = append(blocks,
			theme.Title.Render(fmt.Sprintf("नमस्ते, %s!", name)),
			theme.Muted.Render("Pick a lesson with tab and press enter to start."))
	}
	if !s.CapabilityAvailable {
		blocks = append(blocks, theme.Muted.Render("Speech recognition unavailable: browse freely."))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) noticeLine() string {
	switch m.session.Notice {
	case drilldto.NoticeLoading:
		return m.spinner.View() + " Loading words…"
	case drilldto.NoticeNoWords:
		return theme.Warn.Render("This lesson has no words yet.")
	case drilldto.NoticeWordsUnavailable:
		return theme.Bad.Render("Could not load words for this lesson.")
	}
	return ""
}

func (m Model) card() string {
	w := m.session.Word
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("word %d of %d", m.session.Cursor+1, m.session.Total)) + "\n\n")
	if strings.TrimSpace(w.HindiWord) != "" {
		sb.WriteString(theme.Spoken.Render(w.HindiWord))
		if w.Pronunciation != "" {
			sb.WriteString("  " + theme.Muted.Render("("+w.Pronunciation+")"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(w.EnglishMeaning + "\n")
	if w.ExampleSentence != "" {
		sb.WriteString("\n" + theme.Muted.Render("e.g. ") + w.ExampleSentence + "\n")
	}
	if w.Level > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("level %d", w.Level)) + "\n")
	}
	if w.ImageURL != "" {
		sb.WriteString(theme.Muted.Render("image: "+w.ImageURL) + "\n")
	}

	style := theme.CardOpen
	if m.session.NavigationLocked {
		style = theme.CardLocked
	}
	return style.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) feedbackLine() string {
	fb := m.session.Feedback
	switch fb.Kind {
	case drilldto.FeedbackListening:
		return m.spinner.View() + " Listening… say the word"
	case drilldto.FeedbackCorrect:
		return theme.Good.Render("✓ Correct! ") + theme.Muted.Render("heard "+quote(fb.Transcript))
	case drilldto.FeedbackMismatch:
		return theme.Bad.Render("✗ Not quite. ") +
			theme.Muted.Render("heard "+quote(fb.Transcript)+", expected "+quote(fb.Expected))
	case drilldto.FeedbackNoInput:
		return theme.Warn.Render("No speech detected. Try again.")
	case drilldto.FeedbackMicError:
		msg := fb.Message
		if msg == "" {
			msg = "unknown error"
		}
		return theme.Bad.Render("Microphone error: ") + msg
	}
	return ""
}

func (m Model) controls() string {
	s := m.session
	hint := func(enabled bool, label string) string {
		if enabled {
			return theme.Title.Render(label)
		}
		return theme.Muted.Strikethrough(true).Render(label)
	}
	parts := []string{
		hint(s.CanRetreat, "← prev"),
		hint(s.CanAdvance, "next →"),
		hint(strings.TrimSpace(s.Word.HindiWord) != "", "p play"),
		hint(s.CanSpeak, "space speak"),
	}
	line := strings.Join(parts, "   ")
	if s.NavigationLocked {
		line += "\n" + theme.Hot.Render("Say the word correctly to unlock next.")
	}
	return line
}

func quote(s string) string {
	return "“" + s + "”"
}
