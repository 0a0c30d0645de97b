package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hindidrill/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

// Command describes one palette entry. Args is shown after the name and
// keeps tab completion from submitting a command that still needs input.
type Command struct {
	Name string
	Args string
	Help string
}

var (
	paletteFrame = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	commandStyle  = lipgloss.NewStyle().Foreground(theme.Subtext0)
	selectedStyle = lipgloss.NewStyle().Foreground(theme.Lavender).Bold(true)
)

// Palette is a ":" command line with prefix matching over a fixed command set.
type Palette struct {
	commands []Command
	input    textinput.Model
	cursor   int
	open     bool
	width    int
}

func NewPalette(commands []Command) Palette {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "type a command…"
	ti.CharLimit = 128
	return Palette{commands: commands, input: ti}
}

func (p Palette) Visible() bool { return p.open }

func (p *Palette) SetWidth(w int) { p.width = w }

// Open shows the palette with an empty line and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.open = true
	p.cursor = 0
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) close() {
	p.open = false
	p.input.Blur()
}

// matches returns the commands whose name starts with the first typed word.
func (p Palette) matches() []Command {
	word := strings.ToLower(strings.TrimSpace(p.input.Value()))
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	out := make([]Command, 0, len(p.commands))
	for _, c := range p.commands {
		if strings.HasPrefix(c.Name, word) {
			out = append(out, c)
		}
	}
	return out
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.open {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case "down", "ctrl+n":
			if p.cursor < len(p.matches())-1 {
				p.cursor++
			}
			return p, nil
		case "tab":
			p.complete()
			return p, nil
		case "enter":
			line := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: line} }
		}
	}
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.cursor = 0
	}
	return p, cmd
}

// complete replaces the typed word with the highlighted command name.
func (p *Palette) complete() {
	if strings.ContainsRune(strings.TrimSpace(p.input.Value()), ' ') {
		return
	}
	found := p.matches()
	if len(found) == 0 {
		return
	}
	c := found[min(p.cursor, len(found)-1)]
	line := c.Name
	if c.Args != "" {
		line += " "
	}
	p.input.SetValue(line)
	p.input.CursorEnd()
	p.cursor = 0
}

func (p Palette) View() string {
	if !p.open {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command") + "\n")
	sb.WriteString(p.input.View() + "\n")
	found := p.matches()
	if len(found) > 0 {
		sb.WriteString("\n")
	}
	for i, c := range found {
		label := c.Name
		if c.Args != "" {
			label += " " + c.Args
		}
		line := "  " + label
		style := commandStyle
		if i == p.cursor {
			line = "› " + label
			style = selectedStyle
		}
		if c.Help != "" {
			line += "  " + c.Help
		}
		sb.WriteString(style.Render(line) + "\n")
	}

	w := p.width
	if w < 20 {
		w = 48
	}
	return paletteFrame.Width(w - 2).Render(sb.String())
}
