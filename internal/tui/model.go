// Package tui is the interactive terminal session: a task screen and a quote screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"daytask/internal/output"
	"daytask/internal/quotes"
	"daytask/internal/tasks"
)

type screen int

const (
	screenTasks screen = iota
	screenQuote
)

// Model is the Bubble Tea model for both screens.
type Model struct {
	store   *tasks.Store
	session *quotes.Session
	now     func() time.Time

	screen screen
	cursor int
	adding bool
	input  textinput.Model
	status string
}

// New creates a Model over store and session. A nil now uses time.Now.
func New(store *tasks.Store, session *quotes.Session, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Add a task"
	ti.CharLimit = 0
	ti.Width = 40

	return Model{
		store:   store,
		session: session,
		now:     now,
		input:   ti,
	}
}

// Run starts the program on the terminal and blocks until it quits or ctx is done.
func Run(ctx context.Context, m Model, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			if m.screen == screenTasks {
				m.screen = screenQuote
			} else {
				m.screen = screenTasks
			}
			m.status = ""
			return m, nil
		}
		if m.screen == screenTasks {
			return m.updateTasks(msg.String())
		}
		return m.updateQuote(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.adding = false
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	case "enter":
		// Blank titles are ignored; the input just closes.
		if task, ok := m.store.Add(m.input.Value()); ok {
			m.status = "Added " + output.NormalizeTitle(task.Title)
			m.cursor = indexOf(m.store.Ordered(), task.ID)
		}
		m.adding = false
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateTasks(key string) (tea.Model, tea.Cmd) {
	ordered := m.store.Ordered()
	m.cursor = clampCursor(m.cursor, len(ordered))

	switch key {
	case "a", "n":
		m.adding = true
		m.status = ""
		return m, m.input.Focus()
	case "j", "down":
		m.cursor = clampCursor(m.cursor+1, len(ordered))
	case "k", "up":
		m.cursor = clampCursor(m.cursor-1, len(ordered))
	case " ", "space", "x", "enter":
		if len(ordered) == 0 {
			return m, nil
		}
		task := ordered[m.cursor]
		m.store.Toggle(task.ID)
		// Follow the task into its new group.
		m.cursor = indexOf(m.store.Ordered(), task.ID)
		if task.Completed {
			m.status = "Reopened " + output.NormalizeTitle(task.Title)
		} else {
			m.status = "Completed " + output.NormalizeTitle(task.Title)
		}
	case "d":
		if len(ordered) == 0 {
			return m, nil
		}
		task := ordered[m.cursor]
		m.store.Delete(task.ID)
		m.status = "Deleted " + output.NormalizeTitle(task.Title)
		m.cursor = clampCursor(m.cursor, len(ordered)-1)
	}
	return m, nil
}

func (m Model) updateQuote(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "r":
		m.session.Refresh()
		m.status = ""
	case "t":
		m.session.ShowDaily(m.now())
		m.status = "Quote of the day"
	case "b":
		if _, ok := m.session.Back(); ok {
			m.status = ""
		} else {
			m.status = "No earlier quotes"
		}
	case "s":
		if m.session.ToggleSaved() {
			m.status = "Saved"
		} else {
			m.status = "Removed from saved"
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	if m.screen == screenTasks {
		b.WriteString(m.tasksView())
	} else {
		b.WriteString(m.quoteView())
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) tabs() string {
	names := []string{"Tasks", "Quote"}
	parts := make([]string, len(names))
	for i, name := range names {
		if screen(i) == m.screen {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) tasksView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Simple To-Do List"))
	b.WriteString("\n")

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	ordered := m.store.Ordered()
	if len(ordered) == 0 {
		b.WriteString(emptyStyle.Render(output.EmptyList))
		b.WriteString("\n")
	}
	for i, task := range ordered {
		pointer := "  "
		if i == m.cursor && !m.adding {
			pointer = cursorStyle.Render("> ")
		}
		title := output.NormalizeTitle(task.Title)
		if task.Completed {
			title = doneTitleStyle.Render(title)
		}
		fmt.Fprintf(&b, "%s%s %s\n", pointer, output.Marker(task.Completed), title)
	}

	if m.adding {
		b.WriteString(helpStyle.Render("enter add • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("a add • space toggle • d delete • j/k move • tab quote • q quit"))
	}
	return b.String()
}

func (m Model) quoteView() string {
	q := m.session.Current()

	card := lipgloss.JoinVertical(lipgloss.Center,
		quoteTextStyle.Render("“"+q.Text+"”"),
		authorStyle.Render("— "+q.Author),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render(quotes.FormatDate(m.now())))
	b.WriteString("\n")
	b.WriteString(cardStyle.Render(card))
	b.WriteString("\n")

	saved := "☆ not saved"
	if m.session.IsSaved() {
		saved = savedStyle.Render("★ saved")
	}
	fmt.Fprintf(&b, "%s • history %d/%d • %d saved\n",
		saved, len(m.session.History()), quotes.MaxHistory, len(m.session.Saved()))

	b.WriteString(helpStyle.Render("r refresh • t today • b back • s save • tab tasks • q quit"))
	return b.String()
}

func indexOf(list []tasks.Task, id string) int {
	for i, t := range list {
		if t.ID == id {
			return i
		}
	}
	return 0
}

func clampCursor(cursor, length int) int {
	if length <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
