// Package tui is the terminal display of the feedback viewer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/feedback-insights/internal/domain"
	"github.com/heartmarshall/feedback-insights/internal/session"
)

type feedbackViewer interface {
	State() *session.State
	Feedbacks() []domain.Feedback
	Subscribe(fn func([]domain.Feedback)) (unsubscribe func())
	UserSaved(ctx context.Context, name string)
	Mount(ctx context.Context)
}

type (
	listChangedMsg struct{}
	toastMsg       domain.Notification
	fetchDoneMsg   struct{}
)

// Model is the bubbletea model of the viewer screen.
type Model struct {
	ctx    context.Context
	viewer feedbackViewer
	toasts <-chan domain.Notification

	changed     chan struct{}
	unsubscribe func()

	input     textinput.Model
	feedbacks []domain.Feedback
	toast     *domain.Notification
	pending   int
	offset    int
	width     int
	height    int
	quitting  bool
}

// NewModel creates the screen for v. The text input starts with the
// session's username. Call Close after the program exits.
func NewModel(ctx context.Context, v feedbackViewer, toasts *Toasts) Model {
	ti := textinput.New()
	ti.Placeholder = "username"
	ti.CharLimit = 254
	ti.SetValue(v.State().Username())
	ti.Focus()

	changed := make(chan struct{}, 1)
	unsubscribe := v.Subscribe(func([]domain.Feedback) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	return Model{
		ctx:         ctx,
		viewer:      v,
		toasts:      toasts.C(),
		changed:     changed,
		unsubscribe: unsubscribe,
		input:       ti,
		feedbacks:   v.Feedbacks(),
		width:       100,
		height:      30,
	}
}

// Close removes the model's list subscription.
func (m Model) Close() {
	m.unsubscribe()
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.waitForChange(), m.waitForToast()}
	if m.viewer.State().Username() != "" {
		cmds = append(cmds, m.mount())
	}
	return tea.Batch(cmds...)
}

func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.changed:
			return listChangedMsg{}
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m Model) waitForToast() tea.Cmd {
	return func() tea.Msg {
		select {
		case n := <-m.toasts:
			return toastMsg(n)
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m Model) mount() tea.Cmd {
	return func() tea.Msg {
		m.viewer.Mount(m.ctx)
		return fetchDoneMsg{}
	}
}

func (m Model) save(name string) tea.Cmd {
	return func() tea.Msg {
		m.viewer.UserSaved(m.ctx, name)
		return fetchDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case listChangedMsg:
		m.feedbacks = m.viewer.Feedbacks()
		m.offset = 0
		return m, m.waitForChange()

	case toastMsg:
		n := domain.Notification(msg)
		m.toast = &n
		return m, m.waitForToast()

	case fetchDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		return m, nil

	case tea.KeyMsg:
		m.toast = nil
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.pending++
		return m, m.save(m.input.Value())

	case "pgdown", "ctrl+n":
		if m.offset < len(m.feedbacks)-1 {
			m.offset++
		}
		return m, nil

	case "pgup", "ctrl+p":
		if m.offset > 0 {
			m.offset--
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Feedback & Insights"))
	state := m.viewer.State()
	if state.UserWasSaved() {
		b.WriteString(savedStyle.Render("  ✓ user saved"))
	}
	if m.pending > 0 {
		b.WriteString(dimStyle.Render("  loading..."))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("User") + " " + m.input.View() + "\n")

	if m.toast != nil {
		b.WriteString(renderToast(*m.toast) + "\n")
	}
	b.WriteString("\n")

	if len(m.feedbacks) == 0 {
		b.WriteString(dimStyle.Render("  no feedback to show") + "\n")
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d feedback records, showing from #%d", len(m.feedbacks), m.offset+1)) + "\n")
		used := 0
		budget := m.height - 6
		for i := m.offset; i < len(m.feedbacks); i++ {
			card := renderFeedback(m.feedbacks[i], m.width)
			lines := strings.Count(card, "\n") + 1
			if used > 0 && used+lines > budget {
				break
			}
			b.WriteString(card + "\n")
			used += lines
		}
	}

	b.WriteString(helpStyle.Render("  Enter: save user  PgUp/PgDn: scroll  Esc: quit"))
	return b.String()
}
