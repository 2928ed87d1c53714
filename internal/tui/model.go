// Package tui implements the terminal chat client: a transcript view, an
// input line, and a toggleable raw-data table, all driven by the session
// store.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spendlens/spendlens/internal/client"
	"github.com/spendlens/spendlens/internal/domain"
	"github.com/spendlens/spendlens/internal/session"
)

type activeView int

const (
	viewChat activeView = iota
	viewData
)

type submitDoneMsg struct{}

type dataMsg struct {
	rows   []domain.Row
	schema domain.Schema
}

type dataErrMsg struct{ err error }

// Model is the bubbletea model for the chat client
type Model struct {
	store  *session.Store
	client *client.Client

	input    textinput.Model
	spin     spinner.Model
	viewport viewport.Model

	view    activeView
	rows    []domain.Row
	schema  domain.Schema
	dataErr error

	width  int
	height int
	ready  bool
}

// NewModel creates the chat client model
func NewModel(store *session.Store, c *client.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about the spend data..."
	ti.CharLimit = 512
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		store:  store,
		client: c,
		input:  ti,
		spin:   sp,
		view:   viewChat,
	}
}

// Init starts the spinner, cursor blink, and the one-shot dataset fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, m.fetchData)
}

// Update handles bubbletea messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			if m.view == viewChat {
				m.view = viewData
			} else {
				m.view = viewChat
			}
			m.refreshViewport()
			return m, nil
		case tea.KeyEnter:
			if m.view != viewChat || m.store.Pending() {
				return m, nil
			}
			text := m.input.Value()
			if strings.TrimSpace(text) == "" {
				return m, nil
			}
			m.input.Reset()
			m.refreshViewport()
			return m, tea.Batch(m.submit(text), m.spin.Tick)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 4
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.Width = msg.Width - 6
		m.refreshViewport()
		return m, nil

	case submitDoneMsg:
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case dataMsg:
		m.rows = msg.rows
		m.schema = msg.schema
		if m.view == viewData {
			m.refreshViewport()
		}
		return m, nil

	case dataErrMsg:
		m.dataErr = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		// pick up the in-flight user turn as soon as it lands
		if m.store.Pending() && m.view == viewChat {
			m.refreshViewport()
		}
	}

	if m.view == viewChat && !m.store.Pending() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.SetDraft(m.input.Value())
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the client
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render("SpendLens")
	hint := mutedStyle.Render("tab: chat/data  esc: quit")
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", hint)

	var footer string
	if m.store.Pending() {
		footer = m.spin.View() + mutedStyle.Render(" thinking...")
	} else if m.view == viewChat {
		footer = m.input.View()
	} else {
		footer = mutedStyle.Render("press tab to return to the chat")
	}

	return header + "\n\n" + m.viewport.View() + "\n" + footer
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	if m.view == viewData {
		content := RenderTable(m.rows, m.schema)
		if m.dataErr != nil {
			content = errorStyle.Render("failed to load data: " + m.dataErr.Error())
		}
		m.viewport.SetContent(content)
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *Model) renderTranscript() string {
	var b strings.Builder
	for _, turn := range m.store.Transcript() {
		label := botLabelStyle.Render("SpendLens")
		if turn.Sender == domain.SenderUser {
			label = userLabelStyle.Render("You")
		}
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(turn.Text)
		b.WriteString("\n")
		if rendered := RenderChart(turn.Chart); rendered != "" {
			b.WriteString("\n")
			b.WriteString(rendered)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// submit runs the blocking store transition off the update loop
func (m Model) submit(text string) tea.Cmd {
	return func() tea.Msg {
		_ = m.store.Submit(context.Background(), text)
		return submitDoneMsg{}
	}
}

// fetchData issues the one dataset fetch a session starts with
func (m Model) fetchData() tea.Msg {
	rows, schema, err := m.client.FetchDataset(context.Background())
	if err != nil {
		return dataErrMsg{err: err}
	}
	return dataMsg{rows: rows, schema: schema}
}
