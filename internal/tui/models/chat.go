package models

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

const (
	nickGreeting = "Hello! I'm Nick, your AI assistant. How can I help you today?"
	nickReply    = "I understand your request. Let me help you with that right away."
)

// ChatMessage is one line of the conversation.
type ChatMessage struct {
	ID     string
	Sender string // "user" or "nick"
	Text   string
	Time   time.Time
}

// chatReplyMsg delivers Nick's scripted answer. gen ties it to the mount
// that sent the question.
type chatReplyMsg struct {
	gen uint64
	id  string
}

// ChatModel is the Nick Chat section.
type ChatModel struct {
	env      Env
	delay    time.Duration
	input    textinput.Model
	viewport viewport.Model
	messages []ChatMessage
	typing   bool
	gen      uint64
	mounted  bool
}

// NewChatModel creates the chat with Nick's greeting.
func NewChatModel(env Env, replyDelay time.Duration) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.Prompt = "› "
	ti.CharLimit = 500
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.AccentPrimary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)

	return &ChatModel{
		env:      env,
		delay:    replyDelay,
		input:    ti,
		viewport: viewport.New(60, 10),
		messages: []ChatMessage{{ID: uuid.NewString(), Sender: "nick", Text: nickGreeting, Time: env.now()}},
	}
}

// Mount focuses the input. Each mount starts a new generation so replies
// to questions asked before an unmount are dropped.
func (m *ChatModel) Mount() {
	m.mounted = true
	m.gen++
	m.input.Focus()
}

func (m *ChatModel) Unmount() {
	m.mounted = false
	m.gen++
	m.typing = false
	m.input.Blur()
}

// Messages returns the conversation so far.
func (m *ChatModel) Messages() []ChatMessage { return m.messages }

// Typing reports whether a reply is pending.
func (m *ChatModel) Typing() bool { return m.typing }

func (m *ChatModel) Capturing() bool { return m.input.Focused() }

// Send appends the user's message and schedules Nick's reply. Blank input
// is ignored.
func (m *ChatModel) Send(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	now := m.env.now()
	m.messages = append(m.messages, ChatMessage{ID: uuid.NewString(), Sender: "user", Text: text, Time: now})
	m.typing = true

	reply := chatReplyMsg{gen: m.gen, id: uuid.NewString()}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return reply })
}

func (m *ChatModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case chatReplyMsg:
		if !m.mounted || msg.gen != m.gen {
			m.env.Logger.Debug("dropping chat reply for unmounted chat")
			return nil
		}
		m.typing = false
		m.messages = append(m.messages, ChatMessage{ID: msg.id, Sender: "nick", Text: nickReply, Time: m.env.now()})
		return nil

	case tea.KeyMsg:
		if !m.input.Focused() {
			switch msg.String() {
			case "i", "enter", "/":
				return m.input.Focus()
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
		switch msg.String() {
		case "enter":
			cmd := m.Send(m.input.Value())
			m.input.SetValue("")
			return cmd
		case "esc":
			m.input.Blur()
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *ChatModel) Hints() []components.KeyHint {
	if m.input.Focused() {
		return []components.KeyHint{{Key: "enter", Desc: "send"}, {Key: "esc", Desc: "leave input"}}
	}
	return []components.KeyHint{{Key: "i", Desc: "type"}, {Key: "↑↓", Desc: "scroll"}}
}

func (m *ChatModel) View(width, height int) string {
	inner := max(width-4, 20)
	m.viewport.Width = inner
	m.viewport.Height = max(height-9, 3)
	m.viewport.SetContent(m.renderMessages(inner))
	m.viewport.GotoBottom()

	head := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true).Render("Nick AI Assistant"),
		styles.Dim("Your Right Hand Nick Identity System"),
	)

	status := styles.Green("● ") + styles.Label.Render("Always listening")
	if m.typing {
		status = styles.Blue("● ") + styles.Label.Render("Nick is typing...")
	}

	m.input.Width = inner - 4
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, head),
		components.Panel("Nick AI", status+"\n"+m.viewport.View()+"\n"+styles.Divider(inner)+"\n"+m.input.View(), width),
	)
}

func (m *ChatModel) renderMessages(width int) string {
	bubble := max(width*2/3, 20)
	nickStyle := lipgloss.NewStyle().Background(styles.BgSurface).Foreground(styles.TextPrimary).Padding(0, 1).MaxWidth(bubble)
	userStyle := lipgloss.NewStyle().Background(styles.AccentPrimary).Foreground(styles.BgDeep).Padding(0, 1).MaxWidth(bubble)

	var out []string
	for _, msg := range m.messages {
		ts := styles.Dim(msg.Time.Format("15:04"))
		if msg.Sender == "user" {
			block := lipgloss.JoinVertical(lipgloss.Right, userStyle.Width(min(lipgloss.Width(msg.Text)+2, bubble)).Render(msg.Text), ts)
			out = append(out, lipgloss.PlaceHorizontal(width, lipgloss.Right, block))
			continue
		}
		out = append(out, lipgloss.JoinVertical(lipgloss.Left, nickStyle.Width(min(lipgloss.Width(msg.Text)+2, bubble)).Render(msg.Text), ts))
	}
	return strings.Join(out, "\n")
}
