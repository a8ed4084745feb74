package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haven-labs/docchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/haven-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driving"
)

// statusKind selects the style used for the status line.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// turnCompletedMsg carries the outcome of an asynchronous chat turn.
type turnCompletedMsg struct {
	result *driving.TurnResult
	err    error
}

// App is the chat TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// input is the message entry component.
	input *input.MessageInput

	// attachments holds file paths staged for the next turn.
	attachments []string

	// status is the current status line text.
	status     string
	statusKind statusKind

	// busy is true while a turn is in flight.
	busy bool

	width  int
	height int
}

// NewApp creates the TUI application.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		input:  input.NewMessageInput(s),
		status: "Ready. Type a message or /attach a file; /help lists commands.",
	}, nil
}

// WithContext sets the context used for chat turns.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return a.input.Init()
}

// Update handles incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetWidth(msg.Width - 4)
		return a, nil

	case turnCompletedMsg:
		a.busy = false
		a.finishTurn(msg)
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyEnter:
			if a.busy {
				return a, nil
			}
			return a, a.submit()
		}
	}

	if a.busy {
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit runs the typed line: slash commands act locally, anything else
// starts a chat turn.
func (a *App) submit() tea.Cmd {
	raw := strings.TrimSpace(a.input.Value())
	if strings.HasPrefix(raw, "/") {
		a.input.Reset()
		return a.runCommand(raw)
	}

	if raw == "" && len(a.attachments) == 0 {
		a.setStatus("Nothing to send. Type a message or /attach a file.", statusError)
		return nil
	}

	files, err := loadAttachments(a.attachments)
	if err != nil {
		a.setStatus(err.Error(), statusError)
		return nil
	}

	a.input.Reset()
	a.attachments = nil
	a.busy = true
	a.setStatus("Thinking...", statusInfo)

	chat := a.ports.Chat
	ctx := a.ctx
	return func() tea.Msg {
		result, err := chat.Send(ctx, raw, files)
		return turnCompletedMsg{result: result, err: err}
	}
}

// runCommand handles the slash commands.
func (a *App) runCommand(raw string) tea.Cmd {
	fields := strings.Fields(raw)
	switch fields[0] {
	case "/attach":
		if len(fields) < 2 {
			a.setStatus("Usage: /attach <file> [...]", statusError)
			return nil
		}
		a.attach(fields[1:])
		return nil

	case "/clear":
		a.ports.Chat.Clear()
		a.setStatus("Conversation cleared. Saved chats are kept.", statusSuccess)
		return nil

	case "/history":
		n := len(a.ports.Chat.History())
		if n == 0 {
			a.setStatus("No saved chats yet.", statusInfo)
		} else {
			a.setStatus(fmt.Sprintf("%d saved chat(s). /use <n> restores one (1 = oldest).", n), statusInfo)
		}
		return nil

	case "/use":
		if len(fields) != 2 {
			a.setStatus("Usage: /use <n>", statusError)
			return nil
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			a.setStatus("Usage: /use <n>", statusError)
			return nil
		}
		if err := a.ports.Chat.SelectHistory(n - 1); err != nil {
			a.setStatus(fmt.Sprintf("No saved chat %d.", n), statusError)
			return nil
		}
		a.setStatus(fmt.Sprintf("Restored saved chat %d.", n), statusSuccess)
		return nil

	case "/help":
		a.setStatus("Commands: /attach <file>  /clear  /history  /use <n>  /quit", statusInfo)
		return nil

	case "/quit":
		return tea.Quit

	default:
		a.setStatus(fmt.Sprintf("Unknown command %s. /help lists commands.", fields[0]), statusError)
		return nil
	}
}

// attach stages files for the next turn after checking they exist.
func (a *App) attach(paths []string) {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			a.setStatus(fmt.Sprintf("Cannot attach %s: %v", path, err), statusError)
			return
		}
		if info.IsDir() {
			a.setStatus(fmt.Sprintf("Cannot attach %s: is a directory", path), statusError)
			return
		}
		a.attachments = append(a.attachments, path)
	}
	a.setStatus(fmt.Sprintf("%d file(s) staged for the next message.", len(a.attachments)), statusSuccess)
}

// finishTurn updates the status line from a completed turn.
func (a *App) finishTurn(msg turnCompletedMsg) {
	if msg.err != nil {
		a.setStatus(fmt.Sprintf("Turn failed: %v", msg.err), statusError)
		return
	}

	failed := 0
	for _, fr := range msg.result.FileResults {
		if fr.Result.Status != domain.StatusSuccess {
			failed++
		}
	}
	switch {
	case failed > 0:
		a.setStatus(fmt.Sprintf("Done, but %d file(s) could not be processed.", failed), statusWarning)
	case !msg.result.ModelCalled:
		a.setStatus(msg.result.Reply, statusInfo)
	default:
		a.setStatus("Ready.", statusInfo)
	}
}

func (a *App) setStatus(text string, kind statusKind) {
	a.status = text
	a.statusKind = kind
}

// View renders the application.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("docchat"))
	b.WriteString("\n\n")

	b.WriteString(a.transcriptView())

	if len(a.attachments) > 0 {
		names := make([]string, len(a.attachments))
		for i, p := range a.attachments {
			names[i] = filepath.Base(p)
		}
		b.WriteString(a.styles.Muted.Render("Attached: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	b.WriteString(a.input.View())
	b.WriteString("\n")

	switch a.statusKind {
	case statusSuccess:
		b.WriteString(a.styles.Success.Render(a.status))
	case statusWarning:
		b.WriteString(a.styles.Warning.Render(a.status))
	case statusError:
		b.WriteString(a.styles.Error.Render(a.status))
	default:
		b.WriteString(a.styles.StatusBar.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter send · /attach <file> · /clear · /history · /use <n> · ctrl+c quit"))

	return b.String()
}

// transcriptView renders the conversation, newest messages last, trimmed to
// the messages that fit in the available height.
func (a *App) transcriptView() string {
	msgs := a.ports.Chat.Messages()
	if len(msgs) == 0 {
		return a.styles.Muted.Render("No messages yet.") + "\n\n"
	}

	budget := a.height - 8
	if a.height == 0 {
		budget = 40
	}

	blocks := make([]string, 0, len(msgs))
	used := 0
	for i := len(msgs) - 1; i >= 0; i-- {
		block := a.renderMessage(msgs[i])
		lines := strings.Count(block, "\n") + 1
		if used+lines > budget && len(blocks) > 0 {
			break
		}
		blocks = append(blocks, block)
		used += lines
	}

	// Reverse back into chronological order.
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}

	return strings.Join(blocks, "\n") + "\n\n"
}

func (a *App) renderMessage(msg domain.Message) string {
	label := a.styles.UserLabel.Render("You")
	if msg.Role == domain.RoleAssistant {
		label = a.styles.AssistantLabel.Render("Assistant")
	}
	return label + "\n" + a.styles.Normal.Render(msg.Content)
}

// Attachments returns the currently staged file paths.
func (a *App) Attachments() []string {
	return a.attachments
}

// Busy reports whether a turn is in flight.
func (a *App) Busy() bool {
	return a.busy
}

// Status returns the current status line text.
func (a *App) Status() string {
	return a.status
}

// loadAttachments reads the staged files into upload handles.
func loadAttachments(paths []string) ([]domain.UploadedFile, error) {
	files := make([]domain.UploadedFile, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		files = append(files, domain.UploadedFile{
			Name:    filepath.Base(path),
			Content: content,
		})
	}
	return files, nil
}
