// File: console.go
// Title: Interactive Monitor Console
// Description: Full-screen monitor console: a scrolling transcript above a
//              command prompt with history. Commands run on the engine one
//              at a time.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/devmon/foundation/monitor"
)

// Prompt precedes every command line
const Prompt = "(monitor) "

// Executor runs monitor commands. *monitor.Engine implements it.
type Executor interface {
	Execute(ctx context.Context, line string) (*monitor.Result, error)
	UsageFor(err error) string
}

// Options configures the console
type Options struct {
	// Title is shown in the header (default: "devmon")
	Title string

	// HistorySize bounds the command history (default: 100)
	HistorySize int
}

// EntryKind classifies transcript entries
type EntryKind int

const (
	EntryCommand EntryKind = iota
	EntryOutput
	EntryUsage
	EntryError
)

// Entry is one block of the transcript
type Entry struct {
	Kind EntryKind
	Text string
}

// resultMsg carries a finished command back into Update
type resultMsg struct {
	line     string
	text     string
	usage    string
	err      error
	duration time.Duration
}

// Model is the bubbletea model of the console
type Model struct {
	ctx      context.Context
	executor Executor
	title    string

	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	transcript []Entry
	history    []string
	historyPos int
	maxHistory int

	running  bool
	commands int
	failures int
	last     time.Duration
}

// New creates a console model
func New(ctx context.Context, executor Executor, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "devmon"
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = 100
	}

	ti := textinput.New()
	ti.Prompt = Prompt
	ti.Placeholder = "device member arguments..."
	ti.CharLimit = 1024
	ti.Focus()

	return Model{
		ctx:        ctx,
		executor:   executor,
		title:      opts.Title,
		input:      ti,
		maxHistory: opts.HistorySize,
	}
}

// Run shows the console until the user quits or ctx is canceled
func Run(ctx context.Context, executor Executor, opts Options) error {
	p := tea.NewProgram(New(ctx, executor, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Transcript returns the entries shown so far
func (m Model) Transcript() []Entry {
	return append([]Entry(nil), m.transcript...)
}

// History returns the executed command lines, oldest first
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + blank line
		footerHeight := 3 // Prompt + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(Prompt) - 1
		m.updateViewportContent()

	case resultMsg:
		m.running = false
		m.commands++
		m.last = msg.duration
		if msg.err != nil {
			m.failures++
			m.transcript = append(m.transcript, Entry{Kind: EntryError, Text: "Error: " + msg.err.Error()})
			if msg.usage != "" {
				m.transcript = append(m.transcript, Entry{Kind: EntryUsage, Text: msg.usage})
			}
		} else if msg.text != "" {
			m.transcript = append(m.transcript, Entry{Kind: EntryOutput, Text: msg.text})
		}
		m.updateViewportContent()

	default:
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		switch line {
		case "":
			return m, nil
		case "quit", "exit":
			return m, tea.Quit
		case "clear":
			m.transcript = nil
			m.updateViewportContent()
			return m, nil
		}
		m.remember(line)
		m.transcript = append(m.transcript, Entry{Kind: EntryCommand, Text: Prompt + line})
		m.running = true
		m.updateViewportContent()
		return m, m.execute(line)

	case tea.KeyUp:
		if m.historyPos > 0 {
			m.historyPos--
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		} else {
			m.historyPos = len(m.history)
			m.input.Reset()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) remember(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	if len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
	m.historyPos = len(m.history)
}

// execute runs line off the update loop
func (m Model) execute(line string) tea.Cmd {
	ctx, executor := m.ctx, m.executor
	return func() tea.Msg {
		start := time.Now()
		result, err := executor.Execute(ctx, line)
		msg := resultMsg{line: line, err: err, duration: time.Since(start)}
		if err != nil {
			msg.usage = executor.UsageFor(err)
			return msg
		}
		msg.text = strings.TrimRight(strings.ReplaceAll(result.Text, "\r\n", "\n"), "\n")
		return msg
	}
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	var content strings.Builder
	for _, e := range m.transcript {
		switch e.Kind {
		case EntryCommand:
			content.WriteString(commandStyle.Render(e.Text))
		case EntryOutput:
			content.WriteString(outputStyle.Render(e.Text))
		case EntryUsage:
			content.WriteString(usageStyle.Render(strings.TrimRight(e.Text, "\n")))
		case EntryError:
			content.WriteString(errorStyle.Render(e.Text))
		}
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Starting monitor..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title + " monitor"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: run  up/down: history  pgup/pgdn: scroll  clear  quit"))
	return b.String()
}

func (m Model) status() string {
	if m.running {
		return "running..."
	}
	return fmt.Sprintf("%d commands, %d failed, last %s", m.commands, m.failures, m.last.Round(time.Microsecond))
}
