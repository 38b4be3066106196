package notify

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"io"
	"log/slog"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
)

// Log writes notifications to a structured logger.
type Log struct {
	log *slog.Logger
}

var _ port.Notifier = Log{}

func NewLog(log *slog.Logger) Log {
	return Log{log: log}
}

func (n Log) Success(msg string) {
	n.log.Info("notification", slog.String("kind", string(LevelSuccess)), slog.String("text", msg))
}

func (n Log) Failure(msg string) {
	n.log.Warn("notification", slog.String("kind", string(LevelFailure)), slog.String("text", msg))
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Terminal prints one styled line per notification.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

var _ port.Notifier = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (n *Terminal) Success(msg string) {
	n.print(successStyle.Render("✓"), msg)
}

func (n *Terminal) Failure(msg string) {
	n.print(failureStyle.Render("✗"), msg)
}

func (n *Terminal) print(mark, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintf(n.out, "%s %s\n", mark, msg)
}

// Multi fans a notification out to every notifier.
type Multi []port.Notifier

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Failure(msg string) {
	for _, n := range m {
		n.Failure(msg)
	}
}
