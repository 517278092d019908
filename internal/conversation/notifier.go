package conversation

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

var (
	normalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7DCFFF"))
	urgentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7768E"))
)

// PrintFunc is a function used to print formatted output.
// Matches the signature of fmt.Printf.
type PrintFunc func(format string, a ...interface{})

// CLINotifier writes notifications to the terminal. When the TUI is up,
// printFn hands lines to it instead of stdout.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
	prefix  string
}

// NotifierOption configures a CLINotifier.
type NotifierOption func(*CLINotifier)

// WithPrefix puts a marker in front of every line, e.g. "🔊 ".
func WithPrefix(prefix string) NotifierOption {
	return func(n *CLINotifier) {
		n.prefix = prefix
	}
}

// NewCLINotifier creates a terminal notifier.
// If printFn is nil, fmt.Printf is used.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc, opts ...NotifierOption) *CLINotifier {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	n := &CLINotifier{log: log, printFn: printFn}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s%s", n.prefix, normalStyle.Render(message))
	return nil
}

// NotifyUrgent prints an urgent notification in bold red.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.printFn("%s%s", n.prefix, urgentStyle.Render(message))
	return nil
}
