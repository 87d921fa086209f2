package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

// Notifier receives the outcome of user-visible operations.
type Notifier interface {
	Success(message string)
	Failure(message string)
	Info(message string)
}

// TerminalNotifier writes styled outcome messages to a terminal.
type TerminalNotifier struct {
	writer io.Writer
}

// NewTerminalNotifier creates a notifier writing to the given writer,
// defaulting to stderr so notices never mix with tabular output.
func NewTerminalNotifier(writer io.Writer) *TerminalNotifier {
	if writer == nil {
		writer = os.Stderr
	}
	return &TerminalNotifier{writer: writer}
}

// Success displays a success message.
func (n *TerminalNotifier) Success(message string) {
	fmt.Fprintln(n.writer, FormatSuccess(message))
}

// Failure displays an error message.
func (n *TerminalNotifier) Failure(message string) {
	fmt.Fprintln(n.writer, FormatError(message))
}

// Info displays an informational message.
func (n *TerminalNotifier) Info(message string) {
	fmt.Fprintln(n.writer, FormatInfo(message))
}

// UserMessage translates an error into the message a user should see.
// Errors carrying an explicit user message win; everything else maps
// through the response taxonomy.
func UserMessage(err error) string {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}

	switch {
	case errors.Is(err, common.ErrSessionExpired):
		return "Session expired. Please login again with 'buddy login'."
	case errors.Is(err, common.ErrNoSession):
		return "Not logged in. Run 'buddy login' first."
	case errors.Is(err, common.ErrUnauthenticated):
		return "Authentication failed. Check your credentials."
	case errors.Is(err, common.ErrNotFound):
		return "The requested record was not found."
	case errors.Is(err, common.ErrRateLimit):
		return "The server is busy. Please try again in a moment."
	case errors.Is(err, common.ErrNetwork):
		return "Could not reach the server. Check your connection."
	case errors.Is(err, common.ErrServerFailure):
		return "The server hit an internal error. Please try again later."
	case errors.Is(err, common.ErrParse):
		return "The server sent a response this client does not understand."
	default:
		return err.Error()
	}
}

// SuppressAnalytics reports whether an analytics fetch error is a
// normal "no data yet" state that should render as an empty widget
// instead of surfacing as a failure. Models that have not been trained
// answer 404 or 400, and neither is the user's fault.
func SuppressAnalytics(err error) bool {
	return errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrBadRequest)
}
