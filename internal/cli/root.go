package cli

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/matzehuels/gplot/pkg/errors"
)

// Execute runs the gplot CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(context.Background(), os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context, args []string) error {
	root := New(os.Stderr, LogInfo).RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// ErrorMessage formats err for the terminal. Context added by commands is
// kept and error codes are dropped. Process errors show only their message,
// which for a failed gnuplot run is its stderr verbatim.
func ErrorMessage(err error) string {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return err.Error()
	}
	var prefix string
	if full := err.Error(); strings.HasSuffix(full, e.Error()) {
		prefix = strings.TrimSuffix(full, e.Error())
	}
	msg := strings.TrimSpace(e.Message)
	if e.Cause != nil && e.Code.Kind() != errors.KindProcess {
		msg += ": " + ErrorMessage(e.Cause)
	}
	return prefix + msg
}
