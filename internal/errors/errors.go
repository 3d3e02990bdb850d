package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/surprise/internal/logger"
)

// Kind classifies failures by how the program reacts to them.
type Kind int

const (
	// KindInternal is a logic error between trusted collaborators.
	KindInternal Kind = iota
	// KindConfig is a bad config file, flag, env var or content file.
	KindConfig
	// KindCapability is a missing platform capability such as an audio device.
	// Callers degrade instead of failing.
	KindCapability
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCapability:
		return "capability"
	default:
		return "internal"
	}
}

// Error carries the operation that failed and its Kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap annotates err with an operation and kind. A nil err stays nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if KindOf(err) == KindConfig {
		msg += "\n       Check --config, --content and SURPRISE_* environment variables."
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case KindOf(err) == KindConfig:
		return 2
	default:
		return 1
	}
}

// Fatal logs an error and exits the program
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err, "kind", KindOf(err))
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(ExitCode(err))
	}
}
