package cli

import (
	"errors"

	"github.com/vitalvas/swaggerdoc/manifest"
	"github.com/vitalvas/swaggerdoc/swagger"
)

// ErrUsage matches every error caused by bad flags or input files.
var ErrUsage = errors.New("cli usage error")

// ErrDiagnostics is returned by strict validation when diagnostics were
// produced.
var ErrDiagnostics = errors.New("diagnostics reported")

type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

func (e usageError) Is(target error) bool {
	return target == ErrUsage
}

// Exit codes returned by ExitCode.
const (
	ExitOK = iota
	ExitFailure
	ExitUsage
	ExitInvalidDocument
	ExitDiagnostics
)

// ExitCode maps an error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	var (
		verr *swagger.ValidationError
		merr *manifest.Error
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage), errors.As(err, &merr):
		return ExitUsage
	case errors.As(err, &verr):
		return ExitInvalidDocument
	case errors.Is(err, ErrDiagnostics):
		return ExitDiagnostics
	}
	return ExitFailure
}
