package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

// errLintFailed reports that lint found error-severity diagnostics. The
// diagnostics themselves are already printed.
var errLintFailed = errors.New("lint found errors")

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Type    string // "config", "usage", "io", "verify"
	Message string
	Details string // Additional context
	Hint    string // How to fix it
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// exitCode maps an error returned by a command to the process exit status
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Type == "config" {
		return exitConfig
	}
	return exitFailure
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil || errors.Is(err, errLintFailed) {
		return
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		formatCLIError(w, cliErr, useColor)
		return
	}
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
}

func formatCLIError(w io.Writer, err *CLIError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Message)

	if err.Details != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", err.Details)
	}

	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), err.Hint)
	}
}
