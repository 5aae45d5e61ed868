// Command tokscan scans source files into token streams.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opal-lang/tokscan/core/lang"
	"github.com/opal-lang/tokscan/runtime/lexer"
)

const (
	defaultSource = "source.txt"
	defaultOutput = "tokens"
	debugEnv      = "TOKSCAN_DEBUG_LEXER"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries the state shared by every subcommand
type app struct {
	stdout io.Writer
	stderr io.Writer

	langPath string
	debug    bool
	noColor  bool

	useColor bool
	logger   *slog.Logger

	mu sync.Mutex // guards stdout across concurrent scans
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		FormatError(stderr, err, a.useColor)
		return exitCode(err)
	}
	return exitOK
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tokscan",
		Short:         "Scan source text into keyword, symbol, identifier and number tokens",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.useColor = ShouldUseColor(a.stdout, a.noColor)
			a.logger = newLogger(a.stderr, a.debug || os.Getenv(debugEnv) != "")
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.langPath, "lang", "", "Path to a language definition (YAML or JSON); built-in language if empty")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		a.scanCmd(),
		a.lintCmd(),
		a.symbolsCmd(),
		a.verifyCmd(),
		a.watchCmd(),
	)
	return rootCmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// language loads --lang or falls back to the built-in language
func (a *app) language() (*lang.Language, error) {
	if a.langPath == "" {
		return lang.Default(), nil
	}
	l, err := lang.Load(a.langPath)
	if err != nil {
		return nil, &CLIError{
			Type:    "config",
			Message: "invalid language definition",
			Details: err.Error(),
			Hint:    "Fix the definition or omit --lang to use the built-in language",
		}
	}
	return l, nil
}

// scanner builds the scanner for the selected language. A bad definition is
// a configuration error and nothing gets scanned.
func (a *app) scanner() (*lexer.Scanner, error) {
	l, err := a.language()
	if err != nil {
		return nil, err
	}
	s, err := lexer.NewLanguageScanner(l, lexer.WithLogger(a.logger))
	if err != nil {
		return nil, &CLIError{
			Type:    "config",
			Message: "invalid language definition",
			Details: err.Error(),
		}
	}
	a.logger.Debug("language loaded", "name", l.Name, "keywords", len(l.Keywords), "symbols", len(l.Symbols))
	return s, nil
}

// printf writes to stdout; safe for concurrent scans
func (a *app) printf(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = fmt.Fprintf(a.stdout, format, args...)
}

// write copies raw output to stdout; safe for concurrent scans
func (a *app) write(p []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err := a.stdout.Write(p)
	return err
}
