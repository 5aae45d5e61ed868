package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opal-lang/tokscan/runtime/lint"
)

func (a *app) lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [files...]",
		Short: "Report suspicious tokens; exits 1 if any error is found",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scanner()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{defaultSource}
			}

			failed := false
			for _, path := range args {
				src, err := os.ReadFile(path)
				if err != nil {
					return &CLIError{
						Type:    "io",
						Message: fmt.Sprintf("cannot read %s", path),
						Details: err.Error(),
					}
				}

				diags := lint.Check(s.Scan(src), s.Table())
				for _, d := range diags {
					a.printDiagnostic(path, d)
				}
				failed = failed || lint.HasErrors(diags)
			}

			if failed {
				return errLintFailed
			}
			return nil
		},
	}
}

func (a *app) printDiagnostic(path string, d lint.Diagnostic) {
	color := ColorYellow
	if d.Severity == lint.Error {
		color = ColorRed
	}
	a.printf("%s:%s\n", path, Colorize(d.String(), color, a.useColor))
	if d.Help != "" {
		a.printf("  %s %s\n", Colorize("help:", ColorCyan, a.useColor), d.Help)
	}
}
