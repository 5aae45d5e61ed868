package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opal-lang/tokscan/runtime/tokenfmt"
)

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <tokens.json>",
		Short: "Check a JSON token file against the token schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return &CLIError{
					Type:    "io",
					Message: fmt.Sprintf("cannot read %s", path),
					Details: err.Error(),
				}
			}
			if err := tokenfmt.ValidateJSON(data); err != nil {
				return &CLIError{
					Type:    "verify",
					Message: fmt.Sprintf("%s is not a valid token stream", path),
					Details: err.Error(),
				}
			}
			a.printf("%s: %s\n", path, Colorize("ok", ColorGreen, a.useColor))
			return nil
		},
	}
}
