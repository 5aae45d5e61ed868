package main

import (
	"github.com/spf13/cobra"

	"github.com/opal-lang/tokscan/internal/watch"
	"github.com/opal-lang/tokscan/runtime/tokenfmt"
)

func (a *app) watchCmd() *cobra.Command {
	var (
		out        string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-scan a file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(formatName)
			if err != nil {
				return err
			}
			s, err := a.scanner()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			job := planJobs(args, out, format)[0]
			a.logger.Info("watching", "input", job.input, "output", job.output)

			return watch.Run(ctx, job.input, watch.Options{Logger: a.logger}, func() error {
				return a.scanFile(ctx, s, job)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (- for stdout)")
	cmd.Flags().StringVar(&formatName, "format", string(tokenfmt.FormatJSON), "Output format: json or cbor")
	return cmd
}
