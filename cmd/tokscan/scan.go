package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/opal-lang/tokscan/runtime/lexer"
	"github.com/opal-lang/tokscan/runtime/tokenfmt"
)

// scanJob describes one input and where its tokens go
type scanJob struct {
	input  string
	output string // "-" for stdout
	format tokenfmt.Format
	digest bool
	stats  bool
}

func (a *app) scanCmd() *cobra.Command {
	var (
		out        string
		formatName string
		digest     bool
		stats      bool
	)

	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "Scan files and write their token streams",
		Long: `Scan files and write their token streams.

With no arguments, reads ./source.txt and writes ./tokens.json.
With several files, each is scanned concurrently and written next to its
input as <input>.tokens.json (or .tokens.cbor).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(formatName)
			if err != nil {
				return err
			}
			if len(args) > 1 && out != "" {
				return &CLIError{
					Type:    "usage",
					Message: "--out needs exactly one input file",
					Hint:    "Drop --out to write each file's tokens next to it",
				}
			}

			s, err := a.scanner()
			if err != nil {
				return err
			}

			jobs := planJobs(args, out, format)
			for i := range jobs {
				jobs[i].digest = digest
				jobs[i].stats = stats
			}
			return a.scanAll(cmd.Context(), s, jobs)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path for a single input (- for stdout)")
	cmd.Flags().StringVar(&formatName, "format", string(tokenfmt.FormatJSON), "Output format: json or cbor")
	cmd.Flags().BoolVar(&digest, "digest", false, "Print the BLAKE2b-256 digest of each token stream")
	cmd.Flags().BoolVar(&stats, "stats", false, "Log a token summary per file")
	return cmd
}

func parseFormat(name string) (tokenfmt.Format, error) {
	format, err := tokenfmt.ParseFormat(name)
	if err != nil {
		return "", &CLIError{Type: "usage", Message: err.Error()}
	}
	return format, nil
}

// planJobs resolves inputs and output paths. No inputs means the
// fixed source.txt -> tokens.json pair in the working directory.
func planJobs(args []string, out string, format tokenfmt.Format) []scanJob {
	if len(args) == 0 {
		if out == "" {
			out = defaultOutput + format.Extension()
		}
		return []scanJob{{input: defaultSource, output: out, format: format}}
	}

	jobs := make([]scanJob, 0, len(args))
	for _, input := range args {
		output := out
		if output == "" {
			output = input + "." + defaultOutput + format.Extension()
		}
		jobs = append(jobs, scanJob{input: input, output: output, format: format})
	}
	return jobs
}

// scanAll runs jobs concurrently over one shared scanner
func (a *app) scanAll(ctx context.Context, s *lexer.Scanner, jobs []scanJob) error {
	if len(jobs) == 1 {
		return a.scanFile(ctx, s, jobs[0])
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		g.Go(func() error {
			return a.scanFile(ctx, s, job)
		})
	}
	return g.Wait()
}

func (a *app) scanFile(ctx context.Context, s *lexer.Scanner, job scanJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.ReadFile(job.input)
	if err != nil {
		return &CLIError{
			Type:    "io",
			Message: fmt.Sprintf("cannot read %s", job.input),
			Details: err.Error(),
		}
	}

	tokens := s.Scan(src)

	var buf bytes.Buffer
	if err := tokenfmt.Write(&buf, job.format, tokens); err != nil {
		return fmt.Errorf("%s: %w", job.input, err)
	}

	if job.output == "-" {
		if err := a.write(buf.Bytes()); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	} else if err := os.WriteFile(job.output, buf.Bytes(), 0o644); err != nil {
		return &CLIError{
			Type:    "io",
			Message: fmt.Sprintf("cannot write %s", job.output),
			Details: err.Error(),
		}
	}

	a.logger.Debug("scan complete", "input", job.input, "output", job.output, "tokens", len(tokens))

	if job.stats {
		a.logger.Info("summary", "input", job.input, "stats", lexer.Summarize(tokens).String())
	}
	if job.digest {
		sum, err := tokenfmt.Digest(tokens)
		if err != nil {
			return fmt.Errorf("%s: %w", job.input, err)
		}
		a.printf("%s  %s\n", sum, job.input)
	}
	return nil
}
