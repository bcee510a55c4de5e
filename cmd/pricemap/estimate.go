package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/julianshen/pricemap/internal/board"
	"github.com/julianshen/pricemap/internal/output"
	"github.com/julianshen/pricemap/internal/pricing"
	"github.com/julianshen/pricemap/internal/runner"
)

func estimateCmd() *cobra.Command {
	var (
		inputText  string
		inputFile  string
		outputText string
		outputFile string
		provider   string
		class      string
		format     string
		budget     float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the cost of a prompt and response on every model",
		Long: `Estimate counts tokens in the given input and output text (one token per
four characters) and prints the price grid with the estimated cost of each
model.

Pass "-" as --input-file or --output-file to read standard input. With
--budget, the command exits 1 when even the cheapest model costs more.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inputFile == runner.StdinPath && outputFile == runner.StdinPath {
				return fmt.Errorf("only one of --input-file and --output-file can read stdin")
			}
			stdin := stdinReader(cmd.InOrStdin())
			in, err := runner.ResolveText(inputText, inputFile, stdin)
			if err != nil {
				return err
			}
			out, err := runner.ResolveText(outputText, outputFile, stdin)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			state := a.defaultState()
			if err := applyFilters(&state, provider, class); err != nil {
				return err
			}
			state.SetTexts(in, out)

			records, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			b := board.Build(records, state)
			if err := writeReport(cmd.OutOrStdout(), format, output.NewReport(b, a.refresher.LastUpdated())); err != nil {
				return err
			}
			if code := runner.ExitCodeForBudget(b, budget); code != 0 {
				best, _ := b.Cheapest()
				fmt.Fprintf(cmd.ErrOrStderr(), "Cheapest model %s costs %s, over the %s budget\n",
					best.Record.DisplayName(), pricing.FormatCost(best.Cost), pricing.FormatCost(budget))
				return &runner.ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputText, "input-text", "", "prompt text")
	cmd.Flags().StringVar(&inputFile, "input-file", "", "read the prompt from a file")
	cmd.Flags().StringVar(&outputText, "output-text", "", "expected response text")
	cmd.Flags().StringVar(&outputFile, "output-file", "", "read the expected response from a file")
	cmd.Flags().StringVar(&provider, "provider", "", "provider filter (all, openai, anthropic, aws, azure, gcp)")
	cmd.Flags().StringVar(&class, "class", "", "model class filter (all, gpt4, gpt35, claude3, llama2, image, other)")
	cmd.Flags().StringVarP(&format, "output", "o", "markdown", "output format (markdown, json)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "fail when no model costs at most this much")
	cmd.MarkFlagsMutuallyExclusive("input-text", "input-file")
	cmd.MarkFlagsMutuallyExclusive("output-text", "output-file")

	return cmd
}

// stdinReader returns r unless it is a terminal, which has nothing to read.
func stdinReader(r io.Reader) io.Reader {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return r
}
