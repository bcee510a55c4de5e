package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julianshen/pricemap/internal/board"
	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/diagram"
	"github.com/julianshen/pricemap/internal/output"
)

func catalogCmd() *cobra.Command {
	var (
		provider string
		class    string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the model price grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			state := a.defaultState()
			if err := applyFilters(&state, provider, class); err != nil {
				return err
			}
			records, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			report := output.NewReport(board.Build(records, state), a.refresher.LastUpdated())
			report.Links = diagram.DefaultLinks()
			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "provider filter (all, openai, anthropic, aws, azure, gcp)")
	cmd.Flags().StringVar(&class, "class", "", "model class filter (all, gpt4, gpt35, claude3, llama2, image, other)")
	cmd.Flags().StringVarP(&format, "output", "o", "markdown", "output format (markdown, json)")

	cmd.AddCommand(catalogValidateCmd())
	return cmd
}

func catalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a YAML catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading catalog: %w", err)
			}
			c, err := catalog.ParseFile(data)
			if err != nil {
				return err
			}

			counts := map[catalog.ProviderGroup]int{}
			for _, r := range c.Records() {
				counts[r.ProviderGroup]++
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d models\n", args[0], c.Len())
			for _, g := range catalog.ProviderGroups() {
				if n := counts[g]; n > 0 {
					fmt.Fprintf(w, "  %-10s %d\n", g, n)
				}
			}
			return nil
		},
	}
}
