package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julianshen/pricemap/internal/board"
	"github.com/julianshen/pricemap/internal/diagram"
	"github.com/julianshen/pricemap/internal/export"
	"github.com/julianshen/pricemap/internal/output"
)

func exportCmd() *cobra.Command {
	var (
		dir         string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the price grid, diagram and service list to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			report := output.NewReport(board.Build(records, a.defaultState()), a.refresher.LastUpdated())
			report.Links = diagram.DefaultLinks()
			t := diagram.DefaultTaxonomy()
			canvas := diagram.Canvas{Width: a.cfg.Diagram.Width, Height: a.cfg.Diagram.Height}

			exp := export.NewExporter(dir, a.log)
			if concurrency > 0 {
				exp.Concurrency = concurrency
			}
			written, err := exp.Export(cmd.Context(), export.Bundle{
				Report:  report,
				Diagram: diagram.Layout(t, canvas, diagram.DefaultLayoutConfig()),
				Cards:   diagram.Cards(t),
			})
			w := cmd.OutOrStdout()
			for _, art := range written {
				fmt.Fprintf(w, "%-14s %6d bytes  %s\n", art.Name, art.Size, art.Path)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "pricemap-export", "output directory")
	cmd.Flags().IntVar(&concurrency, "concurrency", export.DefaultConcurrency, "files written in parallel")
	return cmd
}
