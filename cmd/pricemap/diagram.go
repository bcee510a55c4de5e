package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julianshen/pricemap/internal/diagram"
)

func diagramCmd() *cobra.Command {
	var (
		format string
		width  float64
		height float64
		out    string
		focus  string
		cols   int
		rows   int
	)

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Draw the AI services map",
		Long: `Diagram lays out the provider taxonomy as a radial mind map: the root in
the centre, one circle per provider and the provider's services fanned
around it. Formats: svg, json, text.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			canvas := diagram.Canvas{Width: cfg.Diagram.Width, Height: cfg.Diagram.Height}
			if cmd.Flags().Changed("width") {
				canvas.Width = width
			}
			if cmd.Flags().Changed("height") {
				canvas.Height = height
			}
			if canvas.Width <= 0 || canvas.Height <= 0 {
				return fmt.Errorf("invalid canvas %gx%g", canvas.Width, canvas.Height)
			}

			t := diagram.DefaultTaxonomy()
			d := diagram.Layout(t, canvas, diagram.DefaultLayoutConfig())

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "svg":
				return diagram.RenderSVG(w, d)
			case "json":
				data, err := json.MarshalIndent(d, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			case "text":
				return writePlot(w, t, d, focus, cols, rows)
			default:
				return fmt.Errorf("unknown diagram format: %s", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format (svg, json, text)")
	cmd.Flags().Float64Var(&width, "width", diagram.DefaultCanvas().Width, "canvas width")
	cmd.Flags().Float64Var(&height, "height", diagram.DefaultCanvas().Height, "canvas height")
	cmd.Flags().StringVar(&out, "out", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&focus, "focus", "", "service to highlight in text output; lists its provider's docs")
	cmd.Flags().IntVar(&cols, "cols", 120, "text output columns")
	cmd.Flags().IntVar(&rows, "rows", 48, "text output rows")

	return cmd
}

// writePlot prints the character plot followed by the link list the
// focused service would show.
func writePlot(w io.Writer, t diagram.Taxonomy, d diagram.Diagram, focus string, cols, rows int) error {
	idx := -1
	selector := diagram.NewLinkSelector(t)
	if focus != "" {
		for i, leaf := range d.Leaves {
			if strings.EqualFold(leaf.Label, focus) {
				idx = i
				selector.Enter(leaf.Group)
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("unknown service %q", focus)
		}
	}

	fmt.Fprintln(w, diagram.Plot(d, cols, rows, idx).String())
	fmt.Fprintln(w)
	if selector.State() == diagram.ShowingGroup {
		fmt.Fprintf(w, "%s documentation:\n", selector.Group())
	} else {
		fmt.Fprintln(w, "Pricing pages:")
	}
	for _, l := range selector.Current() {
		fmt.Fprintf(w, "  %-28s %s\n", l.Name, l.URL)
	}
	return nil
}

func servicesCmd() *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List AI services by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := diagram.Cards(diagram.DefaultTaxonomy())
			if category != "" && category != diagram.FilterAll {
				known := false
				for _, c := range diagram.CardCategories(all) {
					if c == category {
						known = true
						break
					}
				}
				if !known {
					return fmt.Errorf("unknown category %q (have: %s)", category,
						strings.Join(diagram.CardCategories(all), ", "))
				}
			}
			cards := diagram.FilterCards(all, category)

			w := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(cards, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			}
			for _, c := range cards {
				fmt.Fprintf(w, "%-28s %-14s %s\n", c.Title, c.Group, c.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", diagram.FilterAll, "category filter")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
