package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Reload the catalog and overwrite the cached snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			w := cmd.OutOrStdout()
			if status {
				snap, ok := a.refresher.Cached()
				if !ok {
					fmt.Fprintln(w, "No cached snapshot.")
					return nil
				}
				fmt.Fprintf(w, "Snapshot:     %s\n", snap.ID)
				fmt.Fprintf(w, "Models:       %d\n", len(snap.Data))
				fmt.Fprintf(w, "Last updated: %s\n", snap.Timestamp.Format(time.DateTime))
				fmt.Fprintf(w, "Expiry:       %s\n", a.refresher.Expiry())
				fmt.Fprintf(w, "Stale:        %t\n", a.refresher.Stale())
				return nil
			}

			snap, err := a.refresher.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			if a.store == nil {
				fmt.Fprintf(w, "Loaded %d models (cache unavailable)\n", len(snap.Data))
				return nil
			}
			fmt.Fprintf(w, "Refreshed %d models at %s\n", len(snap.Data), snap.Timestamp.Format(time.DateTime))
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show the cached snapshot without refreshing")
	return cmd
}
