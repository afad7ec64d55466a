package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func historyCmd(opts *globalOpts) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			w := cmd.OutOrStdout()
			if app.history == nil {
				if !app.found {
					fmt.Fprintln(w, "(history disabled: no unitconv.yaml found, run `unitconv init`)")
				} else {
					fmt.Fprintln(w, "(history disabled in unitconv.yaml)")
				}
				return nil
			}

			entries, err := app.history.Recent(limit)
			if err != nil {
				return err
			}
			printHistory(w, entries)
			return nil
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 = all)")
	return c
}

func printHistory(w io.Writer, entries []domain.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "(no history yet)")
		return
	}
	for _, e := range entries {
		status := "OK"
		if e.Kind != "" {
			status = string(e.Kind)
		}
		fmt.Fprintf(w, "%s [%s] %s\n", e.At.Local().Format(time.DateTime), status, e.Input)
		fmt.Fprintf(w, "  %s\n", e.Message)
	}
}
