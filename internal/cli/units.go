package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func unitsCmd(opts *globalOpts) *cobra.Command {
	var family string
	var format string

	c := &cobra.Command{
		Use:   "units",
		Short: "List supported units and their aliases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			units := app.registry.Units()
			if strings.TrimSpace(family) != "" {
				f, err := domain.ParseFamily(family)
				if err != nil {
					return err
				}
				units = app.registry.UnitsOf(f)
			}

			return printUnits(cmd.OutOrStdout(), units, format)
		},
	}

	c.Flags().StringVarP(&family, "family", "f", "", "Only list one family: length|mass|temperature")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

type unitPayload struct {
	Symbol   string   `json:"symbol"`
	Family   string   `json:"family"`
	Singular string   `json:"singular"`
	Plural   string   `json:"plural"`
	Scale    float64  `json:"scale,omitempty"`
	Aliases  []string `json:"aliases"`
}

func printUnits(w io.Writer, units []domain.Unit, format string) error {
	switch format {
	case "json":
		out := make([]unitPayload, 0, len(units))
		for _, u := range units {
			out = append(out, unitPayload{
				Symbol:   u.Symbol,
				Family:   u.Family.String(),
				Singular: u.Singular,
				Plural:   u.Plural,
				Scale:    u.Scale,
				Aliases:  u.Aliases,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "pretty", "":
		printPrettyUnits(w, units)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyUnits(w io.Writer, units []domain.Unit) {
	if len(units) == 0 {
		fmt.Fprintln(w, "(no units)")
		return
	}

	first := true
	var current domain.Family
	for _, u := range units {
		if first || u.Family != current {
			if !first {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", u.Family)
			current = u.Family
			first = false
		}
		fmt.Fprintf(w, "  %-3s %s / %s  (%s)\n", u.Symbol, u.Singular, u.Plural, strings.Join(u.Aliases, ", "))
	}
}
