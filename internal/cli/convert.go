package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func convertCmd(opts *globalOpts) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "convert <quantity> <unit> to <unit>",
		Short: "Convert a single quantity and exit",
		Example: `  unitconv convert 5 m to cm
  unitconv convert 1 degree Celsius to kelvins
  unitconv convert --format json -- -40 c to f`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			line := strings.Join(args, " ")
			res := app.engine.Evaluate(line)

			if app.history != nil {
				if herr := app.history.Append(line, res); herr != nil {
					app.log.Warn("history.append.failed", "err", herr)
				}
			}

			if err := printResult(cmd.OutOrStdout(), line, res, format); err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("conversion failed (%s)", res.Kind)
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

type convertPayload struct {
	Input     string           `json:"input"`
	OK        bool             `json:"ok"`
	Kind      domain.ErrorKind `json:"kind,omitempty"`
	Message   string           `json:"message"`
	Quantity  *float64         `json:"quantity,omitempty"`
	From      string           `json:"from,omitempty"`
	To        string           `json:"to,omitempty"`
	Converted *float64         `json:"converted,omitempty"`
}

func printResult(w io.Writer, line string, res domain.ConversionResult, format string) error {
	switch format {
	case "json":
		p := convertPayload{
			Input:   line,
			OK:      res.OK(),
			Kind:    res.Kind,
			Message: res.Message,
		}
		if res.Kind != domain.KindParse {
			q := res.Request.Quantity
			p.Quantity = &q
		}
		if res.From != nil {
			p.From = res.From.Symbol
		}
		if res.To != nil {
			p.To = res.To.Symbol
		}
		if res.OK() && !math.IsInf(res.Converted, 0) && !math.IsNaN(res.Converted) {
			c := res.Converted
			p.Converted = &c
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "pretty", "":
		_, err := fmt.Fprintln(w, res.Message)
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
