package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/infra/configfinder"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{locator: configfinder.NewFinder()}

	cmd := &cobra.Command{
		Use:          "unitconv",
		Short:        "unitconv — convert length, mass and temperature from plain text",
		Long:         "Reads lines like \"5 m to cm\" and prints the converted quantity.\nType exit to leave the interactive session.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			s := usecase.NewSession(app.engine, cmd.InOrStdin(), cmd.OutOrStdout(),
				usecase.WithPrompt(app.cfg.Prompt),
				usecase.WithHistory(app.history),
				usecase.WithSessionLogger(app.log),
			)
			_, err = s.Run(cmd.Context())
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .unitconv/logs/unitconv.log")
	cmd.PersistentFlags().BoolVar(&opts.noTemperature, "no-temperature", false, "only accept length and mass units")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config", "", "Directory to search for unitconv.yaml (default: working directory)")

	cmd.AddCommand(
		convertCmd(opts),
		unitsCmd(opts),
		historyCmd(opts),
		tuiCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
