package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/ui/tui"
)

func tuiCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen converter",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			return tui.Run(tui.Deps{
				Engine:     app.engine,
				Units:      app.registry.Units(),
				History:    app.history,
				ConfigRoot: app.root,
				Prompt:     app.cfg.Prompt,
				Logger:     app.log,
				LogPath:    logger.Path(),
				Debug:      opts.debug,
			})
		},
	}
}
