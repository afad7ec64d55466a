package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/infra/configinit"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default unitconv.yaml (enables history and file logging)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveStartDir(path)
			if err != nil {
				return err
			}

			uc := usecase.NewInitConfig(configinit.NewInitializer())
			rep, err := uc.Execute(root, force)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if rep.ConfigWritten {
				fmt.Fprintf(w, "Wrote %s\n", rep.ConfigPath)
			} else {
				fmt.Fprintf(w, "Kept existing %s (use --force to overwrite)\n", rep.ConfigPath)
			}
			if rep.GitignoreUpdated {
				fmt.Fprintln(w, "Added .unitconv/ to .gitignore")
			}
			fmt.Fprintf(w, "Initialized unitconv in %s\n", rep.Root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Target directory (default: working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing unitconv.yaml")
	return c
}
