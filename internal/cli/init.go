package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/infra/fsworkspace"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/logger"
	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a tabgen workspace with an example song",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid workspace path: %w", err)
			}
			if err := os.MkdirAll(root, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", root, err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				logger.L().Error("workspace.init.failed", "root", root, "err", err)
				return err
			}
			logger.L().Info("workspace.init.ok", "root", root, "force", force)

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			fmt.Fprintln(cmd.OutOrStdout(), "Try: tabgen render -s house-of-the-rising-sun")
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
