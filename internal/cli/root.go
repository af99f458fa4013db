package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/buildinfo"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var verbose bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "tabgen",
		Short:        "tabgen renders and transposes guitar tablature",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			logRoot := wd
			if root, ferr := locator.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			} else if !debug {
				// Outside a workspace only --debug leaves a log dir behind.
				return nil
			}

			cfg := logger.Config{Root: logRoot, Debug: debug}
			if verbose {
				cfg.Echo = c.ErrOrStderr()
			}
			// A workspace without a writable log dir still gets to run commands.
			cleanup, _ = logger.Setup(cfg)

			logger.L().Debug("cli.start", "command", c.CommandPath(), "version", buildinfo.Version)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .tabgen/logs/tabgen.log")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "also print log lines to stderr")

	cmd.AddCommand(
		renderCmd(),
		transposeCmd(),
		validateCmd(),
		keysCmd(),
		songsCmd(),
		midiCmd(),
		queryCmd(),
		previewCmd(),
		rendersCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(c *cobra.Command, _ []string) {
			c.Println(buildinfo.String())
		},
	}
}
