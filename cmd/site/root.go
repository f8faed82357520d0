package main

import (
	"io"

	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	logOutput  io.Writer
}

func newRootCmd(logOutput io.Writer) *cobra.Command {
	opts := &rootOptions{logOutput: logOutput}

	root := &cobra.Command{
		Use:   "site",
		Short: "Serve, build and preview the Cake Elizabeth website.",
		Long: `Serve, build and preview the Cake Elizabeth website.

Configuration is read from the file given with --config, then overridden by
CAKE_* environment variables (CAKE_ADDR, CAKE_CONTENT_SOURCE, CAKE_CONTENT_DIR,
CAKE_CONTENT_DB, CAKE_LANGUAGE, CAKE_LOG_LEVEL, CAKE_LOG_FORMAT,
CAKE_ASSETS_DIR).`,
		SilenceUsage: true,
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(
		newServeCmd(opts),
		newBuildCmd(opts),
		newImportCmd(opts),
		newPreviewCmd(opts),
		newConfigCmd(),
	)
	return root
}

// withApp loads the app for the duration of fn.
func withApp(opts *rootOptions, fn func(a *app) error) error {
	a, err := loadApp(opts.configPath, opts.logOutput)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.close(); cerr != nil {
			a.logger.Warn("Closing content store failed", "err", cerr)
		}
	}()
	return fn(a)
}
