package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HeyGarrison/cakeelizabethdotcom/config"
	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/content/sqlitestore"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/preview"
	"github.com/HeyGarrison/cakeelizabethdotcom/site"
	"github.com/spf13/cobra"
)

func newServer(a *app) (*site.Server, error) {
	return site.New(site.Options{Deps: a.deps, Logger: a.logger, Assets: a.assets})
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Long: `Serve the site over HTTP with server-rendered pages.

EXAMPLES:
    site serve
    site serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				if addr == "" {
					addr = a.cfg.Addr
				}
				srv, err := newServer(a)
				if err != nil {
					return err
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return srv.ListenAndServe(ctx, addr)
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from configuration)")
	return cmd
}

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static HTML",
		Long: `Render every page into a directory of static files.

EXAMPLES:
    site build --out public`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				srv, err := newServer(a)
				if err != nil {
					return err
				}
				files, err := srv.Build(cmd.Context(), out)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "public", "output directory")
	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var (
		db  string
		dir string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy page content into a SQLite database",
		Long: `Copy page content into a SQLite database that 'serve' can read with
content.source = "sqlite".

The source is the content directory given with --from, or the content built
into the binary.

EXAMPLES:
    site import --db content.db
    site import --db content.db --from ./content`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var src content.Store = content.Embedded()
			if dir != "" {
				src = content.NewFSStore(os.DirFS(dir))
			}

			store, err := sqlitestore.Open(db)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Import(cmd.Context(), src)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d pages into %s\n", n, db)
			return nil
		},
	}
	cmd.Flags().StringVar(&db, "db", "content.db", "SQLite database path")
	cmd.Flags().StringVar(&dir, "from", "", "content directory (default: built-in content)")
	return cmd
}

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [PATH]",
		Short: "Browse the site in the terminal",
		Long: `Browse the site in the terminal. Arrow keys and Escape drive the image
overlay exactly as they do in the browser.

EXAMPLES:
    site preview /cake-pricing-flavors`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/cake-pricing-flavors"
			if len(args) == 1 {
				path = args[0]
			}
			start, err := location.Parse(path)
			if err != nil {
				return err
			}
			return withApp(opts, func(a *app) error {
				return preview.Run(preview.New(a.deps, start))
			})
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := config.Sample()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), sample)
			return nil
		},
	}
}
