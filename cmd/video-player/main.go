package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"video-player/internal/catalog"
	"video-player/internal/console"
	"video-player/internal/player"
	"video-player/internal/startup"
)

// overrides collects the flags shared by the console and the server.
var overrides startup.Overrides

func newRootCmd() *cobra.Command {
	overrides = startup.Overrides{}

	root := &cobra.Command{
		Use:   "video-player",
		Short: "Browse and play videos from a catalog",
		Long: "video-player loads a catalog of videos and lets you play, pause and stop them,\n" +
			"search by title or tag, flag videos as unplayable and manage playlists.\n\n" +
			"Without a subcommand it starts an interactive console on stdin.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&overrides.CatalogPath, "catalog", "c", "", "catalog file (overrides CATALOG_PATH)")
	root.PersistentFlags().StringVar(&overrides.CatalogFormat, "format", "", "catalog format: auto, text or sqlite (overrides CATALOG_FORMAT)")

	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// runConsole loads the catalog and runs the interactive console. The prompt
// is only shown when stdin is a terminal, so piped scripts produce clean
// output.
func runConsole(cmd *cobra.Command) error {
	config, err := startup.ReadConfig(overrides)
	if err != nil {
		return err
	}

	cat, err := catalog.Open(cmd.Context(), config.CatalogPath, config.CatalogFormat)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	in := cmd.InOrStdin()
	var opts []console.Option
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		opts = append(opts, console.WithPrompt("> "))
	}

	return console.New(player.New(cat), in, cmd.OutOrStdout(), opts...).Run(cmd.Context())
}
