package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shade-cli/internal/prefs"
	"shade-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigDir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "shade",
		Short:        "Terminal display settings (appearance + text size)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive settings screen
  shade

  # Scriptable commands
  shade appearance get
  shade appearance set automatic

  # Direct shortcut (rewrites to: shade appearance set dark)
  shade dark
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive settings screen.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr("SHADE_CONFIG_DIR", ""), "Settings directory (default: ~/.shade)")

	cmd.AddCommand(newAppearanceCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(ctx context.Context, app *App) error {
	store, closer, err := app.openStore(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	return tui.Run(store)
}

// openStore opens the durable preference store. The caller owns the closer.
func (app *App) openStore(ctx context.Context) (*prefs.Store, io.Closer, error) {
	path := ""
	if dir := strings.TrimSpace(app.ConfigDir); dir != "" {
		path = filepath.Join(dir, "settings.sqlite")
	} else {
		p, err := prefs.DBPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	b, err := prefs.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return prefs.NewStore(b), b, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
