package cli

import (
	"fmt"

	"shade-cli/internal/settings"

	"github.com/spf13/cobra"
)

func newAppearanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appearance",
		Short: "Read or change the display appearance preference",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the effective appearance (automatic when unset)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closer, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), store.Get().String())
			return err
		},
	}

	set := &cobra.Command{
		Use:   "set <light|dark|automatic>",
		Short: "Persist an appearance choice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := settings.Parse(args[0])
			if err != nil {
				return err
			}
			store, closer, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()
			store.Set(v)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "appearance: %s\n", v)
			return err
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List appearance choices (current one marked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closer, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()
			current := store.Get()
			// Same order as the settings screen.
			for _, v := range settings.AppearanceRows {
				mark := " "
				if v == current {
					mark = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n", mark, v.String(), v.Description()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.AddCommand(get, set, list)
	return cmd
}
