package main

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/freight/internal/cli"
	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/session"
	"github.com/spf13/cobra"
)

func applyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "apply <intent>...",
		Short: "Apply classification intents and print the resulting state",
		Long: `Run a sequence of intents through a fresh classification session.

Intents are applied in order:
  category=<id>   select a cargo category
  toggle=<mode>   enable or disable a transport mode

Toggling a mode the selected category forbids has no effect.`,
		Example: `  freight apply category=hazmat toggle=rail
  freight apply --json toggle=sea category=perishable`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intents := make([]session.Intent, 0, len(args))
			for _, arg := range args {
				intent, err := session.ParseIntent(arg)
				if err != nil {
					return common.NewUserError(fmt.Sprintf("Invalid intent %q", arg), err)
				}
				intents = append(intents, intent)
			}

			ctx := cmd.Context()
			mgr, cleanup, err := initSessions(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := mgr.Open(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := mgr.Close(ctx, s); closeErr != nil {
					common.LogError(closeErr, "failed to close session", common.Fields{"session": s.ID()})
				}
			}()

			state, err := s.Apply(ctx, intents)
			if err != nil {
				return common.NewUserError("Could not apply intents", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(state)
			}
			if err := cli.WriteState(out, mgr.Catalog(), state); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Applied %d intent(s)", len(intents))))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final state as JSON")

	return cmd
}
