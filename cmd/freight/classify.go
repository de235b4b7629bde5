package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/freight/internal/cli"
	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/model"
	"github.com/Veraticus/freight/internal/session"
	"github.com/Veraticus/freight/internal/tui"
	"github.com/Veraticus/freight/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Interactively pick a cargo category and transport modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			state, err := tui.Run(ctx, tui.Config{
				Classifier: s.Engine(),
				Categories: mgr.Catalog().Categories(),
				Modes:      mgr.Catalog().Modes(),
				Theme:      themes.ByName(viper.GetString("tui.theme")),
				OnChange:   saveStateCmd(ctx, s),
			}, tea.WithAltScreen())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle("Final selection"))
			return cli.WriteState(cmd.OutOrStdout(), mgr.Catalog(), state)
		},
	}

	cmd.Flags().String("theme", "", "TUI theme (default, catppuccin)")
	_ = viper.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

// saveStateCmd stores every accepted state change in the session store.
func saveStateCmd(ctx context.Context, s *session.Session) func(model.ClassificationState) tea.Cmd {
	return func(state model.ClassificationState) tea.Cmd {
		return func() tea.Msg {
			if err := s.Save(ctx, state); err != nil {
				return tui.SaveFailedMsg{Err: err}
			}
			return tui.StateSavedMsg{State: state}
		}
	}
}
