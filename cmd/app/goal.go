package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/store"
	"github.com/jadiha/little-prince/internal/tui"
	"github.com/jadiha/little-prince/internal/util"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals", "planet"},
		Short:   "Add, list and rename goals",
	}
	cmd.AddCommand(newGoalAddCmd(), newGoalListCmd(), newGoalRenameCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var styleName, reason string
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Plant a new goal planet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if err := store.ValidateGoalName(name); err != nil {
				return err
			}
			style := models.PlanetStyle(styleName)
			if !style.Valid() {
				return fmt.Errorf("unknown style %q (one of %s)", styleName, styleList())
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			g, err := a.store.AddGoal(cmd.Context(), name, style, util.OptionalString(reason))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planted %q (%s)\n", g.Name, g.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&styleName, "style", "s", string(models.StyleAmberHealth), "planet style")
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "why this goal matters")
	return cmd
}

func styleList() string {
	names := make([]string, len(models.PlanetStyles))
	for i, s := range models.PlanetStyles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with when they were last tended",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			statuses := a.store.Statuses()
			if len(statuses) == 0 {
				fmt.Fprintln(out, "No planets yet. Try: littleprince goal add \"Run every morning\"")
				return nil
			}
			cat := prince.DefaultCatalog()
			for i, st := range statuses {
				mark := " "
				if st.TendedToday {
					mark = "*"
				}
				fmt.Fprintf(out, "%d. [%s] %s  (%s, %s, last tended %s)  %s\n",
					i+1, mark, st.Goal.Name, cat.Style(st.Goal.Style).Label,
					tui.FormatStarCount(st.LogCount), tui.FormatLastTended(st), st.Goal.ID)
			}
			return nil
		},
	}
}

func newGoalRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename GOAL NEW-NAME",
		Short: "Rename a goal (by ID, position or name)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if err := store.ValidateGoalName(name); err != nil {
				return err
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			g, err := resolveGoal(a.store, args[0])
			if err != nil {
				return err
			}
			if _, err := a.store.UpdateGoalName(cmd.Context(), g.ID, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", g.Name, name)
			return nil
		},
	}
}
