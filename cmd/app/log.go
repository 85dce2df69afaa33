package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/store"
	"github.com/jadiha/little-prince/internal/tui"
	"github.com/jadiha/little-prince/internal/util"
)

func newLogCmd() *cobra.Command {
	var note string
	var quiet bool
	cmd := &cobra.Command{
		Use:     "log GOAL",
		Aliases: []string{"tend"},
		Short:   "Tend a goal today and release a star",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			g, err := resolveGoal(a.store, args[0])
			if err != nil {
				return err
			}
			res, err := a.store.LogDay(cmd.Context(), g.ID, util.OptionalString(note))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch res.Outcome {
			case store.LogAlreadyLogged:
				fmt.Fprintf(out, "%s is already tended today. Come back tomorrow.\n", g.Name)
				return nil
			case store.LogGoalNotFound:
				return fmt.Errorf("goal %s disappeared", g.ID)
			}
			fmt.Fprintf(out, "A star was released for %s. It is yours forever.\n", g.Name)
			if quiet {
				return nil
			}
			req := prince.BuildRequest(prince.ContextAfterLog, a.store.Snapshot(), prince.AfterLog(g.Name, util.OptionalString(note)))
			printReply(out, a.princeService().Speak(cmd.Context(), req))
			return nil
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "a few words, if you like")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not ask the prince")
	return cmd
}

func printReply(w io.Writer, r prince.Reply) {
	fmt.Fprintf(w, "\n  “%s”\n", r.Message)
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the rose, streaks and every goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			printSummary(cmd.OutOrStdout(), a.store.Snapshot().Summary())
			if a.store.FoxDue() {
				fmt.Fprintln(cmd.OutOrStdout(), "\nThe fox is waiting: littleprince reflect \"what did you tame this week?\"")
			}
			return nil
		},
	}
}

func printSummary(w io.Writer, sum derive.Summary) {
	fmt.Fprintf(w, "%s\n", sum.Today)
	fmt.Fprintf(w, "Rose:           %s (%s)\n", sum.Rose.Label(), tui.FormatScore(sum.Score))
	fmt.Fprintf(w, "Streak:         %s (longest %s)\n", tui.FormatStreak(sum.Streak), tui.FormatStreak(sum.LongestStreak))
	fmt.Fprintf(w, "Stars:          %d\n", sum.TotalStars)
	for i, st := range sum.Goals {
		fmt.Fprintf(w, "  %d. %-30s %s\n", i+1, st.Goal.Name, tui.FormatLastTended(st))
	}
}

func newVisitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "visit",
		Short: "Record today's visit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			returning, err := a.store.RecordVisit(cmd.Context())
			if err != nil {
				return err
			}
			if returning {
				fmt.Fprintln(cmd.OutOrStdout(), "Welcome back.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Visit recorded.")
			}
			return nil
		},
	}
}
