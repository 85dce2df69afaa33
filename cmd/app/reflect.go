package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
)

func newReflectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reflect ANSWER",
		Short: "Answer the fox: what did you tame this week?",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer := strings.TrimSpace(strings.Join(args, " "))
			if answer == "" {
				return fmt.Errorf("the fox is waiting for an answer")
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if a.store.ReflectedThisWeek() {
				fmt.Fprintln(out, "You already answered the fox this week.")
				return nil
			}
			req := prince.BuildRequest(prince.ContextWeeklyFox, a.store.Snapshot(), prince.FoxAnswer(answer))
			reply := a.princeService().Speak(cmd.Context(), req)
			added, err := a.store.AddReflection(cmd.Context(), models.WeeklyReflection{
				FoxAnswer:      answer,
				PrinceResponse: reply.Message,
			})
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintln(out, "You already answered the fox this week.")
				return nil
			}
			printReply(out, reply)
			return nil
		},
	}
}

func newPlanetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "planets [ID]",
		Short: "List the grown-ups' planets or visit one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := prince.DefaultCatalog()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, p := range cat.Planets {
					fmt.Fprintf(out, "%-12s %-16s %s\n", p.ID, p.Character, p.Number)
				}
				return nil
			}

			p, ok := cat.Planet(args[0])
			if !ok {
				return fmt.Errorf("no planet %q", args[0])
			}
			fmt.Fprintf(out, "%s, %s\n%s\n\n%s\n\n%s\n", p.Character, p.Number, p.Trap, p.Lesson, p.Quote)

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			req := prince.BuildRequest(prince.ContextStoryPlanet, a.store.Snapshot(), prince.Visiting(p.ID))
			printReply(out, a.princeService().Speak(cmd.Context(), req))
			return nil
		},
	}
}
