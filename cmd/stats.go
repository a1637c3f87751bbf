package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cognify/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer history and recent cognitive states",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		eventRepo, err := st.EventRepo()
		if err != nil {
			return err
		}

		learnerID, _ := cmd.Flags().GetString("learner")
		stats, err := eventRepo.AnswerStats(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("answer stats: %w", err)
		}

		var b strings.Builder
		b.WriteString(theme.Title.Render("Mastery") + "\n")
		if len(stats) == 0 {
			b.WriteString(theme.Hint.Render("No answers recorded yet.") + "\n")
		}
		for _, cs := range stats {
			b.WriteString(fmt.Sprintf("%-24s attempts %-4d accuracy %5.1f%%  estimate %.3f\n",
				cs.CompetencyID, cs.Attempts, cs.Accuracy()*100, cs.LastEstimate))
		}

		states, err := eventRepo.RecentStates(ctx, 10)
		if err != nil {
			return fmt.Errorf("recent states: %w", err)
		}
		if len(states) > 0 {
			b.WriteString("\n" + theme.Title.Render("Recent cognitive states") + "\n")
			for _, s := range states {
				badge := theme.ForState(s.State).Render(s.State)
				b.WriteString(fmt.Sprintf("%s  %s (score %d)\n",
					s.Timestamp.Format("2006-01-02 15:04:05"), badge, s.Score))
			}
		}

		fmt.Print(theme.Card.Render(b.String()) + "\n")
		return nil
	},
}

func init() {
	statsCmd.Flags().String("learner", "local", "Learner ID to show stats for")
}
