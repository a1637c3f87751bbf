package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/cognify/internal/knowledge"
	"github.com/abhisek/cognify/internal/store"
)

var replayCmd = &cobra.Command{
	Use:   "replay [interactions.json]",
	Short: "Fold a graded interaction log into mastery estimates",
	Long: "Reads an ordered JSON array of interactions\n" +
		"({\"competencyId\", \"correct\", \"timeSpentMs\"}) from a file or stdin,\n" +
		"folds it through the BKT estimator, persists the events and a snapshot,\n" +
		"and prints the resulting estimates.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open interactions file: %w", err)
			}
			defer f.Close()
			in = f
		}

		var interactions []knowledge.Interaction
		if err := json.NewDecoder(in).Decode(&interactions); err != nil {
			return fmt.Errorf("decode interactions: %w", err)
		}

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
		snapRepo := st.SnapshotRepo()

		base, err := snapRepo.Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		var baseData *store.SnapshotData
		if base != nil {
			baseData = &base.Data
		}

		learnerID, _ := cmd.Flags().GetString("learner")
		tracker := knowledge.NewTracker(learnerID, baseData, eventRepo)
		touched := tracker.Replay(ctx, interactions)

		snap := &store.Snapshot{
			Timestamp: time.Now(),
			Data:      *tracker.SnapshotData(baseData),
		}
		if err := snapRepo.Save(ctx, snap); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}

		ids := make([]string, 0, len(touched))
		for id := range touched {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Printf("%-24s %.4f\n", id, touched[id])
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().String("learner", "local", "Learner ID to record interactions under")
}
