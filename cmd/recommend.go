package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/cognify/internal/curriculum"
	"github.com/abhisek/cognify/internal/knowledge"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show the next competency to practice",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := loadCurriculum(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}

		learnerID, _ := cmd.Flags().GetString("learner")
		levels := map[string]float64{}
		if snap != nil && snap.Data.Mastery != nil {
			levels = snap.Data.Mastery[learnerID]
		}

		next := curriculum.RecommendNext(graph, levels, knowledge.PriorMastery)
		if next == nil {
			fmt.Println("All caught up — no competency is both unlocked and unmastered.")
			return nil
		}

		fmt.Printf("Next up: %s (%s)\n", next.Name, next.ID)
		if next.Description != "" {
			fmt.Println(next.Description)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("learner", "local", "Learner ID to recommend for")
	recommendCmd.Flags().String("curriculum", "", "Path to a curriculum JSON file (default: built-in curriculum)")
}

// loadCurriculum returns the graph from --curriculum, or the built-in seed.
func loadCurriculum(cmd *cobra.Command) (*curriculum.Graph, error) {
	path, _ := cmd.Flags().GetString("curriculum")
	if path == "" {
		return curriculum.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curriculum: %w", err)
	}
	defer f.Close()
	g, err := curriculum.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load curriculum %s: %w", path, err)
	}
	return g, nil
}
