package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cognify/internal/cognitive"
	"github.com/abhisek/cognify/internal/monitor"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live cognitive-state session in the terminal",
	Long: "Opens an interactive session: type into the input to feed the friction\n" +
		"detector, cycle simulated facial/vocal labels, and watch the classifier\n" +
		"react in real time. State changes are persisted as events.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return err
		}

		engine := cognitive.NewEngine(eventRepo)
		return monitor.Run(engine)
	},
}
