package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lectio/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		learnerID := resolveLearnerID(cmd)

		events := st.EventRepo()
		total, err := events.TotalPoints(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("total points: %w", err)
		}
		attempts, correct, err := events.AttemptCounts(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("attempt counts: %w", err)
		}

		recs, err := st.ReviewRepo().ListByLearner(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("review records: %w", err)
		}
		due := 0
		now := time.Now()
		for _, rec := range recs {
			if !now.Before(rec.NextReviewDate) {
				due++
			}
		}

		fmt.Printf("Learner:            %s\n", learnerID)
		fmt.Printf("Total points:       %d\n", total)
		fmt.Printf("Questions answered: %d\n", attempts)
		if attempts > 0 {
			fmt.Printf("Accuracy:           %.0f%%\n", 100*float64(correct)/float64(attempts))
		}
		fmt.Printf("Items tracked:      %d\n", len(recs))
		fmt.Printf("Reviews due:        %d\n", due)
		return nil
	},
}
