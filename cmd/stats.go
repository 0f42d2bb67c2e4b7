package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/ksander/retain/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		rec := s.engine.Record()
		fmt.Printf("XP:             %d (today %d/%d)\n", rec.XP, rec.DailyXP, rec.DailyGoal)
		fmt.Printf("Streak:         %d day(s), longest %d\n", rec.Streak, rec.LongestStreak)
		fmt.Printf("Freezes:        %d\n", rec.StreakFreezes)

		completed := rec.CompletedLessons()
		fmt.Printf("Completed:      %d lesson(s)\n", len(completed))

		ratings := s.engine.Ratings()
		if len(ratings) > 0 {
			ids := make([]string, 0, len(ratings))
			for id := range ratings {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			fmt.Println("Ratings:")
			for _, id := range ids {
				fmt.Printf("  %-24s %d\n", id, ratings[id])
			}
		}

		items := s.engine.Items()
		if len(items) > 0 {
			ids := make([]string, 0, len(items))
			for id := range items {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			fmt.Println("Retention:")
			now := time.Now()
			for _, id := range ids {
				it := items[id]
				due := "due now"
				if !it.IsDue(now) {
					due = "due " + it.DueAt.Format("2006-01-02")
				}
				line := fmt.Sprintf("  %-24s strength %3d%%  %s", id, it.Strength, due)
				if acc, n, err := s.store.EventRepo().RecentReviewAccuracy(cmd.Context(), id, 5); err == nil && n > 0 {
					line += fmt.Sprintf("  accuracy %.0f%% (last %d)", acc*100, n)
				}
				fmt.Println(line)
			}
		}

		rewards, err := s.store.EventRepo().QueryRewardEvents(cmd.Context(), store.QueryOpts{Limit: 5})
		if err == nil && len(rewards) > 0 {
			fmt.Println("Recent rewards:")
			for _, r := range rewards {
				fmt.Printf("  %s  %-6s +%d  (%s)\n", r.Timestamp.Format("2006-01-02"), r.Kind, r.Amount, r.Reason)
			}
		}
		return nil
	},
}
