package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <item-id> <rating>",
	Short: "Grade a due review (0=again, 1=hard, 2=good, 3=easy)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID := args[0]
		choice, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("rating must be 0-3: %q", args[1])
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		item, err := s.engine.AnswerReview(cmd.Context(), itemID, choice, time.Now())
		if err != nil {
			return err
		}
		if err := s.commit(cmd); err != nil {
			return err
		}

		fmt.Printf("%s rescheduled: next review in %d day(s), strength %d%%.\n", item.ID, item.IntervalDays, item.Strength)
		return nil
	},
}
