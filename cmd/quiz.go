package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <lesson-id> <score> <total>",
	Short: "Submit a quiz attempt for a lesson",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := args[0]
		score, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("score must be a number: %q", args[1])
		}
		total, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("total must be a number: %q", args[2])
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		retry, _ := cmd.Flags().GetBool("retry")
		if retry {
			if err := s.engine.RetryQuiz(cmd.Context(), lessonID); err != nil {
				return err
			}
		}

		res, err := s.engine.SubmitQuiz(cmd.Context(), lessonID, score, total, time.Now())
		if err != nil {
			return err
		}
		if err := s.commit(cmd); err != nil {
			return err
		}

		if !res.Passed {
			fmt.Printf("Not passed (%d/%d). Retry with `retain quiz %s <score> <total> --retry`.\n", score, total, lessonID)
			return nil
		}
		if res.FirstCompletion {
			fmt.Printf("Lesson completed! +%d XP", res.XPAwarded)
			if res.StreakExtended {
				fmt.Printf(", streak %d day(s)", res.Streak)
			}
			fmt.Println(".")
			fmt.Println("A review of this lesson is now scheduled.")
		} else {
			fmt.Printf("Passed again (%d/%d). Already completed, no new XP.\n", score, total)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().Bool("retry", false, "Reopen a pending quiz before submitting")
}
