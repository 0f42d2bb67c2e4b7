package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Spend a streak freeze to cover a missed day",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		if err := s.engine.ConsumeStreakFreeze(cmd.Context(), time.Now()); err != nil {
			return err
		}
		if err := s.commit(cmd); err != nil {
			return err
		}

		rec := s.engine.Record()
		fmt.Printf("Streak preserved at %d day(s). %d freeze(s) left.\n", rec.Streak, rec.StreakFreezes)
		return nil
	},
}
