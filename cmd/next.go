package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Recommend the next lesson to study",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		u, ok := s.engine.NextUnit()
		if !ok {
			fmt.Println("Nothing to recommend: all unlocked lessons are completed.")
			return nil
		}
		fmt.Printf("%s (%s)\n", u.Name, u.ID)
		if u.EstimatedMins > 0 {
			fmt.Printf("Estimated time: %d min\n", u.EstimatedMins)
		}
		fmt.Printf("Your rating: %d, lesson difficulty: %.0f\n", s.engine.Rating(u.ID), u.Difficulty)
		return nil
	},
}
