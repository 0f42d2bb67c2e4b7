package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List reviews that are due",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		now := time.Now()
		sess := s.engine.ReviewSession(now)
		if sess.TotalDue == 0 {
			fmt.Println("No reviews due. Come back tomorrow.")
			return nil
		}

		fmt.Printf("%d review(s) due, %s priority:\n", sess.TotalDue, sess.Priority)
		for _, it := range sess.Items {
			overdue := int(it.OverdueDays(now))
			if overdue > 0 {
				fmt.Printf("  %-24s strength %3d%%  %d day(s) overdue\n", it.ID, it.Strength, overdue)
			} else {
				fmt.Printf("  %-24s strength %3d%%  due today\n", it.ID, it.Strength)
			}
		}
		if sess.TotalDue > len(sess.Items) {
			fmt.Printf("(%d more after this batch)\n", sess.TotalDue-len(sess.Items))
		}
		fmt.Println("Grade one with `retain review <item-id> <0-3>`.")
		return nil
	},
}
