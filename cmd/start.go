package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <lesson-id>",
	Short: "Start a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		lessonID := args[0]
		s.engine.StartLesson(cmd.Context(), lessonID)

		done, _ := cmd.Flags().GetBool("content-done")
		if done {
			s.engine.MarkContentComplete(cmd.Context(), lessonID)
		}

		if err := s.commit(cmd); err != nil {
			return err
		}
		fmt.Printf("Lesson %s started. Take the quiz with `retain quiz %s <score> <total>`.\n", lessonID, lessonID)
		return nil
	},
}

func init() {
	startCmd.Flags().Bool("content-done", false, "Also mark the lesson content as viewed")
}
