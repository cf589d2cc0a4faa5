package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lesson, err := st.LessonRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if lesson == nil {
			return fmt.Errorf("exercise %s not found", args[0])
		}

		if err := st.LessonRepo().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %q\n", lesson.Title)
		return nil
	},
}
