package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhvu/atelier/internal/app"
	playscreen "github.com/minhvu/atelier/internal/screens/play"
)

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Play an exercise",
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

		return app.Run(playscreen.New(lesson))
	},
}
