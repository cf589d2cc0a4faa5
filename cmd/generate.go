package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhvu/atelier/internal/exercise"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a new exercise from a topic",
	Long: "Generate a new exercise from a topic using the configured AI provider.\n" +
		"Kinds: " + kindNames(),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kindName, _ := cmd.Flags().GetString("kind")
		kind, err := exercise.ParseKind(kindName)
		if err != nil {
			return err
		}

		topic := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		generator, err := buildGenerator(cmd.Context(), cmd, st.EventRepo())
		if err != nil {
			return err
		}

		fmt.Printf("Generating %s exercise on %q...\n", kind.Label(), topic)
		lesson, err := generator.Generate(cmd.Context(), topic, kind)
		if err != nil {
			return err
		}

		if err := st.LessonRepo().Append(cmd.Context(), lesson); err != nil {
			return err
		}

		fmt.Printf("Created %q (%s, %d items)\n", lesson.Title, lesson.ID, lesson.Content.ItemCount())
		if lesson.CoverImageRef != "" {
			fmt.Printf("Cover: %s\n", lesson.CoverImageRef)
		}
		if len(lesson.Grounding) > 0 {
			fmt.Printf("Grounded on %d sources\n", len(lesson.Grounding))
		}
		fmt.Printf("\nPlay it with: atelier play %s\n", lesson.ID)
		return nil
	},
}

func kindNames() string {
	names := make([]string, len(exercise.Kinds))
	for i, k := range exercise.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func init() {
	generateCmd.Flags().StringP("kind", "k", "quiz", "Interaction kind ("+kindNames()+")")
}
