package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhvu/atelier/internal/exercise"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full content of an exercise",
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

		sep := strings.Repeat("─", 60)

		fmt.Printf("Title:    %s\n", lesson.Title)
		fmt.Printf("ID:       %s\n", lesson.ID)
		fmt.Printf("Kind:     %s\n", lesson.Kind.Label())
		fmt.Printf("Created:  %s\n", lesson.CreatedAt.Local().Format("2006-01-02 15:04"))
		if lesson.Description != "" {
			fmt.Printf("About:    %s\n", lesson.Description)
		}
		if lesson.CoverImageRef != "" {
			fmt.Printf("Cover:    %s\n", lesson.CoverImageRef)
		}

		fmt.Println()
		fmt.Println(sep)
		printContent(lesson)

		if len(lesson.Grounding) > 0 {
			fmt.Println(sep)
			fmt.Println("Sources")
			for _, g := range lesson.Grounding {
				if g.Title != "" {
					fmt.Printf("  %s — %s\n", g.Title, g.URI)
				} else {
					fmt.Printf("  %s\n", g.URI)
				}
			}
		}
		return nil
	},
}

// printContent dumps the canonical items with answers, for authors.
func printContent(lesson *exercise.Lesson) {
	switch c := lesson.Content.(type) {
	case *exercise.QuizContent:
		for i, item := range c.Items {
			fmt.Printf("%d. %s\n", i+1, item.Prompt)
			for j, opt := range item.Options {
				mark := " "
				if j == item.CorrectOption {
					mark = "✓"
				}
				fmt.Printf("   %s %c) %s\n", mark, 'A'+j, opt)
			}
			if item.Explanation != "" {
				fmt.Printf("   → %s\n", item.Explanation)
			}
			fmt.Println()
		}

	case *exercise.MatchingContent:
		for _, item := range c.Items {
			fmt.Printf("  %-30s ↔ %s\n", item.Left, item.Right)
		}
		fmt.Println()

	case *exercise.CategorizationContent:
		for _, cat := range c.Categories {
			fmt.Printf("%s:\n", cat)
			for _, item := range c.Items {
				if item.Category == cat {
					fmt.Printf("  - %s\n", item.Text)
				}
			}
		}
		fmt.Println()
	}
}
