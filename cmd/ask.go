package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a free-form art question",
	Long:  "Ask a free-form art question. Answers use web-search grounding when the provider supports it.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		generator, err := buildGenerator(cmd.Context(), cmd, st.EventRepo())
		if err != nil {
			return err
		}

		answer, err := generator.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(answer.Text)

		if len(answer.Citations) > 0 {
			fmt.Println()
			fmt.Println("Sources:")
			for _, c := range answer.Citations {
				if c.Title != "" {
					fmt.Printf("  %s — %s\n", c.Title, c.URI)
				} else {
					fmt.Printf("  %s\n", c.URI)
				}
			}
		}
		return nil
	},
}
