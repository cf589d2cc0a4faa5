package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lessons, err := st.LessonRepo().List(cmd.Context())
		if err != nil {
			return err
		}

		if len(lessons) == 0 {
			fmt.Println("No exercises yet. Create one with: atelier generate <topic>")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-5s  %-16s  %s\n",
			"ID", "Kind", "Items", "Created", "Title")
		fmt.Println(strings.Repeat("─", 110))

		for _, l := range lessons {
			fmt.Printf("%-36s  %-20s  %-5d  %-16s  %s\n",
				l.ID,
				l.Kind.Label(),
				l.Content.ItemCount(),
				l.CreatedAt.Local().Format("2006-01-02 15:04"),
				l.Title,
			)
		}
		return nil
	},
}
