package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bizcheck/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the assessment categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		showQuestions, _ := cmd.Flags().GetBool("questions")
		printCatalog(cmd.OutOrStdout(), rt.Catalog, showQuestions)
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("questions", false, "Also print every statement")
}

func printCatalog(w io.Writer, c *catalog.Catalog, showQuestions bool) {
	fmt.Fprintf(w, "%-3s  %-26s  %-28s  %s\n", "#", "ID", "Name", "Statements")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	total := 0
	for i, cat := range c.All() {
		fmt.Fprintf(w, "%-3d  %-26s  %-28s  %d\n", i+1, cat.ID, cat.Name, cat.QuestionCount())
		total += cat.QuestionCount()
		if showQuestions {
			for j, q := range cat.Questions {
				fmt.Fprintf(w, "       %d. %s\n", j+1, q)
			}
		}
	}

	fmt.Fprintf(w, "\n%d categories, %d statements\n", c.Count(), total)
}
