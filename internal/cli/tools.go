package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/infra/yamlregistry"
)

func toolsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tools",
		Short: "Browse the tools registry",
	}

	c.AddCommand(toolsListCmd())
	return c
}

func toolsListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := yamlregistry.Builtin()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printed := 0
			for _, cat := range reg.Categories() {
				if category != "" && !strings.EqualFold(cat, category) {
					continue
				}

				fmt.Fprintf(w, "%s\n", cat)
				for _, t := range reg.ByCategory(cat) {
					fmt.Fprintf(w, "- %s  (toolbelt %s)\n", t.Name, t.Command)
					fmt.Fprintf(w, "  %s\n", t.Description)
					printed++
				}
				fmt.Fprintln(w)
			}

			if printed == 0 {
				fmt.Fprintln(w, "(no tools found)")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list tools in this category")
	return cmd
}
