package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func rendersCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "renders",
		Short: "Inspect saved render artifacts",
	}

	c.AddCommand(rendersListCmd())
	return c
}

func rendersListCmd() *cobra.Command {
	var workspace string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved renders, newest last",
		RunE: func(c *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			entries, err := ws.store.List()
			if err != nil {
				return err
			}

			w := c.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "(no renders saved)")
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			for _, e := range entries {
				fmt.Fprintf(w, "- %s  %s  %-4s %-4s %s\n",
					e.CreatedAt.Local().Format(time.DateTime), e.ID, e.Key, e.Format, e.Title)
				if e.Output != "" {
					fmt.Fprintf(w, "    -> %s\n", e.Output)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most n entries (0 for all)")
	return cmd
}
