package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func songsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "songs",
		Short: "Manage songs in a workspace",
	}

	c.AddCommand(songsListCmd())
	return c
}

func songsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List songs",
		RunE: func(c *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListSongs(ws.root)
			if err != nil {
				return err
			}

			w := c.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no songs found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s)\n", r.Title, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
