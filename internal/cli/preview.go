package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/infra/logger"
	"github.com/cdclaxton/guitar-tab-generator/internal/ui/tui"
	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

func previewCmd() *cobra.Command {
	var workspace string
	var song string

	c := &cobra.Command{
		Use:   "preview",
		Short: "Browse songs and transpose them live in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			songPath := ""
			if strings.TrimSpace(song) != "" {
				songPath, err = resolveSongPath(ws, song)
				if err != nil {
					return err
				}
			}

			debug, _ := cmd.Flags().GetBool("debug")
			return tui.Run(tui.Deps{
				Root:       ws.root,
				Songs:      ws.songs,
				Catalog:    ws.catalog,
				Transposer: usecase.NewTransposeSong(ws.songs, usecase.WithMaxFret(ws.cfg.Transpose.MaxFret)),
				Renderer:   usecase.NewRenderSong(ws.songs, ws.cfg, nil),
				SongPath:   songPath,
				Logger:     logger.L(),
				Debug:      debug,
			})
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&song, "song", "s", "", "Open this song directly")
	return c
}
