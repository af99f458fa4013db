package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/logger"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/textwriter"
	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

func renderCmd() *cobra.Command {
	var workspace string
	var song string
	var keys keyFlags
	var format string
	var out string
	var noSave bool

	c := &cobra.Command{
		Use:   "render",
		Short: "Lay out a song as tablature, optionally in another key",
		Long: "Render a song from the workspace. Text output goes to stdout unless --out is given;\n" +
			"PDF output defaults to the workspace output directory.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			songPath, err := resolveSongPath(ws, song)
			if err != nil {
				return err
			}

			f := domain.DocumentFormat(strings.ToLower(strings.TrimSpace(format)))
			if f != domain.FormatText && f != domain.FormatPDF {
				return fmt.Errorf("unsupported format %q (expected text|pdf)", format)
			}
			if out == "" && f == domain.FormatPDF {
				out = defaultOutput(ws, songPath, keys.key, "pdf")
			}

			var uc *usecase.RenderSong
			if noSave {
				uc = usecase.NewRenderSong(ws.songs, ws.cfg, nil, ws.writers...)
			} else {
				uc = usecase.NewRenderSong(ws.songs, ws.cfg, ws.store, ws.writers...)
			}

			log := logger.L()
			log.Info("render.start", "song", songPath, "key", keys.key, "format", string(f), "out", out)

			res, err := uc.Execute(cmd.Context(), usecase.RenderRequest{
				SongPath:   songPath,
				Change:     keys.change(),
				Format:     f,
				OutputPath: out,
			})
			if err != nil {
				log.Error("render.failed", "song", songPath, "err", err)
				return err
			}
			log.Info("render.ok",
				"song", songPath,
				"from", res.Original.Key.String(),
				"to", res.Song.Key.String(),
				"lines", len(res.Document.Lines),
				"artifact", res.ArtifactID,
			)

			if out == "" {
				return textwriter.New().Write(res.Document, cmd.OutOrStdout())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, key %s)\n", out, f, res.Song.Key)
			if res.ArtifactID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Render ID: %s\n", res.ArtifactID)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&song, "song", "s", "", "Song name, title or path (required)")
	keys.register(c)
	c.Flags().StringVarP(&format, "format", "f", "text", "Output format: text|pdf")
	c.Flags().StringVarP(&out, "out", "o", "", "Output file (text defaults to stdout)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a render artifact under renders/")

	_ = c.MarkFlagRequired("song")
	return c
}
