package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/logger"
	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

func transposeCmd() *cobra.Command {
	var workspace string
	var song string
	var keys keyFlags

	c := &cobra.Command{
		Use:   "transpose",
		Short: "Show how a song's chords change in another key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			songPath, err := resolveSongPath(ws, song)
			if err != nil {
				return err
			}

			uc := usecase.NewTransposeSong(ws.songs, usecase.WithMaxFret(ws.cfg.Transpose.MaxFret))
			original, out, err := uc.Execute(cmd.Context(), songPath, keys.change())
			if err != nil {
				logger.L().Error("transpose.failed", "song", songPath, "key", keys.key, "err", err)
				return err
			}
			logger.L().Info("transpose.ok", "song", songPath, "from", original.Key.String(), "to", out.Key.String())

			printChordChanges(cmd.OutOrStdout(), original, out, !keys.down)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&song, "song", "s", "", "Song name, title or path (required)")
	keys.register(c)
	c.Flags().Lookup("key").Usage = "Target key (e.g. Bb, F#m)"

	_ = c.MarkFlagRequired("song")
	_ = c.MarkFlagRequired("key")
	return c
}

// printChordChanges lists each section's chord sequence before and after.
func printChordChanges(w io.Writer, original, out domain.SheetMusic, up bool) {
	dir := "up"
	if !up {
		dir = "down"
	}
	fmt.Fprintf(w, "Song: %s\n", original.Header.Title)
	fmt.Fprintf(w, "Key:  %s -> %s (%s)\n\n", original.Key, out.Key, dir)

	for si, sec := range original.Sections {
		name := sec.Name
		if name == "" {
			name = fmt.Sprintf("section %d", si+1)
		}
		before := chordNames(sec)
		after := chordNames(out.Sections[si])
		if len(before) == 0 {
			fmt.Fprintf(w, "[%s] (no chords)\n", name)
			continue
		}
		fmt.Fprintf(w, "[%s]\n  %s\n  %s\n", name, strings.Join(before, " "), strings.Join(after, " "))
	}
}

func chordNames(sec domain.Section) []string {
	var out []string
	for _, b := range sec.Bars {
		for _, c := range b.Chords() {
			out = append(out, c.Chord.String())
		}
	}
	return out
}
