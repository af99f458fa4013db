package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/infra/logger"
	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

func midiCmd() *cobra.Command {
	var workspace string
	var song string
	var keys keyFlags
	var bpm float64
	var out string

	c := &cobra.Command{
		Use:   "midi",
		Short: "Export a song as a Standard MIDI File",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			songPath, err := resolveSongPath(ws, song)
			if err != nil {
				return err
			}
			if out == "" {
				out = defaultOutput(ws, songPath, keys.key, "mid")
			}

			uc := usecase.NewExportMIDI(ws.songs, ws.midi, usecase.WithMaxFret(ws.cfg.Transpose.MaxFret))

			if out == "-" {
				bw := bufio.NewWriter(cmd.OutOrStdout())
				if _, err := uc.Execute(cmd.Context(), songPath, keys.change(), bpm, bw); err != nil {
					return err
				}
				return bw.Flush()
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			sheet, err := uc.Execute(cmd.Context(), songPath, keys.change(), bpm, f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(out)
				logger.L().Error("midi.failed", "song", songPath, "err", err)
				return err
			}

			logger.L().Info("midi.ok", "song", songPath, "key", sheet.Key.String(), "bpm", bpm, "out", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (key %s, %.0f bpm)\n", out, sheet.Key, bpm)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&song, "song", "s", "", "Song name, title or path (required)")
	keys.register(c)
	c.Flags().Float64Var(&bpm, "bpm", usecase.DefaultBPM, "Tempo in quarter notes per minute")
	c.Flags().StringVarP(&out, "out", "o", "", "Output .mid file (- for stdout)")

	_ = c.MarkFlagRequired("song")
	return c
}
