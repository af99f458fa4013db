package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/infra/logger"
	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var song string
	var quiet bool

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check a song parses, lays out, and list the keys it can move to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			songPath, err := resolveSongPath(ws, song)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateSong(ws.songs, ws.cfg.Transpose.MaxFret)
			report, err := uc.Execute(cmd.Context(), songPath)
			if err != nil {
				logger.L().Warn("validate.failed", "song", songPath, "err", err)
				return err
			}
			logger.L().Info("validate.ok", "song", songPath, "bars", report.Bars)

			if quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&song, "song", "s", "", "Song name, title or path (required)")
	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print OK")

	_ = c.MarkFlagRequired("song")
	return c
}

func printReport(w io.Writer, r usecase.ValidationReport) {
	fmt.Fprintf(w, "Song:     %s\n", r.Song.Header.Title)
	fmt.Fprintf(w, "Key:      %s\n", r.Song.Key)
	fmt.Fprintf(w, "Sections: %d\n", len(r.Song.Sections))
	fmt.Fprintf(w, "Bars:     %d\n\n", r.Bars)

	ok, bad := countKeys(r.Keys)
	fmt.Fprintf(w, "Keys: %d playable / %d not\n", ok, bad)
	for _, k := range r.Keys {
		if !k.OK() {
			fmt.Fprintf(w, "  ✗ %-4s %v\n", k.Key, k.Err)
			continue
		}
		dir := "up"
		if !k.Up {
			dir = "down"
		}
		fmt.Fprintf(w, "  ✓ %-4s (%s)\n", k.Key, dir)
	}
}

func countKeys(in []usecase.KeyCheck) (ok int, bad int) {
	for _, k := range in {
		if k.OK() {
			ok++
		} else {
			bad++
		}
	}
	return ok, bad
}
