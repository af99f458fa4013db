package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keys songs can be written in or moved to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(w, "Major: %s\n", strings.Join(domain.MajorKeys(), " "))
				fmt.Fprintf(w, "Minor: %s\n", strings.Join(domain.MinorKeys(), " "))
				return nil
			}

			k, err := domain.ParseKey(args[0])
			if err != nil {
				return err
			}
			quality := "major"
			if k.IsMinor() {
				quality = "minor"
			}
			fmt.Fprintf(w, "%s (%s, %s)\n", k, quality, spelling(k))
			fmt.Fprintf(w, "  up:   %s\n", k.Neighbour(1))
			fmt.Fprintf(w, "  down: %s\n", k.Neighbour(-1))
			return nil
		},
	}
}

func spelling(k domain.Key) string {
	if k.UsesFlats() {
		return "flats"
	}
	return "sharps"
}
