package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/usecase/query"
)

func queryCmd() *cobra.Command {
	var workspace string
	var song string
	var rules []string
	var format string

	c := &cobra.Command{
		Use:   "query [jsonpath]",
		Short: "Evaluate JSONPath expressions against a song",
		Example: `  tabgen query -s blackbird '$.key'
  tabgen query -s blackbird -r first='$.sections[0].bars[0].chords[0].chord' -r meter='$.sections[0].bars[0].meter'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(rules) == 0 {
				return fmt.Errorf("give an expression or at least one --rule name=expr")
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			songPath, err := resolveSongPath(ws, song)
			if err != nil {
				return err
			}
			sheet, err := ws.songs.LoadSong(songPath)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				v, err := query.Get(sheet, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			named, err := parseRules(rules)
			if err != nil {
				return err
			}
			results, err := query.Apply(sheet, named)
			if err != nil {
				return err
			}
			if err := printResults(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}
			for _, r := range results {
				if !r.Success {
					return fmt.Errorf("query failed (%d rule(s) did not match)", countFailed(results))
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&song, "song", "s", "", "Song name, title or path (required)")
	c.Flags().StringArrayVarP(&rules, "rule", "r", nil, "Named expression name=jsonpath (repeatable)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("song")
	return c
}

func parseRules(in []string) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for _, r := range in {
		name, expr, ok := strings.Cut(r, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid rule %q (expected name=jsonpath)", r)
		}
		out[name] = strings.TrimSpace(expr)
	}
	return out, nil
}

func printResults(w io.Writer, results []query.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "pretty", "":
		for _, r := range results {
			mark := "✓"
			if !r.Success {
				mark = "✗"
			}
			fmt.Fprintf(w, "%s %s = %s", mark, r.Name, r.Value)
			if !r.Success {
				fmt.Fprintf(w, "  (%s)", r.Message)
			}
			fmt.Fprintln(w)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func countFailed(results []query.Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}
