package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subweave/internal/fontres"
)

func newFontsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "Show the font fallback chain and which candidate resolves",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			rows := make([][]string, 0, len(cfg.Subtitles.FontPaths))
			for i, path := range cfg.Subtitles.FontPaths {
				status := "missing"
				if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
					status = "present"
				}
				rows = append(rows, []string{fmt.Sprintf("%d", i+1), path, status})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Candidate", "File"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))

			face, err := ctx.resolveFace()
			if err != nil {
				var resErr *fontres.ResolutionError
				if errors.As(err, &resErr) {
					fmt.Fprintln(out, "No candidate is usable:")
					for _, attempt := range resErr.Attempts {
						fmt.Fprintf(out, "  %s\n", attempt)
					}
					return errors.New("font resolution failed")
				}
				return err
			}
			fmt.Fprintf(out, "Resolved: %s (size %.0f)\n", face.Path, cfg.Subtitles.FontSize)
			return nil
		},
	}
}
