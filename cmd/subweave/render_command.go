package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subweave/internal/config"
	"subweave/internal/pipeline"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var overlay bool
	var keepSRT bool

	cmd := &cobra.Command{
		Use:   "render <video>",
		Short: "Subtitle a clip and write the result to the output directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			video, err := resolveVideoArg(args[0])
			if err != nil {
				return err
			}
			runner, err := ctx.buildRunner()
			if err != nil {
				return err
			}

			opts := pipeline.RunOptions{Mode: pipeline.OutputSRT, KeepSRT: keepSRT}
			if overlay {
				if keepSRT {
					return errors.New("--keep-srt only applies to the default burn-in mode")
				}
				opts.Mode = pipeline.OutputOverlay
			}

			result, err := runner.Run(cmd.Context(), video, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s (%d segments)\n", result.OutputPath, len(result.Segments))
			if result.SRTPath != "" {
				fmt.Fprintf(out, "Kept subtitle file at %s\n", result.SRTPath)
			}
			if result.Degraded {
				fmt.Fprintln(out, "Note: translation fell back to whole-text mode; segment boundaries are approximate.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&overlay, "overlay", false, "Composite positioned raster panels instead of burning an SRT")
	cmd.Flags().BoolVar(&keepSRT, "keep-srt", false, "Keep the generated subtitle file next to the output video")
	return cmd
}

func resolveVideoArg(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errors.New("video path is required")
	}
	return config.ExpandPath(arg)
}
