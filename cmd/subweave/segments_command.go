package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subweave/internal/segment"
)

type segmentView struct {
	Index int     `json:"index"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	Text  string  `json:"text"`
	Secs  float64 `json:"seconds"`
}

type segmentsReport struct {
	JobID    string        `json:"job_id"`
	Duration float64       `json:"duration_seconds"`
	Canvas   string        `json:"canvas"`
	Degraded bool          `json:"degraded"`
	Source   string        `json:"source_text"`
	Segments []segmentView `json:"segments"`
}

func newSegmentsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "segments <video>",
		Short: "Transcribe and translate a clip without rendering",
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
			prepared, err := runner.Prepare(cmd.Context(), video)
			if err != nil {
				return err
			}

			if asJSON {
				report := segmentsReport{
					JobID:    prepared.JobID,
					Duration: prepared.Duration,
					Canvas:   fmt.Sprintf("%dx%d", prepared.CanvasWidth, prepared.CanvasHeight),
					Degraded: prepared.Degraded,
					Source:   prepared.SourceText,
					Segments: make([]segmentView, 0, len(prepared.Segments)),
				}
				for i, seg := range prepared.Segments {
					report.Segments = append(report.Segments, segmentView{
						Index: i + 1,
						Start: segment.Clock(seg.Start),
						End:   segment.Clock(seg.End),
						Text:  seg.Text,
						Secs:  seg.End - seg.Start,
					})
				}
				return writeJSON(cmd, report)
			}

			rows := make([][]string, 0, len(prepared.Segments))
			for i, seg := range prepared.Segments {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					segment.Clock(seg.Start),
					segment.Clock(seg.End),
					seg.Text,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Start", "End", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			if prepared.Degraded {
				fmt.Fprintln(out, "Translation fell back to whole-text mode; segment boundaries are approximate.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the segment plan as JSON")
	return cmd
}
