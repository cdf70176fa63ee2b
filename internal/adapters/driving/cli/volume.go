package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

var (
	volumeStart    string
	volumeEnd      string
	volumeJSON     bool
	volumeChartDir string
)

var volumeCmd = &cobra.Command{
	Use:   "volume [theme]",
	Short: "Track how coverage of a theme evolves over time",
	Long: `Fetches the daily document, chunk and sentiment volume for a theme
over a date range and aggregates it into weekly averages.

Dates accept either a day (2025-01-01) or a full timestamp
(2025-01-01T09:30:00Z). Day-only bounds cover the whole day.

Examples:
  bigdata volume "electric vehicles" -s 2025-01-01 -e 2025-03-31
  bigdata volume "AI regulation" -s 2025-01-01 -e 2025-06-30 --json
  bigdata volume "supply chain" -s 2025-01-01 -e 2025-03-31 --chart ./charts`,
	Args: cobra.ExactArgs(1),
	RunE: runVolume,
}

func init() {
	volumeCmd.Flags().StringVarP(&volumeStart, "start", "s", "", "start of the date range (required)")
	volumeCmd.Flags().StringVarP(&volumeEnd, "end", "e", "", "end of the date range (required)")
	volumeCmd.Flags().BoolVar(&volumeJSON, "json", false, "output the report as JSON")
	volumeCmd.Flags().StringVar(&volumeChartDir, "chart", "", "also render an HTML chart into this directory")
	rootCmd.AddCommand(volumeCmd)
}

// volumeOutput is the JSON shape of a volume report.
type volumeOutput struct {
	Theme          string                    `json:"theme"`
	RequestID      string                    `json:"request_id,omitempty"`
	TotalDocuments int64                     `json:"total_documents"`
	TotalChunks    int64                     `json:"total_chunks"`
	Daily          []domain.DailyObservation `json:"daily"`
	Weekly         []domain.WeeklyAverage    `json:"weekly"`
}

func runVolume(cmd *cobra.Command, args []string) error {
	if volumeService == nil {
		return errors.New("volume service not configured, run 'bigdata config key' first")
	}

	theme := args[0]
	ctx := context.Background()

	report, err := volumeService.Fetch(ctx, theme, volumeStart, volumeEnd)
	if err != nil {
		return fmt.Errorf("fetching volume: %w", err)
	}
	weekly := volumeService.AggregateWeekly(report)

	if volumeChartDir != "" {
		path, err := chartRenderer.RenderVolume(report, weekly, theme, volumeChartDir)
		if err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		cmd.Printf("Chart written to %s\n", path)
	}

	if volumeJSON {
		return outputVolumeJSON(cmd, theme, report, weekly)
	}
	return outputVolumeTable(cmd, theme, report, weekly)
}

func outputVolumeJSON(cmd *cobra.Command, theme string, report *domain.VolumeReport, weekly []domain.WeeklyAverage) error {
	out := volumeOutput{
		Theme:          theme,
		RequestID:      report.RequestID,
		TotalDocuments: report.TotalDocuments,
		TotalChunks:    report.TotalChunks,
		Daily:          report.Daily,
		Weekly:         weekly,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputVolumeTable(cmd *cobra.Command, theme string, report *domain.VolumeReport, weekly []domain.WeeklyAverage) error {
	if len(report.Daily) == 0 {
		cmd.Printf("No volume data found for %q.\n", theme)
		return nil
	}

	cmd.Printf("Volume for %q (%d days, %d documents, %d chunks total)\n\n",
		theme, len(report.Daily), report.TotalDocuments, report.TotalChunks)

	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithRendition(tw.Rendition{Borders: tw.BorderNone}),
	)
	table.Header([]string{"Week of", "Avg documents", "Avg chunks", "Avg sentiment"})
	for _, w := range weekly {
		table.Append([]string{
			w.WeekStart.Format(time.DateOnly),
			strconv.FormatFloat(w.Documents, 'f', 1, 64),
			strconv.FormatFloat(w.Chunks, 'f', 1, 64),
			strconv.FormatFloat(w.Sentiment, 'f', 3, 64),
		})
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}
