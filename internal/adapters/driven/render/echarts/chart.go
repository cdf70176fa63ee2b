// Package echarts renders volume reports as self-contained HTML charts.
package echarts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driven"
	"github.com/bigdata-com/bigdata-cli/internal/logger"
)

// MaxThemeInFilename caps the theme portion of generated chart filenames.
const MaxThemeInFilename = 60

// Ensure Renderer implements the interface.
var _ driven.ChartRenderer = (*Renderer)(nil)

// Renderer writes one HTML page per report with a chart per metric.
type Renderer struct {
	now func() time.Time
}

// NewRenderer creates a chart renderer.
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// RenderVolume writes the daily series and weekly averages for a theme to
// an HTML file under dir and returns the file path.
func (r *Renderer) RenderVolume(report *domain.VolumeReport, weekly []domain.WeeklyAverage, theme, dir string) (string, error) {
	if report == nil || len(report.Daily) == 0 {
		return "", fmt.Errorf("rendering chart: %w", domain.ErrEmptyResponse)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating chart directory: %w", err)
	}

	dates := make([]string, 0, len(report.Daily))
	docBars := make([]opts.BarData, 0, len(report.Daily))
	chunkBars := make([]opts.BarData, 0, len(report.Daily))
	sentimentLine := make([]opts.LineData, 0, len(report.Daily))
	for _, obs := range report.Daily {
		dates = append(dates, obs.Date.Format(time.DateOnly))
		docBars = append(docBars, opts.BarData{Value: obs.Documents})
		chunkBars = append(chunkBars, opts.BarData{Value: obs.Chunks})
		sentimentLine = append(sentimentLine, opts.LineData{Value: obs.Sentiment})
	}

	// Step lines holding each day at its week's mean.
	weekDocs, weekChunks, weekSentiment := weeklyOverlays(report.Daily, weekly)

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Volume evolution: %s", theme)
	page.AddCharts(
		barWithOverlay(fmt.Sprintf("Documents mentioning %q", theme), dates, docBars, weekDocs),
		barWithOverlay(fmt.Sprintf("Chunks mentioning %q", theme), dates, chunkBars, weekChunks),
		sentimentChart(fmt.Sprintf("Average sentiment for %q", theme), dates, sentimentLine, weekSentiment),
	)

	name := fmt.Sprintf("%s_%s.html",
		domain.SanitizeFilename(theme, MaxThemeInFilename),
		r.now().UTC().Format("20060102T150405Z"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}

	logger.Debug("wrote chart with %d daily points and %d weekly averages to %s",
		len(report.Daily), len(weekly), path)
	return path, nil
}

// weeklyOverlays maps each daily observation to its week's mean so the
// weekly series aligns with the daily x-axis.
func weeklyOverlays(daily []domain.DailyObservation, weekly []domain.WeeklyAverage) ([]opts.LineData, []opts.LineData, []opts.LineData) {
	byWeek := make(map[time.Time]domain.WeeklyAverage, len(weekly))
	for _, w := range weekly {
		byWeek[w.WeekStart] = w
	}

	docs := make([]opts.LineData, 0, len(daily))
	chunks := make([]opts.LineData, 0, len(daily))
	sentiment := make([]opts.LineData, 0, len(daily))
	for _, obs := range daily {
		w, ok := byWeek[obs.WeekStart()]
		if !ok {
			docs = append(docs, opts.LineData{})
			chunks = append(chunks, opts.LineData{})
			sentiment = append(sentiment, opts.LineData{})
			continue
		}
		docs = append(docs, opts.LineData{Value: w.Documents})
		chunks = append(chunks, opts.LineData{Value: w.Chunks})
		sentiment = append(sentiment, opts.LineData{Value: w.Sentiment})
	}
	return docs, chunks, sentiment
}

func barWithOverlay(title string, dates []string, bars []opts.BarData, weekly []opts.LineData) components.Charter {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(dates).AddSeries("daily", bars)

	overlay := charts.NewLine()
	overlay.SetXAxis(dates).AddSeries("weekly average", weekly)
	bar.Overlap(overlay)
	return bar
}

func sentimentChart(title string, dates []string, daily, weekly []opts.LineData) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(dates).
		AddSeries("daily", daily).
		AddSeries("weekly average", weekly)
	return line
}
