package driven

import (
	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

// ChartRenderer writes a visualisation of a volume report to disk.
type ChartRenderer interface {
	// RenderVolume renders the daily series with the weekly averages
	// overlaid, one panel per metric, into dir. It returns the path of
	// the written file.
	RenderVolume(report *domain.VolumeReport, weekly []domain.WeeklyAverage, theme, dir string) (string, error)
}
