package driving

import (
	"context"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

// VolumeService retrieves and aggregates theme volume series.
type VolumeService interface {
	// Fetch runs a volume query for a theme over a date range. Start and
	// end accept "YYYY-MM-DD" or RFC 3339 timestamps; a bare start date
	// expands to midnight and a bare end date to end-of-day.
	Fetch(ctx context.Context, theme, start, end string) (*domain.VolumeReport, error)

	// AggregateWeekly collapses the report's daily series into
	// Monday-keyed weekly averages, sorted ascending by week start.
	AggregateWeekly(report *domain.VolumeReport) []domain.WeeklyAverage
}
