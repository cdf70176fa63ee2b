package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driven"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driving"
	"github.com/bigdata-com/bigdata-cli/internal/logger"
)

// Ensure VolumeService implements the interface.
var _ driving.VolumeService = (*VolumeService)(nil)

// VolumeService retrieves theme volume series and aggregates them.
type VolumeService struct {
	api driven.VolumeAPI
}

// NewVolumeService creates a new volume service.
func NewVolumeService(api driven.VolumeAPI) *VolumeService {
	return &VolumeService{api: api}
}

// Fetch validates the query, builds the RFC 3339 range bounds and calls the
// volume endpoint. Timestamp format detection happens here, once, and the
// matched layout is logged.
func (s *VolumeService) Fetch(ctx context.Context, theme, start, end string) (*domain.VolumeReport, error) {
	if s.api == nil {
		return nil, domain.ErrMissingAPIKey
	}

	theme = strings.TrimSpace(theme)
	if theme == "" {
		return nil, fmt.Errorf("%w: theme must not be empty", domain.ErrInvalidInput)
	}

	startAt, startLayout, err := domain.ParseTimestamp(start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	logger.Debug("parsed start %q using layout %s", start, startLayout)

	endAt, endLayout, err := domain.ParseTimestamp(end)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	logger.Debug("parsed end %q using layout %s", end, endLayout)

	if !startAt.Before(endAt) {
		return nil, fmt.Errorf("%w: start date (%s) must be before end date (%s)",
			domain.ErrInvalidInput,
			startAt.Format("2006-01-02"), endAt.Format("2006-01-02"))
	}

	query := domain.VolumeQuery{
		Theme: theme,
		Start: rangeBound(startAt, startLayout, false),
		End:   rangeBound(endAt, endLayout, true),
	}

	logger.Section("Theme Volume")
	logger.Info("fetching volume for theme %q from %s to %s", theme, query.Start, query.End)

	report, err := s.api.SearchVolume(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch volume: %w", err)
	}

	logger.Info("request %s returned %d days, %d documents, %d chunks total",
		report.RequestID, len(report.Daily), report.TotalDocuments, report.TotalChunks)
	if len(report.Daily) == 0 {
		logger.Warn("no volume data found in response")
	}

	return report, nil
}

// AggregateWeekly collapses the daily series into weekly averages.
func (s *VolumeService) AggregateWeekly(report *domain.VolumeReport) []domain.WeeklyAverage {
	if report == nil {
		return nil
	}
	weekly := domain.AggregateWeekly(report.Daily)
	logger.Info("calculated weekly averages for %d weeks", len(weekly))
	return weekly
}

// rangeBound formats a parsed timestamp as an RFC 3339 range bound for the
// API. A bare date expands to midnight at the start of the range and to
// end-of-day at the end, matching how users read inclusive date ranges.
func rangeBound(t time.Time, layout string, end bool) string {
	if layout == domain.LayoutDate {
		if end {
			return t.Format("2006-01-02") + "T23:59:59Z"
		}
		return t.Format("2006-01-02") + "T00:00:00Z"
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
