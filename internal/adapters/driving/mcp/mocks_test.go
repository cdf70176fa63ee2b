package mcp

import (
	"context"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driving"
)

// mockVolumeService is a mock implementation of driving.VolumeService.
type mockVolumeService struct {
	report *domain.VolumeReport
	weekly []domain.WeeklyAverage
	err    error

	gotTheme string
	gotStart string
	gotEnd   string
}

func (m *mockVolumeService) Fetch(_ context.Context, theme, start, end string) (*domain.VolumeReport, error) {
	m.gotTheme = theme
	m.gotStart = start
	m.gotEnd = end
	return m.report, m.err
}

func (m *mockVolumeService) AggregateWeekly(_ *domain.VolumeReport) []domain.WeeklyAverage {
	return m.weekly
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	result    *driving.DownloadResult
	downloads []domain.Download
	download  *domain.Download
	err       error

	gotDocumentID string
}

func (m *mockDocumentService) Download(_ context.Context, documentID string) (*driving.DownloadResult, error) {
	m.gotDocumentID = documentID
	return m.result, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Download, error) {
	return m.downloads, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Download, error) {
	return m.download, m.err
}

func (m *mockDocumentService) WithOutputDir(_ string) driving.DocumentService {
	return m
}
