package cli

import (
	"context"
	"time"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driven"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driving"
)

// setupTestServices swaps in mock services and returns a cleanup that
// restores the previous state.
func setupTestServices() func() {
	prevConfig := configStore
	prevVolume := volumeService
	prevDocument := documentService
	prevChart := chartRenderer

	configStore = &mockConfigStore{values: map[string]any{}}
	volumeService = &mockVolumeService{
		report: &domain.VolumeReport{
			RequestID:      "req-test",
			TotalDocuments: 40,
			TotalChunks:    400,
			Daily: []domain.DailyObservation{
				{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Documents: 10, Chunks: 100, Sentiment: 0.1},
				{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Documents: 20, Chunks: 200, Sentiment: 0.0},
			},
		},
	}
	documentService = &mockDocumentService{
		result: &driving.DownloadResult{
			DocumentID: "DOC1",
			Headline:   "Tesla Reports Record Deliveries",
			Path:       "documents/DOC1_Tesla_Reports_Record_Deliveries.json",
			Size:       2048,
		},
	}
	chartRenderer = &mockChartRenderer{path: "charts/test.html"}

	return func() {
		configStore = prevConfig
		volumeService = prevVolume
		documentService = prevDocument
		chartRenderer = prevChart
	}
}

// mockVolumeService is a mock implementation of driving.VolumeService.
type mockVolumeService struct {
	report *domain.VolumeReport
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

func (m *mockVolumeService) AggregateWeekly(report *domain.VolumeReport) []domain.WeeklyAverage {
	if report == nil {
		return nil
	}
	return domain.AggregateWeekly(report.Daily)
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	result    *driving.DownloadResult
	downloads []domain.Download
	download  *domain.Download
	err       error

	gotDocumentID string
	gotOutputDir  string
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

func (m *mockDocumentService) WithOutputDir(dir string) driving.DocumentService {
	m.gotOutputDir = dir
	return m
}

// mockChartRenderer is a mock implementation of driven.ChartRenderer.
type mockChartRenderer struct {
	path string
	err  error

	gotTheme string
	gotDir   string
}

func (m *mockChartRenderer) RenderVolume(_ *domain.VolumeReport, _ []domain.WeeklyAverage, theme, dir string) (string, error) {
	m.gotTheme = theme
	m.gotDir = dir
	return m.path, m.err
}

// mockConfigStore is an in-memory driven.ConfigStore.
type mockConfigStore struct {
	values map[string]any
	saved  bool
}

var _ driven.ConfigStore = (*mockConfigStore)(nil)

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error {
	m.saved = true
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/test-config.toml" }
