// Package cli implements the bigdata command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bigdata-com/bigdata-cli/internal/adapters/driven/bigdata"
	"github.com/bigdata-com/bigdata-cli/internal/adapters/driven/config/file"
	"github.com/bigdata-com/bigdata-cli/internal/adapters/driven/render/echarts"
	"github.com/bigdata-com/bigdata-cli/internal/adapters/driven/storage/sqlite"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driven"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driving"
	"github.com/bigdata-com/bigdata-cli/internal/core/services"
	"github.com/bigdata-com/bigdata-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "0.1.0"

var (
	verbose   bool
	configDir string
)

// Services wired during PersistentPreRunE. Tests replace these with mocks.
var (
	configStore     driven.ConfigStore
	volumeService   driving.VolumeService
	documentService driving.DocumentService
	chartRenderer   driven.ChartRenderer
)

var rootCmd = &cobra.Command{
	Use:   "bigdata",
	Short: "Query the Bigdata.com search API",
	Long: `Command-line client for the Bigdata.com search API.

Track how media coverage of a theme evolves over time, download full
documents from search results, and expose both as MCP tools for AI
assistants.

An API key is required for commands that reach the API. Set it with:
  bigdata config key
or export BIGDATA_API_KEY (a .env file in the working directory is
also read).`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.bigdata)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the API client and services from configuration.
// When no API key is configured the API-backed services stay nil and
// each command reports its own "not configured" error.
func initServices() error {
	if configStore != nil {
		// Already wired, either by a previous run or by a test.
		return nil
	}

	file.LoadDotEnv()

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = store

	chartRenderer = echarts.NewRenderer()

	apiKey := file.ResolveAPIKey(store)
	if apiKey == "" {
		logger.Debug("no API key configured, API commands are unavailable")
		return nil
	}

	client, err := bigdata.NewClient(bigdata.Config{
		APIKey:  apiKey,
		BaseURL: store.GetString(file.KeyBaseURL),
	})
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	history, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening download history: %w", err)
	}

	volumeService = services.NewVolumeService(client)
	documentService = services.NewDocumentService(client, history, store.GetString(file.KeyDocumentsDir))

	return nil
}
