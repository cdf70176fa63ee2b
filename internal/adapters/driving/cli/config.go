package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bigdata-com/bigdata-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration stored in ~/.bigdata/config.toml.

The API key can also be supplied via the BIGDATA_API_KEY environment
variable or a .env file, which takes precedence over the config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value by key.

Keys:
  api.base_url          API base URL
  output.documents_dir  directory for downloaded documents
  output.charts_dir     directory for rendered charts

Use 'bigdata config key' to set the API key without echoing it.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Set the API key",
	Long:  `Prompts for the API key without echoing and stores it in the config file.`,
	RunE:  runConfigKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())

	apiKey := configStore.GetString(file.KeyAPIKey)
	if os.Getenv(file.EnvAPIKey) != "" {
		cmd.Printf("  API key: %s (from %s)\n", maskAPIKey(os.Getenv(file.EnvAPIKey)), file.EnvAPIKey)
	} else if apiKey != "" {
		cmd.Printf("  API key: %s\n", maskAPIKey(apiKey))
	} else {
		cmd.Println("  API key: (not set)")
	}

	baseURL := configStore.GetString(file.KeyBaseURL)
	if baseURL == "" {
		baseURL = "(default)"
	}
	cmd.Printf("  Base URL: %s\n", baseURL)

	docsDir := configStore.GetString(file.KeyDocumentsDir)
	if docsDir == "" {
		docsDir = "(default)"
	}
	cmd.Printf("  Documents dir: %s\n", docsDir)

	chartsDir := configStore.GetString(file.KeyChartsDir)
	if chartsDir == "" {
		chartsDir = "(default)"
	}
	cmd.Printf("  Charts dir: %s\n", chartsDir)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]
	if key == file.KeyAPIKey {
		return errors.New("use 'bigdata config key' to set the API key")
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("API key: ")
	key := readSecret()
	cmd.Println()

	if key == "" {
		return errors.New("no API key entered")
	}

	if err := configStore.Set(file.KeyAPIKey, key); err != nil {
		return fmt.Errorf("setting API key: %w", err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	cmd.Printf("API key saved to %s\n", configStore.Path())
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	// Read without echo when attached to a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
