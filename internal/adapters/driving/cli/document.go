package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Download and track full documents",
	Long:  `Download full documents from search results and inspect the local download history.`,
}

var documentDownloadCmd = &cobra.Command{
	Use:   "download [doc-id]",
	Short: "Download a document as JSON",
	Long: `Fetches the full document and saves it locally as pretty-printed JSON.

The file is named {id}_{headline}.json after the document headline.
Large documents served from object storage are followed transparently.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentDownload,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List downloaded documents",
	RunE:  runDocumentList,
}

var documentShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show the latest download of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentShow,
}

// downloadOutputDir overrides the configured documents directory.
var downloadOutputDir string

func init() {
	documentDownloadCmd.Flags().StringVarP(&downloadOutputDir, "output", "o", "", "directory to save the document into")

	documentCmd.AddCommand(documentDownloadCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentShowCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentDownload(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured, run 'bigdata config key' first")
	}

	docID := args[0]
	ctx := context.Background()

	svc := documentService
	if downloadOutputDir != "" {
		svc = svc.WithOutputDir(downloadOutputDir)
	}

	result, err := svc.Download(ctx, docID)
	if err != nil {
		return fmt.Errorf("downloading document: %w", err)
	}

	cmd.Printf("Downloaded %s\n", result.DocumentID)
	cmd.Printf("  Headline: %s\n", result.Headline)
	cmd.Printf("  Saved to: %s (%d bytes)\n", result.Path, result.Size)
	if result.Redirected {
		cmd.Println("  Served from object storage")
	}
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured, run 'bigdata config key' first")
	}

	downloads, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing downloads: %w", err)
	}

	if len(downloads) == 0 {
		cmd.Println("No documents downloaded yet.")
		return nil
	}

	cmd.Println("Downloaded documents:")
	cmd.Println()
	for i := range downloads {
		cmd.Printf("  %s\n", downloads[i].DocumentID)
		cmd.Printf("    Headline: %s\n", downloads[i].Headline)
		cmd.Printf("    Path: %s\n", downloads[i].Path)
		cmd.Printf("    Downloaded: %s\n", downloads[i].DownloadedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}
	cmd.Printf("Total: %d documents\n", len(downloads))
	return nil
}

func runDocumentShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured, run 'bigdata config key' first")
	}

	docID := args[0]
	dl, err := documentService.Get(context.Background(), docID)
	if err != nil {
		return fmt.Errorf("looking up document %s: %w", docID, err)
	}

	cmd.Printf("Document: %s\n", dl.DocumentID)
	cmd.Printf("  Headline: %s\n", dl.Headline)
	cmd.Printf("  Path: %s\n", dl.Path)
	cmd.Printf("  Size: %d bytes\n", dl.Size)
	cmd.Printf("  Downloaded: %s\n", dl.DownloadedAt.Format("2006-01-02 15:04:05"))
	if dl.Redirected {
		cmd.Println("  Served from object storage")
	}
	return nil
}
