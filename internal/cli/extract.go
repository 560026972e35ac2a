package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/epubtools/parser-catalog/internal/catalog"
	"github.com/epubtools/parser-catalog/internal/config"
	"github.com/epubtools/parser-catalog/internal/watcher"
)

var (
	quietFlag bool
	watchFlag bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract parser metadata into a JSON catalog",
	Long: `Extract scans the source directory for JavaScript site-parser modules
and writes one catalog record per module that declares a class and registers
at least one URL pattern.

Per record:
  - class name
  - registered URL patterns, in source order
  - content/title/author/cover selectors (null when not statically visible)

Examples:
  # Extract using ./parser-catalog.yml (or defaults)
  parser-catalog extract

  # Extract with progress output disabled
  parser-catalog extract --quiet

  # Re-extract whenever the source directory changes
  parser-catalog extract --watch
`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	extractCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the source directory and re-extract on changes")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling extraction...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := runOnce(ctx, cfg); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}

	fw, err := watcher.New(cfg.Source, []string{".js"})
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Stop()

	if err := fw.Start(ctx, func() {
		if err := runOnce(ctx, cfg); err != nil {
			log.Printf("Re-extraction failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	if !quietFlag {
		log.Println("Watching for changes... (Ctrl+C to stop)")
	}
	<-ctx.Done()
	return nil
}

// runOnce performs one full extraction pass and writes the catalog.
func runOnce(ctx context.Context, cfg *config.Config) error {
	if !quietFlag {
		log.Printf("Extracting parser metadata from %s", cfg.Source)
	}

	discovery, err := catalog.NewFileDiscovery(cfg.Source, cfg.Patterns, cfg.Ignore)
	if err != nil {
		return fmt.Errorf("failed to set up file discovery: %w", err)
	}

	builder := catalog.NewBuilder(discovery, NewCLIProgressReporter(quietFlag))
	records, _, err := builder.Build(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("extraction cancelled")
		}
		return err
	}

	if err := catalog.NewWriter(cfg.Output).Write(records); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	if !quietFlag {
		log.Printf("Catalog written to %s", cfg.Output)
	}
	return nil
}
