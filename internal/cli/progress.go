package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/epubtools/parser-catalog/internal/catalog"
)

// CLIProgressReporter implements progress reporting with a progress bar.
type CLIProgressReporter struct {
	quiet   bool
	fileBar *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{quiet: quiet}
}

func (c *CLIProgressReporter) OnDiscoveryComplete(totalFiles int) {
	if c.quiet {
		return
	}
	log.Printf("Processing %d candidate files\n", totalFiles)

	c.fileBar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Scanning parsers"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnFileProcessed(fileName string) {
	if c.quiet {
		return
	}
	if c.fileBar != nil {
		c.fileBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(stats catalog.Stats) {
	if c.quiet {
		return
	}
	log.Printf("Extracted %d parser records from %d files in %.2fs (%d classes without registration)",
		stats.RecordsEmitted, stats.FilesScanned, stats.ProcessingTimeSeconds, stats.SkippedNoRegistration)
}
