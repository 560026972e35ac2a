package catalog

import (
	"context"
	"log"
	"time"

	"github.com/epubtools/parser-catalog/internal/extractor"
)

// Catalog is the ordered collection of records produced by one run.
type Catalog []extractor.ParserRecord

// Stats summarizes one extraction run.
type Stats struct {
	FilesScanned          int
	RecordsEmitted        int
	SkippedNoRegistration int
	ProcessingTimeSeconds float64
}

// ProgressReporter receives run lifecycle callbacks. Implementations must
// tolerate being called with zero totals.
type ProgressReporter interface {
	OnDiscoveryComplete(totalFiles int)
	OnFileProcessed(fileName string)
	OnComplete(stats Stats)
}

// NopProgress is a ProgressReporter that does nothing.
type NopProgress struct{}

func (NopProgress) OnDiscoveryComplete(int) {}
func (NopProgress) OnFileProcessed(string) {}
func (NopProgress) OnComplete(Stats) {}

// Builder runs the extraction pipeline over a source directory.
type Builder struct {
	discovery *FileDiscovery
	extractor *extractor.Extractor
	progress  ProgressReporter
}

// NewBuilder creates a builder over the given discovery instance.
func NewBuilder(discovery *FileDiscovery, progress ProgressReporter) *Builder {
	if progress == nil {
		progress = NopProgress{}
	}
	return &Builder{
		discovery: discovery,
		extractor: extractor.New(),
		progress:  progress,
	}
}

// Build discovers candidate files and processes them strictly sequentially,
// in discovery order. Per-file problems never interrupt the run: files that
// fail to read or parse are skipped, and a class that never registered a URL
// pattern is logged and skipped. Only discovery itself (a missing source
// directory) is fatal.
func (b *Builder) Build(ctx context.Context) (Catalog, Stats, error) {
	start := time.Now()

	files, err := b.discovery.Discover()
	if err != nil {
		return nil, Stats{}, err
	}
	b.progress.OnDiscoveryComplete(len(files))

	records := Catalog{}
	stats := Stats{FilesScanned: len(files)}

	for _, file := range files {
		if ctx.Err() != nil {
			return nil, stats, ctx.Err()
		}

		result, err := b.extractor.ExtractFile(file)
		if err != nil {
			log.Printf("Warning: could not read %s: %v", file, err)
			b.progress.OnFileProcessed(file)
			continue
		}

		if result != nil {
			if result.Record != nil {
				records = append(records, *result.Record)
			} else if result.ClassName != "" {
				stats.SkippedNoRegistration++
				log.Printf("Warning: class %s in %s has no registration call, skipping", result.ClassName, file)
			}
		}
		b.progress.OnFileProcessed(file)
	}

	stats.RecordsEmitted = len(records)
	stats.ProcessingTimeSeconds = time.Since(start).Seconds()
	b.progress.OnComplete(stats)

	return records, stats, nil
}
