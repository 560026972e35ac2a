package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Builder:
// - One record per file with a class and at least one registration
// - Files without a class or with broken syntax are skipped silently
// - Classes without registration are counted but produce no record
// - Records appear in lexicographic file order
// - Running twice over unchanged input yields identical catalogs
// - Missing source directory aborts the run
// - Cancelled context aborts the loop
// - Progress callbacks fire once per discovered file

type countingProgress struct {
	discovered int
	processed  int
	completed  int
}

func (p *countingProgress) OnDiscoveryComplete(totalFiles int) { p.discovered = totalFiles }
func (p *countingProgress) OnFileProcessed(string) { p.processed++ }
func (p *countingProgress) OnComplete(Stats) { p.completed++ }

func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	write("beta_parser.js", `parserFactory.register("beta.example", () => new BetaParser());

class BetaParser extends Parser {
    findContent(dom) {
        return "div.beta";
    }
}
`)
	write("alpha_parser.js", `parserFactory.register("alpha.example", () => new AlphaParser());
parserFactory.register("alpha.mirror.example", () => new AlphaParser());

class AlphaParser extends Parser {
    findContent(dom) {
        return dom.querySelector("div.alpha");
    }

    extractTitleImpl(dom) {
        return "h1.title";
    }
}
`)
	write("orphan_parser.js", `class OrphanParser extends Parser {
    findContent(dom) {
        return "div.orphan";
    }
}
`)
	write("helpers.js", `function noop() {}
`)
	write("broken_parser.js", `class Broken extends {
    findContent(dom {
`)
	return dir
}

func buildCorpus(t *testing.T, dir string, progress ProgressReporter) (Catalog, Stats) {
	t.Helper()

	fd, err := NewFileDiscovery(dir, []string{"*.js"}, nil)
	require.NoError(t, err)

	records, stats, err := NewBuilder(fd, progress).Build(context.Background())
	require.NoError(t, err)
	return records, stats
}

func TestBuild_EmitsExpectedRecords(t *testing.T) {
	t.Parallel()

	dir := writeCorpus(t)
	records, stats := buildCorpus(t, dir, nil)

	require.Len(t, records, 2)

	// Lexicographic file order: alpha before beta.
	assert.Equal(t, "alpha_parser.js", records[0].SourceFilename)
	assert.Equal(t, "AlphaParser", records[0].ClassName)
	assert.Equal(t, []string{"alpha.example", "alpha.mirror.example"}, records[0].RegisteredPatterns)
	require.NotNil(t, records[0].Selectors.Content)
	assert.Equal(t, "div.alpha", *records[0].Selectors.Content)
	require.NotNil(t, records[0].Selectors.Title)
	assert.Equal(t, "h1.title", *records[0].Selectors.Title)
	assert.Nil(t, records[0].Selectors.Author)
	assert.Nil(t, records[0].Selectors.Cover)

	assert.Equal(t, "beta_parser.js", records[1].SourceFilename)
	assert.Equal(t, "BetaParser", records[1].ClassName)

	assert.Equal(t, 5, stats.FilesScanned)
	assert.Equal(t, 2, stats.RecordsEmitted)
	assert.Equal(t, 1, stats.SkippedNoRegistration)
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	dir := writeCorpus(t)
	first, _ := buildCorpus(t, dir, nil)
	second, _ := buildCorpus(t, dir, nil)
	assert.Equal(t, first, second)
}

func TestBuild_MissingSourceDirectory(t *testing.T) {
	t.Parallel()

	fd, err := NewFileDiscovery(filepath.Join(t.TempDir(), "absent"), []string{"*.js"}, nil)
	require.NoError(t, err)

	_, _, err = NewBuilder(fd, nil).Build(context.Background())
	assert.Error(t, err)
}

func TestBuild_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := writeCorpus(t)
	fd, err := NewFileDiscovery(dir, []string{"*.js"}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = NewBuilder(fd, nil).Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_ProgressCallbacks(t *testing.T) {
	t.Parallel()

	dir := writeCorpus(t)
	progress := &countingProgress{}
	buildCorpus(t, dir, progress)

	assert.Equal(t, 5, progress.discovered)
	assert.Equal(t, 5, progress.processed)
	assert.Equal(t, 1, progress.completed)
}

func TestBuild_EmptyDirectory(t *testing.T) {
	t.Parallel()

	records, stats := buildCorpus(t, t.TempDir(), nil)
	assert.Empty(t, records)
	assert.Equal(t, 0, stats.FilesScanned)
}
