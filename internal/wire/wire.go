// Package wire provides dependency injection for the curator application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/curator/internal/adapters/cli"
	"github.com/example/curator/internal/adapters/sqlite"
	"github.com/example/curator/internal/app"
	"github.com/example/curator/internal/db"
	"github.com/example/curator/internal/ports/primary"
)

var (
	batchService   primary.BatchService
	tagService     primary.TagService
	modListService primary.ModListService
	once           sync.Once
)

// BatchService returns the singleton BatchService instance.
func BatchService() primary.BatchService {
	once.Do(initServices)
	return batchService
}

// TagService returns the singleton TagService instance.
func TagService() primary.TagService {
	once.Do(initServices)
	return tagService
}

// ModListService returns the singleton ModListService instance.
func ModListService() primary.ModListService {
	once.Do(initServices)
	return modListService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Secondary port adapters with injected DB
	store := sqlite.NewModListStore(database)
	modRepo := sqlite.NewModRepository(database)
	runRepo := sqlite.NewBatchRunRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(database)

	// Primary port implementations
	batchService = app.NewBatchService(store, runRepo, logWriter)
	tagService = app.NewTagService(batchService)
	modListService = app.NewModListService(store, modRepo, logWriter)
}

// BatchAdapter returns a new BatchAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func BatchAdapter() *cliadapter.BatchAdapter {
	return BatchAdapterWithOutput(os.Stdout)
}

// BatchAdapterWithOutput returns a new BatchAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func BatchAdapterWithOutput(out io.Writer) *cliadapter.BatchAdapter {
	once.Do(initServices)
	return cliadapter.NewBatchAdapter(batchService, out)
}

// TagAdapter returns a new TagAdapter writing to stdout.
func TagAdapter() *cliadapter.TagAdapter {
	return TagAdapterWithOutput(os.Stdout)
}

// TagAdapterWithOutput returns a new TagAdapter writing to the given output.
func TagAdapterWithOutput(out io.Writer) *cliadapter.TagAdapter {
	once.Do(initServices)
	return cliadapter.NewTagAdapter(tagService, out)
}

// ModListAdapter returns a new ModListAdapter writing to stdout.
func ModListAdapter() *cliadapter.ModListAdapter {
	return ModListAdapterWithOutput(os.Stdout)
}

// ModListAdapterWithOutput returns a new ModListAdapter writing to the given output.
func ModListAdapterWithOutput(out io.Writer) *cliadapter.ModListAdapter {
	once.Do(initServices)
	return cliadapter.NewModListAdapter(modListService, out)
}
