// Package storage opens the key/value substrate selected by configuration.
//
// Drivers
//
//   - "sqlite" - local SQLite file (modernc.org/sqlite) with embedded goose
//     migrations applied on open (see InitDatabase, RunMigrations)
//   - "file"   - single JSON file (kv.FileRepository)
//   - "memory" - process-local map (kv.MemoryRepository)
//
// Open returns the repository together with an io.Closer that releases the
// underlying resources; callers defer Close.
package storage
