// Package kv provides the opaque string key/value substrate the account
// store persists into.
//
// # Overview
//
// Repository is a two-method contract (Get/Set). Three implementations are
// provided:
//
//   - SQLiteRepository  - a `kv` table in a local SQLite file (default)
//   - FileRepository    - one JSON object file, rewritten atomically
//   - MemoryRepository  - a mutex-guarded map for tests and throwaway runs
//
// Get reports absence with ok == false and a nil error; errors are reserved
// for failures of the underlying medium. Set overwrites unconditionally
// (last writer wins).
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "user_data_alice", `{"passwordHash":"...","values":[]}`)
//	v, ok, _ := repo.Get(ctx, "user_data_alice")
package kv
