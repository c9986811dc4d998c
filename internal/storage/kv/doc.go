// Package kv provides the device key-value store that PlantParent persists
// its JSON documents into.
//
// # Overview
//
// Repository is a flat map from string keys to byte values. Two
// implementations are provided:
//
//   - SQLiteRepository: a single `kv` table in a local SQLite file
//     (modernc.org/sqlite), created by the goose migrations in
//     internal/storage/migrations.
//   - MemoryRepository: a mutex-guarded map for tests and the -mem flag.
//
// Both implement Update, a read-modify-write of one key that no other
// writer can interleave with. Higher layers use it to rewrite whole
// documents without losing concurrent changes.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "@premium_status", []byte("true"))
//	v, _ := repo.Get(ctx, "@premium_status")
//	_, _ = repo.Update(ctx, "@plants", func(cur []byte) ([]byte, error) { ... })
package kv
