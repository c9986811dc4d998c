// Package storage bootstraps local persistence for the CLI: it opens the
// SQLite file, applies the embedded goose migrations and returns the
// repositories built on top of it (see Open, RunMigrations).
package storage
