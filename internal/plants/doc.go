// Package plants implements the plant store: the collection of plant
// records persisted as one JSON document under common.PlantsStorageKey.
//
// A single writer goroutine owns the in-memory collection and runs every
// call in turn. Mutations are read-modify-write updates of the stored
// document, so each one starts from what is actually persisted. The
// in-memory collection changes only after the write succeeds; a failed
// write is returned wrapped in ErrPersist and leaves memory as it was.
package plants
