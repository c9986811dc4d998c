// Package models defines the plant records PlantParent stores and the
// small value types around them (photos, care-log entries, drafts, patches).
//
// The JSON field names match the documents written by earlier versions of
// the app, so an existing "@plants" document loads unchanged.
package models
