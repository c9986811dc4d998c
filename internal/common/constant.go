// Package common contains shared constants and sentinel errors used across
// PlantParent components.
package common

// Storage keys of the device key-value store. Each key holds one JSON (or
// plain string) document.
const (
	PlantsStorageKey     = "@plants"
	PremiumStorageKey    = "@premium_status"
	LanguageStorageKey   = "app_language"
	DateFormatStorageKey = "date_format"
)
