// Package cli implements the interactive PlantParent terminal client.
//
// The client is a read-eval-print loop over the plant store, the premium
// service and the settings service. Every command first reloads state from
// storage and then renders its view; care status, reminders and "time
// since" strings are computed with package care at the moment of the call.
//
// Commands:
//
//	list                     list plants with their care status
//	add                      add a plant (interactive)
//	show <plant>             plant details
//	edit <plant>             edit a plant (interactive)
//	delete <plant>           delete a plant
//	water <plant>            log a watering
//	fertilize <plant>        log a fertilizing
//	photo <plant> [uri]      add a photo to the timeline
//	timeline <plant>         photo timeline, newest first
//	reminders                overdue care, most urgent first
//	notify                   push the reminders to the configured services
//	premium | purchase       entitlement status and upgrade
//	settings | lang | datefmt | export
//	help | exit | quit
//
// A <plant> is its number in the list, its id or a unique id prefix.
package cli
