// Package care derives everything PlantParent shows about care state from a
// plant record and the current time: days since last care, the
// overdue/due-soon/ok status, "time since" strings and the reminder list.
//
// All functions are pure. The caller passes "now" so results are
// reproducible in tests.
package care
