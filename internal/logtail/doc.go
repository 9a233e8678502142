// Package logtail reads the tail of the application log for the in-app log
// pane.
//
// Read keeps a ring buffer of the last N lines so large files are scanned once
// without holding them in memory. Parse splits lines written by the logrus
// text formatter into time, level, message and remaining fields so the UI can
// colour them by level.
package logtail
