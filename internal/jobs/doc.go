// Package jobs runs the background maintenance work: a cron scheduler,
// a forced snapshot refresh that backs up the realtime poll loop, and a
// sweep that deletes orphaned media binaries.
package jobs
