package jobs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ella-quan/meowhome/internal/media"
	"github.com/ella-quan/meowhome/internal/store"
)

// sweepMinAge protects freshly uploaded binaries whose photo document
// may not have landed in the store yet.
const sweepMinAge = time.Hour

// MediaSweepJob deletes stored binaries no photo document references
// anymore. Deleting a photo already removes its binary best-effort; the
// sweep catches the leftovers from failed deletes and crashed uploads.
type MediaSweepJob struct {
	store  *store.Store
	media  *media.DiskStore
	logger *slog.Logger
}

// NewMediaSweepJob creates the sweep job.
func NewMediaSweepJob(st *store.Store, disk *media.DiskStore, logger *slog.Logger) *MediaSweepJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &MediaSweepJob{store: st, media: disk, logger: logger}
}

// Name implements Job.
func (j *MediaSweepJob) Name() string { return "media-sweep" }

// Run implements Job.
func (j *MediaSweepJob) Run(ctx context.Context) error {
	referenced := make(map[string]struct{})
	for _, p := range j.store.Photos() {
		referenced[p.URL] = struct{}{}
	}

	entries, err := os.ReadDir(j.media.Dir())
	if err != nil {
		return err
	}

	removed := 0
	cutoff := time.Now().Add(-sweepMinAge)
	for _, entry := range entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			continue
		}
		if _, ok := referenced[j.media.URLFor(entry.Name())]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(j.media.Dir(), entry.Name())); err != nil {
			j.logger.Warn("orphaned media not removed",
				slog.String("file", entry.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger.Info("orphaned media swept", slog.Int("removed", removed))
	}
	return nil
}
