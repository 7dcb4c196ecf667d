package jobs

import "context"

// Refresher forces a full re-list of every synced collection.
type Refresher interface {
	Refresh(ctx context.Context)
}

// SnapshotRefreshJob periodically forces the sync layer to re-apply
// fresh snapshots. It is the safety net for store drift the regular
// poll cannot detect.
type SnapshotRefreshJob struct {
	syncer Refresher
}

// NewSnapshotRefreshJob creates the refresh job.
func NewSnapshotRefreshJob(syncer Refresher) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{syncer: syncer}
}

// Name implements Job.
func (j *SnapshotRefreshJob) Name() string { return "snapshot-refresh" }

// Run implements Job.
func (j *SnapshotRefreshJob) Run(ctx context.Context) error {
	j.syncer.Refresh(ctx)
	return nil
}
