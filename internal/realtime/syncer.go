package realtime

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/store"
)

// Collection names one of the synced data sets.
type Collection string

const (
	CollectionMembers Collection = "members"
	CollectionTodos   Collection = "todos"
	CollectionEvents  Collection = "events"
	CollectionPhotos  Collection = "photos"
)

// Collections lists every synced collection in a stable order.
func Collections() []Collection {
	return []Collection{CollectionMembers, CollectionTodos, CollectionEvents, CollectionPhotos}
}

// Lister is the read side of the repository the syncer polls.
type Lister interface {
	ListMembers(ctx context.Context) ([]model.FamilyMember, error)
	ListTodos(ctx context.Context) ([]model.TodoItem, error)
	ListEvents(ctx context.Context) ([]model.CalendarEvent, error)
	ListPhotos(ctx context.Context) ([]model.Photo, error)
}

// Notifier receives a signal after a collection's store copy changed.
type Notifier interface {
	CollectionChanged(c Collection)
}

const (
	// DefaultPollInterval is how often each collection is re-listed.
	DefaultPollInterval = 2 * time.Second

	// DefaultReadyTimeout bounds how long startup waits for a first
	// populated member roster before declaring the app ready anyway.
	DefaultReadyTimeout = time.Second
)

// Config wires a Syncer.
type Config struct {
	Store    *store.Store
	Repo     Lister
	Notifier Notifier
	Logger   *slog.Logger

	PollInterval time.Duration
	ReadyTimeout time.Duration
}

// Syncer polls the repository and mirrors changes into the store.
type Syncer struct {
	store    *store.Store
	repo     Lister
	notifier Notifier
	logger   *slog.Logger

	interval     time.Duration
	readyTimeout time.Duration

	mu           sync.Mutex
	fingerprints map[Collection]string

	ready     chan struct{}
	readyOnce sync.Once

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewSyncer builds a syncer. Zero intervals fall back to the defaults.
func NewSyncer(cfg Config) *Syncer {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = DefaultReadyTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Syncer{
		store:        cfg.Store,
		repo:         cfg.Repo,
		notifier:     cfg.Notifier,
		logger:       cfg.Logger,
		interval:     cfg.PollInterval,
		readyTimeout: cfg.ReadyTimeout,
		fingerprints: make(map[Collection]string),
		ready:        make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start launches the poll loop. It returns immediately; use Ready to
// gate startup on the first member roster.
func (s *Syncer) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	// First pass happens before the ticker so startup does not wait a
	// full interval for data.
	s.syncAll(ctx)

	timeout := time.AfterFunc(s.readyTimeout, func() {
		s.markReady("timeout")
	})

	go func() {
		defer close(s.done)
		defer timeout.Stop()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.syncAll(ctx)
			}
		}
	}()
}

// Ready is closed after the first non-empty member roster is applied,
// or after the ready timeout elapses, whichever comes first.
func (s *Syncer) Ready() <-chan struct{} {
	return s.ready
}

// Refresh drops all collection fingerprints and re-lists everything, so
// the next snapshots are applied even when the remote data is unchanged.
// It reconciles store drift the fingerprint comparison cannot see, such
// as optimistic writes that never reached the database.
func (s *Syncer) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.fingerprints = make(map[Collection]string)
	s.mu.Unlock()
	s.syncAll(ctx)
}

// Close stops the poll loop and waits for it to exit. Safe to call more
// than once.
func (s *Syncer) Close() {
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		}
		s.markReady("closed")
	})
}

func (s *Syncer) markReady(reason string) {
	s.readyOnce.Do(func() {
		s.logger.Info("sync ready", slog.String("reason", reason))
		close(s.ready)
	})
}

func (s *Syncer) syncAll(ctx context.Context) {
	s.syncMembers(ctx)
	s.syncTodos(ctx)
	s.syncEvents(ctx)
	s.syncPhotos(ctx)
}

func (s *Syncer) syncMembers(ctx context.Context) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		s.logSyncError(CollectionMembers, err)
		return
	}
	if s.applyIfChanged(CollectionMembers, members, func() {
		s.store.ReplaceMembers(members)
	}) && len(members) > 0 {
		s.markReady("members")
	}
}

func (s *Syncer) syncTodos(ctx context.Context) {
	todos, err := s.repo.ListTodos(ctx)
	if err != nil {
		s.logSyncError(CollectionTodos, err)
		return
	}
	s.applyIfChanged(CollectionTodos, todos, func() {
		s.store.ReplaceTodos(todos)
	})
}

func (s *Syncer) syncEvents(ctx context.Context) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		s.logSyncError(CollectionEvents, err)
		return
	}
	s.applyIfChanged(CollectionEvents, events, func() {
		s.store.ReplaceEvents(events)
	})
}

func (s *Syncer) syncPhotos(ctx context.Context) {
	photos, err := s.repo.ListPhotos(ctx)
	if err != nil {
		s.logSyncError(CollectionPhotos, err)
		return
	}
	s.applyIfChanged(CollectionPhotos, photos, func() {
		s.store.ReplacePhotos(photos)
	})
}

// applyIfChanged runs apply and notifies only when the collection's
// fingerprint moved. It reports whether anything changed, counting the
// very first (possibly identical-to-empty) observation as a change so
// readiness can latch on it. The fingerprint record and the apply run
// under the same lock so concurrent passes, such as a cron refresh
// racing the poll loop, cannot leave the store holding an older
// snapshot than the recorded fingerprint.
func (s *Syncer) applyIfChanged(c Collection, data any, apply func()) bool {
	fp, err := fingerprint(data)
	if err != nil {
		s.logSyncError(c, err)
		return false
	}

	s.mu.Lock()
	prev, seen := s.fingerprints[c]
	if seen && prev == fp {
		s.mu.Unlock()
		return false
	}
	s.fingerprints[c] = fp
	apply()
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.CollectionChanged(c)
	}
	return true
}

func (s *Syncer) logSyncError(c Collection, err error) {
	s.logger.Error("collection sync failed",
		slog.String("collection", string(c)),
		slog.String("error", err.Error()),
	)
}

func fingerprint(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return string(sum[:]), nil
}
