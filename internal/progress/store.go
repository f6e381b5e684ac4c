package progress

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// KV is the persistence backend the store sits on. The SQLite store
// satisfies it; tests use an in-memory map.
type KV interface {
	// Get returns the stored value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

// Store loads and saves progress records. Persistence trouble never
// surfaces to callers: a failed read yields a fresh record, a failed write
// is logged and the in-memory record stays authoritative for the session.
type Store struct {
	kv  KV
	log *slog.Logger
	now func() time.Time
}

// NewStore creates a Store over the given backend. A nil logger falls back
// to slog.Default.
func NewStore(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		kv:  kv,
		log: log,
		now: time.Now,
	}
}

// NewStoreAt is NewStore with an explicit clock, used by tests to pin the
// calendar day.
func NewStoreAt(kv KV, log *slog.Logger, now func() time.Time) *Store {
	s := NewStore(kv, log)
	if now != nil {
		s.now = now
	}
	return s
}

// Today returns the current date in DateLayout.
func (s *Store) Today() string {
	return s.now().Format(DateLayout)
}

// Load returns the progress record for userName, creating, migrating, and
// rolling it over as needed:
//
//   - no record: a fresh one (daysActive=1, lastActiveDate=today) is
//     persisted and returned
//   - record predates exploredChapters: the field is backfilled to an empty
//     set, everything else kept verbatim
//   - lastActiveDate != today: daysActive+1, lastActiveDate=today, persisted
//     before returning
//   - unreadable record: logged, fresh in-memory record returned without
//     overwriting what is stored
func (s *Store) Load(ctx context.Context, userName string) Progress {
	today := s.Today()
	key := Key(userName)

	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Error("progress: read failed, starting fresh", "user", userName, "err", err)
		return NewRecord(today)
	}
	if !ok {
		p := NewRecord(today)
		s.Save(ctx, userName, p)
		return p
	}

	var p Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Error("progress: corrupt record, starting fresh", "user", userName, "err", err)
		return NewRecord(today)
	}

	// Records written before chapter tracking existed.
	if p.ExploredChapters == nil {
		p.ExploredChapters = []int{}
	}

	if p.LastActiveDate != today {
		p.DaysActive++
		p.LastActiveDate = today
		s.Save(ctx, userName, p)
	}

	return p
}

// Save persists the record for userName. Failures are swallowed and logged.
func (s *Store) Save(ctx context.Context, userName string, p Progress) {
	raw, err := json.Marshal(p)
	if err != nil {
		s.log.Error("progress: marshal failed", "user", userName, "err", err)
		return
	}
	if err := s.kv.Put(ctx, Key(userName), raw); err != nil {
		s.log.Error("progress: save failed, continuing in memory", "user", userName, "err", err)
	}
}

// Apply overlays u on current, persists the result, and returns it for the
// caller to adopt as the new state.
func (s *Store) Apply(ctx context.Context, userName string, current Progress, u Update) Progress {
	merged := u.overlay(current)
	s.Save(ctx, userName, merged)
	return merged
}
