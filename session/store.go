package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Options configures a Store
type Options struct {
	IdleTTL   time.Duration
	NoticeTTL time.Duration
	Now       func() time.Time
}

// Store owns every live session
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	idleTTL   time.Duration
	noticeTTL time.Duration
	now       func() time.Time
}

// NewStore creates an empty session store
func NewStore(opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 30 * time.Minute
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = 3 * time.Second
	}
	return &Store{
		sessions:  make(map[string]*Session),
		idleTTL:   opts.IdleTTL,
		noticeTTL: opts.NoticeTTL,
		now:       opts.Now,
	}
}

// Create starts a new session with an empty cart
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString(), st.noticeTTL, st.now)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Transient returns an empty session that is never registered, for requests
// that only read state.
func (st *Store) Transient() *Session {
	return newSession("", st.noticeTTL, st.now)
}

// Get returns the live session for id and marks it as seen
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = st.now()
	return s, true
}

// Len is the number of live sessions
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle for longer than the idle TTL and returns how many
// were removed.
func (st *Store) Sweep() int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.idleTTL {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				slog.Debug("sessions evicted", slog.Int("count", n))
			}
		}
	}
}
