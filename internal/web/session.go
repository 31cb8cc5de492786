package web

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/erazemk/garderoba/internal/docstore"
	"github.com/erazemk/garderoba/internal/wardrobe"
)

// session is the server-side state of one browser.
type session struct {
	workspace *wardrobe.Workspace
	limiter   *rate.Limiter
	lastSeen  time.Time
}

// Sessions holds a workspace per browser session. Sessions idle for longer
// than the TTL are dropped by a background loop.
type Sessions struct {
	store docstore.Store
	ttl   time.Duration
	limit rate.Limit
	burst int

	mu       sync.Mutex
	sessions map[string]*session

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSessions starts a session registry whose workspaces use s. Each
// session may post limit forms per second with the given burst.
func NewSessions(s docstore.Store, ttl time.Duration, limit rate.Limit, burst int) *Sessions {
	ss := &Sessions{
		store:    s,
		ttl:      ttl,
		limit:    limit,
		burst:    burst,
		sessions: make(map[string]*session),
		stopCh:   make(chan struct{}),
	}

	go ss.cleanupLoop(cleanupInterval(ttl))

	return ss
}

func cleanupInterval(ttl time.Duration) time.Duration {
	interval := ttl / 2
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

// get returns the session with the given ID, creating it if needed.
func (ss *Sessions) get(id string) *session {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	sess, ok := ss.sessions[id]
	if !ok {
		sess = &session{
			workspace: wardrobe.NewWorkspace(ss.store),
			limiter:   rate.NewLimiter(ss.limit, ss.burst),
		}
		ss.sessions[id] = sess
	}
	sess.lastSeen = time.Now()
	return sess
}

// lookup returns the session with the given ID if it exists.
func (ss *Sessions) lookup(id string) (*session, bool) {
	if id == "" {
		return nil, false
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()

	sess, ok := ss.sessions[id]
	if ok {
		sess.lastSeen = time.Now()
	}
	return sess, ok
}

// transient returns an unregistered session with an empty workspace.
func (ss *Sessions) transient() *session {
	return &session{
		workspace: wardrobe.NewWorkspace(ss.store),
		limiter:   rate.NewLimiter(ss.limit, ss.burst),
		lastSeen:  time.Now(),
	}
}

// Len returns the number of live sessions.
func (ss *Sessions) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.sessions)
}

func (ss *Sessions) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			ss.cleanup(now)
		case <-ss.stopCh:
			return
		}
	}
}

// cleanup drops sessions last seen more than the TTL before now.
func (ss *Sessions) cleanup(now time.Time) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	for id, sess := range ss.sessions {
		if now.Sub(sess.lastSeen) > ss.ttl {
			sess.workspace.Close()
			delete(ss.sessions, id)
		}
	}
}

// Close stops the cleanup loop and cancels every session's fetches.
func (ss *Sessions) Close() {
	ss.stopOnce.Do(func() { close(ss.stopCh) })

	ss.mu.Lock()
	defer ss.mu.Unlock()
	for id, sess := range ss.sessions {
		sess.workspace.Close()
		delete(ss.sessions, id)
	}
}
