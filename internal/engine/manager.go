package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/albait/assistant/internal/catalog"
)

// Manager multiplexes many user sessions over one shared catalog. Each
// session owns a private Engine; idle sessions expire from the cache.
type Manager struct {
	cfg      Config
	items    []catalog.Item
	pages    []catalog.Page
	mu       sync.Mutex
	sessions *gocache.Cache
	log      zerolog.Logger
}

// managedSession serializes calls into one engine. The engine itself is
// single-threaded by contract.
type managedSession struct {
	sem    chan struct{}
	engine *Engine
}

func (ms *managedSession) do(fn func(*Engine) Result) Result {
	ms.sem <- struct{}{}
	defer func() { <-ms.sem }()
	return fn(ms.engine)
}

// NewManager builds a session manager. Sessions idle longer than ttl are
// evicted together with their conversational state.
func NewManager(items []catalog.Item, pages []catalog.Page, cfg Config, ttl time.Duration, log zerolog.Logger) *Manager {
	return &Manager{
		cfg:      cfg,
		items:    items,
		pages:    pages,
		sessions: gocache.New(ttl, ttl/2),
		log:      log,
	}
}

// Search routes a query to the session's engine, creating the session when
// sessionID is empty or expired. The returned ID identifies the session for
// follow-up calls.
func (m *Manager) Search(sessionID, query string) (string, Result) {
	id, ms := m.session(sessionID)
	res := ms.do(func(e *Engine) Result {
		return e.Search(query)
	})
	return id, res
}

// Reset drops a session and its accumulated context.
func (m *Manager) Reset(sessionID string) {
	m.sessions.Delete(sessionID)
	m.log.Debug().Str("session", sessionID).Msg("session reset")
}

// Comparison builds the package comparison table without touching any
// session state.
func (m *Manager) Comparison() *Comparison {
	return BuildComparison(m.items)
}

// SessionCount reports live sessions, for health reporting.
func (m *Manager) SessionCount() int {
	return m.sessions.ItemCount()
}

func (m *Manager) session(sessionID string) (string, *managedSession) {
	if sessionID != "" {
		if v, ok := m.sessions.Get(sessionID); ok {
			ms := v.(*managedSession)
			m.sessions.SetDefault(sessionID, ms)
			return sessionID, ms
		}
	}

	// creation is serialized so concurrent first requests with the same ID
	// end up sharing one engine instead of discarding each other's state
	m.mu.Lock()
	defer m.mu.Unlock()
	if sessionID != "" {
		if v, ok := m.sessions.Get(sessionID); ok {
			return sessionID, v.(*managedSession)
		}
	}

	id := sessionID
	if id == "" {
		id = uuid.NewString()
	}
	ms := &managedSession{
		sem:    make(chan struct{}, 1),
		engine: New(m.items, m.pages, m.cfg, m.log.With().Str("session", id).Logger()),
	}
	m.sessions.SetDefault(id, ms)
	m.log.Debug().Str("session", id).Msg("session created")
	return id, ms
}
