package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"koch-snowflake/internal/snowflake/controller"
	"koch-snowflake/internal/snowflake/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// ============================================================
// Session
// ============================================================

// Session is one viewer. Its lock makes every event and tick run one after
// another, so the controller only ever sees serial calls.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	ctrl     *controller.Controller
	lastSeen time.Time
}

type Status struct {
	ID          string `json:"id"`
	Depth       int    `json:"depth"`
	State       string `json:"state"`
	Generations int    `json:"generations"`
}

func (s *Session) status() Status {
	return Status{
		ID:          s.ID,
		Depth:       s.ctrl.Depth(),
		State:       s.ctrl.State().String(),
		Generations: s.ctrl.Generations(),
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	return s.status()
}

// LastSeen is the time of the last status, event or frame request.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Press delivers one input event.
func (s *Session) Press(cmd controller.Command) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	before := s.ctrl.Depth()
	s.ctrl.Handle(cmd)
	if s.ctrl.Depth() != before {
		log.Printf("[SESSION] %s: %s, depth %d -> %d", s.ID, cmd, before, s.ctrl.Depth())
	}
	return s.status()
}

// Frame runs one scheduling tick and returns what should be drawn.
func (s *Session) Frame() models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	regenerated := s.ctrl.Tick()
	frame := s.ctrl.Frame()
	if regenerated {
		log.Printf("[SESSION] %s: regenerated depth %d, %d points", s.ID, frame.Depth, len(frame.Points))
	}
	return frame
}

// ============================================================
// Session Manager
// ============================================================

type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	limit    int
	ttl      time.Duration
}

// NewSessionManager creates a manager; limit <= 0 means unlimited and
// ttl <= 0 keeps idle sessions until they are dropped.
func NewSessionManager(limit int, ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		limit:    limit,
		ttl:      ttl,
	}
}

func (m *SessionManager) Issue() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictIdle(time.Now())
	if m.limit > 0 && len(m.sessions) >= m.limit {
		return nil, ErrTooManySessions
	}

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ctrl:      controller.New(),
		lastSeen:  now,
	}
	m.sessions[s.ID] = s
	return s, nil
}

// evictIdle drops sessions not seen for longer than the ttl. m.mu must be held.
func (m *SessionManager) evictIdle(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, s := range m.sessions {
		if idle := now.Sub(s.LastSeen()); idle > m.ttl {
			log.Printf("[SESSION] %s: evicted after %s idle (created %s)", id, idle.Round(time.Second), s.CreatedAt.Format(time.RFC3339))
			delete(m.sessions, id)
		}
	}
}

func (m *SessionManager) Resolve(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *SessionManager) Drop(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
