package session

import (
	"sync"

	"homify/internal/domain"
	applog "homify/internal/log"
)

// Storage persists the session outside the process. Implementations must
// treat absent or malformed persisted data as "no session" on the read path.
type Storage interface {
	Load() (domain.Session, error)
	Save(domain.Session) error
}

// Store owns the live session for the whole UI. Handlers read it through
// Current/Token; Login and Logout persist every state change.
type Store struct {
	mu      sync.RWMutex
	cur     domain.Session
	storage Storage
}

// NewStore rehydrates the persisted session. A load failure is logged and
// falls back to the logged-out state; it never prevents startup.
func NewStore(st Storage) *Store {
	s := &Store{storage: st}
	cur, err := st.Load()
	if err != nil {
		applog.Error(nil, "session.rehydrate.fail", err, nil)
		return s
	}
	if cur.LoggedIn() {
		s.cur = cur
	}
	return s
}

func (s *Store) Login(u domain.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = domain.Session{User: &u, Token: token}
	return s.storage.Save(s.cur)
}

func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = domain.Session{}
	return s.storage.Save(s.cur)
}

func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Token satisfies gateway.TokenSource. Empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}
