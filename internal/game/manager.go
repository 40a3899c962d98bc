package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowbeat/chromatone/internal/highscore"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager owns all live sessions, keyed by short join codes. Sessions share
// one high-score store and one clock; each gets its own seeded generator so
// sessions never contend on a random source.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	active   string // active session code when in single-session mode

	clock  Clock
	scores highscore.Store
}

func NewManager(scores highscore.Store, clock Clock) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		clock:    clock,
		scores:   scores,
	}
}

// Create builds a new Idle session and returns its code and the player's
// resume token.
func (m *Manager) Create(cfg SessionConfig) (code string, playerToken string, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	code = randomCode(5)
	for m.sessions[code] != nil {
		code = randomCode(5)
	}
	gen := NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	s = NewSession(code, cfg, gen, m.clock, m.scores)
	s.PlayerToken = uuid.NewString()

	m.sessions[code] = s
	m.active = code
	return code, s.PlayerToken, s
}

func (m *Manager) Get(code string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.sessions[code]
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Active() (string, *Session) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.active == "" {
		return "", nil
	}
	return m.active, m.sessions[m.active]
}

func randomCode(n int) string {
	letters := []rune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
