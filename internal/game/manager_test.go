package game

import (
	"testing"

	"github.com/glowbeat/chromatone/internal/highscore"
)

func newTestManager() *Manager {
	return NewManager(highscore.NewMemory(), SystemClock())
}

func TestNewManager(t *testing.T) {
	m := newTestManager()
	if m.sessions == nil {
		t.Fatal("sessions map should be initialized")
	}
	if m.active != "" {
		t.Fatal("active session should be empty initially")
	}
}

func TestCreateSession(t *testing.T) {
	m := newTestManager()

	code, token, sess := m.Create(SessionConfig{})
	if code == "" {
		t.Fatal("session code should not be empty")
	}
	if token == "" {
		t.Fatal("player token should not be empty")
	}
	if sess == nil {
		t.Fatal("session should be returned")
	}
	if sess.PlayerToken != token {
		t.Fatalf("expected player token %s on session, got %s", token, sess.PlayerToken)
	}

	got, err := m.Get(code)
	if err != nil {
		t.Fatalf("should be able to retrieve created session: %v", err)
	}
	if got != sess {
		t.Fatal("Get returned a different session")
	}

	snap := sess.Snapshot()
	if snap.State != StateIdle {
		t.Fatalf("new session should be %s, got %s", StateIdle, snap.State)
	}
	if snap.SessionCode != code {
		t.Fatalf("expected code %s in snapshot, got %s", code, snap.SessionCode)
	}
}

func TestCreateAppliesConfigDefaults(t *testing.T) {
	m := newTestManager()
	_, _, sess := m.Create(SessionConfig{})
	if sess.Config.WinLevel != DefaultWinLevel {
		t.Fatalf("expected default win level %d, got %d", DefaultWinLevel, sess.Config.WinLevel)
	}
	if sess.Config.ReminderSeconds != DefaultReminderSeconds {
		t.Fatalf("expected default reminder %ds, got %d", DefaultReminderSeconds, sess.Config.ReminderSeconds)
	}
}

func TestGetUnknownSession(t *testing.T) {
	m := newTestManager()
	if _, err := m.Get("NOPE1"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestActiveTracksLatestSession(t *testing.T) {
	m := newTestManager()
	if code, sess := m.Active(); code != "" || sess != nil {
		t.Fatal("expected no active session initially")
	}

	first, _, _ := m.Create(SessionConfig{})
	second, _, _ := m.Create(SessionConfig{})
	if first == second {
		t.Fatal("different sessions should have different codes")
	}

	code, sess := m.Active()
	if code != second {
		t.Fatalf("expected active session %s, got %s", second, code)
	}
	if sess == nil {
		t.Fatal("active session should be resolvable")
	}
}

func TestSessionsShareHighScoreStore(t *testing.T) {
	store := highscore.NewMemory()
	if err := store.Set(7); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	m := NewManager(store, SystemClock())
	_, _, sess := m.Create(SessionConfig{})
	if snap := sess.Snapshot(); snap.HighScore != 7 {
		t.Fatalf("expected session to see stored high score 7, got %d", snap.HighScore)
	}
}
