package game

import "time"

// State is the round state of one session.
type State string

const (
	StateIdle     State = "Idle"
	StateShowing  State = "Showing"
	StatePlaying  State = "Playing"
	StateSuccess  State = "Success"
	StateGameOver State = "GameOver"
)

// Kinds for the user-facing message carried in a snapshot.
const (
	KindInfo    = "info"
	KindSuccess = "success"
	KindFailure = "failure"
)

// Defaults for SessionConfig. The win threshold, round pause and reminder
// delay are part of the game rules; tone and gap only shape playback pacing.
const (
	DefaultWinLevel         = 25
	DefaultToneMillis       = 420
	DefaultGapMillis        = 220
	DefaultRoundPauseMillis = 1500
	DefaultReminderSeconds  = 10
)

// SessionConfig tunes a session's pacing. Zero values fall back to the
// defaults above.
type SessionConfig struct {
	WinLevel         int `json:"winLevel"`
	ToneMillis       int `json:"toneMillis"`       // flash/tone hold per playback step
	GapMillis        int `json:"gapMillis"`        // pause between playback steps
	RoundPauseMillis int `json:"roundPauseMillis"` // pause before the next round's playback
	ReminderSeconds  int `json:"reminderSeconds"`  // inactivity before a replay
}

func (c SessionConfig) withDefaults() SessionConfig {
	if c.WinLevel <= 0 {
		c.WinLevel = DefaultWinLevel
	}
	if c.ToneMillis <= 0 {
		c.ToneMillis = DefaultToneMillis
	}
	if c.GapMillis <= 0 {
		c.GapMillis = DefaultGapMillis
	}
	if c.RoundPauseMillis <= 0 {
		c.RoundPauseMillis = DefaultRoundPauseMillis
	}
	if c.ReminderSeconds <= 0 {
		c.ReminderSeconds = DefaultReminderSeconds
	}
	return c
}

func (c SessionConfig) tone() time.Duration {
	return time.Duration(c.ToneMillis) * time.Millisecond
}

func (c SessionConfig) gap() time.Duration {
	return time.Duration(c.GapMillis) * time.Millisecond
}

func (c SessionConfig) roundPause() time.Duration {
	return time.Duration(c.RoundPauseMillis) * time.Millisecond
}

func (c SessionConfig) reminderDelay() time.Duration {
	return time.Duration(c.ReminderSeconds) * time.Second
}

// Snapshot is the read-only view of a session pushed to the browser on every
// observable change.
type Snapshot struct {
	SessionCode string  `json:"sessionCode"`
	State       State   `json:"state"`
	Level       int     `json:"level"`
	HighScore   int     `json:"highScore"`
	SequenceLen int     `json:"sequenceLength"`
	Progress    int     `json:"progress"`
	Colors      []Color `json:"colors"`   // unlocked at the current level
	Flashing    Color   `json:"flashing"` // empty when no pad is lit
	Message     string  `json:"message"`
	MessageKind string  `json:"messageKind"`
}

// Sink receives everything a presentation layer needs: a snapshot on every
// observable change plus fire-and-forget audio cues. Methods are invoked
// with the session lock held, so implementations must not call back into
// the session.
type Sink interface {
	StateChanged(snap Snapshot)
	PlayTone(color Color, duration time.Duration)
	PlaySuccess()
	PlayFailure()
	PlayFanfare()
	StartAmbient()
	StopAmbient()
}

// nopSink is used until a presentation layer attaches.
type nopSink struct{}

func (nopSink) StateChanged(Snapshot)         {}
func (nopSink) PlayTone(Color, time.Duration) {}
func (nopSink) PlaySuccess()                  {}
func (nopSink) PlayFailure()                  {}
func (nopSink) PlayFanfare()                  {}
func (nopSink) StartAmbient()                 {}
func (nopSink) StopAmbient()                  {}
