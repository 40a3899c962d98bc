package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/glowbeat/chromatone/internal/highscore"
)

// Session is one player's play-through of the game. It owns the sequence,
// the level, the player's progress and the round state, and drives playback
// and the reminder timeout through an injected Clock. All mutation happens
// behind the mutex; scheduled callbacks re-enter through it and verify they
// are still current before touching anything.
type Session struct {
	Code        string
	CreatedAt   time.Time
	PlayerToken string
	Config      SessionConfig

	mu       sync.Mutex
	state    State
	level    int
	sequence []Color
	progress int

	flashing    Color
	message     string
	messageKind string

	// roundCapture is the sequence as it stood when playback last completed.
	// Every reminder arm during the round reuses this capture.
	roundCapture []Color

	// playGen orphans superseded playback chains: each (re)start of playback
	// bumps it and scheduled steps bail when their generation is stale.
	playGen int

	highScore int
	ambientOn bool

	gen    *Generator
	clock  Clock
	scores highscore.Store
	remind reminder
	sink   Sink
}

// NewSession builds a session in the Idle state. The sink defaults to a
// no-op until a presentation layer attaches via SetSink.
func NewSession(code string, cfg SessionConfig, gen *Generator, clock Clock, scores highscore.Store) *Session {
	s := &Session{
		Code:        code,
		CreatedAt:   time.Now().UTC(),
		Config:      cfg.withDefaults(),
		state:       StateIdle,
		level:       1,
		message:     "Press start to play",
		messageKind: KindInfo,
		gen:         gen,
		clock:       clock,
		scores:      scores,
		remind:      reminder{clock: clock},
		sink:        nopSink{},
	}
	if hs, err := scores.Get(); err == nil {
		s.highScore = hs
	}
	return s
}

// SetSink attaches the presentation layer. Passing nil detaches it.
func (s *Session) SetSink(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sink == nil {
		sink = nopSink{}
	}
	s.sink = sink
}

// Start begins a new run. From Idle, Success or GameOver it starts fresh;
// issued mid-run it restarts, discarding the run in progress.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remind.cancel()
	s.level = 1
	s.progress = 0
	s.sequence = []Color{s.gen.NextColor(1)}
	if hs, err := s.scores.Get(); err == nil && hs > s.highScore {
		s.highScore = hs
	}
	if !s.ambientOn {
		s.sink.StartAmbient()
		s.ambientOn = true
	}
	s.beginShowing(s.sequence, s.Config.gap(), "Watch the sequence", false)
}

// Press handles one color input from the player. Presses outside the
// Playing state, or of a color not unlocked at the current level, are
// ignored.
func (s *Session) Press(color Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return
	}
	if !colorAvailable(color, s.level) {
		return
	}
	// The reminder races this input; kill it before judging the press.
	s.remind.cancel()

	if color != s.sequence[s.progress] {
		s.sink.PlayFailure()
		s.endSession(StateGameOver, fmt.Sprintf("Game over! You reached level %d", s.level), KindFailure)
		return
	}

	s.sink.PlayTone(color, s.Config.gap())
	s.progress++
	if s.progress < len(s.sequence) {
		s.remind.arm(s.roundCapture, s.Config.reminderDelay(), s.reminderFired)
		s.emitLocked()
		return
	}

	// Round complete.
	if s.level >= s.Config.WinLevel {
		s.sink.PlayFanfare()
		s.endSession(StateSuccess, s.gen.SuccessPhrase(), KindSuccess)
		return
	}
	s.level++
	s.sequence = append(s.sequence, s.gen.NextColor(s.level))
	s.sink.PlaySuccess()
	s.beginShowing(s.sequence, s.Config.roundPause(), "Watch the sequence", false)
}

// Snapshot returns the read-only view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// beginShowing starts a playback chain for seq after the given lead-in.
// keepProgress is set for reminder replays, which must not reset the
// player's position in the sequence.
func (s *Session) beginShowing(seq []Color, lead time.Duration, msg string, keepProgress bool) {
	s.state = StateShowing
	s.flashing = ""
	s.message = msg
	s.messageKind = KindInfo
	s.playGen++
	gen := s.playGen
	s.clock.AfterFunc(lead, func() { s.stepOn(gen, seq, 0, keepProgress) })
	s.emitLocked()
}

// stepOn lights one pad and plays its tone.
func (s *Session) stepOn(gen int, seq []Color, idx int, keepProgress bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.playGen || s.state != StateShowing {
		return
	}
	s.flashing = seq[idx]
	s.sink.PlayTone(seq[idx], s.Config.tone())
	s.emitLocked()
	s.clock.AfterFunc(s.Config.tone(), func() { s.stepOff(gen, seq, idx, keepProgress) })
}

// stepOff clears the pad and either schedules the next step or hands the
// board to the player.
func (s *Session) stepOff(gen int, seq []Color, idx int, keepProgress bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.playGen || s.state != StateShowing {
		return
	}
	s.flashing = ""
	if idx+1 < len(seq) {
		s.emitLocked()
		s.clock.AfterFunc(s.Config.gap(), func() { s.stepOn(gen, seq, idx+1, keepProgress) })
		return
	}
	s.enterPlaying(keepProgress)
}

func (s *Session) enterPlaying(keepProgress bool) {
	s.state = StatePlaying
	if !keepProgress {
		s.progress = 0
		s.roundCapture = append([]Color(nil), s.sequence...)
	}
	s.message = "Your turn"
	s.messageKind = KindInfo
	s.remind.arm(s.roundCapture, s.Config.reminderDelay(), s.reminderFired)
	s.emitLocked()
}

// reminderFired replays the captured sequence after inactivity. It does not
// touch level or progress; a timer that outlived the Playing state is a
// no-op.
func (s *Session) reminderFired(seq []Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return
	}
	s.beginShowing(seq, s.Config.gap(), "Watch again", true)
}

// endSession moves to a terminal state, stops the ambient track once and
// persists the high score. Session end is the only moment the high score
// is written.
func (s *Session) endSession(final State, msg, kind string) {
	s.state = final
	s.flashing = ""
	s.message = msg
	s.messageKind = kind
	s.playGen++
	if s.ambientOn {
		s.sink.StopAmbient()
		s.ambientOn = false
	}
	if hs, err := s.scores.Get(); err == nil && hs > s.highScore {
		s.highScore = hs
	}
	if s.level > s.highScore {
		s.highScore = s.level
		_ = s.scores.Set(s.highScore)
	}
	s.emitLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	colors := AvailableColors(s.level)
	return Snapshot{
		SessionCode: s.Code,
		State:       s.state,
		Level:       s.level,
		HighScore:   s.highScore,
		SequenceLen: len(s.sequence),
		Progress:    s.progress,
		Colors:      append([]Color(nil), colors...),
		Flashing:    s.flashing,
		Message:     s.message,
		MessageKind: s.messageKind,
	}
}

func (s *Session) emitLocked() {
	s.sink.StateChanged(s.snapshotLocked())
}
