package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"

	"github.com/glowbeat/chromatone/internal/config"
	"github.com/glowbeat/chromatone/internal/game"
)

type ConnCtx struct {
	Code  string
	Token string
}

type Server struct {
	RM     *game.Manager
	config config.Config

	mu      sync.Mutex
	members map[string]map[string]socketio.Conn // sessionCode -> socketID -> Conn
}

func New(rm *game.Manager, cfg config.Config) *Server {
	return &Server{RM: rm, members: make(map[string]map[string]socketio.Conn), config: cfg}
}

// Mount attaches the Socket.IO server with handlers to the given Gin engine.
func (srv *Server) Mount(r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(&ConnCtx{})
		log.Info().Str("sid", s.ID()).Msg("socket connected")
		return nil
	})

	// game:create
	io.OnEvent("/", "game:create", func(s socketio.Conn, payload struct {
		Config game.SessionConfig `json:"config"`
	}) map[string]any {
		// In single-session mode a second browser attaches to the running
		// session instead of replacing it.
		if srv.config.SingleSession {
			if code, sess := srv.RM.Active(); sess != nil {
				s.SetContext(&ConnCtx{Code: code, Token: sess.PlayerToken})
				s.Join(code)
				srv.addMember(code, s)
				log.Info().Str("sid", s.ID()).Str("code", code).Msg("game:create joined active session")
				s.Emit("game:state", sess.Snapshot())
				return map[string]any{"sessionCode": code, "playerToken": sess.PlayerToken}
			}
		}
		code, playerToken, sess := srv.RM.Create(payload.Config)
		sess.SetSink(&sessionSink{srv: srv, code: code})
		s.SetContext(&ConnCtx{Code: code, Token: playerToken})
		s.Join(code)
		srv.addMember(code, s)
		log.Info().Str("sid", s.ID()).Str("code", code).Msg("game:create")
		s.Emit("game:state", sess.Snapshot())
		return map[string]any{"sessionCode": code, "playerToken": playerToken}
	})

	// game:resume (reconnection)
	io.OnEvent("/", "game:resume", func(s socketio.Conn, payload struct {
		SessionCode string `json:"sessionCode"`
		Token       string `json:"token"`
	}) map[string]any {
		sess, err := srv.RM.Get(payload.SessionCode)
		if err != nil {
			return srv.err(s, "session_not_found", "Session not found")
		}
		if payload.Token != sess.PlayerToken {
			return srv.err(s, "unauthorized", "Invalid player token")
		}
		s.SetContext(&ConnCtx{Code: payload.SessionCode, Token: payload.Token})
		s.Join(payload.SessionCode)
		srv.addMember(payload.SessionCode, s)
		log.Info().Str("sid", s.ID()).Str("code", payload.SessionCode).Msg("game:resume")
		s.Emit("game:state", sess.Snapshot())
		return map[string]any{"ok": true}
	})

	// game:start (start or restart a run)
	io.OnEvent("/", "game:start", func(s socketio.Conn) map[string]any {
		ctx := s.Context().(*ConnCtx)
		sess, err := srv.RM.Get(ctx.Code)
		if err != nil {
			return srv.err(s, "session_not_found", "Session not found")
		}
		log.Info().Str("code", ctx.Code).Msg("game:start")
		sess.Start()
		return map[string]any{"ok": true}
	})

	// game:press (one color input)
	io.OnEvent("/", "game:press", func(s socketio.Conn, payload struct {
		Color string `json:"color"`
	}) map[string]any {
		ctx := s.Context().(*ConnCtx)
		sess, err := srv.RM.Get(ctx.Code)
		if err != nil {
			return srv.err(s, "session_not_found", "Session not found")
		}
		log.Debug().Str("code", ctx.Code).Str("color", payload.Color).Msg("game:press")
		sess.Press(game.Color(payload.Color))
		return map[string]any{"ok": true}
	})

	io.OnError("/", func(s socketio.Conn, e error) {
		log.Error().Str("sid", s.ID()).Err(e).Msg("socket error")
	})
	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if ctx, ok := s.Context().(*ConnCtx); ok {
			if ctx.Code != "" {
				srv.removeMember(ctx.Code, s)
			}
		}
		log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	go io.Serve()

	// Mount to router
	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))

	// Basic CORS preflight for Socket.IO POST
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

func (srv *Server) addMember(code string, c socketio.Conn) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.members[code] == nil {
		srv.members[code] = make(map[string]socketio.Conn)
	}
	srv.members[code][c.ID()] = c
}

func (srv *Server) removeMember(code string, c socketio.Conn) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if m := srv.members[code]; m != nil {
		delete(m, c.ID())
	}
}

func (srv *Server) broadcast(code string, event string, payload any) {
	srv.mu.Lock()
	conns := make([]socketio.Conn, 0, len(srv.members[code]))
	for _, c := range srv.members[code] {
		conns = append(conns, c)
	}
	srv.mu.Unlock()
	for _, c := range conns {
		c.Emit(event, payload)
	}
}

func (srv *Server) err(s socketio.Conn, code, message string) map[string]any {
	s.Emit("error", map[string]any{"code": code, "message": message})
	return map[string]any{"error": message}
}

// sessionSink forwards session events to every connection watching the
// session: snapshots as game:state, audio cues as game:effect. The browser
// synthesizes the actual tones.
type sessionSink struct {
	srv  *Server
	code string
}

func (k *sessionSink) StateChanged(snap game.Snapshot) {
	k.srv.broadcast(k.code, "game:state", snap)
}

func (k *sessionSink) PlayTone(color game.Color, duration time.Duration) {
	k.srv.broadcast(k.code, "game:effect", map[string]any{
		"name":       "tone",
		"color":      string(color),
		"durationMs": duration.Milliseconds(),
	})
}

func (k *sessionSink) PlaySuccess() {
	k.srv.broadcast(k.code, "game:effect", map[string]any{"name": "success"})
}

func (k *sessionSink) PlayFailure() {
	k.srv.broadcast(k.code, "game:effect", map[string]any{"name": "failure"})
}

func (k *sessionSink) PlayFanfare() {
	k.srv.broadcast(k.code, "game:effect", map[string]any{"name": "fanfare"})
}

func (k *sessionSink) StartAmbient() {
	k.srv.broadcast(k.code, "game:effect", map[string]any{"name": "ambient:start"})
}

func (k *sessionSink) StopAmbient() {
	k.srv.broadcast(k.code, "game:effect", map[string]any{"name": "ambient:stop"})
}
