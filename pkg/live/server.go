package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/glide-ui/glide/pkg/transition"
)

// BrowserEvents is the completion event table for current browsers,
// where the unprefixed names are universally available.
var BrowserEvents = transition.EventNames{
	TransitionEnd: []string{"transitionend"},
	AnimationEnd:  []string{"animationend"},
}

// Config configures the demo server.
type Config struct {
	// Transition is the group configuration shared by each connection.
	// OnTransitionEnd is managed by the server; anything set here is
	// overwritten.
	Transition transition.Config

	// Events is the completion event table (default: BrowserEvents).
	// The demo resolves transitions by timeout on the server, so the
	// table mostly matters for the no-timeout degradation path.
	Events transition.EventNames

	// Observer is wired into every connection's group, if set.
	Observer transition.Observer

	// Clock substitutes the timer source, used by tests.
	Clock transition.Clock

	// Logger is the structured logger (default: slog.Default()).
	Logger *slog.Logger
}

// Server streams transition patches to connected demo clients.
type Server struct {
	cfg      Config
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// New creates a demo server.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if !cfg.Events.Supported() {
		cfg.Events = BrowserEvents
	}
	return &Server{
		cfg: cfg,
		log: cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Router returns the HTTP routes: the demo page and the patch socket.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(demoPage))
}

// newSession builds a per-connection session around the configured
// transition group.
func (s *Server) newSession(send func(Patch)) *session {
	cfg := s.cfg.Transition
	cfg.OnTransitionEnd = func() {
		s.log.Debug("leave transition settled")
	}

	opts := []transition.Option{transition.WithEvents(s.cfg.Events)}
	if s.cfg.Observer != nil {
		opts = append(opts, transition.WithObserver(s.cfg.Observer))
	}
	if s.cfg.Clock != nil {
		opts = append(opts, transition.WithClock(s.cfg.Clock))
	}

	group := transition.NewGroup(cfg, opts...)
	return newSession(group, send, s.log)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Patches arrive from timer goroutines as well as the read loop, so
	// writes must be serialized.
	var writeMu sync.Mutex
	send := func(p Patch) {
		msg, err := json.Marshal(p)
		if err != nil {
			s.log.Error("patch encode failed", "error", err)
			return
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			s.log.Error("patch write failed", "error", err)
		}
	}

	sess := s.newSession(send)
	defer sess.Close()

	s.log.Info("demo client connected", "remote", r.RemoteAddr)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				s.log.Error("read error", "error", err)
			}
			return
		}

		var act action
		if err := json.Unmarshal(msg, &act); err != nil {
			s.log.Warn("bad action frame", "error", err)
			continue
		}

		switch act.Action {
		case actionAdd:
			id := sess.Add()
			s.log.Debug("item added", "id", id)

		case actionRemove:
			if !sess.Remove(act.ID) {
				s.log.Warn("remove for unknown item", "id", act.ID)
			}

		default:
			s.log.Warn("unknown action", "action", act.Action)
		}
	}
}
