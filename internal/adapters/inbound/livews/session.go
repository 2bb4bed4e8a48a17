package livews

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/afcrichmond/believe-api/internal/core/sim"
	"github.com/afcrichmond/believe-api/internal/events"
	"github.com/afcrichmond/believe-api/internal/telemetry"
)

const (
	writeDeadline  = 5 * time.Second
	controlBacklog = 8
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// Handler serves the live match simulation WebSocket endpoint. Each
// connection owns one Match and one driver goroutine; nothing mutable is
// shared between connections.
type Handler struct {
	bus             *events.Bus
	defaultHomeTeam string
	defaultAwayTeam string
}

func NewHandler(bus *events.Bus, defaultHome, defaultAway string) *Handler {
	return &Handler{
		bus:             bus,
		defaultHomeTeam: defaultHome,
		defaultAwayTeam: defaultAway,
	}
}

// RegisterRoutes attaches the live simulation and echo endpoints.
// WebSocket upgrades are GET requests, and the method must be explicit so
// the pattern stays more specific than the REST "GET /matches/{id}" route.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /matches/live", h.HandleLive)
	mux.HandleFunc("GET /ws/test", h.HandleEcho)
}

// HandleLive upgrades the connection and drives one full match simulation.
func (h *Handler) HandleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		telemetry.Warnf("livews: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	cfg, err := h.parseConfig(r)
	if err != nil {
		// No driver exists yet: one error message, then close.
		h.writeJSON(conn, errorMessage{
			Type:    msgError,
			Code:    codeValidationError,
			Message: fmt.Sprintf("Invalid configuration: %v", err),
		})
		return
	}

	telemetry.Metrics.LiveConnections.Inc()
	defer telemetry.Metrics.LiveConnections.Dec()

	h.runSession(conn, cfg)
}

// parseConfig builds the simulation config from query parameters,
// falling back to the configured defaults.
func (h *Handler) parseConfig(r *http.Request) (sim.Config, error) {
	q := r.URL.Query()

	cfg := sim.Config{
		HomeTeam:   h.defaultHomeTeam,
		AwayTeam:   h.defaultAwayTeam,
		Speed:      1.0,
		Excitement: 5,
	}
	if v := q.Get("home_team"); v != "" {
		cfg.HomeTeam = v
	}
	if v := q.Get("away_team"); v != "" {
		cfg.AwayTeam = v
	}
	if v := q.Get("speed"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return sim.Config{}, fmt.Errorf("speed must be a number, got %q", v)
		}
		cfg.Speed = f
	}
	if v := q.Get("excitement_level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return sim.Config{}, fmt.Errorf("excitement_level must be an integer, got %q", v)
		}
		cfg.Excitement = n
	}

	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

// runSession owns all writes to the connection. A separate read goroutine
// forwards control commands over a channel, so commands are observed
// promptly without ever blocking event production.
func (h *Handler) runSession(conn *websocket.Conn, cfg sim.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	match := sim.NewMatch(cfg)
	telemetry.Metrics.MatchesStarted.Inc()

	welcome := matchStartMessage{
		Type:     msgMatchStart,
		MatchID:  match.ID(),
		HomeTeam: cfg.HomeTeam,
		AwayTeam: cfg.AwayTeam,
		Message: fmt.Sprintf("Welcome to Nelson Road! %s vs %s is about to begin. BELIEVE!",
			cfg.HomeTeam, cfg.AwayTeam),
	}
	if !h.writeJSON(conn, welcome) {
		return
	}

	control := make(chan clientCommand, controlBacklog)
	go readPump(ctx, cancel, conn, control)

	stream := match.Stream(ctx)
	for {
		select {
		case ev, ok := <-stream:
			if !ok {
				h.finish(conn, match)
				return
			}
			start := time.Now()
			if !h.writeJSON(conn, matchEventMessage{Type: msgMatchEvent, Event: ev}) {
				return
			}
			telemetry.Metrics.EventsStreamed.Inc()
			telemetry.Metrics.EventSendLatency.Record(time.Since(start))

		case cmd := <-control:
			telemetry.Metrics.ClientCommands.Inc()
			switch cmd.Action {
			case actionPing:
				if !h.writeJSON(conn, pongMessage{Type: msgPong}) {
					return
				}
			case actionPause:
				match.Pacer().Pause()
			case actionResume:
				match.Pacer().Resume()
			case actionSetSpeed:
				match.Pacer().SetSpeed(cmd.Speed)
			case actionGetStatus:
				// accepted but unanswered: the wire protocol defines
				// no status reply
			}

		case <-ctx.Done():
			// client went away; drop everything, no further I/O
			return
		}
	}
}

// finish sends the closing summary after the driver's terminal event.
func (h *Handler) finish(conn *websocket.Conn, match *sim.Match) {
	score := match.Score()

	side := sim.SideHome
	if score.Away > score.Home {
		side = sim.SideAway
	}
	motm := match.RandomPlayer(side).Name

	tedPostMatch := "Win, lose, or draw - I'm proud of every single one of you. " +
		"Now who wants to grab some barbecue?"

	end := matchEndMessage{
		Type:          msgMatchEnd,
		MatchID:       match.ID(),
		FinalScore:    score,
		FinalStats:    match.Stats(),
		ManOfTheMatch: motm,
		TedPostMatch:  tedPostMatch,
	}
	if !h.writeJSON(conn, end) {
		return
	}

	telemetry.Metrics.MatchesCompleted.Inc()

	if h.bus != nil {
		cfg := match.Config()
		h.bus.Publish(events.Event{
			ID:        match.ID(),
			Type:      events.EventMatchCompleted,
			Timestamp: time.Now().UTC(),
			Payload: events.MatchCompletedPayload{
				MatchID:       match.ID(),
				HomeTeam:      cfg.HomeTeam,
				AwayTeam:      cfg.AwayTeam,
				HomeScore:     score.Home,
				AwayScore:     score.Away,
				Result:        events.Result(score.Home, score.Away),
				CompletedAt:   time.Now().UTC(),
				ManOfTheMatch: motm,
				TedPostMatch:  tedPostMatch,
			},
		})
	}
}

// writeJSON reports false on failure; the session treats any write error
// as a dead connection. A best-effort internal_error is attempted once for
// marshal failures, but never after a network or close error, since a gone
// client gets no further I/O.
func (h *Handler) writeJSON(conn *websocket.Conn, v any) bool {
	conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	if err := conn.WriteJSON(v); err != nil {
		if connAlive(err) {
			_ = conn.WriteJSON(errorMessage{
				Type:    msgError,
				Code:    codeInternalError,
				Message: "An error occurred while sending an event",
			})
		}
		return false
	}
	return true
}

// connAlive reports whether a WriteJSON error left the connection usable,
// which is only the case for marshal failures.
func connAlive(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) {
		return false
	}
	var cerr *websocket.CloseError
	if errors.As(err, &cerr) {
		return false
	}
	return !errors.Is(err, websocket.ErrCloseSent)
}

// readPump drains inbound control messages for the session's lifetime.
// Malformed payloads and unknown actions are ignored; a read error means
// the client disconnected, which cancels the whole session.
func readPump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, control chan<- clientCommand) {
	defer cancel()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		cmd, ok := parseCommand(data)
		if !ok {
			continue
		}
		select {
		case control <- cmd:
		case <-ctx.Done():
			return
		default:
			// backlog full: shed the command rather than block reads
		}
	}
}
