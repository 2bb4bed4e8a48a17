package livews

import (
	"encoding/json"

	"github.com/afcrichmond/believe-api/internal/core/sim"
)

// Server → client messages. Each carries a "type" discriminator.

type matchStartMessage struct {
	Type     string `json:"type"`
	MatchID  string `json:"match_id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Message  string `json:"message"`
}

type matchEventMessage struct {
	Type  string    `json:"type"`
	Event sim.Event `json:"event"`
}

type matchEndMessage struct {
	Type          string    `json:"type"`
	MatchID       string    `json:"match_id"`
	FinalScore    sim.Score `json:"final_score"`
	FinalStats    sim.Stats `json:"final_stats"`
	ManOfTheMatch string    `json:"man_of_the_match"`
	TedPostMatch  string    `json:"ted_post_match"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type pongMessage struct {
	Type string `json:"type"`
}

const (
	msgMatchStart = "match_start"
	msgMatchEvent = "match_event"
	msgMatchEnd   = "match_end"
	msgError      = "error"
	msgPong       = "pong"

	codeValidationError = "validation_error"
	codeInternalError   = "internal_error"
)

// Client → server control messages.

const (
	actionPing      = "ping"
	actionPause     = "pause"
	actionResume    = "resume"
	actionSetSpeed  = "set_speed"
	actionGetStatus = "get_status"
)

type clientCommand struct {
	Action string  `json:"action"`
	Speed  float64 `json:"speed,omitempty"`
}

// parseCommand returns false for malformed JSON or unknown actions;
// such payloads are silently ignored by the session.
func parseCommand(data []byte) (clientCommand, bool) {
	var cmd clientCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		return clientCommand{}, false
	}
	switch cmd.Action {
	case actionPing, actionPause, actionResume, actionSetSpeed, actionGetStatus:
		return cmd, true
	default:
		return clientCommand{}, false
	}
}
