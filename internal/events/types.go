package events

import "time"

// Event is the envelope that flows through the event bus.
// Every domain event (match completed, webhook test) is wrapped in one.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Payload   any
}

type EventType string

const (
	// EventMatchCompleted is published when a live simulation reaches full time.
	EventMatchCompleted EventType = "match.completed"
	// EventWebhookTest is published when a client fires a test delivery
	// against a registered webhook.
	EventWebhookTest EventType = "webhook.test"
)

// MatchCompletedPayload is the body delivered to webhooks subscribed
// to match.completed.
type MatchCompletedPayload struct {
	MatchID        string    `json:"match_id"`
	HomeTeam       string    `json:"home_team"`
	AwayTeam       string    `json:"away_team"`
	HomeScore      int       `json:"home_score"`
	AwayScore      int       `json:"away_score"`
	Result         string    `json:"result"` // "home_win", "away_win", "draw"
	CompletedAt    time.Time `json:"completed_at"`
	ManOfTheMatch  string    `json:"man_of_the_match,omitempty"`
	TedPostMatch   string    `json:"ted_post_match_quote"`
}

// Result classifies a final score from the home side's perspective.
func Result(home, away int) string {
	switch {
	case home > away:
		return "home_win"
	case away > home:
		return "away_win"
	default:
		return "draw"
	}
}
