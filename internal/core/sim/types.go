package sim

import (
	"fmt"
)

// EventType enumerates every event that can appear on the live match wire.
type EventType string

const (
	EventMatchStart       EventType = "match_start"
	EventGoal             EventType = "goal"
	EventPossessionChange EventType = "possession_change"
	EventFoul             EventType = "foul"
	EventYellowCard       EventType = "yellow_card"
	EventRedCard          EventType = "red_card"
	EventPenaltyAwarded   EventType = "penalty_awarded"
	EventPenaltyScored    EventType = "penalty_scored"
	EventPenaltyMissed    EventType = "penalty_missed"
	EventSubstitution     EventType = "substitution"
	EventInjury           EventType = "injury"
	EventOffside          EventType = "offside"
	EventCorner           EventType = "corner"
	EventFreeKick         EventType = "free_kick"
	EventShotOnTarget     EventType = "shot_on_target"
	EventShotOffTarget    EventType = "shot_off_target"
	EventSave             EventType = "save"
	EventHalftime         EventType = "halftime"
	EventSecondHalfStart  EventType = "second_half_start"
	EventAddedTime        EventType = "added_time"
	EventMatchEnd         EventType = "match_end"
)

// Side identifies which team an event relates to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Player is one roster entry.
type Player struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
}

// Score is the running match score. It never decreases.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Stats is the running statistics block. Possession always sums to 100.
type Stats struct {
	PossessionHome    float64 `json:"possession_home"`
	PossessionAway    float64 `json:"possession_away"`
	ShotsHome         int     `json:"shots_home"`
	ShotsAway         int     `json:"shots_away"`
	ShotsOnTargetHome int     `json:"shots_on_target_home"`
	ShotsOnTargetAway int     `json:"shots_on_target_away"`
	CornersHome       int     `json:"corners_home"`
	CornersAway       int     `json:"corners_away"`
	FoulsHome         int     `json:"fouls_home"`
	FoulsAway         int     `json:"fouls_away"`
	YellowCardsHome   int     `json:"yellow_cards_home"`
	YellowCardsAway   int     `json:"yellow_cards_away"`
	RedCardsHome      int     `json:"red_cards_home"`
	RedCardsAway      int     `json:"red_cards_away"`
}

// Event is one typed occurrence in the match, carrying score/stats
// snapshots taken at the moment it was generated.
type Event struct {
	EventID         int       `json:"event_id"`
	EventType       EventType `json:"event_type"`
	Minute          int       `json:"minute"`
	AddedTime       *int      `json:"added_time,omitempty"`
	Team            Side      `json:"team,omitempty"`
	Player          *Player   `json:"player,omitempty"`
	SecondaryPlayer *Player   `json:"secondary_player,omitempty"`
	Description     string    `json:"description"`
	Commentary      string    `json:"commentary"`
	TedReaction     string    `json:"ted_reaction,omitempty"`
	CrowdReaction   string    `json:"crowd_reaction,omitempty"`
	Score           Score     `json:"score"`
	Stats           Stats     `json:"stats"`
	IsFinal         bool      `json:"is_final"`
}

// Config holds the per-connection simulation parameters.
type Config struct {
	HomeTeam   string
	AwayTeam   string
	Speed      float64
	Excitement int
}

const (
	MinSpeed      = 0.1
	MaxSpeed      = 10.0
	MinExcitement = 1
	MaxExcitement = 10
)

// Validate checks the configuration ranges. Team names are free-form.
func (c Config) Validate() error {
	if c.HomeTeam == "" || c.AwayTeam == "" {
		return fmt.Errorf("team names must not be empty")
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("speed must be between %.1f and %.1f, got %g", MinSpeed, MaxSpeed, c.Speed)
	}
	if c.Excitement < MinExcitement || c.Excitement > MaxExcitement {
		return fmt.Errorf("excitement_level must be between %d and %d, got %d", MinExcitement, MaxExcitement, c.Excitement)
	}
	return nil
}

func (c Config) teamName(side Side) string {
	if side == SideHome {
		return c.HomeTeam
	}
	return c.AwayTeam
}
