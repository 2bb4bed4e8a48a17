package sim

import "fmt"

// weightedType is one row of the event-type distribution.
type weightedType struct {
	t      EventType
	weight float64
}

// eventWeights returns the discrete distribution for a given excitement
// level. The goal weight is the one excitement-dependent entry:
// 2 + excitement/3 (integer division).
func eventWeights(excitement int) []weightedType {
	return []weightedType{
		{EventPossessionChange, 30},
		{EventFoul, 15},
		{EventShotOffTarget, 12},
		{EventShotOnTarget, 10},
		{EventCorner, 8},
		{EventOffside, 6},
		{EventSave, 5},
		{EventFreeKick, 5},
		{EventYellowCard, 3},
		{EventGoal, float64(2 + excitement/3)},
		{EventInjury, 2},
		{EventPenaltyAwarded, 1},
		{EventRedCard, 0.5},
	}
}

// drawEventType picks an event type with a single uniform draw against the
// cumulative weights.
func (m *Match) drawEventType() EventType {
	weights := eventWeights(m.cfg.Excitement)

	var total float64
	for _, w := range weights {
		total += w.weight
	}

	x := m.rng.Float64() * total
	var cum float64
	for _, w := range weights {
		cum += w.weight
		if x < cum {
			return w.t
		}
	}
	return weights[len(weights)-1].t
}

// MaybeEvent decides whether an event fires this minute and, if so,
// generates it. The per-minute probability is excitement/15.
func (m *Match) MaybeEvent(minute int) (Event, bool) {
	if m.rng.Float64() > float64(m.cfg.Excitement)/15 {
		return Event{}, false
	}

	side := SideHome
	if m.rng.Intn(2) == 1 {
		side = SideAway
	}
	player := m.RandomPlayer(side)

	switch t := m.drawEventType(); t {
	case EventGoal:
		return m.handleGoal(minute, side, player), true
	case EventYellowCard:
		return m.handleYellowCard(minute, side, player), true
	case EventRedCard:
		return m.handleRedCard(minute, side, player), true
	case EventPenaltyAwarded:
		// A drawn penalty resolves immediately to scored or missed;
		// the standalone penalty_awarded event is never emitted.
		return m.handlePenalty(minute, side), true
	case EventShotOnTarget, EventSave:
		return m.handleShotOnTarget(minute, side, player), true
	case EventShotOffTarget:
		return m.handleShotOffTarget(minute, side, player), true
	case EventCorner:
		return m.handleCorner(minute, side), true
	case EventFoul:
		return m.handleFoul(minute, side, player), true
	default:
		return m.newEvent(t, minute, func(ev *Event) {
			ev.Team = side
			ev.Player = &player
		}), true
	}
}

func (m *Match) handleGoal(minute int, side Side, scorer Player) Event {
	m.recordGoal(side)

	// ~70% of goals come with an assist from a different player.
	var assister *Player
	if m.rng.Float64() > 0.3 {
		a := m.RandomPlayer(side)
		for a.Name == scorer.Name {
			a = m.RandomPlayer(side)
		}
		assister = &a
	}

	desc := fmt.Sprintf("GOAL! %s scores for %s!", scorer.Name, m.cfg.teamName(side))
	if assister != nil {
		desc += fmt.Sprintf(" Assisted by %s.", assister.Name)
	}

	return m.newEvent(EventGoal, minute, func(ev *Event) {
		ev.Team = side
		ev.Player = &scorer
		ev.SecondaryPlayer = assister
		ev.Description = desc
	})
}

func (m *Match) handleYellowCard(minute int, side Side, player Player) Event {
	m.recordYellowCard(side)
	return m.newEvent(EventYellowCard, minute, func(ev *Event) {
		ev.Team = side
		ev.Player = &player
		ev.Description = fmt.Sprintf("Yellow card shown to %s for a reckless challenge.", player.Name)
	})
}

func (m *Match) handleRedCard(minute int, side Side, player Player) Event {
	m.recordRedCard(side)
	return m.newEvent(EventRedCard, minute, func(ev *Event) {
		ev.Team = side
		ev.Player = &player
		ev.Description = fmt.Sprintf("RED CARD! %s is sent off!", player.Name)
	})
}

// handlePenalty resolves a penalty on the spot: 75% scored, 25% missed.
func (m *Match) handlePenalty(minute int, side Side) Event {
	player := m.RandomPlayer(side)

	if m.rng.Float64() > 0.25 {
		m.recordGoal(side)
		return m.newEvent(EventPenaltyScored, minute, func(ev *Event) {
			ev.Team = side
			ev.Player = &player
			ev.Description = fmt.Sprintf("PENALTY SCORED! %s sends the keeper the wrong way!", player.Name)
		})
	}

	m.recordPenaltyMissed(side)
	return m.newEvent(EventPenaltyMissed, minute, func(ev *Event) {
		ev.Team = side
		ev.Player = &player
		ev.Description = fmt.Sprintf("PENALTY MISSED! %s fails to convert!", player.Name)
	})
}

// Shots on target are realized as saves: the keeper keeps them out.
func (m *Match) handleShotOnTarget(minute int, side Side, player Player) Event {
	m.recordShotOnTarget(side)
	return m.newEvent(EventSave, minute, func(ev *Event) {
		ev.Team = side
		ev.Player = &player
		ev.Description = fmt.Sprintf("Great save! %s's shot is kept out by the goalkeeper!", player.Name)
	})
}

func (m *Match) handleShotOffTarget(minute int, side Side, player Player) Event {
	m.recordShotOffTarget(side)
	return m.newEvent(EventShotOffTarget, minute, func(ev *Event) {
		ev.Team = side
		ev.Player = &player
		ev.Description = fmt.Sprintf("%s shoots but it goes wide of the target.", player.Name)
	})
}

func (m *Match) handleCorner(minute int, side Side) Event {
	m.recordCorner(side)
	return m.newEvent(EventCorner, minute, func(ev *Event) {
		ev.Team = side
		ev.Description = fmt.Sprintf("Corner kick for %s.", m.cfg.teamName(side))
	})
}

func (m *Match) handleFoul(minute int, side Side, player Player) Event {
	m.recordFoul(side)
	return m.newEvent(EventFoul, minute, func(ev *Event) {
		ev.Team = side
		ev.Player = &player
		ev.Description = fmt.Sprintf("Foul by %s. Free kick awarded.", player.Name)
	})
}
