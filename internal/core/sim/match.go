package sim

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Match owns all mutable state for one simulated match. A Match belongs to
// exactly one connection and is never shared; only the catalog and rosters
// (both immutable) are shared between sessions. All mutation happens on the
// driver goroutine, so no locking is needed.
type Match struct {
	id    string
	cfg   Config
	pacer *Pacer

	score    Score
	stats    Stats
	eventSeq int

	rng *rand.Rand
}

// NewMatch creates a fresh match with a new id, 0-0 score and 50/50 possession.
func NewMatch(cfg Config) *Match {
	return &Match{
		id:    strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
		cfg:   cfg,
		pacer: NewPacer(cfg.Speed),
		stats: Stats{PossessionHome: 50, PossessionAway: 50},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *Match) ID() string     { return m.id }
func (m *Match) Config() Config { return m.cfg }
func (m *Match) Score() Score   { return m.score }
func (m *Match) Stats() Stats   { return m.stats }
func (m *Match) Pacer() *Pacer  { return m.pacer }

// RandomPlayer picks a uniformly random player from a side's roster.
func (m *Match) RandomPlayer(side Side) Player {
	roster := Roster(side)
	return roster[m.rng.Intn(len(roster))]
}

// driftPossession applies the clamped random walk: possession_home moves by
// a uniform value in [-5,5] and stays within [30,70]; away is the complement.
func (m *Match) driftPossession() {
	shift := m.rng.Float64()*10 - 5
	p := m.stats.PossessionHome + shift
	if p < 30 {
		p = 30
	}
	if p > 70 {
		p = 70
	}
	m.stats.PossessionHome = p
	m.stats.PossessionAway = 100 - p
}

// --- per-category stat mutators ---

func (m *Match) recordGoal(side Side) {
	if side == SideHome {
		m.score.Home++
		m.stats.ShotsHome++
		m.stats.ShotsOnTargetHome++
	} else {
		m.score.Away++
		m.stats.ShotsAway++
		m.stats.ShotsOnTargetAway++
	}
}

func (m *Match) recordShotOnTarget(side Side) {
	if side == SideHome {
		m.stats.ShotsHome++
		m.stats.ShotsOnTargetHome++
	} else {
		m.stats.ShotsAway++
		m.stats.ShotsOnTargetAway++
	}
}

func (m *Match) recordShotOffTarget(side Side) {
	if side == SideHome {
		m.stats.ShotsHome++
	} else {
		m.stats.ShotsAway++
	}
}

func (m *Match) recordCorner(side Side) {
	if side == SideHome {
		m.stats.CornersHome++
	} else {
		m.stats.CornersAway++
	}
}

func (m *Match) recordFoul(side Side) {
	if side == SideHome {
		m.stats.FoulsHome++
	} else {
		m.stats.FoulsAway++
	}
}

// Cards count as fouls too.
func (m *Match) recordYellowCard(side Side) {
	m.recordFoul(side)
	if side == SideHome {
		m.stats.YellowCardsHome++
	} else {
		m.stats.YellowCardsAway++
	}
}

func (m *Match) recordRedCard(side Side) {
	m.recordFoul(side)
	if side == SideHome {
		m.stats.RedCardsHome++
	} else {
		m.stats.RedCardsAway++
	}
}

// A missed penalty is a shot that was not on target.
func (m *Match) recordPenaltyMissed(side Side) {
	m.recordShotOffTarget(side)
}

func (m *Match) pick(list []string) string {
	return list[m.rng.Intn(len(list))]
}

// newEvent assigns the next event id, drifts possession, and fills in the
// catalog text plus score/stats snapshots. The id counter increments exactly
// once per emitted event so the stream has no gaps.
func (m *Match) newEvent(t EventType, minute int, mut func(*Event)) Event {
	m.eventSeq++
	m.driftPossession()

	ev := Event{
		EventID:    m.eventSeq,
		EventType:  t,
		Minute:     minute,
		Commentary: m.commentaryFor(t),
	}

	if reactions, ok := tedReactions[t]; ok && m.rng.Float64() > 0.3 {
		ev.TedReaction = m.pick(reactions)
	}
	if reactions, ok := crowdReactions[t]; ok {
		ev.CrowdReaction = m.pick(reactions)
	}

	if mut != nil {
		mut(&ev)
	}
	if ev.Description == "" {
		ev.Description = m.commentaryFor(t)
	}

	ev.Score = m.score
	ev.Stats = m.stats
	return ev
}

func (m *Match) commentaryFor(t EventType) string {
	lines, ok := commentary[t]
	if !ok {
		return fallbackCommentary
	}
	return m.pick(lines)
}
