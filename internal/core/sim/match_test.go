package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		HomeTeam:   "AFC Richmond",
		AwayTeam:   "West Ham United",
		Speed:      1.0,
		Excitement: 5,
	}
}

func seededMatch(t *testing.T, seed int64) *Match {
	t.Helper()
	m := NewMatch(testConfig())
	m.rng = rand.New(rand.NewSource(seed))
	return m
}

func TestNewMatchDefaults(t *testing.T) {
	m := NewMatch(testConfig())

	assert.Len(t, m.ID(), 8)
	assert.Equal(t, Score{}, m.Score())
	assert.Equal(t, 50.0, m.Stats().PossessionHome)
	assert.Equal(t, 50.0, m.Stats().PossessionAway)
}

func TestMatchIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewMatch(testConfig()).ID()
		require.False(t, seen[id], "duplicate match id %s", id)
		seen[id] = true
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"min speed", func(c *Config) { c.Speed = MinSpeed }, false},
		{"max speed", func(c *Config) { c.Speed = MaxSpeed }, false},
		{"speed too low", func(c *Config) { c.Speed = 0.05 }, true},
		{"speed too high", func(c *Config) { c.Speed = 11 }, true},
		{"excitement too low", func(c *Config) { c.Excitement = 0 }, true},
		{"excitement too high", func(c *Config) { c.Excitement = 11 }, true},
		{"empty home team", func(c *Config) { c.HomeTeam = "" }, true},
		{"empty away team", func(c *Config) { c.AwayTeam = "" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordGoalUpdatesScoreAndShots(t *testing.T) {
	m := seededMatch(t, 1)

	m.recordGoal(SideHome)
	m.recordGoal(SideAway)
	m.recordGoal(SideHome)

	assert.Equal(t, Score{Home: 2, Away: 1}, m.Score())
	assert.Equal(t, 2, m.Stats().ShotsHome)
	assert.Equal(t, 2, m.Stats().ShotsOnTargetHome)
	assert.Equal(t, 1, m.Stats().ShotsAway)
	assert.Equal(t, 1, m.Stats().ShotsOnTargetAway)
}

func TestCardsCountAsFouls(t *testing.T) {
	m := seededMatch(t, 1)

	m.recordYellowCard(SideHome)
	m.recordRedCard(SideHome)
	m.recordFoul(SideHome)

	stats := m.Stats()
	assert.Equal(t, 3, stats.FoulsHome)
	assert.Equal(t, 1, stats.YellowCardsHome)
	assert.Equal(t, 1, stats.RedCardsHome)
	assert.Zero(t, stats.FoulsAway)
}

func TestMissedPenaltyIsShotOffTarget(t *testing.T) {
	m := seededMatch(t, 1)

	m.recordPenaltyMissed(SideAway)

	stats := m.Stats()
	assert.Equal(t, 1, stats.ShotsAway)
	assert.Zero(t, stats.ShotsOnTargetAway)
	assert.Equal(t, Score{}, m.Score())
}

func TestDriftPossessionStaysInBounds(t *testing.T) {
	m := seededMatch(t, 42)

	for i := 0; i < 2000; i++ {
		m.driftPossession()
		home := m.Stats().PossessionHome
		away := m.Stats().PossessionAway
		require.GreaterOrEqual(t, home, 30.0)
		require.LessOrEqual(t, home, 70.0)
		require.InDelta(t, 100.0, home+away, 1e-9)
	}
}

func TestNewEventSequencesWithoutGaps(t *testing.T) {
	m := seededMatch(t, 7)

	for want := 1; want <= 50; want++ {
		ev := m.newEvent(EventFoul, want, nil)
		require.Equal(t, want, ev.EventID)
	}
}

func TestNewEventSnapshotsState(t *testing.T) {
	m := seededMatch(t, 7)

	m.recordGoal(SideHome)
	ev := m.newEvent(EventGoal, 10, func(ev *Event) {
		ev.Team = SideHome
	})

	assert.Equal(t, Score{Home: 1}, ev.Score)
	assert.Equal(t, 1, ev.Stats.ShotsHome)
	assert.Equal(t, SideHome, ev.Team)
	assert.Contains(t, commentary[EventGoal], ev.Commentary)
	assert.Contains(t, commentary[EventGoal], ev.Description)
}

func TestNewEventCrowdReactionAlwaysSetForGoals(t *testing.T) {
	m := seededMatch(t, 3)

	for i := 0; i < 20; i++ {
		ev := m.newEvent(EventGoal, i+1, nil)
		assert.NotEmpty(t, ev.CrowdReaction)
	}
}

func TestRandomPlayerComesFromRoster(t *testing.T) {
	m := seededMatch(t, 5)

	names := make(map[string]bool)
	for _, p := range Roster(SideHome) {
		names[p.Name] = true
	}
	for i := 0; i < 50; i++ {
		p := m.RandomPlayer(SideHome)
		require.True(t, names[p.Name], "player %s not in home roster", p.Name)
		require.NotZero(t, p.Number)
		require.NotEmpty(t, p.Position)
	}
}
