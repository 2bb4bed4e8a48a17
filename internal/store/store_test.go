package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadsSeedData(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	assert.Equal(t, 7, s.Characters.Count())
	assert.Equal(t, 4, s.Teams.Count())
	assert.Equal(t, 3, s.Matches.Count())
	assert.Equal(t, 4, s.Episodes.Count())
	assert.Equal(t, 8, s.Quotes.Count())

	ted, ok := s.Characters.Get("char_ted")
	require.True(t, ok)
	assert.Equal(t, "Ted Lasso", ted.Name)
	assert.Equal(t, "coach", ted.Role)
	assert.Equal(t, "team_richmond", ted.TeamID)
	assert.Contains(t, ted.SignatureQuotes, "I believe in believe.")

	richmond, ok := s.Teams.Get("team_richmond")
	require.True(t, ok)
	assert.Equal(t, "Nelson Road", richmond.Stadium)
	assert.True(t, richmond.IsActive)
	assert.Equal(t, "120000000.00", richmond.AnnualBudgetGBP)
}

func TestCollectionAllIsSortedByID(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	chars := s.Characters.All()
	require.Len(t, chars, 7)
	for i := 1; i < len(chars); i++ {
		assert.Less(t, chars[i-1].ID, chars[i].ID)
	}
}

func TestCollectionPutGetDelete(t *testing.T) {
	c := newCollection[Quote]()

	_, ok := c.Get("quote_x")
	assert.False(t, ok)

	c.Put("quote_x", Quote{ID: "quote_x", Text: "Barbecue sauce.", CharacterID: "char_ted"})
	got, ok := c.Get("quote_x")
	require.True(t, ok)
	assert.Equal(t, "Barbecue sauce.", got.Text)

	// Put overwrites.
	c.Put("quote_x", Quote{ID: "quote_x", Text: "Barbecue sauce!", CharacterID: "char_ted"})
	got, _ = c.Get("quote_x")
	assert.Equal(t, "Barbecue sauce!", got.Text)

	assert.True(t, c.Delete("quote_x"))
	assert.False(t, c.Delete("quote_x"))
	assert.Zero(t, c.Count())
}

func TestSeedQuotesReferenceSeedCharacters(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	for _, q := range s.Quotes.All() {
		_, ok := s.Characters.Get(q.CharacterID)
		assert.True(t, ok, "quote %s references missing character %s", q.ID, q.CharacterID)
	}
}
