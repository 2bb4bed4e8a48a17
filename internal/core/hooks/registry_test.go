package hooks

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGeneratesIDAndSecret(t *testing.T) {
	r := NewRegistry()

	reg, err := r.Register("https://example.com/hook", "test hook", []string{"match.completed"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(reg.ID, "wh_"))
	assert.Len(t, strings.TrimPrefix(reg.ID, "wh_"), 12)

	require.True(t, strings.HasPrefix(reg.Secret, "whsec_"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(reg.Secret, "whsec_"))
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	assert.False(t, reg.CreatedAt.IsZero())
}

func TestRegistryGetDelete(t *testing.T) {
	r := NewRegistry()
	reg, err := r.Register("https://example.com/hook", "", nil)
	require.NoError(t, err)

	got, ok := r.Get(reg.ID)
	require.True(t, ok)
	assert.Equal(t, reg.URL, got.URL)

	assert.True(t, r.Delete(reg.ID))
	assert.False(t, r.Delete(reg.ID), "double delete reports missing")

	_, ok = r.Get(reg.ID)
	assert.False(t, ok)
}

func TestRegistryAllSortedByID(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		_, err := r.Register("https://example.com/hook", "", nil)
		require.NoError(t, err)
	}

	all := r.All()
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}

func TestWantsEvent(t *testing.T) {
	assert.True(t, Registration{}.WantsEvent("match.completed"),
		"empty filter subscribes to everything")
	assert.True(t, Registration{Events: []string{"*"}}.WantsEvent("anything"))
	assert.True(t, Registration{Events: []string{"match.completed"}}.WantsEvent("match.completed"))
	assert.False(t, Registration{Events: []string{"webhook.test"}}.WantsEvent("match.completed"))
}

func TestSubscribersFilterByEvent(t *testing.T) {
	r := NewRegistry()

	all, err := r.Register("https://example.com/all", "", nil)
	require.NoError(t, err)
	matchOnly, err := r.Register("https://example.com/match", "", []string{"match.completed"})
	require.NoError(t, err)
	testOnly, err := r.Register("https://example.com/test", "", []string{"webhook.test"})
	require.NoError(t, err)

	subs := r.Subscribers("match.completed")
	ids := make([]string, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, s.ID)
	}
	assert.Contains(t, ids, all.ID)
	assert.Contains(t, ids, matchOnly.ID)
	assert.NotContains(t, ids, testOnly.ID)
}
