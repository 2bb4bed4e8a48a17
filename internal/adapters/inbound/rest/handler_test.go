package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afcrichmond/believe-api/internal/core/hooks"
	"github.com/afcrichmond/believe-api/internal/store"
)

const testAPIKey = "test-key"

type stubTester struct {
	result hooks.DeliveryResult
}

func (s *stubTester) Test(_ context.Context, reg hooks.Registration) hooks.DeliveryResult {
	res := s.result
	res.WebhookID = reg.ID
	return res
}

type stubDeliveryLog struct {
	attempts []hooks.DeliveryResult
}

func (s *stubDeliveryLog) Recent(webhookID string, limit int) ([]hooks.DeliveryResult, error) {
	out := []hooks.DeliveryResult{}
	for _, a := range s.attempts {
		if a.WebhookID == webhookID && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

type testEnv struct {
	srv      *httptest.Server
	registry *hooks.Registry
	log      *stubDeliveryLog
}

func newTestEnv(t *testing.T, apiKey string) *testEnv {
	t.Helper()

	s, err := store.New()
	require.NoError(t, err)

	env := &testEnv{
		registry: hooks.NewRegistry(),
		log:      &stubDeliveryLog{},
	}
	tester := &stubTester{result: hooks.DeliveryResult{
		EventType:  "webhook.test",
		StatusCode: http.StatusOK,
		Success:    true,
	}}

	mux := http.NewServeMux()
	NewHandler(s, apiKey, env.registry, tester, env.log).RegisterRoutes(mux)
	env.srv = httptest.NewServer(mux)
	t.Cleanup(env.srv.Close)
	return env
}

// do issues an authenticated request and decodes the JSON response into out
// (when out is non-nil).
func (e *testEnv) do(t *testing.T, method, path string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthNeedsNoAuth(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	resp, err := http.Get(env.srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "Believe!", health.Message)
}

func TestAuthRejectsMissingAndWrongKeys(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	for _, header := range []string{"", "Bearer wrong-key", "Basic dXNlcg=="} {
		req, err := http.NewRequest(http.MethodGet, env.srv.URL+"/characters", nil)
		require.NoError(t, err)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	}
}

func TestAuthFailsClosedWithoutServerKey(t *testing.T) {
	env := newTestEnv(t, "")

	resp := env.do(t, http.MethodGet, "/characters", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestVersionNegotiation(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	get := func(version string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, env.srv.URL+"/characters", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+testAPIKey)
		if version != "" {
			req.Header.Set("X-API-Version", version)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	resp := get("")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, defaultVersion, resp.Header.Get("X-API-Version"))
	assert.Contains(t, resp.Header.Get("X-API-Supported-Versions"), defaultVersion)

	resp = get(defaultVersion)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get("not-a-date")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get("1999-01-01")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCharactersPagination(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	var page paginatedResponse[store.Character]
	resp := env.do(t, http.MethodGet, "/characters", nil, &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, page.Total)
	assert.Len(t, page.Data, 7)
	assert.Equal(t, defaultLimit, page.Limit)

	resp = env.do(t, http.MethodGet, "/characters?skip=5&limit=5", nil, &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, page.Total)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 5, page.Skip)

	resp = env.do(t, http.MethodGet, "/characters?limit=0", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/characters?limit=101", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/characters?skip=-1", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCharactersFilters(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	var page paginatedResponse[store.Character]
	env.do(t, http.MethodGet, "/characters?role=player", nil, &page)
	assert.Equal(t, 3, page.Total)
	for _, c := range page.Data {
		assert.Equal(t, "player", c.Role)
	}

	// Diacritic-insensitive name search.
	env.do(t, http.MethodGet, "/characters?q=rojas", nil, &page)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Dani Rojas", page.Data[0].Name)
}

func TestCharacterCRUD(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	// Validation failure first.
	resp := env.do(t, http.MethodPost, "/characters", store.Character{Role: "coach"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var created store.Character
	resp = env.do(t, http.MethodPost, "/characters", store.Character{
		Name: "Coach Beard",
		Role: "coach",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, strings.HasPrefix(created.ID, "char_"))

	var got store.Character
	resp = env.do(t, http.MethodGet, "/characters/"+created.ID, nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Coach Beard", got.Name)

	created.Background = "Ted's enigmatic right hand."
	resp = env.do(t, http.MethodPut, "/characters/"+created.ID, created, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ted's enigmatic right hand.", got.Background)

	resp = env.do(t, http.MethodDelete, "/characters/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/characters/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateMatchValidatesType(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	resp := env.do(t, http.MethodPost, "/matches", store.Match{
		HomeTeamID: "team_richmond",
		AwayTeamID: "team_everton",
		MatchType:  "exhibition",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var created store.Match
	resp = env.do(t, http.MethodPost, "/matches", store.Match{
		HomeTeamID: "team_richmond",
		AwayTeamID: "team_everton",
		MatchType:  "friendly",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, strings.HasPrefix(created.ID, "match_"))
}

func TestCreateDuplicateIDConflicts(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	resp := env.do(t, http.MethodPost, "/teams", store.Team{
		ID: "team_richmond", Name: "AFC Richmond", Stadium: "Nelson Road",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestQuoteSearch(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	resp := env.do(t, http.MethodGet, "/quotes/search", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "q is required")

	var page paginatedResponse[store.Quote]
	env.do(t, http.MethodGet, "/quotes/search?q=BELIEVE", nil, &page)
	require.GreaterOrEqual(t, page.Total, 1)
	found := false
	for _, q := range page.Data {
		if q.ID == "quote_believe" {
			found = true
		}
	}
	assert.True(t, found)

	// Matches against context as well as text.
	env.do(t, http.MethodGet, "/quotes/search?q=darts", nil, &page)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "quote_curious", page.Data[0].ID)
}

func TestCreateQuoteRequiresExistingCharacter(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	resp := env.do(t, http.MethodPost, "/quotes", store.Quote{
		Text:        "Barbecue sauce.",
		CharacterID: "char_nobody",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebhookLifecycle(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	resp := env.do(t, http.MethodPost, "/webhooks", registerWebhookRequest{URL: "ftp://nope"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/webhooks", registerWebhookRequest{
		URL: "https://example.com/hook", Events: []string{"goal.scored"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unknown event type")

	var created struct {
		ID     string `json:"id"`
		Secret string `json:"secret"`
	}
	resp = env.do(t, http.MethodPost, "/webhooks", registerWebhookRequest{
		URL:         "https://example.com/hook",
		Events:      []string{"match.completed"},
		Description: "score feed",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, strings.HasPrefix(created.ID, "wh_"))
	assert.True(t, strings.HasPrefix(created.Secret, "whsec_"))

	// The secret never appears again after creation.
	var raw map[string]any
	resp = env.do(t, http.MethodGet, "/webhooks/"+created.ID, nil, &raw)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, raw, "secret")

	var page paginatedResponse[hooks.Registration]
	env.do(t, http.MethodGet, "/webhooks", nil, &page)
	assert.Equal(t, 1, page.Total)

	var testRes hooks.DeliveryResult
	resp = env.do(t, http.MethodPost, "/webhooks/"+created.ID+"/test", nil, &testRes)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, testRes.WebhookID)
	assert.True(t, testRes.Success)

	env.log.attempts = []hooks.DeliveryResult{{WebhookID: created.ID, EventType: "webhook.test", Success: true}}
	var deliveries struct {
		Data  []hooks.DeliveryResult `json:"data"`
		Total int                    `json:"total"`
	}
	resp = env.do(t, http.MethodGet, "/webhooks/"+created.ID+"/deliveries", nil, &deliveries)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, deliveries.Total)

	resp = env.do(t, http.MethodDelete, "/webhooks/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/webhooks/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownFieldsRejected(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	req, err := http.NewRequest(http.MethodPost, env.srv.URL+"/teams",
		strings.NewReader(`{"name":"X","stadium":"Y","bogus_field":1}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
