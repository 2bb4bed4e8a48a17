package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/afcrichmond/believe-api/internal/store"
)

var matchTypes = map[string]bool{
	"league": true, "cup": true, "friendly": true, "playoff": true, "final": true,
}

func (h *Handler) listMatches(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	items := h.store.Matches.All()
	if teamID := r.URL.Query().Get("team_id"); teamID != "" {
		items = filter(items, func(m store.Match) bool {
			return m.HomeTeamID == teamID || m.AwayTeamID == teamID
		})
	}
	if mt := r.URL.Query().Get("match_type"); mt != "" {
		items = filter(items, func(m store.Match) bool { return m.MatchType == mt })
	}

	writeJSON(w, http.StatusOK, paginate(items, page))
}

func (h *Handler) getMatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	m, ok := h.store.Matches.Get(id)
	if !ok {
		notFound(w, "match", id)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) createMatch(w http.ResponseWriter, r *http.Request) {
	var m store.Match
	if !decodeBody(w, r, &m) {
		return
	}
	if err := validateMatch(m); err != "" {
		badRequest(w, err)
		return
	}
	if m.ID == "" {
		m.ID = "match_" + uuid.NewString()[:8]
	}
	if _, exists := h.store.Matches.Get(m.ID); exists {
		writeError(w, http.StatusConflict, "Conflict", "match "+m.ID+" already exists")
		return
	}
	h.store.Matches.Put(m.ID, m)
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) updateMatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Matches.Get(id); !ok {
		notFound(w, "match", id)
		return
	}
	var m store.Match
	if !decodeBody(w, r, &m) {
		return
	}
	if err := validateMatch(m); err != "" {
		badRequest(w, err)
		return
	}
	m.ID = id
	h.store.Matches.Put(id, m)
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) deleteMatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.store.Matches.Delete(id) {
		notFound(w, "match", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateMatch(m store.Match) string {
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return "home_team_id and away_team_id are required"
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return "scores must be non-negative"
	}
	if m.MatchType != "" && !matchTypes[m.MatchType] {
		return "match_type must be one of league, cup, friendly, playoff, final"
	}
	return ""
}
