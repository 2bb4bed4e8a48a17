package rest

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/afcrichmond/believe-api/internal/store"
)

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	items := h.store.Teams.All()
	if league := r.URL.Query().Get("league"); league != "" {
		items = filter(items, func(t store.Team) bool { return t.League == league })
	}

	writeJSON(w, http.StatusOK, paginate(items, page))
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	t, ok := h.store.Teams.Get(id)
	if !ok {
		notFound(w, "team", id)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	var t store.Team
	if !decodeBody(w, r, &t) {
		return
	}
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Stadium) == "" {
		badRequest(w, "name and stadium are required")
		return
	}
	if t.ID == "" {
		t.ID = "team_" + uuid.NewString()[:8]
	}
	if _, exists := h.store.Teams.Get(t.ID); exists {
		writeError(w, http.StatusConflict, "Conflict", "team "+t.ID+" already exists")
		return
	}
	h.store.Teams.Put(t.ID, t)
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) updateTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Teams.Get(id); !ok {
		notFound(w, "team", id)
		return
	}
	var t store.Team
	if !decodeBody(w, r, &t) {
		return
	}
	if strings.TrimSpace(t.Name) == "" {
		badRequest(w, "name is required")
		return
	}
	t.ID = id
	h.store.Teams.Put(id, t)
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) deleteTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.store.Teams.Delete(id) {
		notFound(w, "team", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
