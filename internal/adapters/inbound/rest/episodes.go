package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/afcrichmond/believe-api/internal/store"
)

func (h *Handler) listEpisodes(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	items := h.store.Episodes.All()
	if v := r.URL.Query().Get("season"); v != "" {
		season, err := strconv.Atoi(v)
		if err != nil {
			badRequest(w, "season must be an integer, got "+v)
			return
		}
		items = filter(items, func(e store.Episode) bool { return e.Season == season })
	}

	writeJSON(w, http.StatusOK, paginate(items, page))
}

func (h *Handler) getEpisode(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	e, ok := h.store.Episodes.Get(id)
	if !ok {
		notFound(w, "episode", id)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) createEpisode(w http.ResponseWriter, r *http.Request) {
	var e store.Episode
	if !decodeBody(w, r, &e) {
		return
	}
	if strings.TrimSpace(e.Title) == "" || e.Season < 1 || e.EpisodeNumber < 1 {
		badRequest(w, "title, season and episode_number are required")
		return
	}
	if e.ID == "" {
		e.ID = "ep_" + uuid.NewString()[:8]
	}
	if _, exists := h.store.Episodes.Get(e.ID); exists {
		writeError(w, http.StatusConflict, "Conflict", "episode "+e.ID+" already exists")
		return
	}
	h.store.Episodes.Put(e.ID, e)
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) updateEpisode(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Episodes.Get(id); !ok {
		notFound(w, "episode", id)
		return
	}
	var e store.Episode
	if !decodeBody(w, r, &e) {
		return
	}
	if strings.TrimSpace(e.Title) == "" {
		badRequest(w, "title is required")
		return
	}
	e.ID = id
	h.store.Episodes.Put(id, e)
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) deleteEpisode(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.store.Episodes.Delete(id) {
		notFound(w, "episode", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
