package rest

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/afcrichmond/believe-api/internal/core/search"
	"github.com/afcrichmond/believe-api/internal/store"
)

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	items := h.store.Characters.All()

	// Optional filters.
	if role := r.URL.Query().Get("role"); role != "" {
		items = filter(items, func(c store.Character) bool { return c.Role == role })
	}
	if teamID := r.URL.Query().Get("team_id"); teamID != "" {
		items = filter(items, func(c store.Character) bool { return c.TeamID == teamID })
	}
	if q := r.URL.Query().Get("q"); q != "" {
		items = filter(items, func(c store.Character) bool {
			return search.Contains(c.Name, q) || search.Contains(c.Background, q)
		})
	}

	writeJSON(w, http.StatusOK, paginate(items, page))
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	c, ok := h.store.Characters.Get(id)
	if !ok {
		notFound(w, "character", id)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var c store.Character
	if !decodeBody(w, r, &c) {
		return
	}
	if strings.TrimSpace(c.Name) == "" {
		badRequest(w, "name is required")
		return
	}
	if c.ID == "" {
		c.ID = "char_" + uuid.NewString()[:8]
	}
	if _, exists := h.store.Characters.Get(c.ID); exists {
		writeError(w, http.StatusConflict, "Conflict", "character "+c.ID+" already exists")
		return
	}
	h.store.Characters.Put(c.ID, c)
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) updateCharacter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Characters.Get(id); !ok {
		notFound(w, "character", id)
		return
	}
	var c store.Character
	if !decodeBody(w, r, &c) {
		return
	}
	if strings.TrimSpace(c.Name) == "" {
		badRequest(w, "name is required")
		return
	}
	c.ID = id
	h.store.Characters.Put(id, c)
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.store.Characters.Delete(id) {
		notFound(w, "character", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
