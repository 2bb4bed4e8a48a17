package rest

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/afcrichmond/believe-api/internal/core/search"
	"github.com/afcrichmond/believe-api/internal/store"
)

func (h *Handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	items := h.store.Quotes.All()
	if charID := r.URL.Query().Get("character_id"); charID != "" {
		items = filter(items, func(q store.Quote) bool { return q.CharacterID == charID })
	}
	if theme := r.URL.Query().Get("theme"); theme != "" {
		items = filter(items, func(q store.Quote) bool { return q.Theme == theme })
	}

	writeJSON(w, http.StatusOK, paginate(items, page))
}

// searchQuotes performs diacritic- and case-insensitive substring search
// across quote text and context.
func (h *Handler) searchQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		badRequest(w, "q parameter is required")
		return
	}
	page, err := parsePageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	items := filter(h.store.Quotes.All(), func(quote store.Quote) bool {
		return search.Contains(quote.Text, q) || search.Contains(quote.Context, q)
	})
	writeJSON(w, http.StatusOK, paginate(items, page))
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	q, ok := h.store.Quotes.Get(id)
	if !ok {
		notFound(w, "quote", id)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	var q store.Quote
	if !decodeBody(w, r, &q) {
		return
	}
	if strings.TrimSpace(q.Text) == "" || q.CharacterID == "" {
		badRequest(w, "text and character_id are required")
		return
	}
	if _, ok := h.store.Characters.Get(q.CharacterID); !ok {
		badRequest(w, "character "+q.CharacterID+" does not exist")
		return
	}
	if q.ID == "" {
		q.ID = "quote_" + uuid.NewString()[:8]
	}
	if _, exists := h.store.Quotes.Get(q.ID); exists {
		writeError(w, http.StatusConflict, "Conflict", "quote "+q.ID+" already exists")
		return
	}
	h.store.Quotes.Put(q.ID, q)
	writeJSON(w, http.StatusCreated, q)
}

func (h *Handler) updateQuote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Quotes.Get(id); !ok {
		notFound(w, "quote", id)
		return
	}
	var q store.Quote
	if !decodeBody(w, r, &q) {
		return
	}
	if strings.TrimSpace(q.Text) == "" {
		badRequest(w, "text is required")
		return
	}
	q.ID = id
	h.store.Quotes.Put(id, q)
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) deleteQuote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.store.Quotes.Delete(id) {
		notFound(w, "quote", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
