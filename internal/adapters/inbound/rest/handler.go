package rest

import (
	"net/http"
	"time"

	"github.com/afcrichmond/believe-api/internal/core/hooks"
	"github.com/afcrichmond/believe-api/internal/store"
)

// Handler serves the REST resource API over the in-memory store.
type Handler struct {
	store      *store.Store
	apiKey     string
	started    time.Time
	hooks      *hooks.Registry
	tester     WebhookTester
	deliveries DeliveryLog
}

func NewHandler(s *store.Store, apiKey string, registry *hooks.Registry, tester WebhookTester, deliveries DeliveryLog) *Handler {
	return &Handler{
		store:      s,
		apiKey:     apiKey,
		started:    time.Now(),
		hooks:      registry,
		tester:     tester,
		deliveries: deliveries,
	}
}

// RegisterRoutes attaches every REST endpoint to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)

	mux.HandleFunc("GET /characters", h.protected(h.listCharacters))
	mux.HandleFunc("POST /characters", h.protected(h.createCharacter))
	mux.HandleFunc("GET /characters/{id}", h.protected(h.getCharacter))
	mux.HandleFunc("PUT /characters/{id}", h.protected(h.updateCharacter))
	mux.HandleFunc("DELETE /characters/{id}", h.protected(h.deleteCharacter))

	mux.HandleFunc("GET /teams", h.protected(h.listTeams))
	mux.HandleFunc("POST /teams", h.protected(h.createTeam))
	mux.HandleFunc("GET /teams/{id}", h.protected(h.getTeam))
	mux.HandleFunc("PUT /teams/{id}", h.protected(h.updateTeam))
	mux.HandleFunc("DELETE /teams/{id}", h.protected(h.deleteTeam))

	mux.HandleFunc("GET /matches", h.protected(h.listMatches))
	mux.HandleFunc("POST /matches", h.protected(h.createMatch))
	mux.HandleFunc("GET /matches/{id}", h.protected(h.getMatch))
	mux.HandleFunc("PUT /matches/{id}", h.protected(h.updateMatch))
	mux.HandleFunc("DELETE /matches/{id}", h.protected(h.deleteMatch))

	mux.HandleFunc("GET /episodes", h.protected(h.listEpisodes))
	mux.HandleFunc("POST /episodes", h.protected(h.createEpisode))
	mux.HandleFunc("GET /episodes/{id}", h.protected(h.getEpisode))
	mux.HandleFunc("PUT /episodes/{id}", h.protected(h.updateEpisode))
	mux.HandleFunc("DELETE /episodes/{id}", h.protected(h.deleteEpisode))

	mux.HandleFunc("GET /quotes", h.protected(h.listQuotes))
	mux.HandleFunc("POST /quotes", h.protected(h.createQuote))
	mux.HandleFunc("GET /quotes/search", h.protected(h.searchQuotes))
	mux.HandleFunc("GET /quotes/{id}", h.protected(h.getQuote))
	mux.HandleFunc("PUT /quotes/{id}", h.protected(h.updateQuote))
	mux.HandleFunc("DELETE /quotes/{id}", h.protected(h.deleteQuote))

	mux.HandleFunc("GET /webhooks", h.protected(h.listWebhooks))
	mux.HandleFunc("POST /webhooks", h.protected(h.registerWebhook))
	mux.HandleFunc("GET /webhooks/{id}", h.protected(h.getWebhook))
	mux.HandleFunc("DELETE /webhooks/{id}", h.protected(h.deleteWebhook))
	mux.HandleFunc("POST /webhooks/{id}/test", h.protected(h.testWebhook))
	mux.HandleFunc("GET /webhooks/{id}/deliveries", h.protected(h.listDeliveries))
}

type healthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Message string `json:"message"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.started).Round(time.Second).String(),
		Message: "Believe!",
	})
}
