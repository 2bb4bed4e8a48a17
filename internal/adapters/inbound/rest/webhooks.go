package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/afcrichmond/believe-api/internal/core/hooks"
)

// WebhookTester fires a test delivery at a single registration.
type WebhookTester interface {
	Test(ctx context.Context, reg hooks.Registration) hooks.DeliveryResult
}

// DeliveryLog exposes recent delivery attempts for a registration.
type DeliveryLog interface {
	Recent(webhookID string, limit int) ([]hooks.DeliveryResult, error)
}

var knownEventTypes = map[string]bool{
	"match.completed": true,
	"webhook.test":    true,
	"*":               true,
}

type registerWebhookRequest struct {
	URL         string   `json:"url"`
	Events      []string `json:"events"`
	Description string   `json:"description"`
}

// registerWebhookResponse is the only place the signing secret ever
// appears. Subsequent reads return the registration without it.
type registerWebhookResponse struct {
	hooks.Registration
	Secret string `json:"secret"`
}

func (h *Handler) registerWebhook(w http.ResponseWriter, r *http.Request) {
	var req registerWebhookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := validateWebhookURL(req.URL); msg != "" {
		badRequest(w, msg)
		return
	}
	for _, e := range req.Events {
		if !knownEventTypes[e] {
			badRequest(w, "unknown event type "+e)
			return
		}
	}

	reg, err := h.hooks.Register(req.URL, req.Description, req.Events)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, registerWebhookResponse{Registration: reg, Secret: reg.Secret})
}

func (h *Handler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, paginate(h.hooks.All(), page))
}

func (h *Handler) getWebhook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	reg, ok := h.hooks.Get(id)
	if !ok {
		notFound(w, "webhook", id)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *Handler) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.hooks.Delete(id) {
		notFound(w, "webhook", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// testWebhook fires a webhook.test event at the registration right away
// and reports how the endpoint answered.
func (h *Handler) testWebhook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	reg, ok := h.hooks.Get(id)
	if !ok {
		notFound(w, "webhook", id)
		return
	}
	res := h.tester.Test(r.Context(), reg)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) listDeliveries(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.hooks.Get(id); !ok {
		notFound(w, "webhook", id)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			badRequest(w, "limit must be an integer between 1 and 500")
			return
		}
		limit = n
	}

	attempts, err := h.deliveries.Recent(id, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": attempts, "total": len(attempts)})
}

func validateWebhookURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "url is required"
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "url must be an absolute http or https URL"
	}
	return ""
}
