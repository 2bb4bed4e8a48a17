package rest

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/afcrichmond/believe-api/internal/telemetry"
)

// Date-based API versions, newest first.
var supportedVersions = []string{"2026-01-20"}

const defaultVersion = "2026-01-20"

var versionPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// withVersion negotiates the API version from the X-API-Version or
// API-Version request header and stamps the response with the version used
// plus the full supported list.
func withVersion(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requested := r.Header.Get("X-API-Version")
		if requested == "" {
			requested = r.Header.Get("API-Version")
		}

		version := defaultVersion
		if requested != "" {
			if !versionPattern.MatchString(requested) {
				writeError(w, http.StatusBadRequest, "invalid_version",
					"API version must use YYYY-MM-DD format, got "+requested)
				return
			}
			if !isSupported(requested) {
				writeError(w, http.StatusBadRequest, "unsupported_version",
					"version "+requested+" is not supported; see X-API-Supported-Versions")
				return
			}
			version = requested
		}

		w.Header().Set("X-API-Version", version)
		w.Header().Set("X-API-Supported-Versions", strings.Join(supportedVersions, ", "))
		next(w, r)
	}
}

func isSupported(version string) bool {
	for _, v := range supportedVersions {
		if v == version {
			return true
		}
	}
	return false
}

// withAuth enforces bearer API-key auth. WebSocket and health endpoints
// never pass through here.
func (h *Handler) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telemetry.Metrics.APIRequests.Inc()

		if h.apiKey == "" {
			writeError(w, http.StatusInternalServerError, "Server Configuration Error",
				"API key not configured on server. Even Ted needs his playbook set up right!")
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token != h.apiKey {
			telemetry.Metrics.AuthFailures.Inc()
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "Unauthorized",
				"Invalid API key. As Ted would say, 'Be curious, not judgmental' - but we do need the right key!")
			return
		}
		next(w, r)
	}
}

// protected is the standard middleware chain for REST resources.
func (h *Handler) protected(next http.HandlerFunc) http.HandlerFunc {
	return withVersion(h.withAuth(next))
}
