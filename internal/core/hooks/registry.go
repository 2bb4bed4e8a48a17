// Package hooks holds webhook registrations and the Standard Webhooks
// style signature scheme used when delivering events to them.
package hooks

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Registration is a subscriber endpoint. The secret is generated server-side
// at registration time and never returned again after the create response.
type Registration struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Events      []string  `json:"events"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Secret      string    `json:"-"`
}

// WantsEvent reports whether the registration subscribes to the event type.
// An empty event list subscribes to everything.
func (r Registration) WantsEvent(eventType string) bool {
	if len(r.Events) == 0 {
		return true
	}
	for _, e := range r.Events {
		if e == eventType || e == "*" {
			return true
		}
	}
	return false
}

// Registry is an in-memory set of webhook registrations.
type Registry struct {
	mu    sync.RWMutex
	hooks map[string]Registration
}

func NewRegistry() *Registry {
	return &Registry{hooks: make(map[string]Registration)}
}

// Register creates a new registration with a generated id and secret.
func (r *Registry) Register(url, description string, events []string) (Registration, error) {
	id, err := randomID("wh_", 12)
	if err != nil {
		return Registration{}, fmt.Errorf("generate webhook id: %w", err)
	}
	secret, err := randomSecret()
	if err != nil {
		return Registration{}, fmt.Errorf("generate webhook secret: %w", err)
	}

	reg := Registration{
		ID:          id,
		URL:         url,
		Events:      events,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		Secret:      secret,
	}

	r.mu.Lock()
	r.hooks[reg.ID] = reg
	r.mu.Unlock()
	return reg, nil
}

func (r *Registry) Get(id string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.hooks[id]
	return reg, ok
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hooks[id]; !ok {
		return false
	}
	delete(r.hooks, id)
	return true
}

// All returns registrations sorted by id.
func (r *Registry) All() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Registration, 0, len(r.hooks))
	for _, reg := range r.hooks {
		out = append(out, reg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Subscribers returns every registration that wants the given event type.
func (r *Registry) Subscribers(eventType string) []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Registration
	for _, reg := range r.hooks {
		if reg.WantsEvent(eventType) {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func randomID(prefix string, hexLen int) (string, error) {
	buf := make([]byte, (hexLen+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return prefix + hex.EncodeToString(buf)[:hexLen], nil
}

// randomSecret returns a whsec_-prefixed base64 secret, 32 bytes of entropy.
func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "whsec_" + base64.StdEncoding.EncodeToString(buf), nil
}
