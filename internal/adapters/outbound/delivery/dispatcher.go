// Package delivery pushes domain events to registered webhooks over HTTP
// and records each attempt in a capped SQLite log.
package delivery

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/afcrichmond/believe-api/internal/core/hooks"
	"github.com/afcrichmond/believe-api/internal/events"
	"github.com/afcrichmond/believe-api/internal/telemetry"
)

// envelope is the JSON body posted to subscriber endpoints.
type envelope struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}

// Dispatcher fans domain events out to every subscribed registration.
// Outbound requests share a rate limiter so a burst of match completions
// cannot flood slow receivers.
type Dispatcher struct {
	registry *hooks.Registry
	store    *Store
	client   *http.Client
	limiter  *rate.Limiter
	timeout  time.Duration
}

func NewDispatcher(registry *hooks.Registry, store *Store, timeout time.Duration, ratePerSec float64, burst int) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		store:    store,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(ratePerSec), burst),
		timeout:  timeout,
	}
}

// Attach subscribes the dispatcher to the bus. Delivery happens on a fresh
// goroutine so publishers (the live match session loop) never block on HTTP.
func (d *Dispatcher) Attach(bus *events.Bus) {
	bus.Subscribe(events.EventMatchCompleted, func(e events.Event) error {
		go d.Dispatch(context.Background(), e)
		return nil
	})
}

// Dispatch delivers one event to all matching registrations concurrently.
func (d *Dispatcher) Dispatch(ctx context.Context, e events.Event) {
	subs := d.registry.Subscribers(string(e.Type))
	if len(subs) == 0 {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, reg := range subs {
		reg := reg
		g.Go(func() error {
			res := d.deliver(ctx, reg, e)
			d.record(res)
			return nil
		})
	}
	g.Wait()
}

// Test fires a synthetic webhook.test delivery at a single registration
// and returns the result without consulting its event filter.
func (d *Dispatcher) Test(ctx context.Context, reg hooks.Registration) hooks.DeliveryResult {
	e := events.Event{
		Type:      events.EventWebhookTest,
		Timestamp: time.Now().UTC(),
		Payload: map[string]string{
			"message":  "Ted says hi! If you can read this, your webhook works.",
			"believe":  "true",
			"biscuits": "with the boss",
		},
	}
	res := d.deliver(ctx, reg, e)
	d.record(res)
	return res
}

func (d *Dispatcher) deliver(ctx context.Context, reg hooks.Registration, e events.Event) hooks.DeliveryResult {
	start := time.Now()
	res := hooks.DeliveryResult{
		WebhookID:   reg.ID,
		EventType:   string(e.Type),
		URL:         reg.URL,
		AttemptedAt: start.UTC().Format(time.RFC3339),
	}

	msgID, err := messageID()
	if err != nil {
		res.Error = fmt.Sprintf("generate message id: %v", err)
		return res
	}
	res.MessageID = msgID

	body, err := json.Marshal(envelope{
		Type:      string(e.Type),
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
		Data:      e.Payload,
	})
	if err != nil {
		res.Error = fmt.Sprintf("marshal payload: %v", err)
		return res
	}

	ts := start.Unix()
	sig, err := hooks.Sign(reg.Secret, msgID, ts, body)
	if err != nil {
		res.Error = fmt.Sprintf("sign payload: %v", err)
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.limiter.Wait(ctx); err != nil {
		res.Error = fmt.Sprintf("rate limit wait: %v", err)
		return res
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reg.URL, bytes.NewReader(body))
	if err != nil {
		res.Error = fmt.Sprintf("build request: %v", err)
		return res
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("webhook-id", msgID)
	req.Header.Set("webhook-timestamp", fmt.Sprintf("%d", ts))
	req.Header.Set("webhook-signature", sig)

	resp, err := d.client.Do(req)
	telemetry.Metrics.WebhookLatency.Record(time.Since(start))
	if err != nil {
		res.Error = err.Error()
		telemetry.Metrics.WebhookFailures.Inc()
		telemetry.Warnf("webhook %s: deliver %s to %s: %v", reg.ID, e.Type, reg.URL, err)
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	res.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if res.Success {
		telemetry.Metrics.WebhooksDelivered.Inc()
		telemetry.Infof("webhook %s: delivered %s to %s (%d)", reg.ID, e.Type, reg.URL, resp.StatusCode)
	} else {
		res.Error = fmt.Sprintf("endpoint returned %d", resp.StatusCode)
		telemetry.Metrics.WebhookFailures.Inc()
		telemetry.Warnf("webhook %s: %s to %s returned %d", reg.ID, e.Type, reg.URL, resp.StatusCode)
	}
	return res
}

func (d *Dispatcher) record(res hooks.DeliveryResult) {
	if d.store == nil {
		return
	}
	if err := d.store.Insert(res); err != nil {
		telemetry.Warnf("webhook delivery log: %v", err)
	}
}

func messageID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "msg_" + hex.EncodeToString(buf), nil
}
