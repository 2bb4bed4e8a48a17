// Package sse serves the canned pep-talk and match-commentary streams over
// Server-Sent Events. The content is scripted; only the pacing is live.
package sse

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/afcrichmond/believe-api/internal/store"
	"github.com/afcrichmond/believe-api/internal/telemetry"
)

var pepTalkSegments = []string{
	"Hey there, friend.",
	"I know things have been tough lately.",
	"But you know what? Tough times don't last. Tough people do.",
	"You remind me of a goldfish, and I mean that as a compliment: ten-second memory, no room for yesterday's mistakes.",
	"So let's take a breath, lace 'em up, and go be the best version of ourselves.",
	"I believe in you. Heck, I believe in believe.",
	"Now go out there and have some fun, y'all.",
}

type pepTalkChunk struct {
	ChunkID       int    `json:"chunk_id"`
	Text          string `json:"text"`
	IsFinal       bool   `json:"is_final"`
	EmotionalBeat string `json:"emotional_beat,omitempty"`
}

type pepTalkResponse struct {
	Text   string         `json:"text"`
	Chunks []pepTalkChunk `json:"chunks"`
}

type commentaryEvent struct {
	EventID       int    `json:"event_id"`
	Minute        int    `json:"minute"`
	EventType     string `json:"event_type"`
	Description   string `json:"description"`
	Commentary    string `json:"commentary"`
	TedReaction   string `json:"ted_sideline_reaction,omitempty"`
	CrowdReaction string `json:"crowd_reaction,omitempty"`
	IsFinal       bool   `json:"is_final"`
}

// Handler serves the SSE endpoints.
type Handler struct {
	store *store.Store
	rng   *rand.Rand
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /pep-talk", h.HandlePepTalk)
	mux.HandleFunc("GET /matches/{id}/commentary/stream", h.HandleCommentary)
}

// HandlePepTalk returns the whole talk as JSON, or streams it chunk by
// chunk when ?stream=true.
func (h *Handler) HandlePepTalk(w http.ResponseWriter, r *http.Request) {
	chunks := make([]pepTalkChunk, len(pepTalkSegments))
	for i, segment := range pepTalkSegments {
		chunks[i] = pepTalkChunk{
			ChunkID:       i,
			Text:          segment,
			IsFinal:       i == len(pepTalkSegments)-1,
			EmotionalBeat: emotionalBeat(segment, i, i == len(pepTalkSegments)-1),
		}
	}

	if r.URL.Query().Get("stream") != "true" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(pepTalkResponse{
			Text:   strings.Join(pepTalkSegments, " "),
			Chunks: chunks,
		})
		return
	}

	flusher, ok := beginStream(w)
	if !ok {
		return
	}
	for _, chunk := range chunks {
		if !sendEvent(w, flusher, "pep_talk", chunk) {
			return
		}
		// pace roughly at reading speed, clamped to [100ms, 500ms]
		delay := time.Duration(len(chunk.Text)) * 20 * time.Millisecond
		if delay < 100*time.Millisecond {
			delay = 100 * time.Millisecond
		}
		if delay > 500*time.Millisecond {
			delay = 500 * time.Millisecond
		}
		if !sleepOrGone(r, delay) {
			return
		}
	}
}

// HandleCommentary streams a scripted match commentary sequence. The match
// id only has to exist in the store; the script itself is fixed.
func (h *Handler) HandleCommentary(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Matches.Get(id); !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"error":"Not Found","message":"match %s does not exist"}`, id)
		return
	}

	flusher, ok := beginStream(w)
	if !ok {
		return
	}

	events := h.scriptedEvents()
	for i, ev := range events {
		ev.EventID = i
		ev.IsFinal = i == len(events)-1
		if !sendEvent(w, flusher, "commentary", ev) {
			return
		}

		delay := time.Duration(300+h.rng.Intn(500)) * time.Millisecond
		if ev.EventType == "halftime" {
			delay = time.Second
		}
		if !sleepOrGone(r, delay) {
			return
		}
	}
}

func beginStream(w http.ResponseWriter) (http.Flusher, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return nil, false
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	telemetry.Metrics.SSEStreams.Inc()
	return flusher, true
}

func sendEvent(w http.ResponseWriter, flusher http.Flusher, event string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		telemetry.Warnf("sse: marshal: %v", err)
		return false
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return false
	}
	flusher.Flush()
	return true
}

func sleepOrGone(r *http.Request, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-r.Context().Done():
		return false
	}
}

func emotionalBeat(segment string, index int, isFinal bool) string {
	lower := strings.ToLower(segment)
	switch {
	case strings.Contains(lower, "tough"):
		return "acknowledgment"
	case strings.Contains(lower, "goldfish"):
		return "wisdom"
	case strings.Contains(lower, "believe"):
		return "affirmation"
	case index == 0:
		return "greeting"
	case isFinal:
		return "encouragement"
	}
	return ""
}

var tedSidelineReactions = []string{
	"Well butter my biscuit, did you see that?!",
	"*pumps fist* That's what I'm talkin' about!",
	"*claps enthusiastically* Football IS life!",
	"*turns to Beard* We practiced that exact play!",
	"*whistles* Now that's what teamwork looks like!",
}

var crowdMoments = []string{
	"The crowd erupts in cheers!",
	"Fans are hugging strangers in the stands!",
	"The Richmond faithful are bouncing in unison!",
	"The away supporters have gone quiet...",
}

// scriptedEvents builds the fixed kickoff-to-final-whistle sequence with
// randomized flavor text.
func (h *Handler) scriptedEvents() []commentaryEvent {
	pick := func(list []string) string { return list[h.rng.Intn(len(list))] }
	maybe := func(list []string) string {
		if h.rng.Float64() > 0.5 {
			return pick(list)
		}
		return ""
	}

	events := []commentaryEvent{{
		Minute:        0,
		EventType:     "kickoff",
		Description:   "The match kicks off at Nelson Road",
		Commentary:    "And we're off! The referee blows the whistle and the match begins!",
		CrowdReaction: "The home fans are in full voice!",
	}}

	midMatch := []struct {
		minute int
		kind   string
		desc   string
		lines  []string
	}{
		{12, "near_miss", "A shot goes just wide of the target", []string{"Ohhh, so close! That was inches away from being a goal!", "What a chance! How did that not go in?!"}},
		{23, "save", "The goalkeeper makes a crucial stop", []string{"Brilliant save! The goalkeeper comes up huge!", "What reflexes! That was destined for the top corner!"}},
		{38, "goal", "Richmond takes the lead! A beautiful team move!", []string{"GOOOOAL! What a strike! The net is bulging!", "HE'S SCORED! Absolute scenes at Nelson Road!"}},
		{45, "halftime", "The referee signals for halftime", []string{"And that's halftime! Time for Ted's famous locker room talk."}},
		{63, "crowd_moment", "The supporters create an incredible atmosphere", []string{"You can hear the BELIEVE chant echoing around the stadium!"}},
		{71, "substitution", "A tactical change on the touchline", []string{"Fresh legs coming on for the final push."}},
		{85, "goal", "Equalizer! The visitors strike back!", []string{"INCREDIBLE! That's gone in! What a moment!"}},
	}
	for _, e := range midMatch {
		events = append(events, commentaryEvent{
			Minute:        e.minute,
			EventType:     e.kind,
			Description:   e.desc,
			Commentary:    pick(e.lines),
			TedReaction:   maybe(tedSidelineReactions),
			CrowdReaction: maybe(crowdMoments),
		})
	}

	events = append(events, commentaryEvent{
		Minute:        90,
		EventType:     "final_whistle",
		Description:   "Full time at Nelson Road",
		Commentary:    "And that's the final whistle! What a match we've witnessed!",
		TedReaction:   "Ted shakes hands with both teams, smiling warmly",
		CrowdReaction: "The fans applaud their team despite the result",
	})
	return events
}
