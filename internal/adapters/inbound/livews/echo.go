package livews

import (
	"net/http"
	"time"

	"github.com/afcrichmond/believe-api/internal/telemetry"
)

type echoMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	TedSays string `json:"ted_says"`
}

// HandleEcho is a connectivity test endpoint: a welcome message, then an
// echo of every inbound text frame.
func (h *Handler) HandleEcho(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		telemetry.Warnf("livews: echo upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	welcome := echoMessage{
		Type:    "welcome",
		Message: "Welcome to the Believe API WebSocket test! Send any message and I'll echo it back.",
		TedSays: "Hey there, friend! This WebSocket connection is working smoother than a fresh jar of peanut butter!",
	}
	conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	if err := conn.WriteJSON(welcome); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		err = conn.WriteJSON(echoMessage{
			Type:    "echo",
			Message: string(data),
			TedSays: "I heard you loud and clear, partner!",
		})
		if err != nil {
			return
		}
	}
}
