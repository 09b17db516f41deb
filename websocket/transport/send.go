package transport

import (
	"log"

	"github.com/vertuarena/arena/websocket/state"
)

type OutgoingMessage struct {
	Type    string      `json:"type"`
	Channel string      `json:"channel,omitempty"`
	Payload interface{} `json:"payload"`
}

func SendToUser(userID uint, msg OutgoingMessage) {
	client := state.GetClient(userID)
	if client == nil {
		return
	}

	client.ConnMu.Lock()
	defer client.ConnMu.Unlock()

	if err := client.Conn.WriteJSON(msg); err != nil {
		log.Println("Error sending msg to", userID, ":", err)
	}
}

func BroadcastToUsers(users []uint, msg OutgoingMessage) {
	for _, userID := range users {
		SendToUser(userID, msg)
	}
}
