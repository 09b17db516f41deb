package actions

import (
	"encoding/json"
	"log"

	"github.com/vertuarena/arena/internal/chat"
	"github.com/vertuarena/arena/websocket/message"
)

var ChatService *chat.ChatService

func HandleChat(userID uint, msg message.Message) {
	var payload message.ChatPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Println("Error decoding chat payload:", err)
		return
	}

	if ChatService == nil {
		log.Println("Chat service not configured")
		return
	}

	if _, err := ChatService.Send(payload.GameID, userID, payload.Message); err != nil {
		log.Println("Error sending chat message:", err)
	}
}
