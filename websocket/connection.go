package websocket

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"

	"github.com/vertuarena/arena/websocket/message"
	"github.com/vertuarena/arena/websocket/router"
	"github.com/vertuarena/arena/websocket/state"
)

func listenClientMessages(userID uint, conn *websocket.Conn) {
	defer func() {
		log.Printf("Player disconnected: %d", userID)
		state.UnregisterClient(userID, conn)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Println("Error reading message:", err)
			break
		}

		var msg message.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Println("Error decoding message:", err)
			continue
		}

		router.RouteMessage(userID, msg)
	}
}
