package router

import (
	"log"

	"github.com/vertuarena/arena/websocket/actions"
	"github.com/vertuarena/arena/websocket/message"
)

var handlers = map[string]func(userID uint, payload message.Message){
	"CHAT": actions.HandleChat,
	"PING": actions.HandlePing,
}

func RouteMessage(userID uint, msg message.Message) {
	if handler, ok := handlers[msg.Type]; ok {
		handler(userID, msg)
	} else {
		log.Println("Unknown message type:", msg.Type)
	}
}
