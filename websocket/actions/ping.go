package actions

import (
	"github.com/vertuarena/arena/websocket/message"
	"github.com/vertuarena/arena/websocket/transport"
)

func HandlePing(userID uint, msg message.Message) {
	transport.SendToUser(userID, transport.OutgoingMessage{
		Type: "PONG",
	})
}
