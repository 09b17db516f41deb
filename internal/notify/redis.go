package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vertuarena/arena/websocket/transport"
)

const eventsTopic = "events"

var ctx = context.Background()

// RedisPublisher fans events out through a shared pub/sub topic so every API
// instance can deliver them to its locally connected websocket clients.
type RedisPublisher struct {
	db *redis.Client
}

func NewRedisPublisher(db *redis.Client) *RedisPublisher {
	return &RedisPublisher{db: db}
}

func (r *RedisPublisher) Publish(event Event) {
	event.ID = uuid.NewString()
	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("Error encoding event:", err)
		return
	}
	if err := r.db.Publish(ctx, eventsTopic, payload).Err(); err != nil {
		log.Println("Error publishing event:", err)
	}
}

// SubscribeMessages starts forwarding published events to connected players.
func (r *RedisPublisher) SubscribeMessages() error {
	sub := r.db.Subscribe(ctx, eventsTopic)
	if _, err := sub.Receive(ctx); err != nil {
		log.Println("error subscribing", err)
		return fmt.Errorf("error subscribing %w", err)
	}

	ch := sub.Channel()
	log.Printf("Subscribed to %s channel", eventsTopic)
	go func() {
		for msg := range ch {
			r.SendReceivedMessage(msg.Payload)
		}
	}()

	return nil
}

func (r *RedisPublisher) SendReceivedMessage(encoded string) {
	var event Event
	if err := json.Unmarshal([]byte(encoded), &event); err != nil {
		log.Println("Error decoding event:", err)
		return
	}

	out := transport.OutgoingMessage{
		Type:    event.Type,
		Channel: event.Channel,
		Payload: event.Payload,
	}
	for _, userID := range event.Users {
		transport.SendToUser(userID, out)
	}
}
