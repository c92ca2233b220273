// Package events is a small pub/sub bus over the valkey events cache,
// used to fan application-status changes out to connected clients.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"server/config"
	"server/internal/database"
	"server/internal/logger"

	"github.com/valkey-io/valkey-go"
)

// StatusChannel carries application status transitions to subscribers.
const StatusChannel = "application.status"

type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Channel   string         `json:"channel,omitempty"`
	UserID    string         `json:"userId,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type Handler func(event Event)

type EventBus struct {
	client database.CacheClient
	log    logger.Logger

	mu       sync.RWMutex
	handlers map[string][]Handler
	cancel   context.CancelFunc
	closed   bool
}

func New(client database.CacheClient, config config.Config) *EventBus {
	bus := &EventBus{
		client:   client,
		log:      logger.New("events"),
		handlers: make(map[string][]Handler),
	}

	if client != nil {
		ctx, cancel := context.WithCancel(context.Background())
		bus.cancel = cancel
		go bus.receive(ctx)
	}

	return bus
}

// Publish sends an event to all subscribers of the channel. With no cache
// client configured it delivers locally only.
func (b *EventBus) Publish(channel string, event Event) error {
	log := b.log.Function("Publish")

	if b.client == nil {
		b.dispatch(channel, event)
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return log.Err("failed to marshal event", err, "channel", channel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.client.Do(ctx, b.client.B().Publish().Channel(channel).Message(string(payload)).Build()).Error(); err != nil {
		return log.Err("failed to publish event", err, "channel", channel)
	}

	return nil
}

func (b *EventBus) Subscribe(channel string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[channel] = append(b.handlers[channel], handler)
}

// PublishStatusChange is the one domain event this service emits.
func (b *EventBus) PublishStatusChange(eventID, userID, newStatus string) error {
	return b.Publish(StatusChannel, Event{
		ID:        eventID,
		Type:      "status_change",
		Channel:   StatusChannel,
		UserID:    userID,
		Data:      map[string]any{"status": newStatus},
		Timestamp: time.Now(),
	})
}

func (b *EventBus) receive(ctx context.Context) {
	log := b.log.Function("receive")

	sub := b.client.B().Subscribe().Channel(StatusChannel).Build()
	err := b.client.Receive(ctx, sub, func(msg valkey.PubSubMessage) {
		var event Event
		if unmarshalErr := json.Unmarshal([]byte(msg.Message), &event); unmarshalErr != nil {
			log.Er("failed to unmarshal event", unmarshalErr)
			return
		}
		b.dispatch(msg.Channel, event)
	})
	if err != nil && ctx.Err() == nil {
		log.Er("event subscription ended", err)
	}
}

func (b *EventBus) dispatch(channel string, event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[channel]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

func (b *EventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	if b.cancel != nil {
		b.cancel()
	}
	return nil
}
