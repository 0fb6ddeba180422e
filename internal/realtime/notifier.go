package realtime

import (
	"context"
	"errors"

	"solotrip/internal/models/db_models"
)

// Notifier publishes stored comments on the bus and feeds bus traffic into the hub.
type Notifier struct {
	bus Bus
	hub *Hub
}

func NewNotifier(bus Bus, hub *Hub) *Notifier {
	return &Notifier{bus: bus, hub: hub}
}

func (n *Notifier) PublishComment(ctx context.Context, comment *db_models.Comment) error {
	if comment == nil {
		return errors.New("nil comment")
	}
	return n.bus.Publish(ctx, Message{
		Room: comment.TripID,
		Data: encodeOutbound(Outbound{Event: EventNewComment, Comment: comment}),
	})
}

// Start forwards every bus message to the matching room until ctx ends.
func (n *Notifier) Start(ctx context.Context) error {
	return n.bus.StartForwarder(ctx, func(m Message) {
		n.hub.Broadcast(m.Room, m.Data)
	})
}
