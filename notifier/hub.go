package notifier

import (
	"context"

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/services"
)

// Broadcaster is the part of the websocket hub used to push snapshots.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{}) error
}

// HubPublisher pushes every committed snapshot to the websocket clients
// watching the tournament.
type HubPublisher struct {
	hub Broadcaster
}

var _ services.Publisher = (*HubPublisher)(nil)

func NewHubPublisher(hub Broadcaster) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) Publish(_ context.Context, event services.TournamentEvent) error {
	room := brackets.TournamentRoom(event.Key)
	if event.Type == services.EventTournamentReset {
		return p.hub.BroadcastToRoom(room, brackets.WebSocketMessage{
			Type:   brackets.MessageTournamentReset,
			RoomID: room,
		})
	}
	return p.hub.BroadcastToRoom(room, brackets.WebSocketMessage{
		Type:    brackets.MessageTournamentUpdated,
		Payload: event.View,
		RoomID:  room,
	})
}
