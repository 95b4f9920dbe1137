package events

import (
	"context"

	"github.com/Dosada05/league-manager/brackets"
)

// HubPublisher pushes events to websocket clients watching the championship.
type HubPublisher struct {
	hub *brackets.Hub
}

func NewHubPublisher(hub *brackets.Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) PublishRoundResolved(ctx context.Context, event RoundResolved) error {
	room := brackets.ChampionshipRoom(event.ChampionshipID)
	msgType := TypeRoundResolved
	if event.Completed {
		msgType = TypeSeasonCompleted
	}
	return p.hub.BroadcastToRoom(room, brackets.WebSocketMessage{
		Type:    msgType,
		Payload: event,
		RoomID:  room,
	})
}
