package services

import (
	"context"
	"time"

	"github.com/Dosada05/tennis-cup/brackets"
)

type EventType string

const (
	EventTournamentCreated EventType = "tournament.created"
	EventPlayerRegistered  EventType = "player.registered"
	EventTournamentStarted EventType = "tournament.started"
	EventResultRecorded    EventType = "result.recorded"
	EventTournamentReset   EventType = "tournament.reset"
)

// TournamentEvent is emitted after a state change has been committed.
// View is nil for reset events.
type TournamentEvent struct {
	Type        EventType             `json:"type"`
	Key         string                `json:"key"`
	View        *TournamentView       `json:"view,omitempty"`
	Transitions []brackets.Transition `json:"transitions,omitempty"`
	OccurredAt  time.Time             `json:"occurred_at"`
}

// Publisher receives committed snapshots. Publishing failures never roll
// back a committed change.
type Publisher interface {
	Publish(ctx context.Context, event TournamentEvent) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, TournamentEvent) error { return nil }
