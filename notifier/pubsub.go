package notifier

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/pubsub"
	"github.com/Dosada05/tennis-cup/services"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	attrEventType  = "event_type"
	attrTournament = "tournament"
)

// PubSubPublisher sends msgpack-encoded events to a Google Pub/Sub topic so
// other services can follow tournament progress.
type PubSubPublisher struct {
	send   func(ctx context.Context, msg *pubsub.Message) (string, error)
	close  func() error
	logger *slog.Logger
}

var _ services.Publisher = (*PubSubPublisher)(nil)

func NewPubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*PubSubPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	topic := client.Topic(topicID)
	send := func(ctx context.Context, msg *pubsub.Message) (string, error) {
		return topic.Publish(ctx, msg).Get(ctx)
	}
	closeFn := func() error {
		topic.Stop()
		return client.Close()
	}
	return newPubSubPublisher(send, closeFn, logger), nil
}

func newPubSubPublisher(send func(context.Context, *pubsub.Message) (string, error), closeFn func() error, logger *slog.Logger) *PubSubPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	if closeFn == nil {
		closeFn = func() error { return nil }
	}
	return &PubSubPublisher{send: send, close: closeFn, logger: logger}
}

func (p *PubSubPublisher) Publish(ctx context.Context, event services.TournamentEvent) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}
	serverID, err := p.send(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			attrEventType:  string(event.Type),
			attrTournament: event.Key,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	p.logger.Debug("event published", slog.String("tournament", event.Key), slog.String("server_id", serverID))
	return nil
}

func (p *PubSubPublisher) Close() error {
	return p.close()
}

// EncodeEvent serialises an event with msgpack, reusing the json field names.
func EncodeEvent(event services.TournamentEvent) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(event); err != nil {
		return nil, fmt.Errorf("msgpack marshal error: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeEvent(data []byte) (services.TournamentEvent, error) {
	var event services.TournamentEvent
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&event); err != nil {
		return services.TournamentEvent{}, fmt.Errorf("msgpack unmarshal error: %w", err)
	}
	return event, nil
}
