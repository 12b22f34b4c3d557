package notifier

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/pubsub"
	"github.com/Dosada05/tennis-cup/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubSubPublisher_SendsEncodedEventWithAttributes(t *testing.T) {
	var sent *pubsub.Message
	p := newPubSubPublisher(func(_ context.Context, msg *pubsub.Message) (string, error) {
		sent = msg
		return "server-1", nil
	}, nil, nil)

	event := services.TournamentEvent{Type: services.EventTournamentReset, Key: "club-cup"}
	require.NoError(t, p.Publish(context.Background(), event))

	require.NotNil(t, sent)
	assert.Equal(t, "tournament.reset", sent.Attributes[attrEventType])
	assert.Equal(t, "club-cup", sent.Attributes[attrTournament])

	decoded, err := DecodeEvent(sent.Data)
	require.NoError(t, err)
	assert.Equal(t, event.Key, decoded.Key)
	assert.Nil(t, decoded.View)
	assert.NoError(t, p.Close())
}

func TestPubSubPublisher_WrapsSendErrors(t *testing.T) {
	p := newPubSubPublisher(func(context.Context, *pubsub.Message) (string, error) {
		return "", errors.New("unavailable")
	}, nil, nil)

	err := p.Publish(context.Background(), services.TournamentEvent{Key: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}
