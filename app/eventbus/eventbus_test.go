package eventbus

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventBusPublish(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewInMemoryEventBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer bus.Close()

	messages, err := bus.Subscribe(ctx, RoundCreatedV1)
	require.NoError(t, err)

	payload := RoundEventPayload{RoundID: "r-1", TournamentDate: "2025-06-01", Username: "alice", NetStrokes: 71}
	require.NoError(t, bus.Publish(ctx, RoundCreatedV1, payload))

	select {
	case msg := <-messages:
		var got RoundEventPayload
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, payload, got)
		assert.Equal(t, RoundCreatedV1, msg.Metadata.Get("topic"))
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestPublishRejectsUnmarshalablePayload(t *testing.T) {
	bus := NewInMemoryEventBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer bus.Close()

	err := bus.Publish(context.Background(), RoundDeletedV1, make(chan int))
	assert.Error(t, err)
}
