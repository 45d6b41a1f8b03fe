package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craneworks/craneops-backend-go/internal/domain/notification"
)

func TestPublish_FansOutToEveryStream(t *testing.T) {
	hub := NewHub()

	first, cancelFirst := hub.Subscribe("emp-1")
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe("emp-1")
	defer cancelSecond()
	other, cancelOther := hub.Subscribe("emp-2")
	defer cancelOther()

	hub.Publish("emp-1", Event{
		Name:    EventNotification,
		Payload: notification.NotificationResponse{ID: "n1", Title: "Ny opgave"},
	})

	for _, ch := range []<-chan Event{first, second} {
		select {
		case e := <-ch:
			assert.Equal(t, "emp-1", e.EmployeeID)
			assert.Equal(t, EventNotification, e.Name)
			assert.Equal(t, "Ny opgave", e.Payload.Title)
		default:
			t.Fatal("stream did not receive the event")
		}
	}
	assert.Empty(t, other)
}

func TestPublish_DropsWhenStreamIsFull(t *testing.T) {
	hub := NewHub()
	events, cancel := hub.Subscribe("emp-1")
	defer cancel()

	for i := 0; i < streamBuffer+5; i++ {
		hub.Publish("emp-1", Event{Name: EventNotification})
	}

	// The overflow must neither block nor grow the stream.
	assert.Len(t, events, streamBuffer)
}

func TestSubscribe_CancelClosesStream(t *testing.T) {
	hub := NewHub()

	events, cancel := hub.Subscribe("emp-1")
	require.Equal(t, 1, hub.SubscriberCount("emp-1"))

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount("emp-1"))

	_, open := <-events
	assert.False(t, open)

	// Publishing after the last stream is gone is a no-op.
	hub.Publish("emp-1", Event{Name: EventNotification})
}
