package sse

import (
	"sync"

	"github.com/craneworks/craneops-backend-go/internal/domain/notification"
)

// EventNotification is the event name the frontend's EventSource listens on.
const EventNotification = "notification"

// streamBuffer bounds how far a slow consumer may lag before events are
// dropped. Dropped events are not lost, the client picks them up from the
// notification list on its next reconnect.
const streamBuffer = 16

// Event is one message pushed down an employee's notification stream.
type Event struct {
	EmployeeID string
	Name       string
	Payload    notification.NotificationResponse
}

// Hub fans notifications out to the open SSE streams of each employee. An
// employee can hold several streams at once (one per browser tab).
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{streams: make(map[string]map[chan Event]struct{})}
}

// Subscribe opens a stream for one employee. The returned cancel function
// removes the stream and closes the channel; every Subscribe must be paired
// with a call to it.
func (h *Hub) Subscribe(employeeID string) (<-chan Event, func()) {
	ch := make(chan Event, streamBuffer)

	h.mu.Lock()
	if h.streams[employeeID] == nil {
		h.streams[employeeID] = make(map[chan Event]struct{})
	}
	h.streams[employeeID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.streams[employeeID], ch)
		if len(h.streams[employeeID]) == 0 {
			delete(h.streams, employeeID)
		}
		close(ch)
	}

	return ch, cancel
}

// Publish sends the event to every open stream of the employee, stamping the
// recipient on the event. The send never blocks; a stream whose buffer is
// full misses the event.
func (h *Hub) Publish(employeeID string, e Event) {
	e.EmployeeID = employeeID

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.streams[employeeID] {
		select {
		case ch <- e:
		default:
		}
	}
}

// SubscriberCount reports how many streams the employee has open.
func (h *Hub) SubscriberCount(employeeID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.streams[employeeID])
}
