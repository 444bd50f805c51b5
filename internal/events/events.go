package events

import (
	"context"

	"github.com/google/uuid"
)

// Event types
const (
	EventApplicationCreated = "application_created"
	EventResponseCreated    = "response_created"
)

// StreamThreads carries application/response thread events.
const StreamThreads = "events:threads"

type Event struct {
	Type string `json:"type"`
	// Recipients limits delivery to these user ids; empty means broadcast.
	Recipients []string       `json:"recipients,omitempty"`
	Payload    map[string]any `json:"payload"`
}

// RecipientIDs parses Recipients into user ids, dropping anything that is
// not a uuid. Events travel as JSON, so the ids arrive as strings.
func (e Event) RecipientIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.Recipients))
	for _, r := range e.Recipients {
		id, err := uuid.Parse(r)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
