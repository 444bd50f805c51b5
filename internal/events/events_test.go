package events

import (
	"testing"

	"github.com/google/uuid"
)

func TestEventRecipientIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	e := Event{Recipients: []string{a.String(), "not-a-uuid", b.String()}}
	ids := e.RecipientIDs()
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Errorf("RecipientIDs() = %v, want [%v %v]", ids, a, b)
	}

	if ids := (Event{}).RecipientIDs(); len(ids) != 0 {
		t.Errorf("RecipientIDs() on empty event = %v, want none", ids)
	}
}
