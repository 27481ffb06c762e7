package events

import "time"

const (
	NoteCreated = "NOTE_CREATED"
	NoteUpdated = "NOTE_UPDATED"
	NoteDeleted = "NOTE_DELETED"
)

// NoteEvent is the payload published on the in-process bus after a note
// mutation commits. Auxiliary by contract: emitting it never fails the
// request that produced it.
type NoteEvent struct {
	Type       string    `json:"type"`
	NoteId     int64     `json:"note_id"`
	UserId     *int64    `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
