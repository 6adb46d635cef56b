package conversation

import (
	"context"
	"time"
)

type Repository interface {
	// MeetingsBetween returns meetings scheduled in [from, to), oldest
	// first, with the contact name joined in.
	MeetingsBetween(ctx context.Context, from, to time.Time) ([]Conversation, error)
}
