package conversation

import "context"

// ConversationRepository is a read-only window into the messaging service:
// the distinct other participants of the viewer's most recently active
// conversations, newest conversation first.
type ConversationRepository interface {
	RecentParticipants(ctx context.Context, viewerID string, limit int) ([]string, error)
}
