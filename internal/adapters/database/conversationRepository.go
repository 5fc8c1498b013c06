package database

import (
	"context"
	"sort"

	"lahza/internal/config"
	conversationEntity "lahza/internal/core/conversation"
)

// ConversationRepositoryDatabase reads the messaging service's tables to
// build the messenger-context candidate set. This adapter never writes.
type ConversationRepositoryDatabase struct{}

func NewConversationRepositoryDatabase() *ConversationRepositoryDatabase {
	return &ConversationRepositoryDatabase{}
}

// RecentParticipants returns the distinct other participants of the viewer's
// most recently active conversations, ordered by conversation recency.
func (repo *ConversationRepositoryDatabase) RecentParticipants(ctx context.Context, viewerID string, limit int) ([]string, error) {
	var convIDs []string
	err := config.DB.Model(&conversationEntity.Participant{}).
		Joins("JOIN conversations ON conversations.id = conversation_participants.conversation_id").
		Where("conversation_participants.user_id = ?", viewerID).
		Order("conversations.last_message_at DESC").
		Limit(limit).
		Pluck("conversation_participants.conversation_id", &convIDs).Error
	if err != nil {
		return nil, err
	}
	if len(convIDs) == 0 {
		return nil, nil
	}

	var rows []*conversationEntity.Participant
	err = config.DB.
		Where("conversation_id IN ? AND user_id <> ?", convIDs, viewerID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// dedupe in conversation-recency order
	rank := make(map[string]int, len(convIDs))
	for i, id := range convIDs {
		rank[id] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rank[rows[i].ConversationID.String()] < rank[rows[j].ConversationID.String()]
	})

	seen := map[string]bool{}
	var ids []string
	for _, r := range rows {
		id := r.UserID.String()
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
