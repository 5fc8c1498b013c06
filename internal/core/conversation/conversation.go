package conversation

import (
	"time"

	"github.com/gofrs/uuid"
)

// Read-only mirrors of the messaging service's tables. This service only
// queries them to build the messenger-context candidate set.

type Conversation struct {
	ID            uuid.UUID `gorm:"primary_key;type:char(36)"`
	LastMessageAt time.Time `gorm:"index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

type Participant struct {
	ID             uuid.UUID `gorm:"primary_key;type:char(36)"`
	ConversationID uuid.UUID `gorm:"type:char(36);not null;index"`
	UserID         uuid.UUID `gorm:"type:char(36);not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Participant) TableName() string {
	return "conversation_participants"
}
