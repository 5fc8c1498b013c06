package feed

import (
	directoryPort "lahza/internal/ports/directory"
	statusPort "lahza/internal/ports/status"
)

// BubbleDTO is one per-owner feed entry: the owner's latest active visible
// status plus the unviewed indicator.
type BubbleDTO struct {
	OwnerID     string                    `json:"owner_id"`
	Owner       *directoryPort.ProfileDTO `json:"owner,omitempty"`
	Status      *statusPort.StatusDTO     `json:"status"`
	HasUnviewed bool                      `json:"has_unviewed"`
	IsMine      bool                      `json:"is_mine"`
}
