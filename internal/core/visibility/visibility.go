package visibility

import (
	"lahza/internal/core/status"
)

// Context selects which feed variant is asking. Public statuses are globally
// visible in the general feed but gated by the candidate set in the messenger
// feed, so the same privacy level resolves differently per context.
type Context int

const (
	General Context = iota
	Conversational
)

// Facts supplies the relationship data the resolver needs. Implementations
// are injected; the resolver itself never touches storage or ambient state.
type Facts interface {
	IsFriendOrFollower(viewerID, ownerID string) bool
	IsCustomAllowed(statusID, viewerID string) bool
	InCandidateSet(ownerID string) bool
}

// CanView decides whether viewer may see st in the given context. Activity
// (expiry/archival) is enforced by the active-only queries feeding the
// composer; the owner bypass here additionally covers self-management reads
// of inactive statuses.
func CanView(viewerID string, st *status.Status, vctx Context, facts Facts) bool {
	if st == nil {
		return false
	}
	ownerID := st.UserID.String()
	if viewerID == ownerID {
		return true
	}

	switch st.PrivacyLevel {
	case status.PrivacyPublic:
		if vctx == Conversational {
			return facts.InCandidateSet(ownerID)
		}
		return true
	case status.PrivacyFriends, status.PrivacyFollowers:
		return facts.IsFriendOrFollower(viewerID, ownerID)
	case status.PrivacyOnlyMe:
		return false
	case status.PrivacyCustom:
		return facts.IsCustomAllowed(st.ID.String(), viewerID)
	default:
		// unrecognized privacy values fail closed
		return false
	}
}
