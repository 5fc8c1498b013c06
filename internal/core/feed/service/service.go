package feedapp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"lahza/internal/config"
	statusEntity "lahza/internal/core/status"
	statusapp "lahza/internal/core/status/service"
	"lahza/internal/core/visibility"
	conversationPort "lahza/internal/ports/conversation"
	directoryPort "lahza/internal/ports/directory"
	feedPort "lahza/internal/ports/feed"
	relationPort "lahza/internal/ports/relation"
	statusPort "lahza/internal/ports/status"
	viewPort "lahza/internal/ports/view"
)

// ConversationCandidateLimit caps how many recent conversations feed the
// messenger-context candidate set.
const ConversationCandidateLimit = 50

type FeedService struct {
	StatusRepository     statusPort.StatusRepository
	StickerRepository    statusPort.StickerRepository
	VisibilityRepository statusPort.VisibilityRepository
	ViewRepository       viewPort.ViewRepository
	RelationRepository   relationPort.RelationRepository
	Conversations        conversationPort.ConversationRepository
	Directory            directoryPort.Directory
}

func NewFeedService(
	statusRepo statusPort.StatusRepository,
	stickerRepo statusPort.StickerRepository,
	visibilityRepo statusPort.VisibilityRepository,
	viewRepo viewPort.ViewRepository,
	relationRepo relationPort.RelationRepository,
	conversations conversationPort.ConversationRepository,
	directory directoryPort.Directory,
) *FeedService {
	return &FeedService{
		StatusRepository:     statusRepo,
		StickerRepository:    stickerRepo,
		VisibilityRepository: visibilityRepo,
		ViewRepository:       viewRepo,
		RelationRepository:   relationRepo,
		Conversations:        conversations,
		Directory:            directory,
	}
}

// ComposeFeed builds the general feed: every active status the viewer may
// see, one bubble per owner (latest status wins), unviewed bubbles first.
func (s *FeedService) ComposeFeed(ctx context.Context, viewerID string) ([]*feedPort.BubbleDTO, error) {
	now := time.Now()
	statuses, err := s.StatusRepository.FindActive(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load active statuses: %w", err)
	}
	facts := &repoFacts{ctx: ctx, svc: s}
	return s.assemble(ctx, viewerID, statuses, visibility.General, facts), nil
}

// ComposeFeedForConversations builds the messenger-context feed. The
// candidate set is friends plus recent conversation partners; public privacy
// is gated by membership in that set, so "public" here means public among
// people the viewer already talks to. Zero candidates degrade to the
// viewer's own bubble or an empty feed, never an error.
func (s *FeedService) ComposeFeedForConversations(ctx context.Context, viewerID string) ([]*feedPort.BubbleDTO, error) {
	now := time.Now()

	candidates := map[string]bool{}
	friends, err := s.RelationRepository.FriendsOf(ctx, viewerID)
	if err != nil {
		config.Logger.Warn("⚠️ Could not load friends for feed", zap.String("viewerID", viewerID), zap.Error(err))
	}
	for _, id := range friends {
		candidates[id] = true
	}
	participants, err := s.Conversations.RecentParticipants(ctx, viewerID, ConversationCandidateLimit)
	if err != nil {
		config.Logger.Warn("⚠️ Could not load conversation participants", zap.String("viewerID", viewerID), zap.Error(err))
	}
	for _, id := range participants {
		candidates[id] = true
	}
	delete(candidates, viewerID)

	ids := make([]string, 0, len(candidates)+1)
	for id := range candidates {
		ids = append(ids, id)
	}
	ids = append(ids, viewerID)

	statuses, err := s.StatusRepository.FindActiveByUserIDs(ctx, ids, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate statuses: %w", err)
	}

	facts := &repoFacts{ctx: ctx, svc: s, candidates: candidates}
	bubbles := s.assemble(ctx, viewerID, statuses, visibility.Conversational, facts)

	if len(bubbles) == 0 {
		// never show an empty story bar when the viewer has own content
		if own, err := s.StatusRepository.FindActiveByUserID(ctx, viewerID, now); err == nil && own != nil {
			bubbles = s.toBubbles(ctx, viewerID, []*statusEntity.Status{own})
		}
	}
	return bubbles, nil
}

// assemble filters by the privacy matrix, keeps the newest visible status
// per owner, then orders bubbles.
func (s *FeedService) assemble(ctx context.Context, viewerID string, statuses []*statusEntity.Status, vctx visibility.Context, facts visibility.Facts) []*feedPort.BubbleDTO {
	seen := map[string]bool{}
	var retained []*statusEntity.Status
	for _, st := range statuses {
		if !visibility.CanView(viewerID, st, vctx, facts) {
			continue
		}
		ownerID := st.UserID.String()
		if seen[ownerID] {
			// one bubble per person; the input is newest-first so the
			// first visible status per owner is the one that surfaces
			continue
		}
		seen[ownerID] = true
		retained = append(retained, st)
	}

	bubbles := s.toBubbles(ctx, viewerID, retained)

	sort.SliceStable(bubbles, func(i, j int) bool {
		a, b := bubbles[i], bubbles[j]
		if a.IsMine != b.IsMine {
			return a.IsMine
		}
		if a.HasUnviewed != b.HasUnviewed {
			return a.HasUnviewed
		}
		// stable keeps the newest-first input order within each group
		return false
	})
	return bubbles
}

func (s *FeedService) toBubbles(ctx context.Context, viewerID string, retained []*statusEntity.Status) []*feedPort.BubbleDTO {
	ownerIDs := make([]string, 0, len(retained))
	for _, st := range retained {
		ownerIDs = append(ownerIDs, st.UserID.String())
	}
	profiles, err := s.Directory.ProfilesFor(ctx, ownerIDs)
	if err != nil {
		config.Logger.Warn("⚠️ Could not resolve bubble profiles", zap.Error(err))
		profiles = map[string]*directoryPort.ProfileDTO{}
	}

	bubbles := make([]*feedPort.BubbleDTO, 0, len(retained))
	for _, st := range retained {
		ownerID := st.UserID.String()
		isMine := ownerID == viewerID

		hasUnviewed := false
		if !isMine {
			exists, err := s.ViewRepository.Exists(ctx, st.ID.String(), viewerID)
			if err != nil {
				config.Logger.Warn("⚠️ Could not check view record", zap.String("statusID", st.ID.String()), zap.Error(err))
			}
			hasUnviewed = !exists && err == nil
		}

		stickers, _ := s.StickerRepository.FindByStatusID(ctx, st.ID.String())
		bubbles = append(bubbles, &feedPort.BubbleDTO{
			OwnerID:     ownerID,
			Owner:       profiles[ownerID],
			Status:      statusapp.ToDTO(st, stickers),
			HasUnviewed: hasUnviewed,
			IsMine:      isMine,
		})
	}
	return bubbles
}

// repoFacts backs the resolver with the repositories; the candidate set is
// only populated in the conversational context.
type repoFacts struct {
	ctx        context.Context
	svc        *FeedService
	candidates map[string]bool
}

func (f *repoFacts) IsFriendOrFollower(viewerID, ownerID string) bool {
	ok, err := f.svc.RelationRepository.IsFriendOrFollower(f.ctx, viewerID, ownerID)
	if err != nil {
		return false
	}
	return ok
}

func (f *repoFacts) IsCustomAllowed(statusID, viewerID string) bool {
	ok, err := f.svc.VisibilityRepository.IsAllowed(f.ctx, statusID, viewerID)
	if err != nil {
		return false
	}
	return ok
}

func (f *repoFacts) InCandidateSet(ownerID string) bool {
	return f.candidates[ownerID]
}
