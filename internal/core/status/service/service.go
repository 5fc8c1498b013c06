package statusapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"lahza/internal/config"
	"lahza/internal/core/cleanup"
	statusEntity "lahza/internal/core/status"
	cleanupPort "lahza/internal/ports/cleanup"
	mediaPort "lahza/internal/ports/media"
	statusPort "lahza/internal/ports/status"
)

// MediaUploader is the slice of the media service the status store needs.
type MediaUploader interface {
	UploadMedia(ctx context.Context, ownerID string, data []byte, contentType string) (string, error)
}

type StatusService struct {
	StatusRepository     statusPort.StatusRepository
	StickerRepository    statusPort.StickerRepository
	VisibilityRepository statusPort.VisibilityRepository
	CleanupRepository    cleanupPort.CleanupRepository
	Media                MediaUploader
	Storage              mediaPort.ObjectStorage
}

func NewStatusService(
	statusRepo statusPort.StatusRepository,
	stickerRepo statusPort.StickerRepository,
	visibilityRepo statusPort.VisibilityRepository,
	cleanupRepo cleanupPort.CleanupRepository,
	media MediaUploader,
	storage mediaPort.ObjectStorage,
) *StatusService {
	return &StatusService{
		StatusRepository:     statusRepo,
		StickerRepository:    stickerRepo,
		VisibilityRepository: visibilityRepo,
		CleanupRepository:    cleanupRepo,
		Media:                media,
		Storage:              storage,
	}
}

// Create validates the content/type pairing, uploads blobs before any row is
// written, then persists the status with its stickers and custom allow-list.
// An upload failure aborts with nothing persisted.
func (s *StatusService) Create(ctx context.Context, ownerID string, in *statusPort.CreateInput) (*statusPort.StatusDTO, error) {
	uid, err := uuid.FromString(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid ownerID: %w", err)
	}

	ct := statusEntity.ContentType(in.ContentType)
	switch ct {
	case statusEntity.ContentTypeText:
		if strings.TrimSpace(in.TextContent) == "" {
			return nil, fmt.Errorf("%w: text status requires text content", statusEntity.ErrInvalidContent)
		}
	case statusEntity.ContentTypeImage, statusEntity.ContentTypeVideo:
		if len(in.Media) == 0 {
			return nil, fmt.Errorf("%w: %s status requires a media asset", statusEntity.ErrInvalidContent, ct)
		}
	default:
		return nil, fmt.Errorf("%w: unknown content type %q", statusEntity.ErrInvalidContent, in.ContentType)
	}

	var mediaPath *string
	if ct != statusEntity.ContentTypeText {
		p, err := s.Media.UploadMedia(ctx, ownerID, in.Media, in.MediaMime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", statusEntity.ErrUploadFailed, err)
		}
		mediaPath = &p
	}

	now := time.Now()
	st := &statusEntity.Status{
		ID:           uuid.Must(uuid.NewV4()),
		UserID:       uid,
		ContentType:  ct,
		MediaPath:    mediaPath,
		PrivacyLevel: privacyOrDefault(in.Privacy),
		CreatedAt:    now,
		ExpiresAt:    now.Add(statusEntity.TTL),
	}
	if ct == statusEntity.ContentTypeText {
		text := in.TextContent
		st.TextContent = &text
		s.applyCustomization(ctx, ownerID, st, in.Customization)
	}

	created, err := s.StatusRepository.Create(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("failed to create status: %w", err)
	}

	stickers := s.addStickers(ctx, created.ID, in.Stickers)

	if created.PrivacyLevel == statusEntity.PrivacyCustom {
		s.addAllowList(ctx, created.ID, in.AllowedUserIDs)
	}

	return ToDTO(created, stickers), nil
}

// applyCustomization decorates a text status. The background image is a
// secondary upload: its failure must not block the post.
func (s *StatusService) applyCustomization(ctx context.Context, ownerID string, st *statusEntity.Status, c *statusPort.CustomizationDTO) {
	if c == nil {
		return
	}
	st.BackgroundColor = c.BackgroundColor
	st.TextStyle = statusEntity.TextStyle(c.TextStyle)
	st.TextEffect = statusEntity.TextEffect(c.TextEffect)
	st.TextAlign = statusEntity.TextAlign(c.TextAlign)

	if len(c.BackgroundImage) == 0 {
		return
	}
	p, err := s.Media.UploadMedia(ctx, ownerID, c.BackgroundImage, c.BackgroundImageMime)
	if err != nil {
		config.Logger.Warn("⚠️ Background image upload failed, posting without it", zap.Error(err))
		return
	}
	st.BackgroundImagePath = &p
}

func (s *StatusService) addStickers(ctx context.Context, statusID uuid.UUID, in []statusPort.StickerDTO) []*statusEntity.Sticker {
	if len(in) == 0 {
		return nil
	}
	stickers := make([]*statusEntity.Sticker, 0, len(in))
	for _, dto := range in {
		stickers = append(stickers, &statusEntity.Sticker{
			ID:        uuid.Must(uuid.NewV4()),
			StatusID:  statusID,
			StickerID: dto.StickerID,
			ImagePath: dto.ImagePath,
			X:         dto.X,
			Y:         dto.Y,
			Scale:     dto.Scale,
			Rotation:  dto.Rotation,
		})
	}
	if err := s.StickerRepository.AddBatch(ctx, stickers); err != nil {
		config.Logger.Warn("⚠️ Could not attach stickers", zap.String("statusID", statusID.String()), zap.Error(err))
		return nil
	}
	return stickers
}

// addAllowList writes the custom-privacy rows. A write failure leaves the
// status visible to the owner only, which fails closed.
func (s *StatusService) addAllowList(ctx context.Context, statusID uuid.UUID, allowed []string) {
	rows := make([]*statusEntity.Visibility, 0, len(allowed))
	for _, id := range allowed {
		aid, err := uuid.FromString(id)
		if err != nil {
			config.Logger.Warn("⚠️ Skipping invalid allow-list id", zap.String("id", id))
			continue
		}
		rows = append(rows, &statusEntity.Visibility{
			ID:            uuid.Must(uuid.NewV4()),
			StatusID:      statusID,
			AllowedUserID: aid,
		})
	}
	if len(rows) == 0 {
		return
	}
	if err := s.VisibilityRepository.AddBatch(ctx, rows); err != nil {
		config.Logger.Warn("⚠️ Could not write allow-list", zap.String("statusID", statusID.String()), zap.Error(err))
	}
}

// Delete cascades sticker rows, allow-list rows and blobs, then removes the
// row. Ownership is the only precondition; blob failures are retried later by
// the cleanup worker and never block the row delete, whose outcome is
// authoritative. View rows are deliberately left behind.
func (s *StatusService) Delete(ctx context.Context, ownerID, statusID string) (bool, error) {
	st, err := s.StatusRepository.FindByID(ctx, statusID)
	if err != nil {
		return false, fmt.Errorf("failed to load status: %w", err)
	}
	if st == nil || st.UserID.String() != ownerID {
		// absence and foreign ownership are indistinguishable on purpose
		return false, nil
	}

	if err := s.StickerRepository.DeleteByStatusID(ctx, statusID); err != nil {
		config.Logger.Warn("⚠️ Could not delete sticker rows", zap.String("statusID", statusID), zap.Error(err))
	}
	if err := s.VisibilityRepository.DeleteByStatusID(ctx, statusID); err != nil {
		config.Logger.Warn("⚠️ Could not delete allow-list rows", zap.String("statusID", statusID), zap.Error(err))
	}

	var paths []string
	if st.MediaPath != nil {
		paths = append(paths, *st.MediaPath)
	}
	if st.BackgroundImagePath != nil {
		paths = append(paths, *st.BackgroundImagePath)
	}
	if len(paths) > 0 {
		if err := s.Storage.Remove(ctx, paths); err != nil {
			config.Logger.Warn("⚠️ Blob removal failed, queueing for retry", zap.String("statusID", statusID), zap.Error(err))
			s.enqueueCleanup(ctx, st.ID, paths)
		}
	}

	if err := s.StatusRepository.Delete(ctx, statusID); err != nil {
		return false, fmt.Errorf("failed to delete status: %w", err)
	}
	return true, nil
}

func (s *StatusService) enqueueCleanup(ctx context.Context, statusID uuid.UUID, paths []string) {
	task := &cleanup.Task{
		ID:       uuid.Must(uuid.NewV4()),
		StatusID: statusID,
		Paths:    cleanup.JoinPaths(paths),
		Status:   cleanup.StatusPending,
	}
	if _, err := s.CleanupRepository.Enqueue(ctx, task); err != nil {
		config.Logger.Warn("⚠️ Could not enqueue cleanup task", zap.String("statusID", statusID.String()), zap.Error(err))
	}
}

// Archive retires a status early. Owner-only; there is no way back to active.
func (s *StatusService) Archive(ctx context.Context, ownerID, statusID string) (bool, error) {
	st, err := s.StatusRepository.FindByID(ctx, statusID)
	if err != nil {
		return false, fmt.Errorf("failed to load status: %w", err)
	}
	if st == nil || st.UserID.String() != ownerID {
		return false, nil
	}
	if err := s.StatusRepository.Archive(ctx, statusID, time.Now()); err != nil {
		return false, fmt.Errorf("failed to archive status: %w", err)
	}
	return true, nil
}

// GetActive returns the owner's latest active status, or nil.
func (s *StatusService) GetActive(ctx context.Context, ownerID string) (*statusPort.StatusDTO, error) {
	st, err := s.StatusRepository.FindActiveByUserID(ctx, ownerID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load active status: %w", err)
	}
	if st == nil {
		return nil, nil
	}
	stickers, _ := s.StickerRepository.FindByStatusID(ctx, st.ID.String())
	return ToDTO(st, stickers), nil
}

// GetAll is the owner's self-management listing; with includingInactive the
// owner also sees expired and archived statuses. Non-owners never reach this.
func (s *StatusService) GetAll(ctx context.Context, ownerID string, includingInactive bool) ([]*statusPort.StatusDTO, error) {
	statuses, err := s.StatusRepository.FindAllByUserID(ctx, ownerID, includingInactive, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	out := make([]*statusPort.StatusDTO, 0, len(statuses))
	for _, st := range statuses {
		stickers, _ := s.StickerRepository.FindByStatusID(ctx, st.ID.String())
		out = append(out, ToDTO(st, stickers))
	}
	return out, nil
}

func privacyOrDefault(p string) statusEntity.PrivacyLevel {
	if p == "" {
		return statusEntity.PrivacyPublic
	}
	return statusEntity.PrivacyLevel(p)
}

// ToDTO maps a status row plus its stickers to the transport shape.
func ToDTO(st *statusEntity.Status, stickers []*statusEntity.Sticker) *statusPort.StatusDTO {
	dto := &statusPort.StatusDTO{
		ID:                  st.ID.String(),
		UserID:              st.UserID.String(),
		ContentType:         string(st.ContentType),
		TextContent:         st.TextContent,
		MediaPath:           st.MediaPath,
		BackgroundColor:     st.BackgroundColor,
		TextStyle:           string(st.TextStyle),
		TextEffect:          string(st.TextEffect),
		TextAlign:           string(st.TextAlign),
		BackgroundImagePath: st.BackgroundImagePath,
		Privacy:             string(st.PrivacyLevel),
		CreatedAt:           st.CreatedAt,
		ExpiresAt:           st.ExpiresAt,
		Archived:            st.Archived,
	}
	for _, sk := range stickers {
		dto.Stickers = append(dto.Stickers, statusPort.StickerDTO{
			StickerID: sk.StickerID,
			ImagePath: sk.ImagePath,
			X:         sk.X,
			Y:         sk.Y,
			Scale:     sk.Scale,
			Rotation:  sk.Rotation,
		})
	}
	return dto
}
