package viewapp

import (
	"context"
	"fmt"

	directoryPort "lahza/internal/ports/directory"
	statusPort "lahza/internal/ports/status"
	viewPort "lahza/internal/ports/view"
)

type ViewService struct {
	ViewRepository   viewPort.ViewRepository
	StatusRepository statusPort.StatusRepository
	Directory        directoryPort.Directory
}

func NewViewService(
	viewRepo viewPort.ViewRepository,
	statusRepo statusPort.StatusRepository,
	directory directoryPort.Directory,
) *ViewService {
	return &ViewService{
		ViewRepository:   viewRepo,
		StatusRepository: statusRepo,
		Directory:        directory,
	}
}

// MarkViewed records that viewer saw the status. Re-viewing is a successful
// no-op via the unique-key upsert; viewing one's own status writes no row.
// A missing status reports false without saying why.
func (s *ViewService) MarkViewed(ctx context.Context, viewerID, statusID string) (bool, error) {
	st, err := s.StatusRepository.FindByID(ctx, statusID)
	if err != nil {
		return false, fmt.Errorf("failed to load status: %w", err)
	}
	if st == nil {
		return false, nil
	}
	if st.UserID.String() == viewerID {
		// the owner is always "already viewed"
		return true, nil
	}
	if err := s.ViewRepository.MarkViewed(ctx, statusID, viewerID); err != nil {
		return false, fmt.Errorf("failed to record view: %w", err)
	}
	return true, nil
}

// ViewerCount is owner-only; anyone else gets zero, not an error.
func (s *ViewService) ViewerCount(ctx context.Context, callerID, statusID string) (int64, error) {
	st, err := s.StatusRepository.FindByID(ctx, statusID)
	if err != nil {
		return 0, fmt.Errorf("failed to load status: %w", err)
	}
	if st == nil || st.UserID.String() != callerID {
		return 0, nil
	}
	count, err := s.ViewRepository.CountByStatusID(ctx, statusID)
	if err != nil {
		return 0, fmt.Errorf("failed to count views: %w", err)
	}
	return count, nil
}

// Viewers lists who saw the status, labeled with directory profiles.
// Owner-only; anyone else gets an empty list, not an error.
func (s *ViewService) Viewers(ctx context.Context, callerID, statusID string) ([]*viewPort.ViewerDTO, error) {
	st, err := s.StatusRepository.FindByID(ctx, statusID)
	if err != nil {
		return nil, fmt.Errorf("failed to load status: %w", err)
	}
	if st == nil || st.UserID.String() != callerID {
		return []*viewPort.ViewerDTO{}, nil
	}

	rows, err := s.ViewRepository.ListByStatusID(ctx, statusID)
	if err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ViewerID.String())
	}
	profiles, err := s.Directory.ProfilesFor(ctx, ids)
	if err != nil {
		// labels are decoration; the list itself still answers the question
		profiles = map[string]*directoryPort.ProfileDTO{}
	}

	out := make([]*viewPort.ViewerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, &viewPort.ViewerDTO{
			ViewerID: r.ViewerID.String(),
			ViewedAt: r.ViewedAt,
			Profile:  profiles[r.ViewerID.String()],
		})
	}
	return out, nil
}
