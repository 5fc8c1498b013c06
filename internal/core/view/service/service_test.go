package viewapp

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"

	statusEntity "lahza/internal/core/status"
	viewEntity "lahza/internal/core/view"
	directoryPort "lahza/internal/ports/directory"
)

type fakeStatusFinder struct {
	byID map[string]*statusEntity.Status
}

func (f *fakeStatusFinder) Create(ctx context.Context, st *statusEntity.Status) (*statusEntity.Status, error) {
	f.byID[st.ID.String()] = st
	return st, nil
}

func (f *fakeStatusFinder) FindByID(ctx context.Context, id string) (*statusEntity.Status, error) {
	return f.byID[id], nil
}

func (f *fakeStatusFinder) FindActive(ctx context.Context, now time.Time) ([]*statusEntity.Status, error) {
	return nil, nil
}

func (f *fakeStatusFinder) FindActiveByUserIDs(ctx context.Context, userIDs []string, now time.Time) ([]*statusEntity.Status, error) {
	return nil, nil
}

func (f *fakeStatusFinder) FindActiveByUserID(ctx context.Context, userID string, now time.Time) (*statusEntity.Status, error) {
	return nil, nil
}

func (f *fakeStatusFinder) FindAllByUserID(ctx context.Context, userID string, includingInactive bool, now time.Time) ([]*statusEntity.Status, error) {
	return nil, nil
}

func (f *fakeStatusFinder) Archive(ctx context.Context, id string, at time.Time) error { return nil }
func (f *fakeStatusFinder) Delete(ctx context.Context, id string) error                { return nil }

type fakeViewRepo struct {
	rows map[string]*viewEntity.StatusView // keyed statusID|viewerID
}

func newFakeViewRepo() *fakeViewRepo {
	return &fakeViewRepo{rows: map[string]*viewEntity.StatusView{}}
}

func (f *fakeViewRepo) MarkViewed(ctx context.Context, statusID, viewerID string) error {
	key := statusID + "|" + viewerID
	if _, ok := f.rows[key]; ok {
		// duplicate upsert is a no-op
		return nil
	}
	f.rows[key] = &viewEntity.StatusView{
		ID:       uuid.Must(uuid.NewV4()),
		StatusID: uuid.Must(uuid.FromString(statusID)),
		ViewerID: uuid.Must(uuid.FromString(viewerID)),
		ViewedAt: time.Now(),
	}
	return nil
}

func (f *fakeViewRepo) Exists(ctx context.Context, statusID, viewerID string) (bool, error) {
	_, ok := f.rows[statusID+"|"+viewerID]
	return ok, nil
}

func (f *fakeViewRepo) CountByStatusID(ctx context.Context, statusID string) (int64, error) {
	var n int64
	for _, r := range f.rows {
		if r.StatusID.String() == statusID {
			n++
		}
	}
	return n, nil
}

func (f *fakeViewRepo) ListByStatusID(ctx context.Context, statusID string) ([]*viewEntity.StatusView, error) {
	var out []*viewEntity.StatusView
	for _, r := range f.rows {
		if r.StatusID.String() == statusID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDirectory struct {
	profiles map[string]*directoryPort.ProfileDTO
}

func (f *fakeDirectory) ProfilesFor(ctx context.Context, ids []string) (map[string]*directoryPort.ProfileDTO, error) {
	out := map[string]*directoryPort.ProfileDTO{}
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type viewFixture struct {
	svc      *ViewService
	views    *fakeViewRepo
	statuses *fakeStatusFinder
	ownerID  string
	statusID string
}

func newViewFixture(t *testing.T) *viewFixture {
	t.Helper()
	statuses := &fakeStatusFinder{byID: map[string]*statusEntity.Status{}}
	views := newFakeViewRepo()
	dir := &fakeDirectory{profiles: map[string]*directoryPort.ProfileDTO{}}

	owner := uuid.Must(uuid.NewV4())
	st := &statusEntity.Status{
		ID:           uuid.Must(uuid.NewV4()),
		UserID:       owner,
		ContentType:  statusEntity.ContentTypeText,
		PrivacyLevel: statusEntity.PrivacyPublic,
	}
	statuses.byID[st.ID.String()] = st

	return &viewFixture{
		svc:      NewViewService(views, statuses, dir),
		views:    views,
		statuses: statuses,
		ownerID:  owner.String(),
		statusID: st.ID.String(),
	}
}

func TestMarkViewedIdempotent(t *testing.T) {
	f := newViewFixture(t)
	viewer := uuid.Must(uuid.NewV4()).String()

	for i := 0; i < 2; i++ {
		ok, err := f.svc.MarkViewed(context.Background(), viewer, f.statusID)
		if err != nil {
			t.Fatalf("MarkViewed() #%d error = %v", i+1, err)
		}
		if !ok {
			t.Fatalf("MarkViewed() #%d = false, want true", i+1)
		}
	}

	count, err := f.svc.ViewerCount(context.Background(), f.ownerID, f.statusID)
	if err != nil {
		t.Fatalf("ViewerCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 after repeated views", count)
	}
}

func TestMarkViewedMissingStatus(t *testing.T) {
	f := newViewFixture(t)
	ok, err := f.svc.MarkViewed(context.Background(), uuid.Must(uuid.NewV4()).String(), uuid.Must(uuid.NewV4()).String())
	if err != nil {
		t.Fatalf("MarkViewed() error = %v", err)
	}
	if ok {
		t.Error("view of a missing status reported success")
	}
}

func TestMarkViewedOwnerWritesNoRow(t *testing.T) {
	f := newViewFixture(t)
	ok, err := f.svc.MarkViewed(context.Background(), f.ownerID, f.statusID)
	if err != nil {
		t.Fatalf("MarkViewed() error = %v", err)
	}
	if !ok {
		t.Fatal("owner self-view reported failure")
	}
	if len(f.views.rows) != 0 {
		t.Error("owner self-view left a row behind")
	}
}

func TestViewerCountOwnerOnly(t *testing.T) {
	f := newViewFixture(t)
	viewer := uuid.Must(uuid.NewV4()).String()
	if _, err := f.svc.MarkViewed(context.Background(), viewer, f.statusID); err != nil {
		t.Fatalf("MarkViewed() error = %v", err)
	}

	count, err := f.svc.ViewerCount(context.Background(), viewer, f.statusID)
	if err != nil {
		t.Fatalf("ViewerCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("non-owner count = %d, want 0", count)
	}
}

func TestViewersOwnerOnly(t *testing.T) {
	f := newViewFixture(t)
	viewer := uuid.Must(uuid.NewV4()).String()
	if _, err := f.svc.MarkViewed(context.Background(), viewer, f.statusID); err != nil {
		t.Fatalf("MarkViewed() error = %v", err)
	}

	viewers, err := f.svc.Viewers(context.Background(), viewer, f.statusID)
	if err != nil {
		t.Fatalf("Viewers() error = %v", err)
	}
	if len(viewers) != 0 {
		t.Errorf("non-owner viewers = %d entries, want none", len(viewers))
	}

	viewers, err = f.svc.Viewers(context.Background(), f.ownerID, f.statusID)
	if err != nil {
		t.Fatalf("Viewers() error = %v", err)
	}
	if len(viewers) != 1 || viewers[0].ViewerID != viewer {
		t.Errorf("owner viewers = %+v, want the single viewer", viewers)
	}
}

func TestViewersCarryProfiles(t *testing.T) {
	f := newViewFixture(t)
	viewer := uuid.Must(uuid.NewV4()).String()
	dir := f.svc.Directory.(*fakeDirectory)
	dir.profiles[viewer] = &directoryPort.ProfileDTO{ID: viewer, DisplayName: "Sara Ahmadi"}

	if _, err := f.svc.MarkViewed(context.Background(), viewer, f.statusID); err != nil {
		t.Fatalf("MarkViewed() error = %v", err)
	}

	viewers, err := f.svc.Viewers(context.Background(), f.ownerID, f.statusID)
	if err != nil {
		t.Fatalf("Viewers() error = %v", err)
	}
	if len(viewers) != 1 || viewers[0].Profile == nil || viewers[0].Profile.DisplayName != "Sara Ahmadi" {
		t.Errorf("viewers = %+v, want profile-labeled entry", viewers)
	}
}
