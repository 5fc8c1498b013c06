package statusapp

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"lahza/internal/config"
	"lahza/internal/core/cleanup"
	statusEntity "lahza/internal/core/status"
	statusPort "lahza/internal/ports/status"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type fakeStatusRepo struct {
	byID    map[string]*statusEntity.Status
	created []*statusEntity.Status
	deleted []string
	archive []string
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{byID: map[string]*statusEntity.Status{}}
}

func (f *fakeStatusRepo) Create(ctx context.Context, st *statusEntity.Status) (*statusEntity.Status, error) {
	f.created = append(f.created, st)
	f.byID[st.ID.String()] = st
	return st, nil
}

func (f *fakeStatusRepo) FindByID(ctx context.Context, id string) (*statusEntity.Status, error) {
	return f.byID[id], nil
}

func (f *fakeStatusRepo) FindActive(ctx context.Context, now time.Time) ([]*statusEntity.Status, error) {
	return nil, nil
}

func (f *fakeStatusRepo) FindActiveByUserIDs(ctx context.Context, userIDs []string, now time.Time) ([]*statusEntity.Status, error) {
	return nil, nil
}

func (f *fakeStatusRepo) FindActiveByUserID(ctx context.Context, userID string, now time.Time) (*statusEntity.Status, error) {
	for _, st := range f.byID {
		if st.UserID.String() == userID && st.ActiveAt(now) {
			return st, nil
		}
	}
	return nil, nil
}

func (f *fakeStatusRepo) FindAllByUserID(ctx context.Context, userID string, includingInactive bool, now time.Time) ([]*statusEntity.Status, error) {
	var out []*statusEntity.Status
	for _, st := range f.byID {
		if st.UserID.String() != userID {
			continue
		}
		if !includingInactive && !st.ActiveAt(now) {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeStatusRepo) Archive(ctx context.Context, id string, at time.Time) error {
	f.archive = append(f.archive, id)
	if st := f.byID[id]; st != nil {
		st.Archived = true
		st.ArchivedAt = &at
	}
	return nil
}

func (f *fakeStatusRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeStickerRepo struct {
	byStatus map[string][]*statusEntity.Sticker
	deleted  []string
}

func newFakeStickerRepo() *fakeStickerRepo {
	return &fakeStickerRepo{byStatus: map[string][]*statusEntity.Sticker{}}
}

func (f *fakeStickerRepo) AddBatch(ctx context.Context, stickers []*statusEntity.Sticker) error {
	for _, sk := range stickers {
		f.byStatus[sk.StatusID.String()] = append(f.byStatus[sk.StatusID.String()], sk)
	}
	return nil
}

func (f *fakeStickerRepo) FindByStatusID(ctx context.Context, statusID string) ([]*statusEntity.Sticker, error) {
	return f.byStatus[statusID], nil
}

func (f *fakeStickerRepo) DeleteByStatusID(ctx context.Context, statusID string) error {
	f.deleted = append(f.deleted, statusID)
	delete(f.byStatus, statusID)
	return nil
}

type fakeVisibilityRepo struct {
	rows    map[string]map[string]bool
	deleted []string
}

func newFakeVisibilityRepo() *fakeVisibilityRepo {
	return &fakeVisibilityRepo{rows: map[string]map[string]bool{}}
}

func (f *fakeVisibilityRepo) AddBatch(ctx context.Context, rows []*statusEntity.Visibility) error {
	for _, r := range rows {
		sid := r.StatusID.String()
		if f.rows[sid] == nil {
			f.rows[sid] = map[string]bool{}
		}
		f.rows[sid][r.AllowedUserID.String()] = true
	}
	return nil
}

func (f *fakeVisibilityRepo) IsAllowed(ctx context.Context, statusID, viewerID string) (bool, error) {
	return f.rows[statusID][viewerID], nil
}

func (f *fakeVisibilityRepo) DeleteByStatusID(ctx context.Context, statusID string) error {
	f.deleted = append(f.deleted, statusID)
	delete(f.rows, statusID)
	return nil
}

type fakeCleanupRepo struct {
	enqueued []*cleanup.Task
}

func (f *fakeCleanupRepo) Enqueue(ctx context.Context, task *cleanup.Task) (*cleanup.Task, error) {
	f.enqueued = append(f.enqueued, task)
	return task, nil
}

func (f *fakeCleanupRepo) GetPending(ctx context.Context, limit int64) ([]*cleanup.Task, error) {
	return nil, nil
}
func (f *fakeCleanupRepo) BumpAttempts(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeCleanupRepo) MarkDone(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakeCleanupRepo) MarkFailed(ctx context.Context, id uuid.UUID) error   { return nil }

type fakeUploader struct {
	calls int
	err   error
}

func (f *fakeUploader) UploadMedia(ctx context.Context, ownerID string, data []byte, contentType string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return ownerID + "/blob.jpg", nil
}

type fakeObjectStorage struct {
	removed   [][]string
	removeErr error
}

func (f *fakeObjectStorage) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	return nil
}

func (f *fakeObjectStorage) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	return "https://cdn.example/" + path, nil
}

func (f *fakeObjectStorage) Remove(ctx context.Context, paths []string) error {
	f.removed = append(f.removed, paths)
	return f.removeErr
}

type statusFixture struct {
	svc        *StatusService
	statusRepo *fakeStatusRepo
	stickers   *fakeStickerRepo
	visibility *fakeVisibilityRepo
	cleanups   *fakeCleanupRepo
	uploader   *fakeUploader
	storage    *fakeObjectStorage
}

func newStatusFixture() *statusFixture {
	f := &statusFixture{
		statusRepo: newFakeStatusRepo(),
		stickers:   newFakeStickerRepo(),
		visibility: newFakeVisibilityRepo(),
		cleanups:   &fakeCleanupRepo{},
		uploader:   &fakeUploader{},
		storage:    &fakeObjectStorage{},
	}
	f.svc = NewStatusService(f.statusRepo, f.stickers, f.visibility, f.cleanups, f.uploader, f.storage)
	return f
}

func ownerID() string { return uuid.Must(uuid.NewV4()).String() }

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   *statusPort.CreateInput
	}{
		{"text without content", &statusPort.CreateInput{ContentType: "text"}},
		{"text with only whitespace", &statusPort.CreateInput{ContentType: "text", TextContent: "   "}},
		{"image without media", &statusPort.CreateInput{ContentType: "image"}},
		{"video without media", &statusPort.CreateInput{ContentType: "video"}},
		{"unknown content type", &statusPort.CreateInput{ContentType: "audio", TextContent: "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newStatusFixture()
			_, err := f.svc.Create(context.Background(), ownerID(), tc.in)
			if !errors.Is(err, statusEntity.ErrInvalidContent) {
				t.Errorf("Create() error = %v, want ErrInvalidContent", err)
			}
			if len(f.statusRepo.created) != 0 {
				t.Error("invalid input still persisted a row")
			}
		})
	}
}

func TestCreateTextStatus(t *testing.T) {
	f := newStatusFixture()
	owner := ownerID()

	dto, err := f.svc.Create(context.Background(), owner, &statusPort.CreateInput{
		ContentType: "text",
		TextContent: "hello",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if dto.UserID != owner {
		t.Errorf("UserID = %q, want %q", dto.UserID, owner)
	}
	if got := dto.ExpiresAt.Sub(dto.CreatedAt); got != statusEntity.TTL {
		t.Errorf("lifetime = %v, want %v", got, statusEntity.TTL)
	}
	if dto.Privacy != string(statusEntity.PrivacyPublic) {
		t.Errorf("default privacy = %q, want public", dto.Privacy)
	}
	if f.uploader.calls != 0 {
		t.Error("text status triggered a media upload")
	}
}

func TestCreateImageUploadFailureAborts(t *testing.T) {
	f := newStatusFixture()
	f.uploader.err = errors.New("storage down")

	_, err := f.svc.Create(context.Background(), ownerID(), &statusPort.CreateInput{
		ContentType: "image",
		Media:       []byte("jpeg bytes"),
		MediaMime:   "image/jpeg",
	})
	if !errors.Is(err, statusEntity.ErrUploadFailed) {
		t.Fatalf("Create() error = %v, want ErrUploadFailed", err)
	}
	if len(f.statusRepo.created) != 0 {
		t.Error("row persisted despite upload failure")
	}
}

func TestCreateCustomPrivacyWritesAllowList(t *testing.T) {
	f := newStatusFixture()
	allowed := ownerID()

	dto, err := f.svc.Create(context.Background(), ownerID(), &statusPort.CreateInput{
		ContentType:    "text",
		TextContent:    "for a few",
		Privacy:        "custom",
		AllowedUserIDs: []string{allowed, "not-a-uuid"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	ok, _ := f.visibility.IsAllowed(context.Background(), dto.ID, allowed)
	if !ok {
		t.Error("allowed viewer missing from allow-list")
	}
	if len(f.visibility.rows[dto.ID]) != 1 {
		t.Errorf("allow-list size = %d, want 1 (invalid id skipped)", len(f.visibility.rows[dto.ID]))
	}
}

func TestCreateWithStickers(t *testing.T) {
	f := newStatusFixture()

	dto, err := f.svc.Create(context.Background(), ownerID(), &statusPort.CreateInput{
		ContentType: "text",
		TextContent: "party",
		Stickers: []statusPort.StickerDTO{
			{StickerID: "confetti", ImagePath: "stickers/confetti.webp", X: 0.2, Y: 0.8, Scale: 1.5},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(dto.Stickers) != 1 || dto.Stickers[0].StickerID != "confetti" {
		t.Errorf("stickers = %+v, want the confetti overlay", dto.Stickers)
	}
}

func TestDeleteNotOwner(t *testing.T) {
	f := newStatusFixture()
	owner := ownerID()
	dto, err := f.svc.Create(context.Background(), owner, &statusPort.CreateInput{
		ContentType: "text",
		TextContent: "mine",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := f.svc.Delete(context.Background(), ownerID(), dto.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if ok {
		t.Error("foreign delete reported success")
	}
	if len(f.statusRepo.deleted) != 0 {
		t.Error("foreign delete removed the row")
	}
}

func TestDeleteMissing(t *testing.T) {
	f := newStatusFixture()
	ok, err := f.svc.Delete(context.Background(), ownerID(), uuid.Must(uuid.NewV4()).String())
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if ok {
		t.Error("deleting a missing status reported success")
	}
}

func TestDeleteCascades(t *testing.T) {
	f := newStatusFixture()
	owner := ownerID()
	dto, err := f.svc.Create(context.Background(), owner, &statusPort.CreateInput{
		ContentType: "image",
		Media:       []byte("jpeg bytes"),
		MediaMime:   "image/jpeg",
		Stickers:    []statusPort.StickerDTO{{StickerID: "heart", ImagePath: "stickers/heart.webp"}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := f.svc.Delete(context.Background(), owner, dto.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !ok {
		t.Fatal("owner delete reported failure")
	}
	if len(f.stickers.deleted) != 1 || len(f.visibility.deleted) != 1 {
		t.Error("sticker or allow-list rows were not cascaded")
	}
	if len(f.storage.removed) != 1 {
		t.Fatalf("storage.Remove calls = %d, want 1", len(f.storage.removed))
	}
	if got := f.storage.removed[0]; len(got) != 1 || got[0] != owner+"/blob.jpg" {
		t.Errorf("removed paths = %v, want the media blob", got)
	}
	if len(f.cleanups.enqueued) != 0 {
		t.Error("successful blob removal still enqueued a cleanup task")
	}
}

func TestDeleteBlobFailureStillDeletesRow(t *testing.T) {
	f := newStatusFixture()
	f.storage.removeErr = errors.New("storage down")
	owner := ownerID()
	dto, err := f.svc.Create(context.Background(), owner, &statusPort.CreateInput{
		ContentType: "video",
		Media:       []byte("mp4 bytes"),
		MediaMime:   "video/mp4",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := f.svc.Delete(context.Background(), owner, dto.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !ok {
		t.Fatal("blob failure blocked the row delete")
	}
	if len(f.statusRepo.deleted) != 1 {
		t.Error("row was not deleted")
	}
	if len(f.cleanups.enqueued) != 1 {
		t.Fatalf("cleanup tasks = %d, want 1", len(f.cleanups.enqueued))
	}
	task := f.cleanups.enqueued[0]
	if task.Status != cleanup.StatusPending {
		t.Errorf("task status = %q, want pending", task.Status)
	}
	if paths := task.PathList(); len(paths) != 1 || paths[0] != owner+"/blob.jpg" {
		t.Errorf("task paths = %v, want the orphaned blob", paths)
	}
}

func TestArchive(t *testing.T) {
	f := newStatusFixture()
	owner := ownerID()
	dto, err := f.svc.Create(context.Background(), owner, &statusPort.CreateInput{
		ContentType: "text",
		TextContent: "short lived",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := f.svc.Archive(context.Background(), ownerID(), dto.ID)
	if err != nil || ok {
		t.Errorf("foreign archive = (%v, %v), want (false, nil)", ok, err)
	}

	ok, err = f.svc.Archive(context.Background(), owner, dto.ID)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if !ok {
		t.Fatal("owner archive reported failure")
	}

	active, err := f.svc.GetActive(context.Background(), owner)
	if err != nil {
		t.Fatalf("GetActive() error = %v", err)
	}
	if active != nil {
		t.Error("archived status still surfaced as active")
	}

	all, err := f.svc.GetAll(context.Background(), owner, true)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 1 || !all[0].Archived {
		t.Errorf("owner history = %+v, want the archived status", all)
	}
}
