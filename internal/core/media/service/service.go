package mediaapp

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	mediaPort "lahza/internal/ports/media"
)

// DefaultSignedURLTTL matches what story players request for playback.
const DefaultSignedURLTTL = time.Hour

type MediaService struct {
	Storage  mediaPort.ObjectStorage
	URLCache mediaPort.URLCache
}

func NewMediaService(storage mediaPort.ObjectStorage, cache mediaPort.URLCache) *MediaService {
	return &MediaService{
		Storage:  storage,
		URLCache: cache,
	}
}

// UploadMedia writes one blob under the owner's prefix and returns its path.
// The per-owner prefix keeps cascade deletion a prefix affair.
func (s *MediaService) UploadMedia(ctx context.Context, ownerID string, data []byte, contentType string) (string, error) {
	path := fmt.Sprintf("%s/%s.%s", ownerID, uuid.Must(uuid.NewV4()).String(), extFor(contentType))
	if err := s.Storage.Upload(ctx, path, data, contentType); err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	return path, nil
}

// SignedURL issues a time-limited playback URL, memoized for slightly less
// than its lifetime so a cached URL is never returned already expired.
func (s *MediaService) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}

	key := "signedurl:" + path
	if s.URLCache != nil {
		if url, err := s.URLCache.Get(ctx, key); err == nil && url != "" {
			return url, nil
		}
	}

	url, err := s.Storage.CreateSignedURL(ctx, path, ttl)
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", path, err)
	}

	if s.URLCache != nil && ttl > 2*time.Minute {
		_ = s.URLCache.Set(ctx, key, url, ttl-time.Minute)
	}
	return url, nil
}

func extFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "video/mp4":
		return "mp4"
	case "video/quicktime":
		return "mov"
	case "video/webm":
		return "webm"
	default:
		return "bin"
	}
}
