package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ObjectStorageHTTP talks to a bucket-style storage API over REST: raw-body
// uploads, POST-to-sign for time-limited URLs, batch delete by path. All
// requests carry the service key; signed URLs are the only unauthenticated
// read path handed out.
type ObjectStorageHTTP struct {
	BaseURL    string
	Bucket     string
	ServiceKey string
	HTTPClient *http.Client
}

func NewObjectStorageHTTP(baseURL, bucket, serviceKey string) *ObjectStorageHTTP {
	return &ObjectStorageHTTP{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Bucket:     bucket,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *ObjectStorageHTTP) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	endpoint := fmt.Sprintf("%s/object/%s/%s", s.BaseURL, s.Bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("storage upload failed with status %d: %s", res.StatusCode, string(body))
	}
	return nil
}

func (s *ObjectStorageHTTP) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	endpoint := fmt.Sprintf("%s/object/sign/%s/%s", s.BaseURL, s.Bucket, path)
	payload, err := json.Marshal(map[string]int64{"expiresIn": int64(ttl.Seconds())})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("storage sign failed with status %d: %s", res.StatusCode, string(body))
	}

	var signRes struct {
		SignedURL string `json:"signedURL"`
	}
	if err := json.NewDecoder(res.Body).Decode(&signRes); err != nil {
		return "", err
	}
	if signRes.SignedURL == "" {
		return "", fmt.Errorf("storage sign returned no URL for %s", path)
	}
	return s.BaseURL + signRes.SignedURL, nil
}

// Remove deletes a batch of objects. A partial failure comes back as an
// error so the caller can requeue the whole batch; removals are idempotent.
func (s *ObjectStorageHTTP) Remove(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	endpoint := fmt.Sprintf("%s/object/%s", s.BaseURL, s.Bucket)
	payload, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("storage remove failed with status %d: %s", res.StatusCode, string(body))
	}
	return nil
}
