package directory

import "context"

// Directory resolves user ids to the profile fields bubbles are labeled with.
type Directory interface {
	ProfilesFor(ctx context.Context, ids []string) (map[string]*ProfileDTO, error)
}

type ProfileDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarPath  string `json:"avatar_path,omitempty"`
}
