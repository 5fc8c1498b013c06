package user

import "lahza/internal/core/user"

// UserRepository is the port for account rows.
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByUsernameOrMobile(username, mobile string) (*user.User, error)
	FindByUsername(username string) (*user.User, error)
	FindByIDs(ids []string) ([]*user.User, error)
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Mobile     string `json:"mobile"`
	AvatarPath string `json:"avatar_path,omitempty"`
}
