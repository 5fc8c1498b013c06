package database

import (
	"context"

	"lahza/internal/config"
	userEntity "lahza/internal/core/user"
	directoryPort "lahza/internal/ports/directory"
)

// UserRepositoryDatabase backs both the account port and the directory port:
// bubbles and viewer lists are labeled straight from the user table.
type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(user *userEntity.User) (*userEntity.User, error) {
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (repo *UserRepositoryDatabase) FindByUsernameOrMobile(username, mobile string) (*userEntity.User, error) {
	var user userEntity.User
	if err := config.DB.Where("username = ? OR mobile = ?", username, mobile).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(username string) (*userEntity.User, error) {
	var user userEntity.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *UserRepositoryDatabase) FindByIDs(ids []string) ([]*userEntity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*userEntity.User
	if err := config.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ProfilesFor implements the directory port.
func (repo *UserRepositoryDatabase) ProfilesFor(ctx context.Context, ids []string) (map[string]*directoryPort.ProfileDTO, error) {
	users, err := repo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	profiles := make(map[string]*directoryPort.ProfileDTO, len(users))
	for _, u := range users {
		profiles[u.ID.String()] = &directoryPort.ProfileDTO{
			ID:          u.ID.String(),
			DisplayName: u.DisplayName(),
			AvatarPath:  u.AvatarPath,
		}
	}
	return profiles, nil
}
