package userapp

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	userEntity "lahza/internal/core/user"
	userPort "lahza/internal/ports/user"
)

type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// LoginUser verifies credentials and issues the session token.
func (s *UserService) LoginUser(ctx context.Context, username string, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		log.Println("Error finding user:", err)
		return nil, errors.New("invalid credentials")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		log.Println("invalid password")
		return nil, errors.New("invalid credentials")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		log.Println("Error generating JWT:", err)
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
	}, nil
}

func (s *UserService) generateJWT(user *userEntity.User) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    "lahza",
		ExpiresAt: time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// RegisterUser creates an account with a hashed password.
func (s *UserService) RegisterUser(ctx context.Context, name, family, username, mobile, password string) (*userPort.UserDTO, error) {
	existingUser, err := s.UserRepository.FindByUsernameOrMobile(username, mobile)
	if err == nil && existingUser != nil {
		return nil, errors.New("username or mobile already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     name,
		Family:   family,
		Username: username,
		Mobile:   mobile,
		Password: string(hashedPassword),
	}

	u, err := s.UserRepository.Create(user)
	if err != nil {
		return nil, err
	}

	return &userPort.UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
		Mobile:   u.Mobile,
	}, nil
}
