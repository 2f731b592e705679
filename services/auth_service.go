package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/repository"
	"github.com/asher5712/LittleLemonAPI/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService issues tokens and registers accounts. New accounts hold no
// roles, which makes them customers; staff roles are granted through the
// group endpoints by a manager.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("username already registered: %w", ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}
