package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Anklebracelet24/movieApp-ruiz/models"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the persistence contract the auth service depends on,
// implemented by data_access.UserRepository.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id primitive.ObjectID) error
}

type AuthService struct {
	userRepo   UserStore
	tokens     *TokenService
	adminEmail string
}

func NewAuthService(userRepo UserStore, tokens *TokenService, adminEmail string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		adminEmail: adminEmail,
	}
}

func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if existingUser != nil {
		return "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		IsAdmin:   s.adminEmail != "" && strings.EqualFold(req.Email, s.adminEmail),
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Issue(user)
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return "", err
	}

	return s.tokens.Issue(user)
}
