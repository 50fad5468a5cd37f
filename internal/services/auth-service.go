package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/RentHaven/property_service/internal/domain"
	"github.com/RentHaven/property_service/internal/dto"
	"github.com/RentHaven/property_service/internal/helper"
	"github.com/RentHaven/property_service/internal/interfaces"
	"github.com/RentHaven/property_service/internal/repository"
)

type AuthService interface {
	Register(input dto.RegisterRequest) (*dto.AuthPayload, error)
	Login(input dto.LoginRequest) (*dto.AuthPayload, error)
	RefreshAccessToken(refreshToken string) (*dto.RefreshPayload, error)
	CheckEmailAvailability(email string) (*dto.EmailAvailability, error)
	GetUserByID(id string) (*domain.User, error)
}

type authService struct {
	repo    repository.UserRepository
	appRepo repository.ApplicationRepository
	auth    helper.Auth

	producer interfaces.ProducerHandler
}

func NewAuthService(
	repo repository.UserRepository,
	appRepo repository.ApplicationRepository,
	auth helper.Auth,
	producer interfaces.ProducerHandler,
) AuthService {
	return &authService{
		repo:     repo,
		appRepo:  appRepo,
		auth:     auth,
		producer: producer,
	}
}

func (s *authService) Register(input dto.RegisterRequest) (*dto.AuthPayload, error) {
	role, ok := domain.ParseRole(input.Role)
	if !ok {
		return nil, errors.New("invalid role")
	}

	// Friendly pre-check; the unique index catches the concurrent case and
	// CreateUser reports it as the same conflict.
	if existing, err := s.repo.FindUserByEmail(input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	newUser := &domain.User{
		Email:        input.Email,
		PasswordHash: hashed,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         role,
		IsActive:     true,
	}

	user, err := s.repo.CreateUser(newUser)
	if err != nil {
		return nil, err
	}

	payload, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	if s.producer != nil {
		event := fmt.Sprintf(`{"user_id":%q,"email":%q,"role":%q,"registered_at":%q}`,
			user.ID, user.Email, user.Role, time.Now().Format(time.RFC3339))
		_ = s.producer.PublishMessage([]byte("user.registered"), []byte(event))
	}

	return payload, nil
}

// Login deliberately reports the same error for an unknown email, a wrong
// password, and a deactivated account.
func (s *authService) Login(input dto.LoginRequest) (*dto.AuthPayload, error) {
	user, err := s.repo.FindUserByEmail(input.Email)
	if err != nil || user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) RefreshAccessToken(refreshToken string) (*dto.RefreshPayload, error) {
	userID, err := s.auth.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.repo.FindUserByID(userID)
	if err != nil || user == nil || !user.IsActive {
		return nil, domain.ErrInvalidRefreshToken
	}

	token, err := s.auth.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.New("could not generate token")
	}
	return &dto.RefreshPayload{Token: token}, nil
}

// CheckEmailAvailability treats an email as taken when it belongs to a user
// or to a submitted application.
func (s *authService) CheckEmailAvailability(email string) (*dto.EmailAvailability, error) {
	userTaken, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, err
	}

	appTaken, err := s.appRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}

	available := !userTaken && !appTaken
	msg := "Email is available"
	if !available {
		msg = "Email is already registered or used in an application"
	}

	return &dto.EmailAvailability{
		Email:     email,
		Available: available,
		Message:   msg,
	}, nil
}

func (s *authService) GetUserByID(id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindUserByID(id)
}

func (s *authService) issueTokens(user *domain.User) (*dto.AuthPayload, error) {
	token, err := s.auth.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.New("could not generate token")
	}
	refresh, err := s.auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.New("could not generate refresh token")
	}

	return &dto.AuthPayload{
		User:         user,
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
