package repository

import (
	"errors"
	"log"

	"github.com/RentHaven/property_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(id string) (*domain.User, error)
	EmailExists(email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser relies on the unique index on email as the authoritative guard:
// a concurrent duplicate surfaces here as ErrEmailTaken even when the
// service-level pre-check passed.
func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		log.Printf("create user error: %v", err)
		return nil, errors.New("failed to create user")
	}
	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		log.Printf("find user by email error: %v", err)
		return nil, errors.New("failed to find user by email")
	}
	return user, nil
}

func (r *userRepository) FindUserByID(id string) (*domain.User, error) {
	// A non-UUID id would fail the uuid column cast on postgres instead of
	// returning ErrRecordNotFound. Treat it as an absent user.
	if uuid.Validate(id) != nil {
		return nil, domain.ErrUserNotFound
	}

	user := &domain.User{}
	if err := r.db.First(user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		log.Printf("find user by id error: %v", err)
		return nil, errors.New("failed to find user by id")
	}
	return user, nil
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("count users by email error: %v", err)
		return false, errors.New("failed to check user email")
	}
	return count > 0, nil
}
