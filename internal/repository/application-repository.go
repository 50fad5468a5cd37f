package repository

import (
	"errors"
	"log"

	"github.com/RentHaven/property_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	CreateApplication(app *domain.Application) (*domain.Application, error)
	FindApplicationByID(id string) (*domain.Application, error)
	FindApplicationByEmail(email string) (*domain.Application, error)
	ListApplications(status domain.ApplicationStatus, limit, offset int) ([]domain.Application, error)
	CountApplications(status domain.ApplicationStatus) (int64, error)
	SaveApplication(app *domain.Application) error
	EmailExists(email string) (bool, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) CreateApplication(app *domain.Application) (*domain.Application, error) {
	if app == nil {
		return nil, errors.New("nil application")
	}

	if err := r.db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrApplicationExists
		}
		log.Printf("create application error: %v", err)
		return nil, errors.New("failed to create application")
	}
	return app, nil
}

func (r *applicationRepository) FindApplicationByID(id string) (*domain.Application, error) {
	// Postgres rejects a non-UUID value against the uuid column with a cast
	// error, not ErrRecordNotFound. A malformed id is just an absent record.
	if uuid.Validate(id) != nil {
		return nil, domain.ErrApplicationNotFound
	}

	app := &domain.Application{}
	if err := r.db.Preload("Landlord").First(app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		log.Printf("find application by id error: %v", err)
		return nil, errors.New("failed to find application by id")
	}
	return app, nil
}

func (r *applicationRepository) FindApplicationByEmail(email string) (*domain.Application, error) {
	app := &domain.Application{}
	if err := r.db.First(app, "applicant_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		log.Printf("find application by email error: %v", err)
		return nil, errors.New("failed to find application by email")
	}
	return app, nil
}

// ListApplications returns one page ordered by submission time, newest first.
// An empty status lists every application.
func (r *applicationRepository) ListApplications(status domain.ApplicationStatus, limit, offset int) ([]domain.Application, error) {
	var apps []domain.Application

	q := r.db.Preload("Landlord").Order("submitted_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("application_status = ?", status)
	}
	if err := q.Find(&apps).Error; err != nil {
		log.Printf("list applications error: %v", err)
		return nil, errors.New("failed to list applications")
	}
	return apps, nil
}

func (r *applicationRepository) CountApplications(status domain.ApplicationStatus) (int64, error) {
	var count int64

	q := r.db.Model(&domain.Application{})
	if status != "" {
		q = q.Where("application_status = ?", status)
	}
	if err := q.Count(&count).Error; err != nil {
		log.Printf("count applications error: %v", err)
		return 0, errors.New("failed to count applications")
	}
	return count, nil
}

func (r *applicationRepository) SaveApplication(app *domain.Application) error {
	if app == nil {
		return errors.New("nil application")
	}
	if err := r.db.Omit("Landlord").Save(app).Error; err != nil {
		log.Printf("save application error: %v", err)
		return errors.New("failed to save application")
	}
	return nil
}

func (r *applicationRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Application{}).Where("applicant_email = ?", email).Count(&count).Error; err != nil {
		log.Printf("count applications by email error: %v", err)
		return false, errors.New("failed to check applicant email")
	}
	return count > 0, nil
}
