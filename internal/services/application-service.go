package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/RentHaven/property_service/internal/domain"
	"github.com/RentHaven/property_service/internal/dto"
	"github.com/RentHaven/property_service/internal/interfaces"
	"github.com/RentHaven/property_service/internal/repository"
)

type ApplicationService interface {
	Submit(input dto.ApplicationRequest) (*domain.Application, error)
	List(status string, page, limit int) ([]domain.Application, int64, error)
	GetByID(id string) (*domain.Application, error)
	Review(id string, reviewerID string, input dto.ReviewRequest) (*domain.Application, error)
	GetStatusByEmail(email string) (*dto.ApplicationStatusResponse, error)
}

type applicationService struct {
	repo repository.ApplicationRepository

	// producer is the notification hook: confirmation and decision mail is
	// sent by a downstream consumer, never from here.
	producer interfaces.ProducerHandler
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	producer interfaces.ProducerHandler,
) ApplicationService {
	return &applicationService{
		repo:     repo,
		producer: producer,
	}
}

func (s *applicationService) Submit(input dto.ApplicationRequest) (*domain.Application, error) {
	// Pre-check for a friendly error. The unique index on applicant_email is
	// the real guard against concurrent duplicates.
	if existing, err := s.repo.FindApplicationByEmail(input.ApplicantEmail); err == nil && existing != nil {
		return nil, domain.ErrApplicationExists
	}

	app, err := s.repo.CreateApplication(input.ToModel())
	if err != nil {
		return nil, err
	}

	s.publishEvent("application.submitted", app)
	return app, nil
}

func (s *applicationService) List(status string, page, limit int) ([]domain.Application, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	// Unknown filter values are rejected at the handler; only case is
	// normalized here.
	filter := domain.ApplicationStatus(strings.ToUpper(strings.TrimSpace(status)))

	total, err := s.repo.CountApplications(filter)
	if err != nil {
		return nil, 0, err
	}

	apps, err := s.repo.ListApplications(filter, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (s *applicationService) GetByID(id string) (*domain.Application, error) {
	if id == "" {
		return nil, domain.ErrApplicationNotFound
	}
	return s.repo.FindApplicationByID(id)
}

// Review moves an application through the review state machine. Approved and
// rejected are terminal: once set, no further review is accepted.
func (s *applicationService) Review(id string, reviewerID string, input dto.ReviewRequest) (*domain.Application, error) {
	status, ok := domain.ParseReviewStatus(input.ApplicationStatus)
	if !ok {
		return nil, fmt.Errorf("invalid review status %q", input.ApplicationStatus)
	}

	app, err := s.repo.FindApplicationByID(id)
	if err != nil {
		return nil, err
	}

	if app.ApplicationStatus.IsTerminal() {
		return nil, domain.ErrApplicationFinalized
	}

	now := time.Now()
	app.ApplicationStatus = status
	app.ReviewNotes = input.ReviewNotes
	app.ReviewedBy = &reviewerID
	app.ReviewedAt = &now

	if err := s.repo.SaveApplication(app); err != nil {
		return nil, err
	}

	// Reload so the reviewer back-reference is populated for the response.
	app, err = s.repo.FindApplicationByID(app.ID)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.ApplicationApproved:
		// Downstream: provision the tenant account and mail credentials.
		s.publishEvent("application.approved", app)
	case domain.ApplicationRejected:
		s.publishEvent("application.rejected", app)
	}

	return app, nil
}

func (s *applicationService) GetStatusByEmail(email string) (*dto.ApplicationStatusResponse, error) {
	app, err := s.repo.FindApplicationByEmail(email)
	if err != nil {
		return nil, err
	}

	resp := dto.NewApplicationStatusResponse(app)
	return &resp, nil
}

func (s *applicationService) publishEvent(key string, app *domain.Application) {
	if s.producer == nil {
		return
	}
	payload := fmt.Sprintf(`{"application_id":%q,"applicant_email":%q,"status":%q,"occurred_at":%q}`,
		app.ID, app.ApplicantEmail, app.ApplicationStatus, time.Now().Format(time.RFC3339))
	_ = s.producer.PublishMessage([]byte(key), []byte(payload))
}
