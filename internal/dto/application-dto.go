package dto

import (
	"strings"
	"time"

	"github.com/RentHaven/property_service/internal/domain"
)

type ApplicationRequest struct {
	ApplicantEmail           string  `json:"applicantEmail"`
	ApplicantName            string  `json:"applicantName"`
	PhoneNumber              string  `json:"phoneNumber"`
	DateOfBirth              string  `json:"dateOfBirth"`
	EmploymentStatus         string  `json:"employmentStatus"`
	EmployerName             *string `json:"employerName,omitempty"`
	FamilySize               int     `json:"familySize"`
	DesiredAccommodationType string  `json:"desiredAccommodationType"`
	PreviousAddress          string  `json:"previousAddress"`
	ReasonForLeaving         string  `json:"reasonForLeaving"`
	YearlyRentCapacity       float64 `json:"yearlyRentCapacity"`
}

func (r *ApplicationRequest) Validate() map[string]string {
	errs := map[string]string{}

	r.ApplicantEmail = normalizeEmail(r.ApplicantEmail)
	if !validEmail(r.ApplicantEmail) {
		errs["applicantEmail"] = "must be a valid email address"
	}
	r.ApplicantName = strings.TrimSpace(r.ApplicantName)
	if r.ApplicantName == "" {
		errs["applicantName"] = "is required"
	}
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	if r.PhoneNumber == "" {
		errs["phoneNumber"] = "is required"
	}
	if _, err := parseDate(r.DateOfBirth); err != nil {
		errs["dateOfBirth"] = "must be an ISO 8601 date"
	}
	if _, ok := domain.ParseEmploymentStatus(r.EmploymentStatus); !ok {
		errs["employmentStatus"] = "must be one of EMPLOYED, SELF_EMPLOYED, UNEMPLOYED, STUDENT, RETIRED"
	}
	if r.FamilySize < 1 {
		errs["familySize"] = "must be at least 1"
	}
	if _, ok := domain.ParseAccommodationType(r.DesiredAccommodationType); !ok {
		errs["desiredAccommodationType"] = "must be a known accommodation type"
	}
	r.PreviousAddress = strings.TrimSpace(r.PreviousAddress)
	if r.PreviousAddress == "" {
		errs["previousAddress"] = "is required"
	}
	r.ReasonForLeaving = strings.TrimSpace(r.ReasonForLeaving)
	if r.ReasonForLeaving == "" {
		errs["reasonForLeaving"] = "is required"
	}
	if r.YearlyRentCapacity < 0 {
		errs["yearlyRentCapacity"] = "must be zero or greater"
	}
	return errs
}

// ToModel assumes Validate passed.
func (r *ApplicationRequest) ToModel() *domain.Application {
	dob, _ := parseDate(r.DateOfBirth)
	employment, _ := domain.ParseEmploymentStatus(r.EmploymentStatus)
	accommodation, _ := domain.ParseAccommodationType(r.DesiredAccommodationType)

	var employer *string
	if r.EmployerName != nil {
		if name := strings.TrimSpace(*r.EmployerName); name != "" {
			employer = &name
		}
	}

	return &domain.Application{
		ApplicantEmail:           r.ApplicantEmail,
		ApplicantName:            r.ApplicantName,
		PhoneNumber:              r.PhoneNumber,
		DateOfBirth:              dob,
		EmploymentStatus:         employment,
		EmployerName:             employer,
		FamilySize:               r.FamilySize,
		DesiredAccommodationType: accommodation,
		PreviousAddress:          r.PreviousAddress,
		ReasonForLeaving:         r.ReasonForLeaving,
		YearlyRentCapacity:       r.YearlyRentCapacity,
		ApplicationStatus:        domain.ApplicationPending,
	}
}

type ReviewRequest struct {
	ApplicationStatus string  `json:"applicationStatus"`
	ReviewNotes       *string `json:"reviewNotes,omitempty"`
}

func (r *ReviewRequest) Validate() map[string]string {
	errs := map[string]string{}
	if _, ok := domain.ParseReviewStatus(r.ApplicationStatus); !ok {
		errs["applicationStatus"] = "must be one of APPROVED, REJECTED, UNDER_REVIEW"
	}
	if r.ReviewNotes != nil {
		trimmed := strings.TrimSpace(*r.ReviewNotes)
		r.ReviewNotes = &trimmed
	}
	return errs
}

// UserSummary is the reviewer projection attached to listed applications.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ApplicationResponse struct {
	domain.Application
	Landlord *UserSummary `json:"landlord,omitempty"`
}

func NewApplicationResponse(app *domain.Application) ApplicationResponse {
	resp := ApplicationResponse{Application: *app}
	if app.Landlord != nil {
		resp.Landlord = &UserSummary{
			ID:        app.Landlord.ID,
			FirstName: app.Landlord.FirstName,
			LastName:  app.Landlord.LastName,
			Email:     app.Landlord.Email,
		}
	}
	return resp
}

func NewApplicationResponseList(apps []domain.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}

// ApplicationStatusResponse is the public status projection. Financial and
// personal detail fields are deliberately absent.
type ApplicationStatusResponse struct {
	ID                string                   `json:"id"`
	ApplicantName     string                   `json:"applicantName"`
	ApplicationStatus domain.ApplicationStatus `json:"applicationStatus"`
	SubmittedAt       time.Time                `json:"submittedAt"`
	ReviewedAt        *time.Time               `json:"reviewedAt,omitempty"`
	ReviewNotes       *string                  `json:"reviewNotes,omitempty"`
}

func NewApplicationStatusResponse(app *domain.Application) ApplicationStatusResponse {
	return ApplicationStatusResponse{
		ID:                app.ID,
		ApplicantName:     app.ApplicantName,
		ApplicationStatus: app.ApplicationStatus,
		SubmittedAt:       app.SubmittedAt,
		ReviewedAt:        app.ReviewedAt,
		ReviewNotes:       app.ReviewNotes,
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
