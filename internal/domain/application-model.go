package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationApproved    ApplicationStatus = "APPROVED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	// ApplicationWithdrawn is part of the stored status set but no endpoint
	// transitions into it yet.
	ApplicationWithdrawn ApplicationStatus = "WITHDRAWN"
)

// IsTerminal reports whether the review workflow is finished for this status.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// ParseApplicationStatus accepts any stored status, for list filtering.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch status := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case ApplicationPending, ApplicationUnderReview, ApplicationApproved,
		ApplicationRejected, ApplicationWithdrawn:
		return status, true
	}
	return "", false
}

// ParseReviewStatus accepts only the statuses a landlord may set through the
// review endpoint.
func ParseReviewStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ApplicationApproved:
		return ApplicationApproved, true
	case ApplicationRejected:
		return ApplicationRejected, true
	case ApplicationUnderReview:
		return ApplicationUnderReview, true
	}
	return "", false
}

type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "EMPLOYED"
	EmploymentSelfEmployed EmploymentStatus = "SELF_EMPLOYED"
	EmploymentUnemployed   EmploymentStatus = "UNEMPLOYED"
	EmploymentStudent      EmploymentStatus = "STUDENT"
	EmploymentRetired      EmploymentStatus = "RETIRED"
)

func ParseEmploymentStatus(s string) (EmploymentStatus, bool) {
	switch EmploymentStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case EmploymentEmployed, EmploymentSelfEmployed, EmploymentUnemployed,
		EmploymentStudent, EmploymentRetired:
		return EmploymentStatus(strings.ToUpper(strings.TrimSpace(s))), true
	}
	return "", false
}

type AccommodationType string

const (
	AccommodationStudio        AccommodationType = "STUDIO"
	AccommodationOneBedroom    AccommodationType = "ONE_BEDROOM"
	AccommodationTwoBedroom    AccommodationType = "TWO_BEDROOM"
	AccommodationThreeBedroom  AccommodationType = "THREE_BEDROOM"
	AccommodationMiniFlat      AccommodationType = "MINI_FLAT"
	AccommodationSelfContained AccommodationType = "SELF_CONTAINED"
	AccommodationDuplex        AccommodationType = "DUPLEX"
)

func ParseAccommodationType(s string) (AccommodationType, bool) {
	switch AccommodationType(strings.ToUpper(strings.TrimSpace(s))) {
	case AccommodationStudio, AccommodationOneBedroom, AccommodationTwoBedroom,
		AccommodationThreeBedroom, AccommodationMiniFlat,
		AccommodationSelfContained, AccommodationDuplex:
		return AccommodationType(strings.ToUpper(strings.TrimSpace(s))), true
	}
	return "", false
}

// Application is a prospective tenant's submitted record awaiting landlord
// review. One record per applicant email.
type Application struct {
	ID                       string            `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicantEmail           string            `gorm:"uniqueIndex;not null" json:"applicantEmail"`
	ApplicantName            string            `gorm:"not null" json:"applicantName"`
	PhoneNumber              string            `gorm:"not null" json:"phoneNumber"`
	DateOfBirth              time.Time         `gorm:"not null" json:"dateOfBirth"`
	EmploymentStatus         EmploymentStatus  `gorm:"type:varchar(20);not null" json:"employmentStatus"`
	EmployerName             *string           `json:"employerName,omitempty"`
	FamilySize               int               `gorm:"not null" json:"familySize"`
	DesiredAccommodationType AccommodationType `gorm:"type:varchar(20);not null" json:"desiredAccommodationType"`
	PreviousAddress          string            `gorm:"not null" json:"previousAddress"`
	ReasonForLeaving         string            `gorm:"not null" json:"reasonForLeaving"`
	YearlyRentCapacity       float64           `gorm:"not null" json:"yearlyRentCapacity"`

	ApplicationStatus ApplicationStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"applicationStatus"`
	ReviewNotes       *string           `json:"reviewNotes,omitempty"`
	ReviewedBy        *string           `gorm:"type:uuid;index" json:"reviewedBy,omitempty"`
	ReviewedAt        *time.Time        `json:"reviewedAt,omitempty"`

	// Landlord is the reviewer back-reference, display only.
	Landlord *User `gorm:"foreignKey:ReviewedBy" json:"-"`

	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *Application) TableName() string {
	return "prospective_tenant_applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.ApplicationStatus == "" {
		a.ApplicationStatus = ApplicationPending
	}
	return nil
}
