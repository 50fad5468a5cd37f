package services_test

import (
	"testing"
	"time"

	"github.com/RentHaven/property_service/internal/domain"
	"github.com/RentHaven/property_service/internal/dto"
	"github.com/RentHaven/property_service/internal/helper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Application{}))
	return db
}

func newTestAuth() helper.Auth {
	return helper.SetupAuth("test-access", "test-refresh", time.Hour, 24*time.Hour)
}

// stubProducer records published event keys.
type stubProducer struct {
	keys []string
}

func (p *stubProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	return nil
}

func applicationFixture(email string) dto.ApplicationRequest {
	employer := "Acme Ltd"
	return dto.ApplicationRequest{
		ApplicantEmail:           email,
		ApplicantName:            "Ada Applicant",
		PhoneNumber:              "+2348012345678",
		DateOfBirth:              "1990-05-10",
		EmploymentStatus:         "EMPLOYED",
		EmployerName:             &employer,
		FamilySize:               3,
		DesiredAccommodationType: "TWO_BEDROOM",
		PreviousAddress:          "12 Old Lane",
		ReasonForLeaving:         "Relocation for work",
		YearlyRentCapacity:       12000,
	}
}

func registerFixture(email string, role string) dto.RegisterRequest {
	phone := "+15550001111"
	return dto.RegisterRequest{
		Email:     email,
		Password:  "hunter22",
		FirstName: "Lena",
		LastName:  "Landlord",
		Phone:     &phone,
		Role:      role,
	}
}
