package dto

import (
	"net/mail"
	"strings"

	"github.com/RentHaven/property_service/internal/domain"
)

type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
}

// Validate normalizes the request in place and returns field errors, empty
// when the request is acceptable.
func (r *RegisterRequest) Validate() map[string]string {
	errs := map[string]string{}

	r.Email = normalizeEmail(r.Email)
	if !validEmail(r.Email) {
		errs["email"] = "must be a valid email address"
	}
	if len(r.Password) < 6 {
		errs["password"] = "must be at least 6 characters"
	}

	r.FirstName = strings.TrimSpace(r.FirstName)
	if r.FirstName == "" {
		errs["firstName"] = "is required"
	}
	r.LastName = strings.TrimSpace(r.LastName)
	if r.LastName == "" {
		errs["lastName"] = "is required"
	}

	if _, ok := domain.ParseRole(r.Role); !ok {
		errs["role"] = "must be one of LANDLORD, TENANT"
	}
	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() map[string]string {
	errs := map[string]string{}

	r.Email = normalizeEmail(r.Email)
	if !validEmail(r.Email) {
		errs["email"] = "must be a valid email address"
	}
	if r.Password == "" {
		errs["password"] = "is required"
	}
	return errs
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthPayload struct {
	User         *domain.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

type RefreshPayload struct {
	Token string `json:"token"`
}

type EmailAvailability struct {
	Email     string `json:"email"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
