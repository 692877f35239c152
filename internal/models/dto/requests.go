package dto

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/tracewell/covid-social-be/internal/models"
)

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RegisterRequest is the payload for POST /users.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Validate checks the registration payload, failing on the first violation.
func (r RegisterRequest) Validate() error {
	if err := checkName("firstName", r.FirstName); err != nil {
		return err
	}
	if err := checkName("lastName", r.LastName); err != nil {
		return err
	}
	if err := checkEmail(r.Email); err != nil {
		return err
	}
	return checkPassword(r.Password)
}

// LoginRequest is the payload for POST /auth.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login payload.
func (r LoginRequest) Validate() error {
	if err := checkEmail(r.Email); err != nil {
		return err
	}
	return checkPassword(r.Password)
}

// VaccinationRequest is the payload for PUT /users/add-vaccination.
type VaccinationRequest struct {
	Type       string     `json:"type"`
	FirstDose  *time.Time `json:"firstDose"`
	SecondDose *time.Time `json:"secondDose"`
}

// Validate checks the vaccination payload.
func (r VaccinationRequest) Validate() error {
	if r.Type == "" {
		return invalid("type", "is required")
	}
	if !models.ValidVaccinationType(r.Type) {
		return invalid("type", "must be one of moderna, pfizer, j&j, other")
	}
	if r.FirstDose == nil {
		return invalid("firstDose", "is required")
	}
	if r.SecondDose != nil && r.SecondDose.Before(*r.FirstDose) {
		return invalid("secondDose", "cannot be before firstDose")
	}
	return nil
}

// Vaccination converts the validated payload into the domain type.
func (r VaccinationRequest) Vaccination() *models.Vaccination {
	return &models.Vaccination{
		Type:       r.Type,
		FirstDose:  *r.FirstDose,
		SecondDose: r.SecondDose,
	}
}

// CovidStatusRequest is the payload for PUT /users/covid-status. HasCovid is
// a pointer so a missing key is distinguishable from an explicit false.
type CovidStatusRequest struct {
	HasCovid    *bool      `json:"hasCovid"`
	LastExposed *time.Time `json:"lastExposed"`
}

// Validate checks the covid-status payload.
func (r CovidStatusRequest) Validate() error {
	if r.HasCovid == nil {
		return invalid("hasCovid", "is required")
	}
	return nil
}

func checkName(field, value string) error {
	if value == "" {
		return invalid(field, "is required")
	}
	if len(value) > 64 {
		return invalid(field, "must be at most 64 characters")
	}
	return nil
}

func checkEmail(value string) error {
	if value == "" {
		return invalid("email", "is required")
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return invalid("email", "must be a valid email address")
	}
	return nil
}

func checkPassword(value string) error {
	if value == "" {
		return invalid("password", "is required")
	}
	if len(value) < 8 {
		return invalid("password", "must be at least 8 characters")
	}
	if len(value) > 1024 {
		return invalid("password", "must be at most 1024 characters")
	}
	return nil
}
