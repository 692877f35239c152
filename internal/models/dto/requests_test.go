package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Password:  "password1",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RegisterRequest)
		wantField string
	}{
		{"valid", func(r *RegisterRequest) {}, ""},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }, "firstName"},
		{"first name too long", func(r *RegisterRequest) { r.FirstName = strings.Repeat("x", 65) }, "firstName"},
		{"missing last name", func(r *RegisterRequest) { r.LastName = "" }, "lastName"},
		{"last name too long", func(r *RegisterRequest) { r.LastName = strings.Repeat("x", 65) }, "lastName"},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, "email"},
		{"malformed email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }, "password"},
		{"short password", func(r *RegisterRequest) { r.Password = "short1" }, "password"},
		{"long password", func(r *RegisterRequest) { r.Password = strings.Repeat("x", 1025) }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestRegisterRequestFailsFast(t *testing.T) {
	// both fields bad: only the first is reported
	req := RegisterRequest{FirstName: "", LastName: "", Email: "a@b.com", Password: "password1"}
	var verr *ValidationError
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, "firstName", verr.Field)
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "a@b.com", Password: "password1"}.Validate())

	var verr *ValidationError
	require.ErrorAs(t, LoginRequest{Email: "bad", Password: "password1"}.Validate(), &verr)
	assert.Equal(t, "email", verr.Field)

	require.ErrorAs(t, LoginRequest{Email: "a@b.com", Password: "short"}.Validate(), &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestVaccinationRequestValidate(t *testing.T) {
	first := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	second := first.AddDate(0, 1, 0)
	early := first.AddDate(0, -1, 0)

	tests := []struct {
		name      string
		req       VaccinationRequest
		wantField string
	}{
		{"valid single dose", VaccinationRequest{Type: "j&j", FirstDose: &first}, ""},
		{"valid two doses", VaccinationRequest{Type: "pfizer", FirstDose: &first, SecondDose: &second}, ""},
		{"missing type", VaccinationRequest{FirstDose: &first}, "type"},
		{"unknown type", VaccinationRequest{Type: "sputnik", FirstDose: &first}, "type"},
		{"missing first dose", VaccinationRequest{Type: "moderna"}, "firstDose"},
		{"second before first", VaccinationRequest{Type: "moderna", FirstDose: &first, SecondDose: &early}, "secondDose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestCovidStatusRequestValidate(t *testing.T) {
	has := true
	assert.NoError(t, CovidStatusRequest{HasCovid: &has}.Validate())

	var verr *ValidationError
	require.ErrorAs(t, CovidStatusRequest{}.Validate(), &verr)
	assert.Equal(t, "hasCovid", verr.Field)
}
