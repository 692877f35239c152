package models

import "time"

// Recognized vaccination types.
const (
	VacModerna = "moderna"
	VacPfizer  = "pfizer"
	VacJJ      = "j&j"
	VacOther   = "other"
)

// Vaccination records the vaccine type and dose dates for a user.
type Vaccination struct {
	Type       string     `json:"type"`
	FirstDose  time.Time  `json:"firstDose"`
	SecondDose *time.Time `json:"secondDose,omitempty"`
}

// ValidVaccinationType reports whether t is one of the recognized types.
func ValidVaccinationType(t string) bool {
	switch t {
	case VacModerna, VacPfizer, VacJJ, VacOther:
		return true
	}
	return false
}
