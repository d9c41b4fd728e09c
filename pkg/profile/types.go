package profile

import (
	"fmt"
)

// Education is one educational background entry.
type Education struct {
	UniversityName string `json:"university_name"`
	Period         string `json:"period"`
	Location       string `json:"location"`
	Degree         string `json:"degree"`
}

// EmploymentHistory is one employment entry. Periods are free text such as
// "01/2021 - 05/2025" or "Jan 2006 - Present".
type EmploymentHistory struct {
	CompanyName string `json:"company_name"`
	Period      string `json:"period"`
	Location    string `json:"location"`
}

// Profile is a stored candidate profile. It holds the ground-truth facts
// that always override generated output.
type Profile struct {
	Name              string              `json:"name"`
	Title             string              `json:"title"`
	Email             string              `json:"email"`
	Phone             string              `json:"phone"`
	Location          string              `json:"location"`
	LinkedIn          string              `json:"linkedin,omitempty"`
	Education         []Education         `json:"education"`
	EmploymentHistory []EmploymentHistory `json:"employment_history"`
}

// ValidationError reports a rejected field on a profile or request.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() (msg string) {
	msg = fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	return msg
}

// Validate checks the required profile fields before persistence.
func (p *Profile) Validate() (err error) {
	if p.Name == "" {
		err = &ValidationError{Field: "name", Message: "name is required"}
		return err
	}

	if p.Email == "" {
		err = &ValidationError{Field: "email", Message: "email is required"}
		return err
	}

	if p.Location == "" {
		err = &ValidationError{Field: "location", Message: "location is required"}
		return err
	}

	if len(p.EmploymentHistory) > MaxEmploymentEntries {
		err = &ValidationError{
			Field:   "employment_history",
			Message: fmt.Sprintf("at most %d entries allowed", MaxEmploymentEntries),
		}
		return err
	}

	if len(p.Education) > MaxEducationEntries {
		err = &ValidationError{
			Field:   "education",
			Message: fmt.Sprintf("at most %d entries allowed", MaxEducationEntries),
		}
		return err
	}

	return err
}
