package profile

import (
	"github.com/pkg/errors"
)

// Entry caps for interactively built profiles.
const (
	MaxEmploymentEntries = 3
	MaxEducationEntries  = 2
)

// FormState accumulates profile entries while a profile is being built
// interactively. Entry counts are capped so the rendered resume stays
// within a single page's experience section.
type FormState struct {
	Employment []EmploymentHistory
	Education  []Education
}

// AddEmployment appends an employment entry, enforcing the cap.
func (f *FormState) AddEmployment(entry EmploymentHistory) (err error) {
	if len(f.Employment) >= MaxEmploymentEntries {
		err = errors.Errorf("at most %d employment entries allowed", MaxEmploymentEntries)
		return err
	}

	f.Employment = append(f.Employment, entry)
	return err
}

// RemoveEmployment removes the employment entry at index i.
func (f *FormState) RemoveEmployment(i int) (err error) {
	if i < 0 || i >= len(f.Employment) {
		err = errors.Errorf("no employment entry at index %d", i)
		return err
	}

	f.Employment = append(f.Employment[:i], f.Employment[i+1:]...)
	return err
}

// AddEducation appends an education entry, enforcing the cap.
func (f *FormState) AddEducation(entry Education) (err error) {
	if len(f.Education) >= MaxEducationEntries {
		err = errors.Errorf("at most %d education entries allowed", MaxEducationEntries)
		return err
	}

	f.Education = append(f.Education, entry)
	return err
}

// RemoveEducation removes the education entry at index i.
func (f *FormState) RemoveEducation(i int) (err error) {
	if i < 0 || i >= len(f.Education) {
		err = errors.Errorf("no education entry at index %d", i)
		return err
	}

	f.Education = append(f.Education[:i], f.Education[i+1:]...)
	return err
}

// Apply copies the accumulated entries onto a profile.
func (f *FormState) Apply(p *Profile) {
	p.EmploymentHistory = f.Employment
	p.Education = f.Education
}
