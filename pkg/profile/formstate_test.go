package profile

import (
	"testing"
)

func TestFormStateEmploymentCap(t *testing.T) {
	var fs FormState

	for i := 0; i < MaxEmploymentEntries; i++ {
		err := fs.AddEmployment(EmploymentHistory{
			CompanyName: "Company",
			Period:      "2020-2021",
			Location:    "Remote",
		})
		if err != nil {
			t.Fatalf("Unexpected error adding entry %d: %v", i, err)
		}
	}

	err := fs.AddEmployment(EmploymentHistory{CompanyName: "One Too Many"})
	if err == nil {
		t.Error("Expected error adding entry past the cap, got nil")
	}

	if len(fs.Employment) != MaxEmploymentEntries {
		t.Errorf("Expected %d entries, got %d", MaxEmploymentEntries, len(fs.Employment))
	}
}

func TestFormStateEducationCap(t *testing.T) {
	var fs FormState

	for i := 0; i < MaxEducationEntries; i++ {
		err := fs.AddEducation(Education{
			UniversityName: "State University",
			Period:         "2014-2018",
			Location:       "Springfield, IL",
			Degree:         "B.S.",
		})
		if err != nil {
			t.Fatalf("Unexpected error adding entry %d: %v", i, err)
		}
	}

	err := fs.AddEducation(Education{UniversityName: "One Too Many"})
	if err == nil {
		t.Error("Expected error adding entry past the cap, got nil")
	}
}

func TestFormStateRemove(t *testing.T) {
	var fs FormState

	_ = fs.AddEmployment(EmploymentHistory{CompanyName: "First"})
	_ = fs.AddEmployment(EmploymentHistory{CompanyName: "Second"})

	err := fs.RemoveEmployment(0)
	if err != nil {
		t.Fatalf("Unexpected error removing entry: %v", err)
	}

	if len(fs.Employment) != 1 || fs.Employment[0].CompanyName != "Second" {
		t.Errorf("Expected only Second to remain, got %+v", fs.Employment)
	}

	err = fs.RemoveEmployment(5)
	if err == nil {
		t.Error("Expected error removing out-of-range entry, got nil")
	}

	err = fs.RemoveEducation(0)
	if err == nil {
		t.Error("Expected error removing from empty education list, got nil")
	}
}

func TestFormStateApply(t *testing.T) {
	var fs FormState
	_ = fs.AddEmployment(EmploymentHistory{CompanyName: "Initech", Period: "2020-2023", Location: "Chicago, IL"})
	_ = fs.AddEducation(Education{UniversityName: "UIUC", Period: "2014-2018", Location: "Urbana, IL", Degree: "B.S."})

	p := Profile{Name: "Jane Doe", Email: "jane@example.com", Location: "Chicago, IL"}
	fs.Apply(&p)

	if len(p.EmploymentHistory) != 1 || p.EmploymentHistory[0].CompanyName != "Initech" {
		t.Errorf("Employment not applied: %+v", p.EmploymentHistory)
	}

	if len(p.Education) != 1 || p.Education[0].UniversityName != "UIUC" {
		t.Errorf("Education not applied: %+v", p.Education)
	}
}
