package resume

import (
	"github.com/resumesmith/resumesmith/pkg/llm"
	"github.com/resumesmith/resumesmith/pkg/profile"
)

// BulletPoint is one achievement bullet in an experience section.
type BulletPoint struct {
	BulletPoint string `json:"bullet_point"`
}

// CompanyInfo is the employer block of an experience. After the
// ground-truth overrides it always holds a real employer from the
// candidate's employment history.
type CompanyInfo struct {
	Name     string `json:"name"`
	Period   string `json:"period"`
	Location string `json:"location"`
}

// Experience is one work experience entry.
type Experience struct {
	CompanyInfo  CompanyInfo   `json:"company_info"`
	JobTitle     string        `json:"job_title"`
	BulletPoints []BulletPoint `json:"bullet_points"`
}

// Skill is one categorized row in the skills section.
type Skill struct {
	Category  string `json:"category"`
	SkillList string `json:"skill_list"`
}

// ResumeData is the final document merged into the render template.
type ResumeData struct {
	Name              string                      `json:"name"`
	Title             string                      `json:"title"`
	Email             string                      `json:"email"`
	Phone             string                      `json:"phone"`
	Location          string                      `json:"location"`
	LinkedIn          string                      `json:"linkedin,omitempty"`
	Summary           string                      `json:"summary"`
	Experiences       []Experience                `json:"experiences"`
	Education         []profile.Education         `json:"education"`
	EmploymentHistory []profile.EmploymentHistory `json:"employment_history,omitempty"`
	Skills            []Skill                     `json:"skills"`
}

// fromDraft converts a model draft into the canonical resume shape.
func fromDraft(draft llm.DraftResume) (data ResumeData) {
	data = ResumeData{
		Name:     draft.Name,
		Title:    draft.Title,
		Email:    draft.Email,
		Phone:    draft.Phone,
		Location: draft.Location,
		LinkedIn: draft.LinkedIn,
		Summary:  draft.Summary,
	}

	for _, exp := range draft.Experiences {
		converted := Experience{
			CompanyInfo: CompanyInfo{
				Name:     exp.CompanyInfo.Name,
				Period:   exp.CompanyInfo.Period,
				Location: exp.CompanyInfo.Location,
			},
			JobTitle: exp.JobTitle,
		}
		for _, bp := range exp.BulletPoints {
			converted.BulletPoints = append(converted.BulletPoints, BulletPoint{BulletPoint: bp.BulletPoint})
		}
		data.Experiences = append(data.Experiences, converted)
	}

	for _, group := range draft.Skills {
		data.Skills = append(data.Skills, Skill{Category: group.Category, SkillList: group.SkillList})
	}

	return data
}
