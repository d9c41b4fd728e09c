package llm

import (
	"fmt"
)

// Skills represents the hard and soft skills extracted from a job
// description. Classification is disjoint: a skill appears in exactly one
// list. Near-duplicates ("ML" and "Machine Learning") are intentional.
type Skills struct {
	HardSkills []string `json:"hard_skills"`
	SoftSkills []string `json:"soft_skills"`
}

// All returns hard and soft skills as one list.
func (s Skills) All() (all []string) {
	all = make([]string, 0, len(s.HardSkills)+len(s.SoftSkills))
	all = append(all, s.HardSkills...)
	all = append(all, s.SoftSkills...)
	return all
}

// GenerationRequest carries everything the synthesis call needs.
type GenerationRequest struct {
	JobDescription string
	Experience     string
	Skills         Skills
	NumExperiences int
	TargetTitle    string
}

// DraftBulletPoint is one generated achievement bullet.
type DraftBulletPoint struct {
	BulletPoint string `json:"bullet_point"`
}

// DraftCompanyInfo is the generated employer block. It is always replaced
// by the candidate's real employment history after generation.
type DraftCompanyInfo struct {
	Name     string `json:"name"`
	Period   string `json:"period"`
	Location string `json:"location"`
}

// DraftExperience is one generated work experience.
type DraftExperience struct {
	CompanyInfo  DraftCompanyInfo   `json:"company_info"`
	JobTitle     string             `json:"job_title"`
	BulletPoints []DraftBulletPoint `json:"bullet_points"`
}

// DraftSkillGroup is one categorized skills row in the generated resume.
type DraftSkillGroup struct {
	Category  string `json:"category"`
	SkillList string `json:"skill_list"`
}

// DraftResume is the model's synthesis output before local validation and
// the deterministic ground-truth overrides are applied.
type DraftResume struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Location    string            `json:"location"`
	LinkedIn    string            `json:"linkedin"`
	Summary     string            `json:"summary"`
	Experiences []DraftExperience `json:"experiences"`
	Skills      []DraftSkillGroup `json:"skills"`
}

// GenerationError indicates the model call or its output failed. It stays
// internal to the synthesis pipeline, which answers with the local fallback.
type GenerationError struct {
	Phase   string
	Message string
}

// Error implements the error interface.
func (e *GenerationError) Error() (msg string) {
	msg = fmt.Sprintf("generation failed during %s: %s", e.Phase, e.Message)
	return msg
}

// ClaudeRequest represents the Claude API request format.
type ClaudeRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// ClaudeResponse represents the Claude API response format.
type ClaudeResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Role    string    `json:"role"`
	Content []Content `json:"content"`
	Model   string    `json:"model"`
	Usage   Usage     `json:"usage"`
}

// Message represents a message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Content represents content in the response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage represents token usage information.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
