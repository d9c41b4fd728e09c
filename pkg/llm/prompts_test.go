package llm

import (
	"strings"
	"testing"
)

func TestBuildSkillExtractionPrompt(t *testing.T) {
	jd := "We need a Go engineer with Kubernetes experience."
	prompt := buildSkillExtractionPrompt(jd)

	if !strings.Contains(prompt, jd) {
		t.Error("Prompt should contain the job description")
	}

	if !strings.Contains(prompt, "hard_skills") {
		t.Error("Prompt should specify the hard_skills output field")
	}

	if !strings.Contains(prompt, "soft_skills") {
		t.Error("Prompt should specify the soft_skills output field")
	}

	if !strings.Contains(prompt, "exactly one list") {
		t.Error("Prompt should require disjoint classification")
	}

	if !strings.Contains(prompt, "ONLY valid JSON") {
		t.Error("Prompt should demand a JSON-only response")
	}
}

func TestBuildSynthesisPrompt(t *testing.T) {
	req := GenerationRequest{
		JobDescription: "Platform engineer role at Acme.",
		Experience:     "Eight years of infrastructure work.",
		Skills: Skills{
			HardSkills: []string{"Go", "Kubernetes"},
			SoftSkills: []string{"Leadership"},
		},
		NumExperiences: 3,
		TargetTitle:    "Staff Platform Engineer",
	}

	prompt := buildSynthesisPrompt(req)

	if !strings.Contains(prompt, req.JobDescription) {
		t.Error("Prompt should contain the job description")
	}

	if !strings.Contains(prompt, req.Experience) {
		t.Error("Prompt should contain the candidate experience")
	}

	if !strings.Contains(prompt, `"Go", "Kubernetes"`) {
		t.Error("Prompt should list the hard skills")
	}

	if !strings.Contains(prompt, `"Leadership"`) {
		t.Error("Prompt should list the soft skills")
	}

	if !strings.Contains(prompt, "exactly 3 work experiences") {
		t.Error("Prompt should pin the experience count")
	}

	if !strings.Contains(prompt, "Staff Platform Engineer") {
		t.Error("Prompt should carry the target title when provided")
	}

	if !strings.Contains(prompt, "DIFFERENT strong action verb") {
		t.Error("Prompt should require unique starting verbs")
	}

	if !strings.Contains(prompt, "NEVER worked at the company") {
		t.Error("Prompt should forbid the hiring company as an employer")
	}
}

func TestBuildSynthesisPromptWithoutTitle(t *testing.T) {
	req := GenerationRequest{
		JobDescription: "Some role.",
		Experience:     "Some experience.",
		NumExperiences: 2,
	}

	prompt := buildSynthesisPrompt(req)

	if strings.Contains(prompt, "TARGET TITLE") {
		t.Error("Prompt should omit the target title section when none is set")
	}

	if !strings.Contains(prompt, "exactly 2 work experiences") {
		t.Error("Prompt should pin the experience count")
	}
}
