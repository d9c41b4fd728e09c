package renderer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resumesmith/resumesmith/pkg/profile"
	"github.com/resumesmith/resumesmith/pkg/resume"
	"github.com/rs/zerolog"
)

func testResume() (data resume.ResumeData) {
	data = resume.ResumeData{
		Name:     "Jane Doe",
		Title:    "Software Engineer",
		Email:    "jane@example.com",
		Phone:    "+1 (555) 123-4567",
		Location: "Chicago, IL",
		LinkedIn: `<a href="https://www.linkedin.com/in/jane">LinkedIn</a>`,
		Summary:  "Engineer with 8+ years of experience & a platform focus.",
		Experiences: []resume.Experience{
			{
				CompanyInfo: resume.CompanyInfo{Name: "Initech", Period: "01/2021 - 05/2025", Location: "Chicago, IL"},
				JobTitle:    "SENIOR ENGINEER",
				BulletPoints: []resume.BulletPoint{
					{BulletPoint: "Architected services cutting latency by 40%."},
				},
			},
		},
		Education: []profile.Education{
			{UniversityName: "University of Illinois", Period: "2014-2018", Location: "Urbana, IL", Degree: "B.S. Computer Science"},
		},
		Skills: []resume.Skill{
			{Category: "Languages", SkillList: "Go, Python"},
		},
	}
	return data
}

func TestMergeDefaultTemplate(t *testing.T) {
	r := New("", "", zerolog.Nop())

	html, err := r.merge(testResume())
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	for _, want := range []string{
		"Jane Doe",
		"SENIOR ENGINEER",
		"Initech",
		"01/2021 - 05/2025",
		"Architected services cutting latency by 40%.",
		"University of Illinois",
		"Go, Python",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Merged HTML missing %q", want)
		}
	}

	// The LinkedIn anchor renders as markup, not escaped text.
	if !strings.Contains(html, `<a href="https://www.linkedin.com/in/jane">LinkedIn</a>`) {
		t.Error("LinkedIn anchor should survive the merge unescaped")
	}

	// Everything else is escaped.
	if !strings.Contains(html, "experience &amp; a platform focus") {
		t.Error("Summary content should be HTML-escaped")
	}
}

func TestMergeCustomTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "custom.html")

	err := os.WriteFile(templatePath, []byte("<p>{{.Name}} / {{.Title}}</p>"), 0600)
	if err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}

	r := New(templatePath, "", zerolog.Nop())

	html, err := r.merge(testResume())
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	if html != "<p>Jane Doe / Software Engineer</p>" {
		t.Errorf("Unexpected merge output: %s", html)
	}
}

func TestRenderMissingTemplateIsRenderError(t *testing.T) {
	r := New("/nonexistent/template.html", "", zerolog.Nop())

	_, err := r.Render(context.Background(), testResume())
	if err == nil {
		t.Fatal("Expected error for missing template, got nil")
	}

	if !IsRenderError(err) {
		t.Errorf("Expected RenderError, got %T", err)
	}

	if !strings.Contains(err.Error(), "template merge") {
		t.Errorf("Error should name the failing stage: %v", err)
	}
}

func TestRenderBadTemplateIsRenderError(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "bad.html")

	err := os.WriteFile(templatePath, []byte("{{.Unclosed"), 0600)
	if err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}

	r := New(templatePath, "", zerolog.Nop())

	_, err = r.Render(context.Background(), testResume())
	if !IsRenderError(err) {
		t.Errorf("Expected RenderError for unparseable template, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	out, err := ExportJSON(testResume())
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var decoded resume.ResumeData
	err = json.Unmarshal(out, &decoded)
	if err != nil {
		t.Fatalf("Exported JSON does not parse: %v", err)
	}

	if decoded.Name != "Jane Doe" {
		t.Errorf("Expected name Jane Doe, got %s", decoded.Name)
	}

	if len(decoded.Experiences) != 1 {
		t.Errorf("Expected 1 experience, got %d", len(decoded.Experiences))
	}
}

func TestIsRenderError(t *testing.T) {
	if IsRenderError(nil) {
		t.Error("nil is not a RenderError")
	}

	if IsRenderError(os.ErrNotExist) {
		t.Error("Plain errors are not RenderErrors")
	}

	if !IsRenderError(&RenderError{Stage: "pdf", Err: os.ErrNotExist}) {
		t.Error("Expected RenderError to be recognized")
	}
}
