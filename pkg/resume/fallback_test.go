package resume

import (
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	jd := strings.Repeat("kubernetes ", 5) + strings.Repeat("golang ", 3) +
		"the and with for cat dog observability observability"

	keywords := extractKeywords(jd)

	if len(keywords) == 0 {
		t.Fatal("Expected keywords, got none")
	}

	if keywords[0] != "kubernetes" {
		t.Errorf("Expected most frequent keyword first, got %q", keywords[0])
	}

	for _, kw := range keywords {
		if len(kw) <= 3 {
			t.Errorf("Short word %q should have been filtered", kw)
		}
		if stopwords[kw] {
			t.Errorf("Stopword %q should have been filtered", kw)
		}
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	var b strings.Builder
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango",
	}
	for _, w := range words {
		b.WriteString(w + " ")
	}

	keywords := extractKeywords(b.String())
	if len(keywords) != fallbackTopKeywords {
		t.Errorf("Expected %d keywords, got %d", fallbackTopKeywords, len(keywords))
	}
}

func TestBuildFallbackSummary(t *testing.T) {
	experience := `Intro text.

## Platform Work
Built kubernetes platforms for golang services at scale.

More detail that should not appear.

## Unrelated Hobby
Collecting stamps from the nineteenth century.

## Data Work
Operated kubernetes data pipelines with observability baked in.`

	keywords := []string{"kubernetes", "golang", "observability"}
	summary := buildFallbackSummary(experience, keywords)

	if !strings.Contains(summary, "Built kubernetes platforms") {
		t.Errorf("Summary should include the most relevant section, got %q", summary)
	}

	if strings.Contains(summary, "stamps") {
		t.Errorf("Summary should not include irrelevant sections, got %q", summary)
	}

	if strings.Contains(summary, "More detail that should not appear") {
		t.Errorf("Summary should only use first paragraphs, got %q", summary)
	}
}

func TestBuildFallbackSummaryGenericClosing(t *testing.T) {
	// No keyword overlap produces a short summary, which gains the
	// generic closing.
	summary := buildFallbackSummary("## Section\n\nShort.", []string{"nomatch"})

	if !strings.Contains(summary, "Experienced professional") {
		t.Errorf("Short summary should gain the generic closing, got %q", summary)
	}

	if len(summary) < fallbackMinSummary {
		t.Errorf("Summary with closing should clear the minimum, got %d chars", len(summary))
	}
}

func TestBuildFallbackSummaryBudget(t *testing.T) {
	// Each section's first paragraph is ~960 chars, so only one fits.
	big := strings.TrimSpace(strings.Repeat("kubernetes word ", 60))
	experience := "## A\n" + big + "\n\n## B\n" + big

	summary := buildFallbackSummary(experience, []string{"kubernetes"})

	if len(summary) > fallbackSummaryBudget {
		t.Errorf("Summary exceeds budget: %d chars", len(summary))
	}

	if !strings.Contains(summary, "kubernetes") {
		t.Errorf("Summary should contain relevant content, got %d chars", len(summary))
	}
}

func TestFallbackExperiences(t *testing.T) {
	experiences := fallbackExperiences()

	if len(experiences) != 3 {
		t.Fatalf("Expected 3 placeholder experiences, got %d", len(experiences))
	}

	for i, exp := range experiences {
		if exp.CompanyInfo.Name == "" || exp.JobTitle == "" {
			t.Errorf("Experience %d missing company or title", i)
		}
		if len(exp.BulletPoints) == 0 {
			t.Errorf("Experience %d has no bullet points", i)
		}
	}
}
