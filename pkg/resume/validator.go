package resume

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/resumesmith/resumesmith/pkg/llm"
	"github.com/rs/zerolog"
)

// Rule describes one post-generation constraint check.
type Rule struct {
	Name        string
	Severity    string // critical, major, minor
	Description string
}

//nolint:gochecknoglobals // Validation rule constants
var ValidationRules = map[string]Rule{
	"VERB_REUSE": {
		Name:        "VERB_REUSE",
		Severity:    "major",
		Description: "Two or more bullet points start with the same action verb",
	},
	"SKILL_COVERAGE_GAP": {
		Name:        "SKILL_COVERAGE_GAP",
		Severity:    "major",
		Description: "An extracted skill appears nowhere in the resume",
	},
	"MISSING_METRIC": {
		Name:        "MISSING_METRIC",
		Severity:    "minor",
		Description: "A bullet point carries no quantified outcome",
	},
	"TITLE_SUFFIX": {
		Name:        "TITLE_SUFFIX",
		Severity:    "minor",
		Description: "A job title carries a dash-separated specialization suffix",
	},
	"HIRING_COMPANY_CONFLICT": {
		Name:        "HIRING_COMPANY_CONFLICT",
		Severity:    "critical",
		Description: "An experience lists the hiring company as an employer",
	},
	"TOOL_ANACHRONISM": {
		Name:        "TOOL_ANACHRONISM",
		Severity:    "major",
		Description: "A bullet mentions a tool released after the role's period",
	},
	"EXPERIENCE_COUNT_MISMATCH": {
		Name:        "EXPERIENCE_COUNT_MISMATCH",
		Severity:    "major",
		Description: "The model returned a different experience count than requested",
	},
}

// Violation is one detected constraint breach. Patched violations were
// corrected locally; unpatched ones are surfaced for logging only.
type Violation struct {
	Rule    string `json:"rule"`
	Detail  string `json:"detail"`
	Patched bool   `json:"patched"`
}

// toolTimeline maps tool names to their public release year. Mentions of a
// tool inside a role that ended before that year are anachronisms.
//
//nolint:gochecknoglobals // Static lint table
var toolTimeline = map[string]int{
	"kubernetes": 2014,
	"docker":     2013,
	"terraform":  2014,
	"tensorflow": 2015,
	"pytorch":    2016,
	"react":      2013,
	"vue":        2014,
	"angular":    2010,
	"golang":     2009,
	"rust":       2010,
	"swift":      2014,
	"kotlin":     2011,
	"spark":      2014,
	"kafka":      2011,
	"graphql":    2015,
	"grpc":       2015,
	"bert":       2018,
	"langchain":  2022,
	"langgraph":  2023,
	"chatgpt":    2022,
	"gpt-4":      2023,
	"llama":      2023,
}

//nolint:gochecknoglobals // Static lint patterns
var (
	metricRe      = regexp.MustCompile(`[0-9]|%|\$`)
	titleSuffixRe = regexp.MustCompile(`\s+[-–—]\s+.+$`)
)

// Validator checks a generated resume against the synthesis constraints and
// patches what it can locally. It never calls back out to the model.
type Validator struct {
	logger zerolog.Logger
}

// NewValidator creates a Validator.
func NewValidator(logger zerolog.Logger) (v *Validator) {
	v = &Validator{logger: logger}
	return v
}

// Apply runs every check against the resume, patching in place where a
// local correction exists. hiringCompany may be empty, which skips the
// employer-conflict check.
func (v *Validator) Apply(data *ResumeData, skills llm.Skills, hiringCompany string) (violations []Violation) {
	violations = append(violations, v.trimTitleSuffixes(data)...)
	violations = append(violations, v.enforceVerbUniqueness(data)...)
	violations = append(violations, v.checkMetrics(data)...)
	violations = append(violations, v.enforceSkillCoverage(data, skills)...)
	violations = append(violations, v.checkHiringCompany(data, hiringCompany)...)
	violations = append(violations, v.checkToolTimeline(data)...)

	for _, violation := range violations {
		v.logger.Warn().
			Str("rule", violation.Rule).
			Bool("patched", violation.Patched).
			Str("detail", violation.Detail).
			Msg("resume constraint violation")
	}

	return violations
}

// trimTitleSuffixes removes dash-separated specialization suffixes from job
// titles ("SENIOR ML ENGINEER - AI AGENTS" becomes "SENIOR ML ENGINEER").
func (v *Validator) trimTitleSuffixes(data *ResumeData) (violations []Violation) {
	for i := range data.Experiences {
		title := data.Experiences[i].JobTitle
		trimmed := titleSuffixRe.ReplaceAllString(title, "")
		if trimmed != title {
			data.Experiences[i].JobTitle = trimmed
			violations = append(violations, Violation{
				Rule:    "TITLE_SUFFIX",
				Detail:  fmt.Sprintf("trimmed %q to %q", title, trimmed),
				Patched: true,
			})
		}
	}
	return violations
}

// enforceVerbUniqueness rewrites repeated bullet-starting verbs using the
// synonym table. A repeat with no unused synonym is recorded unpatched.
func (v *Validator) enforceVerbUniqueness(data *ResumeData) (violations []Violation) {
	used := map[string]bool{}

	for i := range data.Experiences {
		for j := range data.Experiences[i].BulletPoints {
			bullet := data.Experiences[i].BulletPoints[j].BulletPoint
			verb := startingVerb(bullet)
			if verb == "" {
				continue
			}

			if !used[verb] {
				used[verb] = true
				continue
			}

			replacement := pickUnusedSynonym(verb, used)
			if replacement == "" {
				violations = append(violations, Violation{
					Rule:    "VERB_REUSE",
					Detail:  fmt.Sprintf("verb %q reused with no available synonym", verb),
					Patched: false,
				})
				continue
			}

			data.Experiences[i].BulletPoints[j].BulletPoint = replaceStartingVerb(bullet, replacement)
			used[strings.ToLower(replacement)] = true
			violations = append(violations, Violation{
				Rule:    "VERB_REUSE",
				Detail:  fmt.Sprintf("replaced repeated verb %q with %q", verb, replacement),
				Patched: true,
			})
		}
	}

	return violations
}

func pickUnusedSynonym(verb string, used map[string]bool) (synonym string) {
	for _, candidate := range verbSynonyms[verb] {
		if !used[strings.ToLower(candidate)] {
			synonym = candidate
			return synonym
		}
	}
	return synonym
}

// checkMetrics flags bullets without a quantified outcome. There is no
// honest local patch for a missing number, so these are record-only.
func (v *Validator) checkMetrics(data *ResumeData) (violations []Violation) {
	for _, exp := range data.Experiences {
		for _, bp := range exp.BulletPoints {
			if !metricRe.MatchString(bp.BulletPoint) {
				violations = append(violations, Violation{
					Rule:    "MISSING_METRIC",
					Detail:  fmt.Sprintf("no metric in bullet %q", truncate(bp.BulletPoint, 60)),
					Patched: false,
				})
			}
		}
	}
	return violations
}

// enforceSkillCoverage appends uncovered extracted skills to an
// "Additional Skills" group so the 100% coverage contract holds.
func (v *Validator) enforceSkillCoverage(data *ResumeData, skills llm.Skills) (violations []Violation) {
	corpus := buildSkillCorpus(data)

	var uncovered []string
	for _, skill := range skills.All() {
		if skill == "" {
			continue
		}
		if !strings.Contains(corpus, strings.ToLower(skill)) {
			uncovered = append(uncovered, skill)
		}
	}

	if len(uncovered) == 0 {
		return violations
	}

	appendAdditionalSkills(data, uncovered)
	violations = append(violations, Violation{
		Rule:    "SKILL_COVERAGE_GAP",
		Detail:  fmt.Sprintf("appended %d uncovered skills: %s", len(uncovered), strings.Join(uncovered, ", ")),
		Patched: true,
	})

	return violations
}

func buildSkillCorpus(data *ResumeData) (corpus string) {
	var b strings.Builder
	b.WriteString(data.Summary)
	b.WriteString("\n")
	for _, exp := range data.Experiences {
		for _, bp := range exp.BulletPoints {
			b.WriteString(bp.BulletPoint)
			b.WriteString("\n")
		}
	}
	for _, group := range data.Skills {
		b.WriteString(group.Category)
		b.WriteString(" ")
		b.WriteString(group.SkillList)
		b.WriteString("\n")
	}
	corpus = strings.ToLower(b.String())
	return corpus
}

func appendAdditionalSkills(data *ResumeData, uncovered []string) {
	for i := range data.Skills {
		if data.Skills[i].Category == "Additional Skills" {
			data.Skills[i].SkillList += ", " + strings.Join(uncovered, ", ")
			return
		}
	}
	data.Skills = append(data.Skills, Skill{
		Category:  "Additional Skills",
		SkillList: strings.Join(uncovered, ", "),
	})
}

// checkHiringCompany flags real employers that match the hiring company.
// Employer names are ground truth, so this is record-only.
func (v *Validator) checkHiringCompany(data *ResumeData, hiringCompany string) (violations []Violation) {
	if hiringCompany == "" {
		return violations
	}

	target := strings.ToLower(strings.TrimSpace(hiringCompany))
	for _, exp := range data.Experiences {
		if strings.ToLower(strings.TrimSpace(exp.CompanyInfo.Name)) == target {
			violations = append(violations, Violation{
				Rule:    "HIRING_COMPANY_CONFLICT",
				Detail:  fmt.Sprintf("experience lists hiring company %q as employer", exp.CompanyInfo.Name),
				Patched: false,
			})
		}
	}

	return violations
}

// checkToolTimeline lints bullets for tools released after the role's
// period ended. Unparseable periods skip the check.
func (v *Validator) checkToolTimeline(data *ResumeData) (violations []Violation) {
	for _, exp := range data.Experiences {
		period, ok := ParsePeriod(exp.CompanyInfo.Period)
		if !ok || period.Open {
			continue
		}

		for _, bp := range exp.BulletPoints {
			lower := strings.ToLower(bp.BulletPoint)
			for tool, year := range toolTimeline {
				if year <= period.EndYear {
					continue
				}
				if containsWord(lower, tool) {
					violations = append(violations, Violation{
						Rule:    "TOOL_ANACHRONISM",
						Detail:  fmt.Sprintf("%s (released %d) mentioned in role ending %d at %s", tool, year, period.EndYear, exp.CompanyInfo.Name),
						Patched: false,
					})
				}
			}
		}
	}

	return violations
}

func containsWord(text, word string) (found bool) {
	idx := strings.Index(text, word)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(text[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(text) || !isWordChar(text[afterIdx])
		if before && after {
			found = true
			return found
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			break
		}
		idx = idx + 1 + next
	}
	return found
}

func isWordChar(c byte) (word bool) {
	word = (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	return word
}

func truncate(s string, n int) (out string) {
	out = s
	if len(out) > n {
		out = out[:n] + "..."
	}
	return out
}
