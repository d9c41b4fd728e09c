package resume

import (
	"context"
	"fmt"

	"github.com/resumesmith/resumesmith/pkg/llm"
	"github.com/resumesmith/resumesmith/pkg/profile"
	"github.com/rs/zerolog"
)

// Generator is the model client surface the synthesizer depends on.
type Generator interface {
	ExtractSkills(ctx context.Context, jobDescription string) (skills llm.Skills, err error)
	GenerateResume(ctx context.Context, req llm.GenerationRequest) (draft llm.DraftResume, err error)
}

// Request carries the inputs of one synthesis run.
type Request struct {
	JobDescription string
	Experience     string
	TargetTitle    string // optional; overrides the profile title
	HiringCompany  string // optional; enables the employer-conflict check
}

// Result is the outcome of a synthesis run. The resume is always present;
// Fallback reports whether the local path produced it.
type Result struct {
	Resume     ResumeData
	Fallback   bool
	Violations []Violation
}

// Synthesizer runs the two-phase generation pipeline with local validation,
// ground-truth overrides, and a deterministic fallback.
type Synthesizer struct {
	generator Generator
	validator *Validator
	logger    zerolog.Logger
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(generator Generator, logger zerolog.Logger) (s *Synthesizer) {
	s = &Synthesizer{
		generator: generator,
		validator: NewValidator(logger),
		logger:    logger,
	}
	return s
}

// Synthesize produces a tailored resume. It never fails: any generation
// error engages the local fallback, and the caller always receives a
// complete document with the candidate's real identity, employers, and
// education applied.
func (s *Synthesizer) Synthesize(ctx context.Context, req Request, facts profile.Profile) (result Result) {
	title := req.TargetTitle
	if title == "" {
		title = facts.Title
	}

	skills, err := s.generator.ExtractSkills(ctx, req.JobDescription)
	if err != nil {
		s.logger.Error().Err(err).Msg("skill extraction failed, using fallback")
		result = s.fallback(req, facts, title)
		return result
	}

	numExperiences := len(facts.EmploymentHistory)
	if numExperiences == 0 {
		numExperiences = len(fallbackExperiences())
	}

	draft, err := s.generator.GenerateResume(ctx, llm.GenerationRequest{
		JobDescription: req.JobDescription,
		Experience:     req.Experience,
		Skills:         skills,
		NumExperiences: numExperiences,
		TargetTitle:    title,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("resume synthesis failed, using fallback")
		result = s.fallback(req, facts, title)
		return result
	}

	result.Resume = fromDraft(draft)
	result.Violations = append(result.Violations, s.adjustExperienceCount(&result.Resume, numExperiences)...)

	// Overrides run before validation so the chronology and employer checks
	// see the periods and companies the shipped document actually states.
	applyOverrides(&result.Resume, facts, title)
	result.Violations = append(result.Violations, s.validator.Apply(&result.Resume, skills, req.HiringCompany)...)

	s.logger.Info().
		Int("experiences", len(result.Resume.Experiences)).
		Int("violations", len(result.Violations)).
		Msg("resume synthesized")

	return result
}

// fallback builds a resume locally. No network, no failure modes.
func (s *Synthesizer) fallback(req Request, facts profile.Profile, title string) (result Result) {
	keywords := extractKeywords(req.JobDescription)

	result.Fallback = true
	result.Resume = ResumeData{
		Summary:     buildFallbackSummary(req.Experience, keywords),
		Experiences: fallbackExperiences(),
		Skills:      []Skill{},
	}
	applyOverrides(&result.Resume, facts, title)

	s.logger.Info().
		Int("keywords", len(keywords)).
		Msg("fallback resume built")

	return result
}

// adjustExperienceCount pads or trims the generated experiences so every
// real employer gets an entry. A short draft is padded from the placeholder
// pool rather than silently dropping employers.
func (s *Synthesizer) adjustExperienceCount(data *ResumeData, want int) (violations []Violation) {
	got := len(data.Experiences)
	if got == want {
		return violations
	}

	if got > want {
		data.Experiences = data.Experiences[:want]
		violations = append(violations, Violation{
			Rule:    "EXPERIENCE_COUNT_MISMATCH",
			Detail:  fmt.Sprintf("model returned %d experiences, trimmed to %d", got, want),
			Patched: true,
		})
		return violations
	}

	placeholders := fallbackExperiences()
	for i := got; i < want; i++ {
		data.Experiences = append(data.Experiences, placeholders[i%len(placeholders)])
	}
	violations = append(violations, Violation{
		Rule:    "EXPERIENCE_COUNT_MISMATCH",
		Detail:  fmt.Sprintf("model returned %d experiences, padded to %d", got, want),
		Patched: true,
	})

	return violations
}

// applyOverrides stamps the candidate's ground truth onto the resume:
// identity fields, real employer blocks by position, real education, and
// the LinkedIn anchor wrap. Generated values for these fields never
// survive.
func applyOverrides(data *ResumeData, facts profile.Profile, title string) {
	data.Name = facts.Name
	data.Title = title
	data.Email = facts.Email
	data.Phone = facts.Phone
	data.Location = facts.Location

	data.LinkedIn = ""
	if facts.LinkedIn != "" {
		data.LinkedIn = fmt.Sprintf("<a href=%q>LinkedIn</a>", facts.LinkedIn)
	}

	for i, job := range facts.EmploymentHistory {
		if i >= len(data.Experiences) {
			break
		}
		data.Experiences[i].CompanyInfo = CompanyInfo{
			Name:     job.CompanyName,
			Period:   job.Period,
			Location: job.Location,
		}
	}

	data.Education = facts.Education
	data.EmploymentHistory = facts.EmploymentHistory
}
