package llm

import (
	"fmt"
	"strings"
)

// buildSkillExtractionPrompt creates the phase 1 skill extraction prompt.
func buildSkillExtractionPrompt(jobDescription string) (prompt string) {
	prompt = fmt.Sprintf(`You are an expert HR analyst extracting skills from a job description for ATS matching. Your job is to identify EVERY skill mentioned - be exhaustive, not selective. If it appears in the job description, it MUST be extracted.

DEFINITIONS:
- Hard skills: specific, teachable, measurable abilities. Technical knowledge, tools, platforms, programming languages, frameworks, certifications, methodologies (Agile, Scrum), quantifiable technical abilities (SEO, financial modeling, data analysis). Usually nouns or acronyms.
- Soft skills: interpersonal, character-based, non-technical abilities. Communication, leadership, teamwork, problem-solving, adaptability, time management. Often inferred from verbs ("collaborate", "lead") and descriptive phrases ("fast-paced environment", "work independently").

Each skill belongs to exactly one list. Classify by the definitions above, never both.

EXTRACTION RULES:
1. Scan every section: requirements, qualifications, responsibilities, nice-to-haves, company culture, team descriptions.
2. Include skills mentioned even once or in passing.
3. Extract variations of the same skill (both "ML" and "Machine Learning").
4. Include version numbers and levels if specified ("Python 3.8", "Advanced Excel").
5. Analyze verbs and descriptive phrases for implied soft skills.
6. Do NOT filter out skills you consider minor. Better too many than one missed.
7. Only exclude generic duties ("attend meetings") and pure educational requirements ("Bachelor's degree").

After extraction, re-read the job description and confirm nothing was missed.

JOB DESCRIPTION:
%s

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "hard_skills": ["skill1", "skill2"],
  "soft_skills": ["skill1", "skill2"]
}`, jobDescription)

	return prompt
}

// buildSynthesisPrompt creates the phase 2 resume synthesis prompt.
//
//nolint:funlen // Prompt template with extensive constraint rules
func buildSynthesisPrompt(req GenerationRequest) (prompt string) {
	hardSkills := `"` + strings.Join(req.Skills.HardSkills, `", "`) + `"`
	softSkills := `"` + strings.Join(req.Skills.SoftSkills, `", "`) + `"`

	titleSection := ""
	if req.TargetTitle != "" {
		titleSection = fmt.Sprintf("TARGET TITLE: %s\n\n", req.TargetTitle)
	}

	prompt = fmt.Sprintf(`You are an elite career strategist synthesizing a candidate's raw experience into a tailored, ATS-optimized resume. The document must pass automated keyword filters AND persuade human reviewers.

JOB DESCRIPTION:
%s

%sCANDIDATE EXPERIENCE:
%s

EXTRACTED SKILLS (every one of these MUST appear in the resume):
- Hard skills: %s
- Soft skills: %s

CRITICAL RULES:

1. EXPERIENCE COUNT: Produce exactly %d work experiences in strict reverse-chronological order. The most recent role must be hyper-aligned with the target job; earlier roles show progression and foundation. Do not make all experiences sound identical.

2. 100%% SKILL COVERAGE: Every extracted hard and soft skill must appear at least once across the summary, experience bullets, and skills section. Distribute naturally: roughly 20-30%% of skills in the summary, 60-70%% woven into bullets, all hard skills categorized in the skills section. Weave skills into achievements, never list them mechanically.

3. UNIQUE STARTING VERBS: Every bullet point across the ENTIRE resume must start with a DIFFERENT strong action verb. Zero repetition of starting verbs anywhere. Never start a bullet with an article, pronoun, or passive construction. Before answering, scan every bullet and confirm no starting verb appears twice.

4. QUANTIFY EVERYTHING: Every bullet follows the formula: action verb + specific project/task + outcome with a quantifiable metric (%%, $, time saved, scale). A bullet without a metric is a failure. Show impact, not duties.

5. JOB TITLES: Standard position titles ONLY. Never append a project name, focus area, or specialization after a dash or hyphen. "SENIOR ML ENGINEER" is correct; "SENIOR ML ENGINEER - AI AGENTS" is wrong. Titles must show believable career progression.

6. HIRING COMPANY: The candidate has NEVER worked at the company that posted this job. No experience may list them as an employer.

7. TECHNOLOGY TIMELINE: Every tool and framework mentioned in a role must have existed and been in plausible use during that role's period. Never claim PyTorch before 2016, TensorFlow before 2015, or GPT-4 before 2023. Earlier roles use technologies of their era.

8. SUMMARY: 3-4 confident sentences. Professional title aligned with the target role, years of experience, one or two quantified achievements, a value proposition. No cliches ("results-driven", "team player").

9. GROUND IN REALITY: Reframe and enhance the candidate's actual experience. Do not invent a fictional career; the candidate's real projects are the foundation.

10. LANGUAGE: Active voice only. No passive phrases ("was responsible for"), no buzzwords. Do not repeat non-keyword phrases more than twice.

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "name": "",
  "title": "professional title aligned with the target role",
  "email": "",
  "phone": "",
  "location": "",
  "linkedin": "",
  "summary": "professional summary",
  "experiences": [
    {
      "company_info": {"name": "company", "period": "Jan 2021 - Present", "location": "City, ST"},
      "job_title": "SENIOR ML ENGINEER",
      "bullet_points": [
        {"bullet_point": "Architected ... reducing inference time by 40%%."}
      ]
    }
  ],
  "skills": [
    {"category": "Programming Languages", "skill_list": "Python, Go, SQL"}
  ]
}`, req.JobDescription, titleSection, req.Experience, hardSkills, softSkills, req.NumExperiences)

	return prompt
}
