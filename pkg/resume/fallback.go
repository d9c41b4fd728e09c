package resume

import (
	"regexp"
	"sort"
	"strings"
)

// The local fallback produces a resume with no network access. It is the
// answer of last resort and must never fail: keyword-overlap summary, three
// fixed placeholder experiences, empty skills section.

const (
	fallbackSummaryBudget = 1500
	fallbackMinSummary    = 100
	fallbackTopKeywords   = 15

	genericClosing = " Experienced professional with a track record of delivering high-quality results. Skilled in problem-solving and adapting to new challenges. Committed to continuous learning and professional growth."
)

//nolint:gochecknoglobals // Static token tables
var (
	stopwords = map[string]bool{
		"the": true, "and": true, "a": true, "to": true, "of": true,
		"in": true, "with": true, "for": true, "on": true, "is": true,
		"are": true, "you": true, "will": true, "be": true,
	}
	wordRe    = regexp.MustCompile(`\b[a-zA-Z]+\b`)
	headingRe = regexp.MustCompile(`\n#{2,3} `)
)

// extractKeywords returns the top keywords of a job description by raw
// frequency, after dropping stopwords and words of three letters or fewer.
func extractKeywords(jobDescription string) (keywords []string) {
	words := wordRe.FindAllString(strings.ToLower(jobDescription), -1)

	freq := map[string]int{}
	order := []string{}
	for _, word := range words {
		if stopwords[word] || len(word) <= 3 {
			continue
		}
		if _, seen := freq[word]; !seen {
			order = append(order, word)
		}
		freq[word]++
	}

	// Stable order: frequency descending, first appearance breaking ties.
	rank := map[string]int{}
	for i, word := range order {
		rank[word] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return rank[order[i]] < rank[order[j]]
	})

	if len(order) > fallbackTopKeywords {
		order = order[:fallbackTopKeywords]
	}
	keywords = order
	return keywords
}

// buildFallbackSummary scores the candidate's free-text experience sections
// by keyword overlap and stitches the best first paragraphs into a summary.
func buildFallbackSummary(experience string, keywords []string) (summary string) {
	sections := headingRe.Split(experience, -1)

	type scored struct {
		section string
		count   int
	}
	var relevant []scored
	for _, section := range sections {
		lower := strings.ToLower(section)
		count := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				count++
			}
		}
		if count > 0 {
			relevant = append(relevant, scored{section: section, count: count})
		}
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].count > relevant[j].count
	})

	if len(relevant) > 3 {
		relevant = relevant[:3]
	}

	var parts []string
	total := 0
	for _, r := range relevant {
		firstPara := strings.TrimSpace(strings.SplitN(r.section, "\n\n", 2)[0])
		if total+len(firstPara) > fallbackSummaryBudget {
			continue
		}
		parts = append(parts, firstPara)
		total += len(firstPara)
	}

	summary = strings.Join(parts, " ")
	if len(summary) < fallbackMinSummary {
		summary += genericClosing
	}
	return summary
}

// fallbackExperiences returns the fixed placeholder experience section used
// when generation is unavailable. Employer blocks are replaced by the real
// employment history wherever one exists.
func fallbackExperiences() (experiences []Experience) {
	experiences = []Experience{
		{
			CompanyInfo: CompanyInfo{
				Name:     "Tech Innovators Inc.",
				Period:   "01/2021 - 05/2025",
				Location: "New York, NY",
			},
			JobTitle: "Senior AI Engineer",
			BulletPoints: []BulletPoint{
				{BulletPoint: "Engineered a supervisor-orchestrated multi-agent platform on Azure, cutting data pipeline development time by 40%."},
				{BulletPoint: "Integrated agent workflows with Azure OpenAI Service, automating translation of tracked issues into reviewed pipeline code."},
				{BulletPoint: "Implemented multi-stage validation with unit and integration gates, reducing manual code review overhead by 70%."},
				{BulletPoint: "Enhanced retrieval grounding with a Neo4j graph store behind Azure AI Search, lifting generation accuracy by 18%."},
				{BulletPoint: "Codified reusable process-definition libraries for rapid instantiation of industry-tailored agent workflows."},
			},
		},
		{
			CompanyInfo: CompanyInfo{
				Name:     "Intelligent Solutions Group",
				Period:   "06/2018 - 12/2020",
				Location: "San Francisco, CA",
			},
			JobTitle: "Technology Architecture Lead",
			BulletPoints: []BulletPoint{
				{BulletPoint: "Led architecture of autonomous decision systems for customer service, improving first-call resolution rates by 25%."},
				{BulletPoint: "Designed inter-service communication over gRPC and RabbitMQ, sustaining reliable throughput across service platforms."},
				{BulletPoint: "Developed belief-desire-intention agent models tuned for rapid response and accurate information retrieval."},
				{BulletPoint: "Orchestrated Kubernetes deployments on Azure with AKS, maintaining fault tolerance through regional failovers."},
				{BulletPoint: "Mentored a team of 9 engineers in agent-based modeling and distributed system design."},
			},
		},
		{
			CompanyInfo: CompanyInfo{
				Name:     "Communication Systems Inc.",
				Period:   "01/2016 - 05/2018",
				Location: "Boston, MA",
			},
			JobTitle: "Python Developer",
			BulletPoints: []BulletPoint{
				{BulletPoint: "Developed Flask backends automating configuration of contact center deployments, streamlining setup for 50+ clients."},
				{BulletPoint: "Connected systems to programmable communications APIs over REST, enabling scripted control of call workflows."},
				{BulletPoint: "Built asynchronous task processing on RabbitMQ, clearing configuration queues in under a minute at peak load."},
				{BulletPoint: "Automated database operations with SQLAlchemy, eliminating a weekly manual reconciliation task."},
				{BulletPoint: "Created a pytest suite reaching 92% coverage, reducing production incidents by 35%."},
			},
		},
	}
	return experiences
}
