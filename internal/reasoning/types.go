package reasoning

import (
	"fmt"
	"strings"
)

// Turn is one prior message forwarded as conversation history.
type Turn struct {
	Role    string
	Content string
}

// IntentAnalysis is the structured answer of AnalyzeIntent.
type IntentAnalysis struct {
	Intent                 string         `json:"intent"`
	Confidence             float64        `json:"confidence"`
	Entities               map[string]any `json:"entities"`
	RequiresClarification  bool           `json:"requires_clarification"`
	ClarificationQuestions []string       `json:"clarification_questions"`
}

type SalaryRange struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// JobRequirements is what ExtractJobRequirements pulls out of a freeform request.
type JobRequirements struct {
	Position        string      `json:"position"`
	Department      string      `json:"department,omitempty"`
	ExperienceYears *int        `json:"experience_years"`
	RequiredSkills  []string    `json:"required_skills"`
	PreferredSkills []string    `json:"preferred_skills"`
	Education       string      `json:"education,omitempty"`
	Location        string      `json:"location,omitempty"`
	EmploymentType  string      `json:"employment_type"`
	SalaryRange     SalaryRange `json:"salary_range"`
}

// JobDescription is a generated posting.
type JobDescription struct {
	Title                     string   `json:"title"`
	CompanyOverview           string   `json:"company_overview"`
	RoleSummary               string   `json:"role_summary"`
	Responsibilities          []string `json:"responsibilities"`
	RequiredQualifications    []string `json:"required_qualifications"`
	PreferredQualifications   []string `json:"preferred_qualifications"`
	Benefits                  []string `json:"benefits"`
	EqualOpportunityStatement string   `json:"equal_opportunity_statement"`
}

// FullText renders the posting as markdown.
func (jd JobDescription) FullText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", jd.Title)
	if jd.CompanyOverview != "" {
		fmt.Fprintf(&sb, "## About Us\n%s\n\n", jd.CompanyOverview)
	}
	fmt.Fprintf(&sb, "## Role Overview\n%s\n\n", jd.RoleSummary)
	writeBullets(&sb, "Key Responsibilities", jd.Responsibilities)
	writeBullets(&sb, "Required Qualifications", jd.RequiredQualifications)
	writeBullets(&sb, "Preferred Qualifications", jd.PreferredQualifications)
	writeBullets(&sb, "Benefits", jd.Benefits)
	if jd.EqualOpportunityStatement != "" {
		sb.WriteString(jd.EqualOpportunityStatement)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

func writeBullets(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n", heading)
	for _, it := range items {
		fmt.Fprintf(sb, "• %s\n", it)
	}
	sb.WriteString("\n")
}

// Recommendation buckets of CompareCandidateToJob.
const (
	RecommendationStrong    = "strong_match"
	RecommendationGood      = "good_match"
	RecommendationPotential = "potential_match"
	RecommendationNo        = "not_recommended"
)

// CandidateMatch is the fit analysis of one resume against one job.
type CandidateMatch struct {
	MatchScore      float64  `json:"match_score"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceMatch bool     `json:"experience_match"`
	EducationMatch  bool     `json:"education_match"`
	Summary         string   `json:"summary"`
	Recommendation  string   `json:"recommendation"`
	Strengths       []string `json:"strengths"`
	Concerns        []string `json:"concerns"`
}
