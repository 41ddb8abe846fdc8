package reasoning

import "time"

// Log prefixes
const (
	LogPrefixGenerateText       = "internal.reasoning.GenerateText"
	LogPrefixGenerateStructured = "internal.reasoning.GenerateStructured"
	LogPrefixAnalyzeIntent      = "internal.reasoning.AnalyzeIntent"
)

const (
	DefaultMinRequestInterval = 2 * time.Second
	DefaultHistoryWindow      = 5
	IntentTemperature         = 0.1
	maxLoggedResponse         = 500
	maxResumeChars            = 6000
)

const (
	PromptStructuredSuffix = `

You MUST respond with ONLY valid JSON matching this exact schema:
%s

Important:
- Do not include markdown formatting or code blocks
- Do not include any explanation or text outside the JSON
- Ensure all required fields are present
- Use proper JSON syntax

Respond with JSON only:`

	SystemIntent = "You are an intent analyzer for an HR system."

	PromptIntent = `Analyze this HR-related user message and determine the intent:

Message: %q

Available task types:
- job_description: Create or modify job descriptions
- resume_screening: Screen and evaluate candidate resumes
- interview_scheduling: Schedule and manage interviews
- email: Send emails to candidates
- analytics: Generate hiring metrics and reports
- general: General conversation or unclear intent

Identify:
1. Primary intent (choose from the types above)
2. Confidence level (0.0 to 1.0)
3. Key entities mentioned (position, candidate name, dates)
4. Whether clarification is needed
5. What questions to ask if clarification needed`

	PromptJobRequirements = `Extract structured job requirements from this description:

%s

Identify all relevant information about the position including:
- Job title/position
- Department (if mentioned)
- Years of experience required
- Required skills (must-have)
- Preferred skills (nice-to-have)
- Education requirements
- Work location
- Employment type (full-time, part-time, contract, etc.)
- Salary range if mentioned`

	SystemJobDescription = "You are an expert HR professional creating engaging job descriptions."

	PromptJobDescription = `Create a comprehensive job description for %s based on these requirements:

%s

Include a compelling title, a company overview, a role summary, 5-7 key
responsibilities, required and preferred qualifications, benefits and an
equal opportunity statement.`

	SystemCandidateMatch = "You are an expert HR recruiter evaluating candidate-job fit."

	PromptCandidateMatch = `Evaluate this candidate against the job requirements:

JOB REQUIREMENTS:
%s

CANDIDATE RESUME:
%s

Provide a detailed matching analysis:
1. Calculate match score (0-100) based on skills, experience, and qualifications
2. List matching skills and missing required skills
3. Evaluate experience and education match
4. Write a 2-3 sentence summary
5. Recommendation: strong_match if 80+, good_match if 60-80, potential_match if 40-60, not_recommended below 40
6. List 3-5 key strengths and 2-3 concerns`
)

var (
	schemaIntent = map[string]any{
		"intent":     "string (job_description|resume_screening|interview_scheduling|email|analytics|general)",
		"confidence": "float (0-1)",
		"entities": map[string]any{
			"position":       "string or null",
			"candidate_name": "string or null",
			"date":           "string or null",
		},
		"requires_clarification":  "boolean",
		"clarification_questions": []string{"string"},
	}

	schemaJobRequirements = map[string]any{
		"position":         "string",
		"department":       "string or null",
		"experience_years": "integer or null",
		"required_skills":  []string{"string"},
		"preferred_skills": []string{"string"},
		"education":        "string or null",
		"location":         "string or null",
		"employment_type":  "string",
		"salary_range":     map[string]any{"min": "integer or null", "max": "integer or null"},
	}

	schemaJobDescription = map[string]any{
		"title":                       "string",
		"company_overview":            "string",
		"role_summary":                "string",
		"responsibilities":            []string{"string"},
		"required_qualifications":     []string{"string"},
		"preferred_qualifications":    []string{"string"},
		"benefits":                    []string{"string"},
		"equal_opportunity_statement": "string",
	}

	schemaCandidateMatch = map[string]any{
		"match_score":      "float (0-100)",
		"matching_skills":  []string{"string"},
		"missing_skills":   []string{"string"},
		"experience_match": "boolean",
		"education_match":  "boolean",
		"summary":          "string",
		"recommendation":   "string (strong_match|good_match|potential_match|not_recommended)",
		"strengths":        []string{"string"},
		"concerns":         []string{"string"},
	}
)
