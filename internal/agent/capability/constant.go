package capability

import "time"

const (
	LogPrefixJobDescription = "internal.agent.capability.JobDescription"
	LogPrefixScreening      = "internal.agent.capability.ResumeScreening"
	LogPrefixInterview      = "internal.agent.capability.InterviewScheduling"
	LogPrefixEmail          = "internal.agent.capability.EmailCommunication"
	LogPrefixAnalytics      = "internal.agent.capability.Analytics"
	LogPrefixOffer          = "internal.agent.capability.OfferGeneration"
	LogPrefixMailer         = "internal.agent.capability.LogMailer"
	LogPrefixSMTPMailer     = "internal.agent.capability.SMTPMailer"
)

// Context keys read by the handlers.
const (
	KeyUserRequest     = "user_request"
	KeyResumeText      = "resume_text"
	KeyResumePath      = "resume_path"
	KeyCandidateName   = "candidate_name"
	KeyCandidateEmail  = "candidate_email"
	KeyDate            = "date"
	KeyTime            = "time"
	KeyInterviewType   = "interview_type"
	KeyInterviewer     = "interviewer"
	KeyLocation        = "location"
	KeyEmailTemplate   = "email_template"
	KeyPosition        = "position"
	KeyAnalysisType    = "analysis_type"
	KeySalary          = "salary"
	KeyStartDate       = "start_date"
	KeyBenefits        = "benefits"
	KeyResponseByDate  = "response_deadline"
	KeyJobDescription  = "job_description"
	KeyResumePaths     = "resume_paths"
	KeyCandidatePhone  = "candidate_phone"
	KeyScreeningAction = "screening_action"
	KeyInterviewAction = "interview_action"
	KeyTopN            = "top_n"
	LongTermJobPrefix  = "job:"
	LongTermCandPrefix = "candidate:"
)

// Candidate statuses.
const (
	StatusNew       = "new"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusHired     = "hired"
	StatusRejected  = "rejected"
)

const (
	JobStatusDraft        = "draft"
	InterviewStatusBooked = "scheduled"
)

// Email templates.
const (
	TemplateApplicationReceived = "application_received"
	TemplateInterviewInvitation = "interview_invitation"
	TemplateRejection           = "rejection"
	TemplateOfferLetter         = "offer_letter"
)

// Screening actions.
const (
	ScreeningActionScreen = "screen"
	ScreeningActionBatch  = "batch_screen"
	ScreeningActionRank   = "rank"
)

// Interview actions.
const (
	InterviewActionSchedule   = "schedule"
	InterviewActionQuestions  = "generate_questions"
	InterviewActionInvitation = "send_invitation"
)

// Analytics reports.
const (
	AnalysisOverview          = "overview"
	AnalysisCandidatePipeline = "candidate_pipeline"
)

const (
	DateTimeLayout           = "2006-01-02 15:04"
	defaultCompanyName       = "Our Company"
	defaultInterviewDuration = time.Hour
	defaultInterviewHour     = 10
	defaultInterviewType     = "technical"
	defaultInterviewer       = "Hiring Manager"
	defaultInterviewLocation = "Virtual"
	defaultJobLocation       = "Remote/Hybrid"
	defaultEmploymentType    = "Full-time"
	defaultCandidateName     = "Candidate"
	maxSlotShifts            = 8
	maxStoredResumeChars     = 4000
	maxContactPromptChars    = 4000
	defaultTopN              = 5
	reportDateLayout         = "2006-01-02"
	invitationDateLayout     = "January 2, 2006"
	invitationTimeLayout     = "3:04 PM"
	mailerPreviewChars       = 200

	scoreInterview = 80
	scoreScreening = 60
)

const (
	SystemOfferLetter = "You are an HR specialist who writes warm, formal and concise job offer letters."
	PromptOfferLetter = `Write a job offer letter.

Company: %s
Candidate: %s
Position: %s
Salary: %s
Start date: %s
Benefits: %s

Return only the letter text.`
)

const (
	SystemResumeContact = "You are an expert resume parser. Extract accurate contact information from resumes."
	PromptResumeContact = `Extract the candidate's contact information from this resume.
Use null for anything that is not present.

%s`

	SystemInterviewQuestions = "You are an expert interviewer creating assessment questions."
	PromptInterviewQuestions = `Generate %s interview questions for:

Position: %s
Key skills: %s

Create 8-10 questions covering technical competency, problem-solving,
communication, cultural fit and the key skills.

For each question give the question text, its type (technical, behavioral or
situational), the focus area and a sample good answer.`
)

var (
	schemaResumeContact = map[string]any{
		"candidate_name": "string",
		"email":          "string or null",
		"phone":          "string or null",
	}
	schemaInterviewQuestions = map[string]any{
		"questions": []map[string]any{{
			"question":      "string",
			"type":          "string (technical|behavioral|situational)",
			"focus_area":    "string",
			"sample_answer": "string",
		}},
	}
)

var (
	jobDescriptionNextActions = []string{
		"Review and edit the job description",
		"Post to job boards",
		"Start screening candidates",
	}
	interviewNextActions = []string{
		"Send interview invitation email",
		"Prepare interview questions",
		"Share candidate profile with interviewer",
	}
	questionsNextActions = []string{
		"Share the questions with the interviewer",
		"Schedule the interview",
	}
	offerNextActions = []string{
		"Review the offer letter",
		"Send the offer email to the candidate",
		"Set a response deadline",
	}
)
