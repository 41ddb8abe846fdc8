package capability

import (
	"fmt"
	"strings"
	"text/template"
)

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

var emailTemplates = map[string]emailTemplate{
	TemplateApplicationReceived: mustTemplate(TemplateApplicationReceived,
		`Application Received - {{.Position}}`,
		`Dear {{.CandidateName}},

Thank you for applying for the {{.Position}} position at {{.CompanyName}}.
We have received your application and our team is reviewing it.

We will get back to you within {{or .Timeline "5-7 business days"}} with next steps.

Best regards,
{{.CompanyName}} HR Team`),

	TemplateInterviewInvitation: mustTemplate(TemplateInterviewInvitation,
		`Interview Invitation - {{.Position}}`,
		`Dear {{.CandidateName}},

We are pleased to invite you for an interview for the {{.Position}} position.

Interview details:
- Date: {{or .InterviewDate "to be confirmed"}}
- Time: {{or .InterviewTime "to be confirmed"}}
- Location: {{or .Location "Virtual"}}
- Interviewer: {{or .Interviewer "Hiring Manager"}}

Please confirm your availability by replying to this email.

Best regards,
{{.CompanyName}} HR Team`),

	TemplateRejection: mustTemplate(TemplateRejection,
		`Update on Your Application - {{.Position}}`,
		`Dear {{.CandidateName}},

Thank you for your interest in the {{.Position}} position at {{.CompanyName}}.

After careful consideration, we have decided to move forward with other candidates
whose qualifications more closely match our current needs.

We appreciate the time you invested and encourage you to apply for future openings.

Best regards,
{{.CompanyName}} HR Team`),

	TemplateOfferLetter: mustTemplate(TemplateOfferLetter,
		`Job Offer - {{.Position}}`,
		`Dear {{.CandidateName}},

We are delighted to offer you the position of {{.Position}} at {{.CompanyName}}.

Offer details:
- Position: {{.Position}}
- Start Date: {{or .StartDate "to be agreed"}}
- Salary: {{or .Salary "as discussed"}}
- Benefits: {{or .Benefits "standard company benefits"}}

Please review the attached offer letter and let us know your decision by {{or .ResponseDeadline "the end of next week"}}.

Best regards,
{{.CompanyName}} HR Team`),
}

func mustTemplate(name, subject, body string) emailTemplate {
	return emailTemplate{
		subject: template.Must(template.New(name + ".subject").Parse(subject)),
		body:    template.Must(template.New(name + ".body").Parse(body)),
	}
}

// renderEmail fills the named template.
func renderEmail(name string, data emailData) (subject, body string, err error) {
	tpl, ok := emailTemplates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template: %s", name)
	}
	var sb strings.Builder
	if err := tpl.subject.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	subject = sb.String()

	sb.Reset()
	if err := tpl.body.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render %s body: %w", name, err)
	}
	return subject, sb.String(), nil
}

// templateFor picks a template from the task description when none is given.
func templateFor(description string) string {
	switch {
	case containsAny(description, "reject", "decline", "unsuccessful"):
		return TemplateRejection
	case containsAny(description, "offer"):
		return TemplateOfferLetter
	case containsAny(description, "interview", "invit"):
		return TemplateInterviewInvitation
	default:
		return TemplateApplicationReceived
	}
}
