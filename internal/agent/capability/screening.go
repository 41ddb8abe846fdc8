package capability

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/reasoning"
	"hiring-orchestrator/internal/repository"
	"hiring-orchestrator/pkg/doctext"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`)
)

// resumeContact is who a resume belongs to.
type resumeContact struct {
	Name  string `json:"candidate_name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// screening is the outcome of scoring one resume against one job.
type screening struct {
	CandidateID string
	Contact     resumeContact
	Match       reasoning.CandidateMatch
	Status      string
	Report      string
}

func (c *implCapabilities) resumeScreening(ctx context.Context, in agent.Input) (agent.Output, error) {
	switch action := screeningAction(in); action {
	case ScreeningActionScreen:
		return c.screenOne(ctx, in)
	case ScreeningActionBatch:
		return c.batchScreen(ctx, in)
	case ScreeningActionRank:
		return c.rankCandidates(ctx, in)
	default:
		return failed("unknown screening action: %s", action), nil
	}
}

// screeningAction honours screening_action, then picks batch when several
// resume paths are given and rank when the task asks for a ranking without a
// resume.
func screeningAction(in agent.Input) string {
	if a := in.String(KeyScreeningAction); a != "" {
		return a
	}
	if len(resumePaths(in)) > 0 {
		return ScreeningActionBatch
	}
	if in.String(KeyResumeText) == "" && in.String(KeyResumePath) == "" &&
		containsAny(in.Task.Description, "rank", "shortlist", "top candidates") {
		return ScreeningActionRank
	}
	return ScreeningActionScreen
}

func (c *implCapabilities) screenOne(ctx context.Context, in agent.Input) (agent.Output, error) {
	jobID, ok := in.EntityID(agent.KeyJobID)
	if !ok {
		return failed("job_id is required to screen a resume"), nil
	}
	resume, err := resumeText(in)
	if err != nil {
		return failed("%v", err), nil
	}
	if resume == "" {
		return failed("resume_text or resume_path is required"), nil
	}

	job, err := c.Repo.Get(ctx, repository.KindJobs, jobID)
	if err != nil {
		return lookupFailed(err, repository.KindJobs, jobID)
	}

	known := resumeContact{
		Name:  in.String(KeyCandidateName),
		Email: in.String(KeyCandidateEmail),
		Phone: in.String(KeyCandidatePhone),
	}
	s, err := c.screen(ctx, job, resume, known, in.String(KeyResumePath))
	if err != nil {
		return agent.Output{}, err
	}

	return agent.Output{
		Success:     true,
		Message:     fmt.Sprintf("Screened candidate: %s (Match: %.0f%%)", s.Contact.Name, s.Match.MatchScore),
		NextActions: screeningNextActions(s.Match.Recommendation),
		EntityIDs: map[string]string{
			agent.KeyCandidateID: s.CandidateID,
			agent.KeyJobID:       jobID,
		},
		Data: map[string]any{
			agent.KeyCandidateID: s.CandidateID,
			"candidate_name":     s.Contact.Name,
			"candidate_email":    s.Contact.Email,
			"match_score":        s.Match.MatchScore,
			"recommendation":     s.Match.Recommendation,
			"status":             s.Status,
			"report":             s.Report,
		},
	}, nil
}

// screen scores resume against job, stores the candidate and renders the
// screening report. Contact fields in known win over extracted ones.
func (c *implCapabilities) screen(ctx context.Context, job repository.Record, resume string, known resumeContact, resumePath string) (screening, error) {
	jobID := job.ID()
	match, err := c.Reasoning.CompareCandidateToJob(ctx, resume, job)
	if err != nil {
		return screening{}, fmt.Errorf("compare candidate: %w", err)
	}

	contact := c.resumeContact(ctx, resume, known)
	status := statusForScore(match.MatchScore)
	report := screeningReport(contact.Name, job.String("title"), c.opts.Now().In(c.opts.Location), match)

	candidate, err := c.Repo.Create(ctx, repository.KindCandidates, repository.Record{
		"name":             contact.Name,
		"email":            contact.Email,
		"phone":            contact.Phone,
		"job_id":           jobID,
		"resume_path":      resumePath,
		"resume_text":      truncateRunes(resume, maxStoredResumeChars),
		"match_score":      match.MatchScore,
		"recommendation":   match.Recommendation,
		"matching_skills":  match.MatchingSkills,
		"missing_skills":   match.MissingSkills,
		"summary":          match.Summary,
		"screening_report": report,
		"status":           status,
	})
	if err != nil {
		return screening{}, fmt.Errorf("save candidate: %w", err)
	}
	candidateID := candidate.ID()

	c.Memory.StoreLongTerm(LongTermCandPrefix+candidateID, map[string]any{
		"name":        contact.Name,
		"job_id":      jobID,
		"match_score": match.MatchScore,
		"status":      status,
	})
	c.Logger.Infof(ctx, "%s: candidate %s scored %.0f for job %s", LogPrefixScreening, candidateID, match.MatchScore, jobID)

	return screening{CandidateID: candidateID, Contact: contact, Match: match, Status: status, Report: report}, nil
}

// resumeContact fills the blanks in known from the resume, through the
// reasoning service first and the email and phone patterns when that fails.
func (c *implCapabilities) resumeContact(ctx context.Context, resume string, known resumeContact) resumeContact {
	if known.Name == "" || known.Email == "" {
		var got resumeContact
		prompt := fmt.Sprintf(PromptResumeContact, truncateRunes(resume, maxContactPromptChars))
		if err := c.Reasoning.GenerateStructured(ctx, prompt, schemaResumeContact, SystemResumeContact, &got); err != nil {
			c.Logger.Warnf(ctx, "%s: contact extraction failed, using patterns: %v", LogPrefixScreening, err)
			got = patternContact(resume)
		}
		known.Name = firstNonEmpty(known.Name, got.Name)
		known.Email = firstNonEmpty(known.Email, got.Email)
		known.Phone = firstNonEmpty(known.Phone, got.Phone)
	}
	known.Name = firstNonEmpty(known.Name, defaultCandidateName)
	return known
}

func patternContact(resume string) resumeContact {
	return resumeContact{
		Email: emailPattern.FindString(resume),
		Phone: strings.TrimSpace(phonePattern.FindString(resume)),
	}
}

func (c *implCapabilities) batchScreen(ctx context.Context, in agent.Input) (agent.Output, error) {
	jobID, ok := in.EntityID(agent.KeyJobID)
	if !ok {
		return failed("job_id is required to screen resumes"), nil
	}
	paths := resumePaths(in)
	if len(paths) == 0 {
		return failed("resume_paths is required for a batch screening"), nil
	}
	job, err := c.Repo.Get(ctx, repository.KindJobs, jobID)
	if err != nil {
		return lookupFailed(err, repository.KindJobs, jobID)
	}

	var (
		screened []screening
		failures []string
	)
	for _, path := range paths {
		resume, err := doctext.Extract(path)
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}
		s, err := c.screen(ctx, job, resume, resumeContact{}, path)
		if err != nil {
			return agent.Output{}, err
		}
		screened = append(screened, s)
	}
	if len(screened) == 0 {
		return agent.Output{Success: false, Error: "no resume could be screened: " + strings.Join(failures, "; ")}, nil
	}

	sort.SliceStable(screened, func(i, j int) bool { return screened[i].Match.MatchScore > screened[j].Match.MatchScore })
	top := make([]map[string]any, 0, defaultTopN)
	for _, s := range screened[:min(len(screened), defaultTopN)] {
		top = append(top, map[string]any{
			agent.KeyCandidateID: s.CandidateID,
			"name":               s.Contact.Name,
			"match_score":        s.Match.MatchScore,
			"recommendation":     s.Match.Recommendation,
		})
	}
	best := screened[0]
	c.Logger.Infof(ctx, "%s: batch of %d for job %s, %d failed", LogPrefixScreening, len(paths), jobID, len(failures))

	return agent.Output{
		Success:     true,
		Message:     fmt.Sprintf("Screened %d candidates. Top match: %s (%.0f%%)", len(screened), best.Contact.Name, best.Match.MatchScore),
		NextActions: screeningNextActions(best.Match.Recommendation),
		EntityIDs: map[string]string{
			agent.KeyCandidateID: best.CandidateID,
			agent.KeyJobID:       jobID,
		},
		Data: map[string]any{
			agent.KeyCandidateID: best.CandidateID,
			"total_screened":     len(paths),
			"successful":         len(screened),
			"failed":             len(failures),
			"failures":           failures,
			"top_candidates":     top,
		},
	}, nil
}

// rankCandidates orders the job's candidates by match score and keeps the
// first top_n.
func (c *implCapabilities) rankCandidates(ctx context.Context, in agent.Input) (agent.Output, error) {
	jobID, ok := in.EntityID(agent.KeyJobID)
	if !ok {
		return failed("job_id is required to rank candidates"), nil
	}
	job, err := c.Repo.Get(ctx, repository.KindJobs, jobID)
	if err != nil {
		return lookupFailed(err, repository.KindJobs, jobID)
	}
	candidates, err := c.Repo.List(ctx, repository.KindCandidates, repository.ListOptions{
		Filters: map[string]any{"job_id": jobID},
	})
	if err != nil {
		return agent.Output{}, fmt.Errorf("list candidates: %w", err)
	}
	if len(candidates) == 0 {
		return failed("no candidates to rank for job %s", jobID), nil
	}

	score := func(r repository.Record) float64 {
		v, _ := r.Float("match_score")
		return v
	}
	sort.SliceStable(candidates, func(i, j int) bool { return score(candidates[i]) > score(candidates[j]) })

	topN := intValue(in.Context[KeyTopN], defaultTopN)
	ranked := make([]map[string]any, 0, topN)
	for i, cand := range candidates[:min(len(candidates), topN)] {
		ranked = append(ranked, map[string]any{
			"rank":               i + 1,
			agent.KeyCandidateID: cand.ID(),
			"name":               cand.String("name"),
			"email":              cand.String("email"),
			"match_score":        score(cand),
			"status":             cand.String("status"),
		})
	}
	best := candidates[0]

	return agent.Output{
		Success: true,
		Message: fmt.Sprintf("Ranked %d candidates for %s. Top: %s (%.0f%%)", len(candidates), job.String("title"), best.String("name"), score(best)),
		NextActions: []string{
			"Schedule interviews with the top candidates",
			"Send rejection emails to the rest",
		},
		EntityIDs: map[string]string{
			agent.KeyCandidateID: best.ID(),
			agent.KeyJobID:       jobID,
		},
		Data: map[string]any{
			"ranking":          ranked,
			"total_candidates": len(candidates),
			"shortlisted":      len(ranked),
		},
	}, nil
}

func resumeText(in agent.Input) (string, error) {
	if s := in.String(KeyResumeText); s != "" {
		return s, nil
	}
	path := in.String(KeyResumePath)
	if path == "" {
		return "", nil
	}
	return doctext.Extract(path)
}

// resumePaths accepts a list or a comma separated string.
func resumePaths(in agent.Input) []string {
	var raw []string
	switch v := in.Context[KeyResumePaths].(type) {
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = strings.Split(v, ",")
	}

	var out []string
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// statusForScore maps a match score to the candidate's pipeline status.
func statusForScore(score float64) string {
	switch {
	case score >= scoreInterview:
		return StatusInterview
	case score >= scoreScreening:
		return StatusScreening
	default:
		return StatusNew
	}
}

func screeningNextActions(recommendation string) []string {
	switch recommendation {
	case reasoning.RecommendationStrong:
		return []string{"Schedule interview immediately", "Send interview invitation email", "Prepare interview questions"}
	case reasoning.RecommendationGood:
		return []string{"Review resume in detail", "Consider for phone screening", "Compare with other candidates"}
	case reasoning.RecommendationPotential:
		return []string{"Keep in pipeline", "Request additional information", "Consider for future positions"}
	default:
		return []string{"Send rejection email", "Archive application", "Provide feedback if requested"}
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
