package capability

import (
	"fmt"
	"strings"
	"time"

	"hiring-orchestrator/internal/reasoning"
)

// screeningReport renders the markdown report stored with a screened candidate.
func screeningReport(name, position string, at time.Time, m reasoning.CandidateMatch) string {
	var sb strings.Builder
	sb.WriteString("# CANDIDATE SCREENING REPORT\n\n")
	fmt.Fprintf(&sb, "**Candidate:** %s\n", firstNonEmpty(name, defaultCandidateName))
	fmt.Fprintf(&sb, "**Position:** %s\n", firstNonEmpty(position, "Unknown"))
	fmt.Fprintf(&sb, "**Date:** %s\n\n", at.Format(reportDateLayout))
	fmt.Fprintf(&sb, "## Match Score: %.0f%%\n\n", m.MatchScore)

	reportList(&sb, "Matching Skills", "✓", m.MatchingSkills, true)
	reportList(&sb, "Missing Skills", "✗", m.MissingSkills, false)
	reportList(&sb, "Strengths", "•", m.Strengths, true)
	reportList(&sb, "Concerns", "•", m.Concerns, false)

	fmt.Fprintf(&sb, "## Summary\n%s\n\n", m.Summary)
	fmt.Fprintf(&sb, "## Recommendation\n%s", m.Recommendation)
	return sb.String()
}

// reportList writes a section; optional sections are skipped when empty.
func reportList(sb *strings.Builder, heading, bullet string, items []string, always bool) {
	if len(items) == 0 && !always {
		return
	}
	fmt.Fprintf(sb, "## %s\n", heading)
	for _, it := range items {
		fmt.Fprintf(sb, "%s %s\n", bullet, it)
	}
	sb.WriteString("\n")
}
