package agent

const (
	LogPrefixDispatch = "internal.agent.Dispatch"

	resultKeySuffix = "_result"
)

// Well-known entity id keys.
const (
	KeyJobID       = "job_id"
	KeyCandidateID = "candidate_id"
	KeyInterviewID = "interview_id"

	// KeyRememberedEntities holds the ids produced by earlier turns of the
	// session. They are consulted after the current plan's results.
	KeyRememberedEntities = "active_entities"
)
