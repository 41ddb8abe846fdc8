package conversation

const (
	DefaultMaxHistory = 20

	summaryWindow    = 3
	summaryMaxChars  = 100
	summarySeparator = " | "
	summaryEmpty     = "New conversation"
)
