package repository

// ListOptions holds filter and pagination parameters for List.
// Filters are AND-ed equality matches; Limit <= 0 means no limit.
type ListOptions struct {
	Filters map[string]any
	Limit   int
}
