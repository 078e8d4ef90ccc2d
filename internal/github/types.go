package github

// Issue describes the issue to create. It carries no identity; callers build a
// fresh value per submission.
type Issue struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}

// IssueResult holds the details of a successfully created issue. Every field
// except Author is populated; Author is empty when the API response omits the
// creating user.
type IssueResult struct {
	RepositoryURL string
	IssueURL      string
	ID            int64
	Number        int
	Title         string
	State         string
	CreatedAt     string // ISO-8601 timestamp, forwarded verbatim from the API
	Author        string
}
