package github

import "time"

// Repo is the typed projection of an upstream repository record. Unknown
// upstream fields are dropped by the typed decode.
type Repo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     *string   `json:"description"`
	HTMLURL         string    `json:"html_url"`
	CloneURL        string    `json:"clone_url"`
	Language        *string   `json:"language"`
	Topics          []string  `json:"topics"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
	Size            int       `json:"size"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	DefaultBranch   string    `json:"default_branch"`
	Homepage        *string   `json:"homepage"`
	Archived        bool      `json:"archived"`
	Disabled        bool      `json:"disabled"`
	Private         bool      `json:"private"`
}

// Readme holds a repository README decoded to plain text. An empty Content
// with a nil HTMLURL is the valid "no README" result, not an error.
type Readme struct {
	Content string  `json:"content"`
	HTMLURL *string `json:"html_url"`
}
