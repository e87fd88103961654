package github

// RepoInfo is the metadata GitHub exposes for a single repository.
// Fields map one-to-one onto the REST API response and are not modified
// after decoding. Optional fields decode to their zero value (or nil for
// License) when the API omits them or sends null.
type RepoInfo struct {
	Name          string       `json:"name"`
	FullName      string       `json:"full_name"`
	URL           string       `json:"html_url"`
	Owner         OwnerInfo    `json:"owner"`
	Stars         int          `json:"stargazers_count"`
	Subscribers   int          `json:"subscribers_count"`
	Forks         int          `json:"forks_count"`
	OpenIssues    int          `json:"open_issues_count"` // open issues and open pull requests combined
	Fork          bool         `json:"fork"`
	Archived      bool         `json:"archived"`
	DefaultBranch string       `json:"default_branch"`
	Homepage      string       `json:"homepage"`
	Description   string       `json:"description"`
	License       *LicenseInfo `json:"license"` // nil when the repository has no license
	Language      string       `json:"language"`
	Topics        []string     `json:"topics"`
}

// OwnerInfo identifies the account that holds a repository.
type OwnerInfo struct {
	Login     string    `json:"login"`
	URL       string    `json:"html_url"`
	AvatarURL string    `json:"avatar_url"`
	Kind      OwnerKind `json:"type"`
}

// OwnerKind is the account type of a repository owner. The API documents
// the two values below; any other value decodes unchanged.
type OwnerKind string

// Owner kinds returned by the GitHub API.
const (
	OwnerKindUser         OwnerKind = "User"
	OwnerKindOrganization OwnerKind = "Organization"
)

// LicenseInfo describes a repository's license.
type LicenseInfo struct {
	Key  string `json:"key"`  // machine-readable identifier (e.g. "mit")
	Name string `json:"name"` // human-readable name (e.g. "MIT License")
}
