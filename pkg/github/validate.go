package github

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// GitHub's own naming rules. Fetching does not validate (owner and repo
// pass through as path segments); these helpers let callers reject
// obviously bad input before spending a request on it.
var (
	// Usernames and org names: 1-39 alphanumeric or hyphen, no leading hyphen.
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// Repository names: 1-100 alphanumeric, hyphen, underscore, or dot.
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ValidateOwner checks a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return errors.New("owner is required")
	}
	if !validOwner.MatchString(owner) {
		return fmt.Errorf("invalid owner %q: must be 1-39 alphanumeric characters or hyphens, not starting with a hyphen", owner)
	}
	return nil
}

// ValidateRepo checks a GitHub repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return errors.New("repo is required")
	}
	if !validRepo.MatchString(repo) {
		return fmt.Errorf("invalid repo %q: must be 1-100 alphanumeric characters, hyphens, underscores, or dots", repo)
	}
	return nil
}

// ValidateRepoRef checks both parts of an owner/repo pair.
func ValidateRepoRef(owner, repo string) error {
	if err := ValidateOwner(owner); err != nil {
		return err
	}
	return ValidateRepo(repo)
}

// ParseRepoRef splits an "owner/repo" reference and validates both parts.
func ParseRepoRef(ref string) (owner, repo string, err error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 {
		return "", "", errors.New("invalid reference: use owner/repo")
	}
	owner, repo = parts[0], parts[1]
	if err := ValidateRepoRef(owner, repo); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}
