package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ownerRegex matches GitHub account names: alphanumeric and hyphens,
	// no leading/trailing hyphen, at most 39 characters
	ownerRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

	// repoRegex matches repository names: alphanumeric, hyphens,
	// underscores, and dots
	repoRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// ValidateOwner validates a GitHub account name before it is interpolated
// into an upstream URL path
func ValidateOwner(name string) error {
	if name == "" {
		return errors.New("owner cannot be empty")
	}
	if len(name) > 39 {
		return errors.New("owner must be 39 characters or less")
	}
	if !ownerRegex.MatchString(name) {
		return errors.New("owner contains invalid characters")
	}
	return nil
}

// ValidateRepoName validates a repository name to prevent path traversal
// through the upstream URL
func ValidateRepoName(name string) error {
	if name == "" {
		return errors.New("repo cannot be empty")
	}
	if len(name) > 100 {
		return errors.New("repo must be 100 characters or less")
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return errors.New("repo cannot contain '..'")
	}
	if !repoRegex.MatchString(name) {
		return errors.New("repo contains invalid characters")
	}
	return nil
}
