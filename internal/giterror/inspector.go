package giterror

import (
	"context"
	"errors"
	"net"
	"strings"
)

// Kind is the category of a GitHub API failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindPermission
	KindNotFound
	KindRateLimit
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Inspector provides methods to classify GitHub API errors.
// The GraphQL client surfaces most failures as plain strings, so
// classification falls back to message matching after type checks.
type Inspector interface {
	// Classify returns the category of err, or KindUnknown.
	Classify(err error) Kind

	// IsAuthError returns true if the error represents an authentication failure.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a missing repository or label.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool
}

// GitHubErrorInspector implements Inspector for GitHub API errors.
type GitHubErrorInspector struct{}

// NewInspector creates a new GitHub error inspector.
func NewInspector() Inspector {
	return &GitHubErrorInspector{}
}

// Classify checks categories in a fixed order. Transport errors are typed
// and checked first, since their messages carry ports and addresses that can
// look like status codes. Rate limits precede auth because GitHub answers
// them with 403.
func (i *GitHubErrorInspector) Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if isTransport(err) {
		return KindNetwork
	}
	msg := strings.ToLower(err.Error())

	switch {
	case containsAny(msg, "rate limit", "429"):
		return KindRateLimit
	case containsAny(msg, "resource not accessible", "must have push access", "insufficient scopes"):
		return KindPermission
	case containsAny(msg, "401", "403", "unauthorized", "forbidden", "bad credentials", "authentication"):
		return KindAuth
	case containsAny(msg, "404", "not found", "could not resolve to"):
		return KindNotFound
	case isNetworkMessage(msg):
		return KindNetwork
	}
	return KindUnknown
}

func (i *GitHubErrorInspector) IsAuthError(err error) bool {
	k := i.Classify(err)
	return k == KindAuth || k == KindPermission
}

func (i *GitHubErrorInspector) IsNotFoundError(err error) bool {
	return i.Classify(err) == KindNotFound
}

func (i *GitHubErrorInspector) IsRateLimitError(err error) bool {
	return i.Classify(err) == KindRateLimit
}

func (i *GitHubErrorInspector) IsNetworkError(err error) bool {
	return i.Classify(err) == KindNetwork
}

func isTransport(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded)
}

func isNetworkMessage(msg string) bool {
	return containsAny(msg,
		"connection refused",
		"connection reset",
		"no such host",
		"timeout",
		"temporary failure",
		"dial tcp",
		"tls handshake",
		"network is unreachable",
		"unexpected eof")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
