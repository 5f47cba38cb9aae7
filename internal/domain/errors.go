package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuth reports a 401/403 from the remote API. It is never retried and
// is surfaced to the user verbatim.
var ErrAuth = errors.New("trello authentication failed, check key/token")

// errRemote is the sentinel both APIError and ShapeError unwrap to, so
// the dispatch boundary can treat every remote failure alike.
var errRemote = errors.New("trello api failure")

// IsRemote reports whether err is any remote-API failure (bad status,
// transport error or malformed response shape).
func IsRemote(err error) bool {
	return errors.Is(err, errRemote)
}

// APIError is a non-success status or a transport-level failure. A
// transport failure has StatusCode 0 and a "Network error" detail.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

func (e *APIError) Unwrap() error { return errRemote }

// ShapeError reports a response that decoded but did not have the
// expected shape (object where a list was required, or vice versa).
type ShapeError struct {
	Endpoint string
	Got      string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape for %s: %s", e.Endpoint, e.Got)
}

func (e *ShapeError) Unwrap() error { return errRemote }

// ErrEmptyQuery is returned by the name matcher for a blank query.
var ErrEmptyQuery = errors.New("empty name query")

// Candidate is one "name (id)" pair listed in an ambiguity message.
type Candidate struct {
	ID   string
	Name string
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}

// AmbiguousError lists the first candidates (at most five) that matched a
// query which should have matched exactly one item.
type AmbiguousError struct {
	Query      string
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	names := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		names = append(names, c.String())
	}
	return fmt.Sprintf("reference %q is ambiguous, matches: %s", e.Query, strings.Join(names, ", "))
}

// NotFoundError reports a name query that matched nothing.
type NotFoundError struct {
	Resource Resource
	Query    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q", e.Resource, e.Query)
}

// MissingContextError reports that a reference was empty and the session
// had no default for the resource. Hint overrides the default corrective
// action when set (the done list is selected with use-done, not
// use-list).
type MissingContextError struct {
	Resource Resource
	Hint     string
}

func (e *MissingContextError) Error() string {
	hint := e.Hint
	if hint == "" {
		hint = fmt.Sprintf("use-%s", e.Resource)
	}
	return fmt.Sprintf("no %s selected, run %s first or pass an explicit reference", e.Resource, hint)
}

// ValidationError rejects a mutation before any network call: a required
// field is absent or a destructive action lacks confirmation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
