package constructions

import "fmt"

// Status is the publication state of a construction.
type Status string

// Publication states. Only published records are visible on the public API.
const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusPublished Status = "published"
)

// transitions lists the allowed moves of the review workflow:
// draft -> review (submit), review -> published (approve),
// review -> draft (reject), published -> draft (unpublish).
var transitions = map[Status][]Status{
	StatusDraft:     {StatusReview},
	StatusReview:    {StatusPublished, StatusDraft},
	StatusPublished: {StatusDraft},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublished:
		return true
	}
	return false
}

// CanTransitionTo reports whether the workflow allows moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ParseStatus converts a string into a Status or fails.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown status: %q", s)
	}
	return status, nil
}
