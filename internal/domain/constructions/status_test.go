//go:build unit
// +build unit

package constructions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"submit draft for review", StatusDraft, StatusReview, true},
		{"approve review", StatusReview, StatusPublished, true},
		{"reject review back to draft", StatusReview, StatusDraft, true},
		{"unpublish", StatusPublished, StatusDraft, true},
		{"draft straight to published", StatusDraft, StatusPublished, false},
		{"published to review", StatusPublished, StatusReview, false},
		{"self transition", StatusDraft, StatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("review")
	require.NoError(t, err)
	assert.Equal(t, StatusReview, status)

	_, err = ParseStatus("archived")
	require.Error(t, err)

	_, err = ParseStatus("")
	require.Error(t, err)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusPublished.Valid())
	assert.False(t, Status("deleted").Valid())
}
