package govern

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daofoundry/govern/types"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	a := testKey(0x01)
	b := testKey(0x02)

	tests := []struct {
		err      error
		expected string
	}{
		{NewUnauthorizedError("smart wallet", a, b), fmt.Sprintf("unauthorized: smart wallet must be %s, got %s", a, b)},
		{NewInvalidStateError("queue", types.StatusDraft), "invalid state for queue: proposal is Draft"},
		{NewVotingClosedError(types.StatusDefeated), "voting closed: proposal is Defeated"},
		{NewAlreadyVotedError(a, b), fmt.Sprintf("already voted: voter %s has a vote on proposal %s", b, a)},
		{NewAccountExistsError(a), fmt.Sprintf("account already exists: %s", a)},
		{NewNotFoundError("proposal", a), fmt.Sprintf("proposal not found: %s", a)},
		{NewStaleReferenceError("governor", a, b), fmt.Sprintf("stale governor reference: expected %s, got %s", a, b)},
		{NewInvalidSideError(types.SidePending), "invalid vote side: Pending"},
		{ErrArithmeticOverflow, "arithmetic overflow"},
		{ErrAlreadyExecuted, "proposal already executed"},
		{ErrVotingDelayNotElapsed, "voting delay has not elapsed"},
	}

	for _, test := range tests {
		got := test.err.Error()
		if got != test.expected {
			assert.Equal(t, test.expected, test.err.Error())
		}
	}
}
