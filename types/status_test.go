package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StringToProposalStatus(t *testing.T) {
	t.Parallel()

	for name, status := range StringToProposalStatus {
		assert.Equal(t, name, string(status))
	}

	_, ok := StringToProposalStatus["Pending"]
	assert.False(t, ok)
}

func Test_ProposalStatus_Terminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give ProposalStatus
		want bool
	}{
		{give: StatusDraft, want: false},
		{give: StatusActive, want: false},
		{give: StatusCanceled, want: true},
		{give: StatusDefeated, want: true},
		{give: StatusSucceeded, want: false},
		{give: StatusQueued, want: false},
		{give: StatusReady, want: false},
		{give: StatusExecuted, want: true},
		{give: StatusExpired, want: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.give), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Terminal())
		})
	}
}
