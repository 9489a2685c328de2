package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_VoteSide_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give VoteSide
		want bool
	}{
		{name: "pending is not castable", give: SidePending, want: false},
		{name: "against", give: SideAgainst, want: true},
		{name: "for", give: SideFor, want: true},
		{name: "abstain", give: SideAbstain, want: true},
		{name: "out of range", give: VoteSide(4), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Valid())
		})
	}
}

func Test_VoteSide_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pending", SidePending.String())
	assert.Equal(t, "Against", SideAgainst.String())
	assert.Equal(t, "For", SideFor.String())
	assert.Equal(t, "Abstain", SideAbstain.String())
	assert.Equal(t, "VoteSide(9)", VoteSide(9).String())
}
