package govern

import (
	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern/types"
)

// Vote is one voter's recorded side and weight on one proposal. At most one
// Vote exists per (proposal, voter) pair; its weight is always mirrored by
// exactly one of the proposal's three tallies.
//
// A Vote is mutable only by its own voter and only while the proposal is
// active.
type Vote struct {
	// Proposal is the address of the proposal being voted on.
	Proposal solana.PublicKey `json:"proposal"`
	// Voter is the key that cast the vote.
	Voter solana.PublicKey `json:"voter"`
	// Bump is the address-derivation bump seed.
	Bump uint8 `json:"bump"`

	// Side is the side taken.
	Side types.VoteSide `json:"side"`
	// Weight is the voter's power at the time the vote was cast or last
	// changed. Zero is a valid weight; it contributes nothing to tallies.
	Weight uint64 `json:"weight"`
}

// Key returns the vote's derived address.
func (v *Vote) Key() solana.PublicKey {
	key, _, _ := FindVoteAddress(v.Proposal, v.Voter)
	return key
}
