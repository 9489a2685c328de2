// Package sdk defines the contracts the governance core consumes from its
// collaborators: the voting-power source, the execution authority, and the
// event/audit boundary. Implementations for real deployments live outside
// this module; in-memory implementations for tests and tooling live in
// sdk/memory.
package sdk

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Electorate is the voting-power source for a Governor. It reports a voter's
// weight at a point in time and decides which proposals are eligible for
// activation.
//
// The core trusts the returned weight at the moment of each cast or change
// and never re-queries it afterward; already-cast votes are not re-weighted.
type Electorate interface {
	// VoterWeight returns the non-negative voting weight of voter under the
	// given governor at the reference time. A zero weight is a valid answer;
	// the core records it as a weightless vote.
	VoterWeight(ctx context.Context, governor, voter solana.PublicKey, at int64) (uint64, error)
}
