package govern

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Ledger is the shared store lifecycle operations run against. Exec runs fn
// as one serialized transaction: fn sees a consistent snapshot, no other
// transaction observes its intermediate writes, and its writes are committed
// only if fn returns nil.
//
// Init* methods are compare-and-create: they fail with AccountExistsError if
// the record's address is already occupied. This is what makes concurrent
// duplicate creation (two votes for the same pair, two proposals for the
// same index) mutually exclusive.
type Ledger interface {
	Exec(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the transactional view handed to a Ledger.Exec callback. Get methods
// return NotFoundError when the address holds no record of that kind;
// records returned are private copies the callback may mutate freely before
// putting them back.
type Tx interface {
	Governor(key solana.PublicKey) (*Governor, error)
	InitGovernor(g *Governor) error
	PutGovernor(g *Governor) error

	Proposal(key solana.PublicKey) (*Proposal, error)
	InitProposal(p *Proposal) error
	PutProposal(p *Proposal) error

	Vote(key solana.PublicKey) (*Vote, error)
	InitVote(v *Vote) error
	PutVote(v *Vote) error

	ProposalMeta(key solana.PublicKey) (*ProposalMeta, error)
	InitProposalMeta(m *ProposalMeta) error
}
