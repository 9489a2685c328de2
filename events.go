package govern

import (
	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern/types"
)

// Events emitted by the lifecycle operations. Each event is appended to the
// configured sink exactly once, inside the operation that produced it, and
// carries the keys of the entities involved plus any before/after values.

// GovernorCreateEvent is emitted when a governor is created.
type GovernorCreateEvent struct {
	Governor    solana.PublicKey
	Locker      solana.PublicKey
	SmartWallet solana.PublicKey
	Params      types.GovernanceParameters
}

// GovernorSetParamsEvent is emitted when a governor's parameters change.
type GovernorSetParamsEvent struct {
	Governor   solana.PublicKey
	PrevParams types.GovernanceParameters
	Params     types.GovernanceParameters
}

// GovernorSetElectorateEvent is emitted when a governor's voting-power
// source changes.
type GovernorSetElectorateEvent struct {
	Governor   solana.PublicKey
	PrevLocker solana.PublicKey
	NewLocker  solana.PublicKey
}

// ProposalCreateEvent is emitted when a proposal is created.
type ProposalCreateEvent struct {
	Governor solana.PublicKey
	Proposal solana.PublicKey
	Proposer solana.PublicKey
	Index    uint64
}

// ProposalActivateEvent is emitted when a proposal enters its voting window.
type ProposalActivateEvent struct {
	Governor     solana.PublicKey
	Proposal     solana.PublicKey
	VotingEndsAt int64
}

// VoteSetEvent is emitted when a vote is cast or changed.
type VoteSetEvent struct {
	Governor solana.PublicKey
	Proposal solana.PublicKey
	Voter    solana.PublicKey
	Side     types.VoteSide
	Weight   uint64
}

// ProposalCancelEvent is emitted when a proposal is canceled.
type ProposalCancelEvent struct {
	Governor solana.PublicKey
	Proposal solana.PublicKey
}

// ProposalQueueEvent is emitted when a proposal is registered with the smart
// wallet.
type ProposalQueueEvent struct {
	Governor    solana.PublicKey
	Proposal    solana.PublicKey
	Transaction solana.PublicKey
	Eta         int64
}

// ProposalExecuteEvent is emitted when the smart wallet reports execution.
type ProposalExecuteEvent struct {
	Governor solana.PublicKey
	Proposal solana.PublicKey
}

// ProposalMetaCreateEvent is emitted when proposal metadata is attached.
type ProposalMetaCreateEvent struct {
	Proposal        solana.PublicKey
	Title           string
	DescriptionLink string
}
