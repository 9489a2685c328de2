package govern

import (
	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"

	"github.com/daofoundry/govern/types"
)

// ExecutionGracePeriod is the number of seconds a Ready proposal remains
// executable after its eta before it expires.
const ExecutionGracePeriod int64 = 14 * 24 * 60 * 60

// Proposal is a pending batch of instructions that may or may not be
// executed by the DAO. Its effect is fixed at creation; only its approval
// status changes afterward.
//
// All lifecycle state is held as timestamps and tallies. The semantic status
// is derived on demand by State and is never stored, so it can never
// desynchronize from its inputs.
type Proposal struct {
	// Governor is the address of the owning governor.
	Governor solana.PublicKey `json:"governor"`
	// Index is the proposal's unique, auto-incremented ID under its
	// governor.
	Index uint64 `json:"index"`
	// Bump is the address-derivation bump seed.
	Bump uint8 `json:"bump"`

	// Proposer is the key that created the proposal.
	Proposer solana.PublicKey `json:"proposer"`

	// QuorumVotes is the number of "for" votes required for the proposal to
	// succeed, snapshotted from the governor's parameters at creation.
	QuorumVotes uint64 `json:"quorumVotes"`
	// ForVotes is the current weight in favor.
	ForVotes uint64 `json:"forVotes"`
	// AgainstVotes is the current weight in opposition.
	AgainstVotes uint64 `json:"againstVotes"`
	// AbstainVotes is the current abstaining weight.
	AbstainVotes uint64 `json:"abstainVotes"`

	// CanceledAt is the cancellation timestamp, zero if never canceled.
	CanceledAt int64 `json:"canceledAt"`
	// CreatedAt is the creation timestamp.
	CreatedAt int64 `json:"createdAt"`
	// ActivatedAt is the timestamp voting began, zero while in draft.
	ActivatedAt int64 `json:"activatedAt"`
	// VotingEndsAt is the timestamp voting closes, set at activation.
	VotingEndsAt int64 `json:"votingEndsAt"`

	// QueuedAt is the timestamp the proposal was registered with the smart
	// wallet, zero until queued.
	QueuedAt int64 `json:"queuedAt"`
	// Eta is the earliest execution time, set at queue time from the
	// governor's timelock delay.
	Eta int64 `json:"eta"`
	// ExecutedAt is the timestamp the smart wallet reported execution, zero
	// until then.
	ExecutedAt int64 `json:"executedAt"`
	// QueuedTransaction is the smart wallet's pending-transaction record,
	// set at queue time.
	QueuedTransaction solana.PublicKey `json:"queuedTransaction"`

	// Instructions is the ordered batch executed if the proposal passes.
	// Fixed at creation.
	Instructions []types.ProposalInstruction `json:"instructions" validate:"required,min=1,dive"`
}

// State derives the proposal's lifecycle status at the given time (unix
// seconds). It is a pure function of the stored fields and now; calling it
// twice with the same inputs yields the same result.
//
// Success requires the "for" tally to meet quorum (inclusive) and to be
// strictly greater than the "against" tally.
func (p *Proposal) State(now int64) types.ProposalStatus {
	switch {
	case p.CanceledAt != 0:
		return types.StatusCanceled
	case p.ActivatedAt == 0:
		return types.StatusDraft
	case now < p.VotingEndsAt:
		return types.StatusActive
	case p.ForVotes < p.QuorumVotes || p.ForVotes <= p.AgainstVotes:
		return types.StatusDefeated
	case p.QueuedAt == 0:
		return types.StatusSucceeded
	case p.ExecutedAt != 0:
		return types.StatusExecuted
	case now < p.Eta:
		return types.StatusQueued
	case now < p.Eta+ExecutionGracePeriod:
		return types.StatusReady
	default:
		return types.StatusExpired
	}
}

// Key returns the proposal's derived address.
func (p *Proposal) Key() solana.PublicKey {
	key, _, _ := FindProposalAddress(p.Governor, p.Index)
	return key
}

// Validate runs tag-based validation over the proposal's instruction batch.
func (p *Proposal) Validate() error {
	return validator.New().Struct(p)
}

// tally returns a pointer to the tally matching side.
func (p *Proposal) tally(side types.VoteSide) *uint64 {
	switch side {
	case types.SideAgainst:
		return &p.AgainstVotes
	case types.SideFor:
		return &p.ForVotes
	case types.SideAbstain:
		return &p.AbstainVotes
	}

	return nil
}

// addWeight adds weight to the tally for side, guarding against overflow.
func (p *Proposal) addWeight(side types.VoteSide, weight uint64) error {
	t := p.tally(side)
	if t == nil {
		return NewInvalidSideError(side)
	}
	if *t > maxUint64-weight {
		return ErrArithmeticOverflow
	}
	*t += weight

	return nil
}

// subWeight removes weight from the tally for side. The weight was added by
// a previous cast, so an underflow indicates tally corruption.
func (p *Proposal) subWeight(side types.VoteSide, weight uint64) error {
	t := p.tally(side)
	if t == nil {
		return NewInvalidSideError(side)
	}
	if *t < weight {
		return ErrArithmeticOverflow
	}
	*t -= weight

	return nil
}

const maxUint64 = ^uint64(0)

// ProposalMeta is free-text metadata attached to a proposal. It has no
// effect on the lifecycle.
type ProposalMeta struct {
	// Proposal is the address of the proposal this metadata describes.
	Proposal solana.PublicKey `json:"proposal"`
	// Title is the proposal's title.
	Title string `json:"title"`
	// DescriptionLink points to a description of the proposal.
	DescriptionLink string `json:"descriptionLink"`
}

// FindProposalMetaAddress derives the address of a proposal's metadata
// record.
func FindProposalMetaAddress(proposal solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{[]byte("ProposalMeta"), proposal.Bytes()},
		ProgramID,
	)
}
