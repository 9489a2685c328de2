package govern

import (
	"context"
	"errors"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern/internal/utils/safecast"
	"github.com/daofoundry/govern/sdk"
	"github.com/daofoundry/govern/types"
)

// ErrVotingDelayNotElapsed is returned when activating a proposal before its
// voting delay has passed.
var ErrVotingDelayNotElapsed = errors.New("voting delay has not elapsed")

// Service runs lifecycle operations against a ledger. Every operation
// executes as a single serialized ledger transaction: preconditions are
// checked before any mutation, and a failed operation leaves no partial
// state behind.
//
// Time-gated preconditions are evaluated against the service clock at the
// moment of each call; there is no background scheduler. Purely time-based
// transitions are observed lazily by whoever next queries or acts on a
// proposal.
type Service struct {
	ledger     Ledger
	electorate sdk.Electorate
	wallet     sdk.SmartWallet
	events     sdk.EventSink
	clock      func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the wall clock. Intended for tests and replay tooling.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithEventSink sets the sink lifecycle events are appended to.
func WithEventSink(sink sdk.EventSink) ServiceOption {
	return func(s *Service) {
		s.events = sink
	}
}

// NewService creates a Service over the given ledger and collaborators.
func NewService(ledger Ledger, electorate sdk.Electorate, wallet sdk.SmartWallet, opts ...ServiceOption) *Service {
	s := &Service{
		ledger:     ledger,
		electorate: electorate,
		wallet:     wallet,
		events:     sdk.NopSink{},
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) now() int64 {
	return s.clock().Unix()
}

// CreateGovernor initializes the root record for a DAO at its derived
// address.
func (s *Service) CreateGovernor(ctx context.Context, base, locker, smartWallet solana.PublicKey, params types.GovernanceParameters) (*Governor, error) {
	key, bump, err := FindGovernorAddress(base)
	if err != nil {
		return nil, err
	}

	governor := &Governor{
		Base:        base,
		Bump:        bump,
		Locker:      locker,
		SmartWallet: smartWallet,
		Params:      params,
	}

	err = s.ledger.Exec(ctx, func(tx Tx) error {
		return tx.InitGovernor(governor)
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(GovernorCreateEvent{
		Governor:    key,
		Locker:      locker,
		SmartWallet: smartWallet,
		Params:      params,
	})
	sdk.LoggerFrom(ctx).Infow("governor created",
		"governor", key.String(),
		"smartWallet", smartWallet.String(),
	)

	return governor, nil
}

// SetGovernanceParams overwrites a governor's parameters. Only the
// governor's smart wallet may call this.
//
// The new values are accepted as-is, with no range validation, and never
// retroactively affect existing proposals' snapshotted quorum or timing.
func (s *Service) SetGovernanceParams(ctx context.Context, governor, caller solana.PublicKey, params types.GovernanceParameters) error {
	var prev types.GovernanceParameters

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		g, err := tx.Governor(governor)
		if err != nil {
			return err
		}
		if caller != g.SmartWallet {
			return NewUnauthorizedError("smart wallet", g.SmartWallet, caller)
		}

		prev = g.Params
		g.Params = params

		return tx.PutGovernor(g)
	})
	if err != nil {
		return err
	}

	s.events.Emit(GovernorSetParamsEvent{Governor: governor, PrevParams: prev, Params: params})
	sdk.LoggerFrom(ctx).Infow("governance params updated", "governor", governor.String())

	return nil
}

// SetElectorate points a governor at a new voting-power source. Only the
// governor's smart wallet may call this.
func (s *Service) SetElectorate(ctx context.Context, governor, caller, locker solana.PublicKey) error {
	var prev solana.PublicKey

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		g, err := tx.Governor(governor)
		if err != nil {
			return err
		}
		if caller != g.SmartWallet {
			return NewUnauthorizedError("smart wallet", g.SmartWallet, caller)
		}

		prev = g.Locker
		g.Locker = locker

		return tx.PutGovernor(g)
	})
	if err != nil {
		return err
	}

	s.events.Emit(GovernorSetElectorateEvent{Governor: governor, PrevLocker: prev, NewLocker: locker})
	sdk.LoggerFrom(ctx).Infow("electorate updated",
		"governor", governor.String(),
		"locker", locker.String(),
	)

	return nil
}

// CreateProposal records a new proposal under a governor, consuming the next
// counter value and snapshotting the current quorum threshold.
func (s *Service) CreateProposal(ctx context.Context, governor, proposer solana.PublicKey, instructions []types.ProposalInstruction) (*Proposal, error) {
	now := s.now()

	var proposal *Proposal
	err := s.ledger.Exec(ctx, func(tx Tx) error {
		g, err := tx.Governor(governor)
		if err != nil {
			return err
		}

		index := g.ProposalCount
		if index == maxUint64 {
			return ErrArithmeticOverflow
		}
		g.ProposalCount = index + 1

		_, bump, err := FindProposalAddress(governor, index)
		if err != nil {
			return err
		}

		proposal = &Proposal{
			Governor:     governor,
			Index:        index,
			Bump:         bump,
			Proposer:     proposer,
			QuorumVotes:  g.Params.QuorumVotes,
			CreatedAt:    now,
			Instructions: instructions,
		}
		if err := proposal.Validate(); err != nil {
			return err
		}

		if err := tx.InitProposal(proposal); err != nil {
			return err
		}

		return tx.PutGovernor(g)
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ProposalCreateEvent{
		Governor: governor,
		Proposal: proposal.Key(),
		Proposer: proposer,
		Index:    proposal.Index,
	})
	sdk.LoggerFrom(ctx).Infow("proposal created",
		"governor", governor.String(),
		"proposal", proposal.Key().String(),
		"index", proposal.Index,
	)

	return proposal, nil
}

// ActivateProposal opens a draft proposal's voting window. Only the
// governor's locker may call this, and only once the voting delay has
// elapsed.
func (s *Service) ActivateProposal(ctx context.Context, proposal, caller solana.PublicKey) error {
	now := s.now()

	var votingEndsAt int64
	var governor solana.PublicKey

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		p, g, err := s.proposalWithGovernor(tx, proposal)
		if err != nil {
			return err
		}
		governor = p.Governor

		if caller != g.Locker {
			return NewUnauthorizedError("locker", g.Locker, caller)
		}
		if st := p.State(now); st != types.StatusDraft {
			return NewInvalidStateError("activate", st)
		}

		votingDelay, err := safecast.Uint64ToInt64(g.Params.VotingDelay)
		if err != nil {
			return ErrArithmeticOverflow
		}
		if now < p.CreatedAt+votingDelay {
			return ErrVotingDelayNotElapsed
		}

		votingPeriod, err := safecast.Uint64ToInt64(g.Params.VotingPeriod)
		if err != nil {
			return ErrArithmeticOverflow
		}

		p.ActivatedAt = now
		p.VotingEndsAt = now + votingPeriod
		votingEndsAt = p.VotingEndsAt

		return tx.PutProposal(p)
	})
	if err != nil {
		return err
	}

	s.events.Emit(ProposalActivateEvent{Governor: governor, Proposal: proposal, VotingEndsAt: votingEndsAt})
	sdk.LoggerFrom(ctx).Infow("proposal activated",
		"proposal", proposal.String(),
		"votingEndsAt", votingEndsAt,
	)

	return nil
}

// CastVote records a voter's first vote on an active proposal, weighted by
// the electorate at the moment of the call. A voter with a second opinion
// goes through ChangeVote; casting twice fails with AlreadyVotedError.
//
// A zero weight is accepted and recorded; it contributes nothing to the
// tallies.
func (s *Service) CastVote(ctx context.Context, proposal, voter solana.PublicKey, side types.VoteSide) (*Vote, error) {
	if !side.Valid() {
		return nil, NewInvalidSideError(side)
	}
	now := s.now()

	var vote *Vote
	var governor solana.PublicKey

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		p, _, err := s.proposalWithGovernor(tx, proposal)
		if err != nil {
			return err
		}
		governor = p.Governor

		if st := p.State(now); st != types.StatusActive {
			return NewVotingClosedError(st)
		}

		weight, err := s.electorate.VoterWeight(ctx, p.Governor, voter, now)
		if err != nil {
			return err
		}

		_, bump, err := FindVoteAddress(proposal, voter)
		if err != nil {
			return err
		}

		vote = &Vote{
			Proposal: proposal,
			Voter:    voter,
			Bump:     bump,
			Side:     side,
			Weight:   weight,
		}
		if err := tx.InitVote(vote); err != nil {
			var exists *AccountExistsError
			if errors.As(err, &exists) {
				return NewAlreadyVotedError(proposal, voter)
			}

			return err
		}

		if err := p.addWeight(side, weight); err != nil {
			return err
		}

		return tx.PutProposal(p)
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(VoteSetEvent{
		Governor: governor,
		Proposal: proposal,
		Voter:    voter,
		Side:     vote.Side,
		Weight:   vote.Weight,
	})

	return vote, nil
}

// ChangeVote moves an existing vote to a new side, refreshing its weight
// from the electorate. The old weight leaves its tally and the new weight
// enters the new tally within one ledger transaction; no intermediate tally
// is ever observable.
func (s *Service) ChangeVote(ctx context.Context, proposal, voter solana.PublicKey, side types.VoteSide) (*Vote, error) {
	if !side.Valid() {
		return nil, NewInvalidSideError(side)
	}
	now := s.now()

	var vote *Vote
	var governor solana.PublicKey

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		p, _, err := s.proposalWithGovernor(tx, proposal)
		if err != nil {
			return err
		}
		governor = p.Governor

		if st := p.State(now); st != types.StatusActive {
			return NewVotingClosedError(st)
		}

		voteKey, _, err := FindVoteAddress(proposal, voter)
		if err != nil {
			return err
		}
		v, err := tx.Vote(voteKey)
		if err != nil {
			return err
		}
		if v.Proposal != proposal {
			return NewStaleReferenceError("proposal", proposal, v.Proposal)
		}

		if err := p.subWeight(v.Side, v.Weight); err != nil {
			return err
		}

		weight, err := s.electorate.VoterWeight(ctx, p.Governor, voter, now)
		if err != nil {
			return err
		}

		v.Side = side
		v.Weight = weight
		if err := p.addWeight(side, weight); err != nil {
			return err
		}

		if err := tx.PutVote(v); err != nil {
			return err
		}
		vote = v

		return tx.PutProposal(p)
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(VoteSetEvent{
		Governor: governor,
		Proposal: proposal,
		Voter:    voter,
		Side:     vote.Side,
		Weight:   vote.Weight,
	})

	return vote, nil
}

// CancelProposal withdraws a proposal that has not yet been executed. The
// original proposer may cancel at any pre-execution stage; the governor's
// smart wallet may force-cancel, including while queued. Irreversible.
func (s *Service) CancelProposal(ctx context.Context, proposal, caller solana.PublicKey) error {
	now := s.now()

	var governor solana.PublicKey

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		p, g, err := s.proposalWithGovernor(tx, proposal)
		if err != nil {
			return err
		}
		governor = p.Governor

		if caller != p.Proposer && caller != g.SmartWallet {
			return NewUnauthorizedError("proposer or smart wallet", p.Proposer, caller)
		}

		switch st := p.State(now); st {
		case types.StatusDraft, types.StatusActive, types.StatusSucceeded, types.StatusQueued:
		default:
			return NewInvalidStateError("cancel", st)
		}

		p.CanceledAt = now

		return tx.PutProposal(p)
	})
	if err != nil {
		return err
	}

	s.events.Emit(ProposalCancelEvent{Governor: governor, Proposal: proposal})
	sdk.LoggerFrom(ctx).Infow("proposal canceled", "proposal", proposal.String())

	return nil
}

// QueueProposal registers a succeeded proposal's instruction batch with the
// smart wallet for execution no earlier than now plus the governor's
// timelock delay.
func (s *Service) QueueProposal(ctx context.Context, proposal solana.PublicKey) error {
	now := s.now()

	var governor, queuedTx solana.PublicKey
	var eta int64

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		p, g, err := s.proposalWithGovernor(tx, proposal)
		if err != nil {
			return err
		}
		governor = p.Governor

		if st := p.State(now); st != types.StatusSucceeded {
			return NewInvalidStateError("queue", st)
		}

		eta = now + g.Params.TimelockDelaySeconds
		queuedTx, err = s.wallet.QueueTransaction(ctx, p.Governor, proposal, p.Instructions, eta)
		if err != nil {
			return err
		}

		p.QueuedAt = now
		p.Eta = eta
		p.QueuedTransaction = queuedTx

		return tx.PutProposal(p)
	})
	if err != nil {
		return err
	}

	s.events.Emit(ProposalQueueEvent{Governor: governor, Proposal: proposal, Transaction: queuedTx, Eta: eta})
	sdk.LoggerFrom(ctx).Infow("proposal queued",
		"proposal", proposal.String(),
		"transaction", queuedTx.String(),
		"eta", eta,
	)

	return nil
}

// MarkExecuted records that the smart wallet ran a ready proposal's
// instructions. Only the governor's smart wallet may call this; repeat calls
// fail with ErrAlreadyExecuted.
func (s *Service) MarkExecuted(ctx context.Context, proposal, caller solana.PublicKey) error {
	now := s.now()

	var governor solana.PublicKey

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		p, g, err := s.proposalWithGovernor(tx, proposal)
		if err != nil {
			return err
		}
		governor = p.Governor

		if caller != g.SmartWallet {
			return NewUnauthorizedError("smart wallet", g.SmartWallet, caller)
		}

		switch st := p.State(now); st {
		case types.StatusExecuted:
			return ErrAlreadyExecuted
		case types.StatusReady:
		default:
			return NewInvalidStateError("execute", st)
		}

		p.ExecutedAt = now

		return tx.PutProposal(p)
	})
	if err != nil {
		return err
	}

	s.events.Emit(ProposalExecuteEvent{Governor: governor, Proposal: proposal})
	sdk.LoggerFrom(ctx).Infow("proposal executed", "proposal", proposal.String())

	return nil
}

// CreateProposalMeta attaches title and description metadata to a proposal.
// Only the proposer may do this, and only once.
func (s *Service) CreateProposalMeta(ctx context.Context, proposal, caller solana.PublicKey, title, descriptionLink string) (*ProposalMeta, error) {
	var meta *ProposalMeta

	err := s.ledger.Exec(ctx, func(tx Tx) error {
		p, err := tx.Proposal(proposal)
		if err != nil {
			return err
		}
		if caller != p.Proposer {
			return NewUnauthorizedError("proposer", p.Proposer, caller)
		}

		meta = &ProposalMeta{
			Proposal:        proposal,
			Title:           title,
			DescriptionLink: descriptionLink,
		}

		return tx.InitProposalMeta(meta)
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ProposalMetaCreateEvent{Proposal: proposal, Title: title, DescriptionLink: descriptionLink})

	return meta, nil
}

// Proposal returns a copy of the proposal at key.
func (s *Service) Proposal(ctx context.Context, key solana.PublicKey) (*Proposal, error) {
	var proposal *Proposal
	err := s.ledger.Exec(ctx, func(tx Tx) error {
		p, err := tx.Proposal(key)
		if err != nil {
			return err
		}
		proposal = p

		return nil
	})

	return proposal, err
}

// ProposalState derives the status of the proposal at key using the service
// clock.
func (s *Service) ProposalState(ctx context.Context, key solana.PublicKey) (types.ProposalStatus, error) {
	p, err := s.Proposal(ctx, key)
	if err != nil {
		return "", err
	}

	return p.State(s.now()), nil
}

// Governor returns a copy of the governor at key.
func (s *Service) Governor(ctx context.Context, key solana.PublicKey) (*Governor, error) {
	var governor *Governor
	err := s.ledger.Exec(ctx, func(tx Tx) error {
		g, err := tx.Governor(key)
		if err != nil {
			return err
		}
		governor = g

		return nil
	})

	return governor, err
}

// proposalWithGovernor loads a proposal and its owning governor, checking
// that the governor record actually derives to the address the proposal
// references.
func (s *Service) proposalWithGovernor(tx Tx, key solana.PublicKey) (*Proposal, *Governor, error) {
	p, err := tx.Proposal(key)
	if err != nil {
		return nil, nil, err
	}

	g, err := tx.Governor(p.Governor)
	if err != nil {
		return nil, nil, err
	}
	if gKey := g.Key(); gKey != p.Governor {
		return nil, nil, NewStaleReferenceError("governor", p.Governor, gKey)
	}

	return p, g, nil
}
