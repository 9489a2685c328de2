package govern

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern/types"
)

// ErrArithmeticOverflow is returned when counter or weight arithmetic would
// exceed the representable range.
var ErrArithmeticOverflow = errors.New("arithmetic overflow")

// ErrAlreadyExecuted is returned when marking a proposal executed more than
// once.
var ErrAlreadyExecuted = errors.New("proposal already executed")

// UnauthorizedError is returned when a caller lacks the exact principal
// identity an operation requires. There is no role hierarchy; authorization
// is identity equality only.
type UnauthorizedError struct {
	Role     string
	Expected solana.PublicKey
	Got      solana.PublicKey
}

// NewUnauthorizedError creates a new UnauthorizedError.
func NewUnauthorizedError(role string, expected, got solana.PublicKey) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Expected: expected, Got: got}
}

// Error implements the error interface.
func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s must be %s, got %s", e.Role, e.Expected, e.Got)
}

// InvalidStateError is returned when an operation's status precondition is
// not met.
type InvalidStateError struct {
	Operation string
	Current   types.ProposalStatus
}

// NewInvalidStateError creates a new InvalidStateError.
func NewInvalidStateError(operation string, current types.ProposalStatus) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Current: current}
}

// Error implements the error interface.
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state for %s: proposal is %s", e.Operation, e.Current)
}

// VotingClosedError is returned when casting or changing a vote on a
// proposal that is not active.
type VotingClosedError struct {
	Current types.ProposalStatus
}

// NewVotingClosedError creates a new VotingClosedError.
func NewVotingClosedError(current types.ProposalStatus) *VotingClosedError {
	return &VotingClosedError{Current: current}
}

// Error implements the error interface.
func (e *VotingClosedError) Error() string {
	return fmt.Sprintf("voting closed: proposal is %s", e.Current)
}

// AlreadyVotedError is returned when a vote record already exists for a
// (proposal, voter) pair.
type AlreadyVotedError struct {
	Proposal solana.PublicKey
	Voter    solana.PublicKey
}

// NewAlreadyVotedError creates a new AlreadyVotedError.
func NewAlreadyVotedError(proposal, voter solana.PublicKey) *AlreadyVotedError {
	return &AlreadyVotedError{Proposal: proposal, Voter: voter}
}

// Error implements the error interface.
func (e *AlreadyVotedError) Error() string {
	return fmt.Sprintf("already voted: voter %s has a vote on proposal %s", e.Voter, e.Proposal)
}

// AccountExistsError is returned when a compare-and-create collides with an
// existing record.
type AccountExistsError struct {
	Key solana.PublicKey
}

// NewAccountExistsError creates a new AccountExistsError.
func NewAccountExistsError(key solana.PublicKey) *AccountExistsError {
	return &AccountExistsError{Key: key}
}

// Error implements the error interface.
func (e *AccountExistsError) Error() string {
	return fmt.Sprintf("account already exists: %s", e.Key)
}

// NotFoundError is returned when an operation names a record the ledger does
// not hold.
type NotFoundError struct {
	Kind string
	Key  solana.PublicKey
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(kind string, key solana.PublicKey) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// StaleReferenceError is returned when a record's owning-chain references do
// not match the operation's arguments, e.g. a vote naming a different
// proposal.
type StaleReferenceError struct {
	Kind     string
	Expected solana.PublicKey
	Got      solana.PublicKey
}

// NewStaleReferenceError creates a new StaleReferenceError.
func NewStaleReferenceError(kind string, expected, got solana.PublicKey) *StaleReferenceError {
	return &StaleReferenceError{Kind: kind, Expected: expected, Got: got}
}

// Error implements the error interface.
func (e *StaleReferenceError) Error() string {
	return fmt.Sprintf("stale %s reference: expected %s, got %s", e.Kind, e.Expected, e.Got)
}

// InvalidSideError is returned when a vote names a side that cannot be cast.
type InvalidSideError struct {
	Side types.VoteSide
}

// NewInvalidSideError creates a new InvalidSideError.
func NewInvalidSideError(side types.VoteSide) *InvalidSideError {
	return &InvalidSideError{Side: side}
}

// Error implements the error interface.
func (e *InvalidSideError) Error() string {
	return fmt.Sprintf("invalid vote side: %s", e.Side)
}
