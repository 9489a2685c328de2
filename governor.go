// Package govern implements the proposal lifecycle state machine of a DAO:
// a Governor holds governance parameters and a monotonic proposal counter,
// proposals move through time-boxed token-weighted voting, and passed
// proposals are handed to an external smart wallet for timelocked execution.
package govern

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern/types"
)

// ProgramID is the address under which governance records derive their
// program addresses.
var ProgramID = solana.MustPublicKeyFromBase58("4iK5opcjV9n2U7GFnTVukRULym2ujJttv6BSyrbmSYM4")

// Governor is the root record of a DAO: it holds control over protocol
// parameters and counts the proposals ever created under it.
type Governor struct {
	// Base is the key the governor's address is derived from.
	Base solana.PublicKey `json:"base"`
	// Bump is the address-derivation bump seed.
	Bump uint8 `json:"bump"`

	// ProposalCount is the total number of proposals created under this
	// governor. It increments by exactly one per proposal and is never
	// reused.
	ProposalCount uint64 `json:"proposalCount"`

	// Locker is the voting body associated with the governor. It activates
	// proposals and reports each voter's weight.
	Locker solana.PublicKey `json:"locker"`

	// SmartWallet executes proposals and is the only principal allowed to
	// change governance parameters.
	SmartWallet solana.PublicKey `json:"smartWallet"`

	// Params are the current governance parameters. Changing them never
	// affects proposals that already exist.
	Params types.GovernanceParameters `json:"params"`
}

// FindGovernorAddress derives the address of the Governor for the given base
// key.
func FindGovernorAddress(base solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{[]byte("Governor"), base.Bytes()},
		ProgramID,
	)
}

// Key returns the governor's derived address.
func (g *Governor) Key() solana.PublicKey {
	key, _, _ := FindGovernorAddress(g.Base)
	return key
}

// proposalIndexSeed encodes a proposal index for address derivation.
func proposalIndexSeed(index uint64) []byte {
	seed := make([]byte, 8)
	binary.LittleEndian.PutUint64(seed, index)

	return seed
}

// FindProposalAddress derives the address of the proposal with the given
// index under a governor.
func FindProposalAddress(governor solana.PublicKey, index uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{[]byte("Proposal"), governor.Bytes(), proposalIndexSeed(index)},
		ProgramID,
	)
}

// FindVoteAddress derives the address of a voter's vote record on a
// proposal.
func FindVoteAddress(proposal, voter solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{[]byte("Vote"), proposal.Bytes(), voter.Bytes()},
		ProgramID,
	)
}
