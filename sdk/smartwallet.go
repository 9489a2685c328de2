package sdk

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern/types"
)

// SmartWallet is the execution authority for a Governor. It accepts queued
// instruction batches, holds them through their timelock, and eventually
// executes them.
//
// The smart wallet's key is also the sole principal permitted to change a
// Governor's parameters or electorate, and to force-cancel a queued proposal;
// those checks are enforced by the core, not by this interface.
type SmartWallet interface {
	// QueueTransaction registers a proposal's instruction batch for execution
	// no earlier than eta (unix seconds) and returns the key of the pending
	// transaction record it created.
	QueueTransaction(ctx context.Context, governor, proposal solana.PublicKey, instructions []types.ProposalInstruction, eta int64) (solana.PublicKey, error)
}
