package memory

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern/types"
)

// PendingTransaction is one queued instruction batch held by the in-memory
// smart wallet.
type PendingTransaction struct {
	Key          solana.PublicKey
	Governor     solana.PublicKey
	Proposal     solana.PublicKey
	Instructions []types.ProposalInstruction
	Eta          int64
}

// SmartWallet is an in-memory execution authority. It records queued
// batches and derives a deterministic key per (proposal, eta) pair.
type SmartWallet struct {
	mu      sync.RWMutex
	pending map[solana.PublicKey]PendingTransaction
}

// NewSmartWallet creates an empty in-memory smart wallet.
func NewSmartWallet() *SmartWallet {
	return &SmartWallet{pending: make(map[solana.PublicKey]PendingTransaction)}
}

// QueueTransaction implements sdk.SmartWallet.
func (w *SmartWallet) QueueTransaction(_ context.Context, governor, proposal solana.PublicKey, instructions []types.ProposalInstruction, eta int64) (solana.PublicKey, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := transactionKey(proposal, eta)
	w.pending[key] = PendingTransaction{
		Key:          key,
		Governor:     governor,
		Proposal:     proposal,
		Instructions: append([]types.ProposalInstruction(nil), instructions...),
		Eta:          eta,
	}

	return key, nil
}

// Pending returns the queued transaction at key, if any.
func (w *SmartWallet) Pending(key solana.PublicKey) (PendingTransaction, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	tx, ok := w.pending[key]

	return tx, ok
}

func transactionKey(proposal solana.PublicKey, eta int64) solana.PublicKey {
	var etaBytes [8]byte
	binary.LittleEndian.PutUint64(etaBytes[:], uint64(eta))

	sum := sha256.Sum256(append(proposal.Bytes(), etaBytes[:]...))

	return solana.PublicKeyFromBytes(sum[:])
}
