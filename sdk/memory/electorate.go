package memory

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// Electorate is an in-memory voting-power source backed by a fixed weight
// table. It ignores the reference time; weights are whatever was last set.
type Electorate struct {
	mu      sync.RWMutex
	weights map[solana.PublicKey]uint64
}

// NewElectorate creates an electorate with the given voter weights.
func NewElectorate(weights map[solana.PublicKey]uint64) *Electorate {
	e := &Electorate{weights: make(map[solana.PublicKey]uint64, len(weights))}
	for voter, weight := range weights {
		e.weights[voter] = weight
	}

	return e
}

// SetWeight sets a voter's weight. Already-cast votes are unaffected until
// the voter changes their vote.
func (e *Electorate) SetWeight(voter solana.PublicKey, weight uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.weights[voter] = weight
}

// VoterWeight implements sdk.Electorate. Unknown voters have zero weight.
func (e *Electorate) VoterWeight(_ context.Context, _, voter solana.PublicKey, _ int64) (uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.weights[voter], nil
}
