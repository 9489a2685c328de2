// Package memory provides in-memory implementations of the govern sdk
// contracts for tests and local tooling: a serialized transactional ledger,
// a static electorate, a queueing smart wallet, and an append-only event
// sink.
package memory

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern"
)

// Ledger is an in-memory govern.Ledger. Transactions are serialized with a
// mutex; each transaction stages writes against clones of the stored records
// and commits them only when the callback succeeds, so a failed operation
// leaves no partial state behind.
type Ledger struct {
	mu        sync.Mutex
	governors map[solana.PublicKey]*govern.Governor
	proposals map[solana.PublicKey]*govern.Proposal
	votes     map[solana.PublicKey]*govern.Vote
	metas     map[solana.PublicKey]*govern.ProposalMeta
}

// NewLedger creates an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{
		governors: make(map[solana.PublicKey]*govern.Governor),
		proposals: make(map[solana.PublicKey]*govern.Proposal),
		votes:     make(map[solana.PublicKey]*govern.Vote),
		metas:     make(map[solana.PublicKey]*govern.ProposalMeta),
	}
}

// Exec implements govern.Ledger.
func (l *Ledger) Exec(ctx context.Context, fn func(tx govern.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	t := &ledgerTx{
		ledger:    l,
		governors: make(map[solana.PublicKey]*govern.Governor),
		proposals: make(map[solana.PublicKey]*govern.Proposal),
		votes:     make(map[solana.PublicKey]*govern.Vote),
		metas:     make(map[solana.PublicKey]*govern.ProposalMeta),
	}

	if err := fn(t); err != nil {
		return err
	}

	t.commit()

	return nil
}

// ledgerTx stages reads and writes for one transaction. Records handed to
// the callback are clones; nothing reaches the ledger maps until commit.
type ledgerTx struct {
	ledger    *Ledger
	governors map[solana.PublicKey]*govern.Governor
	proposals map[solana.PublicKey]*govern.Proposal
	votes     map[solana.PublicKey]*govern.Vote
	metas     map[solana.PublicKey]*govern.ProposalMeta
}

func (t *ledgerTx) commit() {
	for key, g := range t.governors {
		t.ledger.governors[key] = g
	}
	for key, p := range t.proposals {
		t.ledger.proposals[key] = p
	}
	for key, v := range t.votes {
		t.ledger.votes[key] = v
	}
	for key, m := range t.metas {
		t.ledger.metas[key] = m
	}
}

func cloneGovernor(g *govern.Governor) *govern.Governor {
	out := *g
	return &out
}

func cloneProposal(p *govern.Proposal) *govern.Proposal {
	out := *p
	out.Instructions = append(out.Instructions[:0:0], p.Instructions...)

	return &out
}

func cloneVote(v *govern.Vote) *govern.Vote {
	out := *v
	return &out
}

// Governor implements govern.Tx.
func (t *ledgerTx) Governor(key solana.PublicKey) (*govern.Governor, error) {
	if g, ok := t.governors[key]; ok {
		return cloneGovernor(g), nil
	}
	if g, ok := t.ledger.governors[key]; ok {
		return cloneGovernor(g), nil
	}

	return nil, govern.NewNotFoundError("governor", key)
}

// InitGovernor implements govern.Tx.
func (t *ledgerTx) InitGovernor(g *govern.Governor) error {
	key := g.Key()
	if t.hasGovernor(key) {
		return govern.NewAccountExistsError(key)
	}
	t.governors[key] = cloneGovernor(g)

	return nil
}

// PutGovernor implements govern.Tx.
func (t *ledgerTx) PutGovernor(g *govern.Governor) error {
	key := g.Key()
	if !t.hasGovernor(key) {
		return govern.NewNotFoundError("governor", key)
	}
	t.governors[key] = cloneGovernor(g)

	return nil
}

func (t *ledgerTx) hasGovernor(key solana.PublicKey) bool {
	if _, ok := t.governors[key]; ok {
		return true
	}
	_, ok := t.ledger.governors[key]

	return ok
}

// Proposal implements govern.Tx.
func (t *ledgerTx) Proposal(key solana.PublicKey) (*govern.Proposal, error) {
	if p, ok := t.proposals[key]; ok {
		return cloneProposal(p), nil
	}
	if p, ok := t.ledger.proposals[key]; ok {
		return cloneProposal(p), nil
	}

	return nil, govern.NewNotFoundError("proposal", key)
}

// InitProposal implements govern.Tx.
func (t *ledgerTx) InitProposal(p *govern.Proposal) error {
	key := p.Key()
	if t.hasProposal(key) {
		return govern.NewAccountExistsError(key)
	}
	t.proposals[key] = cloneProposal(p)

	return nil
}

// PutProposal implements govern.Tx.
func (t *ledgerTx) PutProposal(p *govern.Proposal) error {
	key := p.Key()
	if !t.hasProposal(key) {
		return govern.NewNotFoundError("proposal", key)
	}
	t.proposals[key] = cloneProposal(p)

	return nil
}

func (t *ledgerTx) hasProposal(key solana.PublicKey) bool {
	if _, ok := t.proposals[key]; ok {
		return true
	}
	_, ok := t.ledger.proposals[key]

	return ok
}

// Vote implements govern.Tx.
func (t *ledgerTx) Vote(key solana.PublicKey) (*govern.Vote, error) {
	if v, ok := t.votes[key]; ok {
		return cloneVote(v), nil
	}
	if v, ok := t.ledger.votes[key]; ok {
		return cloneVote(v), nil
	}

	return nil, govern.NewNotFoundError("vote", key)
}

// InitVote implements govern.Tx.
func (t *ledgerTx) InitVote(v *govern.Vote) error {
	key := v.Key()
	if t.hasVote(key) {
		return govern.NewAccountExistsError(key)
	}
	t.votes[key] = cloneVote(v)

	return nil
}

// PutVote implements govern.Tx.
func (t *ledgerTx) PutVote(v *govern.Vote) error {
	key := v.Key()
	if !t.hasVote(key) {
		return govern.NewNotFoundError("vote", key)
	}
	t.votes[key] = cloneVote(v)

	return nil
}

func (t *ledgerTx) hasVote(key solana.PublicKey) bool {
	if _, ok := t.votes[key]; ok {
		return true
	}
	_, ok := t.ledger.votes[key]

	return ok
}

// ProposalMeta implements govern.Tx.
func (t *ledgerTx) ProposalMeta(key solana.PublicKey) (*govern.ProposalMeta, error) {
	if m, ok := t.metas[key]; ok {
		out := *m
		return &out, nil
	}
	if m, ok := t.ledger.metas[key]; ok {
		out := *m
		return &out, nil
	}

	return nil, govern.NewNotFoundError("proposal meta", key)
}

// InitProposalMeta implements govern.Tx.
func (t *ledgerTx) InitProposalMeta(m *govern.ProposalMeta) error {
	key, _, err := govern.FindProposalMetaAddress(m.Proposal)
	if err != nil {
		return err
	}
	if _, ok := t.metas[key]; ok {
		return govern.NewAccountExistsError(key)
	}
	if _, ok := t.ledger.metas[key]; ok {
		return govern.NewAccountExistsError(key)
	}
	out := *m
	t.metas[key] = &out

	return nil
}
