package govern

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/daofoundry/govern/types"
)

// fakeClock is a manually-advanced clock for driving time-gated
// preconditions in tests.
type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() time.Time {
	return time.Unix(c.now, 0)
}

// fakeElectorate reports fixed weights per voter.
type fakeElectorate struct {
	weights map[solana.PublicKey]uint64
	err     error
}

func (e *fakeElectorate) VoterWeight(_ context.Context, _, voter solana.PublicKey, _ int64) (uint64, error) {
	if e.err != nil {
		return 0, e.err
	}

	return e.weights[voter], nil
}

// fakeWallet records queued batches and returns a fixed transaction key.
type fakeWallet struct {
	txKey   solana.PublicKey
	queued  int
	lastEta int64
	err     error
}

func (w *fakeWallet) QueueTransaction(_ context.Context, _, _ solana.PublicKey, _ []types.ProposalInstruction, eta int64) (solana.PublicKey, error) {
	if w.err != nil {
		return solana.PublicKey{}, w.err
	}
	w.queued++
	w.lastEta = eta

	return w.txKey, nil
}

// fakeSink appends events in order.
type fakeSink struct {
	events []any
}

func (s *fakeSink) Emit(event any) {
	s.events = append(s.events, event)
}

// fakeLedger is a minimal govern.Ledger with serialized, all-or-nothing
// transactions.
type fakeLedger struct {
	governors map[solana.PublicKey]*Governor
	proposals map[solana.PublicKey]*Proposal
	votes     map[solana.PublicKey]*Vote
	metas     map[solana.PublicKey]*ProposalMeta
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		governors: make(map[solana.PublicKey]*Governor),
		proposals: make(map[solana.PublicKey]*Proposal),
		votes:     make(map[solana.PublicKey]*Vote),
		metas:     make(map[solana.PublicKey]*ProposalMeta),
	}
}

func (l *fakeLedger) Exec(_ context.Context, fn func(tx Tx) error) error {
	t := &fakeTx{
		ledger:    l,
		governors: make(map[solana.PublicKey]*Governor),
		proposals: make(map[solana.PublicKey]*Proposal),
		votes:     make(map[solana.PublicKey]*Vote),
		metas:     make(map[solana.PublicKey]*ProposalMeta),
	}
	if err := fn(t); err != nil {
		return err
	}

	for key, g := range t.governors {
		l.governors[key] = g
	}
	for key, p := range t.proposals {
		l.proposals[key] = p
	}
	for key, v := range t.votes {
		l.votes[key] = v
	}
	for key, m := range t.metas {
		l.metas[key] = m
	}

	return nil
}

type fakeTx struct {
	ledger    *fakeLedger
	governors map[solana.PublicKey]*Governor
	proposals map[solana.PublicKey]*Proposal
	votes     map[solana.PublicKey]*Vote
	metas     map[solana.PublicKey]*ProposalMeta
}

func (t *fakeTx) Governor(key solana.PublicKey) (*Governor, error) {
	if g, ok := t.governors[key]; ok {
		out := *g
		return &out, nil
	}
	if g, ok := t.ledger.governors[key]; ok {
		out := *g
		return &out, nil
	}

	return nil, NewNotFoundError("governor", key)
}

func (t *fakeTx) InitGovernor(g *Governor) error {
	key := g.Key()
	if _, err := t.Governor(key); err == nil {
		return NewAccountExistsError(key)
	}
	out := *g
	t.governors[key] = &out

	return nil
}

func (t *fakeTx) PutGovernor(g *Governor) error {
	out := *g
	t.governors[g.Key()] = &out

	return nil
}

func (t *fakeTx) Proposal(key solana.PublicKey) (*Proposal, error) {
	if p, ok := t.proposals[key]; ok {
		out := *p
		return &out, nil
	}
	if p, ok := t.ledger.proposals[key]; ok {
		out := *p
		return &out, nil
	}

	return nil, NewNotFoundError("proposal", key)
}

func (t *fakeTx) InitProposal(p *Proposal) error {
	key := p.Key()
	if _, err := t.Proposal(key); err == nil {
		return NewAccountExistsError(key)
	}
	out := *p
	t.proposals[key] = &out

	return nil
}

func (t *fakeTx) PutProposal(p *Proposal) error {
	out := *p
	t.proposals[p.Key()] = &out

	return nil
}

func (t *fakeTx) Vote(key solana.PublicKey) (*Vote, error) {
	if v, ok := t.votes[key]; ok {
		out := *v
		return &out, nil
	}
	if v, ok := t.ledger.votes[key]; ok {
		out := *v
		return &out, nil
	}

	return nil, NewNotFoundError("vote", key)
}

func (t *fakeTx) InitVote(v *Vote) error {
	key := v.Key()
	if _, err := t.Vote(key); err == nil {
		return NewAccountExistsError(key)
	}
	out := *v
	t.votes[key] = &out

	return nil
}

func (t *fakeTx) PutVote(v *Vote) error {
	out := *v
	t.votes[v.Key()] = &out

	return nil
}

func (t *fakeTx) ProposalMeta(key solana.PublicKey) (*ProposalMeta, error) {
	if m, ok := t.metas[key]; ok {
		out := *m
		return &out, nil
	}
	if m, ok := t.ledger.metas[key]; ok {
		out := *m
		return &out, nil
	}

	return nil, NewNotFoundError("proposal meta", key)
}

func (t *fakeTx) InitProposalMeta(m *ProposalMeta) error {
	key, _, err := FindProposalMetaAddress(m.Proposal)
	if err != nil {
		return err
	}
	if _, err := t.ProposalMeta(key); err == nil {
		return NewAccountExistsError(key)
	}
	out := *m
	t.metas[key] = &out

	return nil
}
