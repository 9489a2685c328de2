package memory

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daofoundry/govern"
	"github.com/daofoundry/govern/types"
)

func Test_Electorate_VoterWeight(t *testing.T) {
	t.Parallel()

	voter := testKey(0x0c)
	electorate := NewElectorate(map[solana.PublicKey]uint64{voter: 40})

	w, err := electorate.VoterWeight(context.Background(), testKey(0x01), voter, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), w)

	w, err = electorate.VoterWeight(context.Background(), testKey(0x01), testKey(0x0d), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), w)

	electorate.SetWeight(voter, 55)
	w, err = electorate.VoterWeight(context.Background(), testKey(0x01), voter, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(55), w)
}

func Test_SmartWallet_QueueTransaction(t *testing.T) {
	t.Parallel()

	wallet := NewSmartWallet()
	proposal := testKey(0x0a)
	instructions := []types.ProposalInstruction{
		{Program: testKey(0x0e), Data: []byte{1}},
	}

	key, err := wallet.QueueTransaction(context.Background(), testKey(0x01), proposal, instructions, 500)
	require.NoError(t, err)

	tx, ok := wallet.Pending(key)
	require.True(t, ok)
	assert.Equal(t, proposal, tx.Proposal)
	assert.Equal(t, int64(500), tx.Eta)
	assert.Equal(t, instructions, tx.Instructions)

	// Same proposal and eta derive the same key.
	again, err := wallet.QueueTransaction(context.Background(), testKey(0x01), proposal, instructions, 500)
	require.NoError(t, err)
	assert.Equal(t, key, again)

	other, err := wallet.QueueTransaction(context.Background(), testKey(0x01), proposal, instructions, 501)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func Test_Sink_Order(t *testing.T) {
	t.Parallel()

	sink := NewSink()
	sink.Emit("first")
	sink.Emit("second")

	assert.Equal(t, []any{"first", "second"}, sink.Events())
}

// Full proposal lifecycle over the in-memory collaborators, driven through
// the service the way local tooling wires it up.
func Test_Memory_Lifecycle(t *testing.T) {
	t.Parallel()

	const epoch = int64(1_700_000_000)

	now := epoch
	clock := func() time.Time { return time.Unix(now, 0) }

	voter := testKey(0x0b)
	locker := testKey(0x02)
	smartWallet := testKey(0x03)

	ledger := NewLedger()
	electorate := NewElectorate(map[solana.PublicKey]uint64{voter: 60})
	wallet := NewSmartWallet()
	sink := NewSink()

	service := govern.NewService(ledger, electorate, wallet,
		govern.WithClock(clock),
		govern.WithEventSink(sink),
	)

	ctx := context.Background()

	g, err := service.CreateGovernor(ctx, testKey(0x01), locker, smartWallet, types.GovernanceParameters{
		VotingPeriod:         100,
		QuorumVotes:          50,
		TimelockDelaySeconds: 10,
	})
	require.NoError(t, err)

	p, err := service.CreateProposal(ctx, g.Key(), testKey(0x04), []types.ProposalInstruction{
		{Program: testKey(0x0e), Data: []byte{1, 2}},
	})
	require.NoError(t, err)

	require.NoError(t, service.ActivateProposal(ctx, p.Key(), locker))

	now = epoch + 10
	_, err = service.CastVote(ctx, p.Key(), voter, types.SideFor)
	require.NoError(t, err)

	now = epoch + 100
	require.NoError(t, service.QueueProposal(ctx, p.Key()))

	queued, err := service.Proposal(ctx, p.Key())
	require.NoError(t, err)

	tx, ok := wallet.Pending(queued.QueuedTransaction)
	require.True(t, ok)
	assert.Equal(t, epoch+110, tx.Eta)
	assert.Equal(t, queued.Instructions, tx.Instructions)

	now = epoch + 111
	require.NoError(t, service.MarkExecuted(ctx, p.Key(), smartWallet))

	st, err := service.ProposalState(ctx, p.Key())
	require.NoError(t, err)
	assert.Equal(t, types.StatusExecuted, st)

	assert.Len(t, sink.Events(), 6)
}
