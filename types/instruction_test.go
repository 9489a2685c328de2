package types

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPublicKey(b byte) solana.PublicKey {
	var k solana.PublicKey
	for i := range k {
		k[i] = b
	}

	return k
}

func Test_ProposalInstruction_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    ProposalInstruction
		wantErr string
	}{
		{
			name: "valid",
			give: ProposalInstruction{
				Program: testPublicKey(0x01),
				Accounts: []AccountMeta{
					{PublicKey: testPublicKey(0x02), IsWritable: true},
				},
				Data: []byte{0x0a},
			},
		},
		{
			name:    "missing program",
			give:    ProposalInstruction{Data: []byte{0x0a}},
			wantErr: "Key: 'ProposalInstruction.Program' Error:Field validation for 'Program' failed on the 'required' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Validate()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_ProposalInstruction_SolanaRoundTrip(t *testing.T) {
	t.Parallel()

	give := ProposalInstruction{
		Program: testPublicKey(0x01),
		Accounts: []AccountMeta{
			{PublicKey: testPublicKey(0x02), IsSigner: true, IsWritable: false},
			{PublicKey: testPublicKey(0x03), IsSigner: false, IsWritable: true},
		},
		Data: []byte{0x01, 0x02, 0x03},
	}

	ix := give.ToSolana()
	assert.Equal(t, give.Program, ix.ProgramID())

	got, err := NewInstructionFromSolana(ix)
	require.NoError(t, err)
	assert.Equal(t, give, got)
}
