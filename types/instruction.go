package types

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"
)

// AccountMeta describes one account passed to an instruction, along with the
// capabilities the executing program is granted over it.
type AccountMeta struct {
	// PublicKey is the account's address.
	PublicKey solana.PublicKey `json:"pubkey"`
	// IsSigner is true if the instruction requires a transaction signature
	// matching PublicKey.
	IsSigner bool `json:"isSigner"`
	// IsWritable is true if the account may be loaded read-write.
	IsWritable bool `json:"isWritable"`
}

// ProposalInstruction is one instruction in a proposal's execution batch. The
// payload is opaque to the governance core; only the smart wallet interprets
// it.
type ProposalInstruction struct {
	// Program is the address of the program that executes this instruction.
	Program solana.PublicKey `json:"programId" validate:"required"`
	// Accounts is the ordered account list handed to the program.
	Accounts []AccountMeta `json:"keys" validate:"dive"`
	// Data is the opaque payload passed to the program.
	Data []byte `json:"data"`
}

// Validate ensures the instruction names a program.
func (ix ProposalInstruction) Validate() error {
	return validator.New().Struct(ix)
}

// NewInstructionFromSolana converts a solana.Instruction into a
// ProposalInstruction suitable for embedding in a proposal.
func NewInstructionFromSolana(ix solana.Instruction) (ProposalInstruction, error) {
	data, err := ix.Data()
	if err != nil {
		return ProposalInstruction{}, fmt.Errorf("unable to get instruction data: %w", err)
	}

	accounts := make([]AccountMeta, 0, len(ix.Accounts()))
	for _, acc := range ix.Accounts() {
		accounts = append(accounts, AccountMeta{
			PublicKey:  acc.PublicKey,
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		})
	}

	return ProposalInstruction{
		Program:  ix.ProgramID(),
		Accounts: accounts,
		Data:     data,
	}, nil
}

// ToSolana converts the instruction back into a solana.Instruction for
// submission by the smart wallet.
func (ix ProposalInstruction) ToSolana() solana.Instruction {
	metas := make(solana.AccountMetaSlice, 0, len(ix.Accounts))
	for _, acc := range ix.Accounts {
		metas = append(metas, &solana.AccountMeta{
			PublicKey:  acc.PublicKey,
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		})
	}

	return solana.NewInstruction(ix.Program, metas, ix.Data)
}
