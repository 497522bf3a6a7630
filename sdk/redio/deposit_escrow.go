package redio

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type DepositEscrowInstructionConfig struct {
	Merchant solana.PublicKey
	Mint     solana.PublicKey
	Amount   uint64
}

func (c *DepositEscrowInstructionConfig) Validate() error {
	if c.Merchant.IsZero() {
		return fmt.Errorf("merchant public key is required")
	}
	if c.Mint.IsZero() {
		return fmt.Errorf("mint public key is required")
	}
	return nil
}

func BuildDepositEscrowInstruction(
	programID solana.PublicKey,
	config DepositEscrowInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator [8]uint8
		Amount        uint64
	}{
		Discriminator: depositEscrowDiscriminator,
		Amount:        config.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	accounts, err := escrowTransferAccounts(programID, config.Merchant, config.Mint)
	if err != nil {
		return nil, err
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}

// escrowTransferAccounts builds the shared account list for deposit_escrow
// and withdraw_escrow, which address the same accounts in the same order.
func escrowTransferAccounts(
	programID solana.PublicKey,
	merchant solana.PublicKey,
	mint solana.PublicKey,
) ([]*solana.AccountMeta, error) {
	poolPDA, _, err := DerivePoolPDA(programID, merchant)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pool PDA: %w", err)
	}
	escrowAuthority, _, err := DeriveEscrowAuthorityPDA(programID, poolPDA)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow authority PDA: %w", err)
	}
	merchantToken, _, err := DeriveAssociatedTokenAddress(merchant, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive merchant token address: %w", err)
	}
	escrowToken, _, err := DeriveAssociatedTokenAddress(escrowAuthority, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow token address: %w", err)
	}

	return []*solana.AccountMeta{
		{PublicKey: poolPDA, IsSigner: false, IsWritable: false},
		{PublicKey: merchant, IsSigner: true, IsWritable: true},
		{PublicKey: merchantToken, IsSigner: false, IsWritable: true},
		{PublicKey: escrowAuthority, IsSigner: false, IsWritable: false},
		{PublicKey: escrowToken, IsSigner: false, IsWritable: true},
		{PublicKey: mint, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}, nil
}
