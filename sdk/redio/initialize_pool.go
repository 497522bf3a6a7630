package redio

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type InitializePoolInstructionConfig struct {
	Merchant       solana.PublicKey
	Mint           solana.PublicKey
	CommissionRate uint16
	InitialDeposit uint64
}

func (c *InitializePoolInstructionConfig) Validate() error {
	if c.Merchant.IsZero() {
		return fmt.Errorf("merchant public key is required")
	}
	if c.Mint.IsZero() {
		return fmt.Errorf("mint public key is required")
	}
	// CommissionRate range (0..=10000) is enforced on-chain, not here.
	return nil
}

func BuildInitializePoolInstruction(
	programID solana.PublicKey,
	config InitializePoolInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	// Serialize the instruction data
	data, err := borsh.Serialize(struct {
		Discriminator  [8]uint8
		CommissionRate uint16
		InitialDeposit uint64
	}{
		Discriminator:  initializePoolDiscriminator,
		CommissionRate: config.CommissionRate,
		InitialDeposit: config.InitialDeposit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	// Derive the addresses the operation touches.
	poolPDA, _, err := DerivePoolPDA(programID, config.Merchant)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pool PDA: %w", err)
	}
	escrowAuthority, _, err := DeriveEscrowAuthorityPDA(programID, poolPDA)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow authority PDA: %w", err)
	}
	merchantToken, _, err := DeriveAssociatedTokenAddress(config.Merchant, config.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive merchant token address: %w", err)
	}
	escrowToken, _, err := DeriveAssociatedTokenAddress(escrowAuthority, config.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow token address: %w", err)
	}

	// Account order is part of the on-chain contract.
	accounts := []*solana.AccountMeta{
		{PublicKey: poolPDA, IsSigner: false, IsWritable: true},
		{PublicKey: config.Merchant, IsSigner: true, IsWritable: true},
		{PublicKey: merchantToken, IsSigner: false, IsWritable: true},
		{PublicKey: escrowAuthority, IsSigner: false, IsWritable: false},
		{PublicKey: escrowToken, IsSigner: false, IsWritable: true},
		{PublicKey: config.Mint, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SPLAssociatedTokenAccountProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
