package redio

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type ProcessSaleInstructionConfig struct {
	// Authority pays fees and any affiliate token account creation. It does
	// not need to be the merchant.
	Authority       solana.PublicKey
	Merchant        solana.PublicKey
	AffiliateWallet solana.PublicKey
	Mint            solana.PublicKey
	SaleAmount      uint64
}

func (c *ProcessSaleInstructionConfig) Validate() error {
	if c.Authority.IsZero() {
		return fmt.Errorf("authority public key is required")
	}
	if c.Merchant.IsZero() {
		return fmt.Errorf("merchant public key is required")
	}
	if c.AffiliateWallet.IsZero() {
		return fmt.Errorf("affiliate wallet public key is required")
	}
	if c.Mint.IsZero() {
		return fmt.Errorf("mint public key is required")
	}
	return nil
}

func BuildProcessSaleInstruction(
	programID solana.PublicKey,
	config ProcessSaleInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator [8]uint8
		SaleAmount    uint64
	}{
		Discriminator: processSaleDiscriminator,
		SaleAmount:    config.SaleAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	poolPDA, _, err := DerivePoolPDA(programID, config.Merchant)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pool PDA: %w", err)
	}
	affiliatePDA, _, err := DeriveAffiliatePDA(programID, poolPDA, config.AffiliateWallet)
	if err != nil {
		return nil, fmt.Errorf("failed to derive affiliate PDA: %w", err)
	}
	escrowAuthority, _, err := DeriveEscrowAuthorityPDA(programID, poolPDA)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow authority PDA: %w", err)
	}
	escrowToken, _, err := DeriveAssociatedTokenAddress(escrowAuthority, config.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow token address: %w", err)
	}
	affiliateToken, _, err := DeriveAssociatedTokenAddress(config.AffiliateWallet, config.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive affiliate token address: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: poolPDA, IsSigner: false, IsWritable: true},
		{PublicKey: affiliatePDA, IsSigner: false, IsWritable: true},
		{PublicKey: config.AffiliateWallet, IsSigner: false, IsWritable: true},
		{PublicKey: escrowAuthority, IsSigner: false, IsWritable: false},
		{PublicKey: escrowToken, IsSigner: false, IsWritable: true},
		{PublicKey: affiliateToken, IsSigner: false, IsWritable: true},
		{PublicKey: config.Mint, IsSigner: false, IsWritable: false},
		{PublicKey: config.Authority, IsSigner: true, IsWritable: true},
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
