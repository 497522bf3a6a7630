package redio

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type AddAffiliateInstructionConfig struct {
	Merchant        solana.PublicKey
	AffiliateWallet solana.PublicKey
	RefID           string
}

func (c *AddAffiliateInstructionConfig) Validate() error {
	if c.Merchant.IsZero() {
		return fmt.Errorf("merchant public key is required")
	}
	if c.AffiliateWallet.IsZero() {
		return fmt.Errorf("affiliate wallet public key is required")
	}
	if c.RefID == "" {
		return fmt.Errorf("ref ID is required")
	}
	if len(c.RefID) > MaxRefIDLength {
		return fmt.Errorf("ref ID length %d exceeds max %d", len(c.RefID), MaxRefIDLength)
	}
	return nil
}

func BuildAddAffiliateInstruction(
	programID solana.PublicKey,
	config AddAffiliateInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	// Borsh encodes the string as a u32 little-endian byte count followed by
	// raw UTF-8 bytes, matching the program's expected layout.
	data, err := borsh.Serialize(struct {
		Discriminator [8]uint8
		RefID         string
	}{
		Discriminator: addAffiliateDiscriminator,
		RefID:         config.RefID,
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

	accounts := []*solana.AccountMeta{
		{PublicKey: poolPDA, IsSigner: false, IsWritable: false},
		{PublicKey: affiliatePDA, IsSigner: false, IsWritable: true},
		{PublicKey: config.AffiliateWallet, IsSigner: false, IsWritable: false},
		{PublicKey: config.Merchant, IsSigner: true, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
