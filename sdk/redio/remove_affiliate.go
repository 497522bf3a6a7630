package redio

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type RemoveAffiliateInstructionConfig struct {
	Merchant        solana.PublicKey
	AffiliateWallet solana.PublicKey
}

func (c *RemoveAffiliateInstructionConfig) Validate() error {
	if c.Merchant.IsZero() {
		return fmt.Errorf("merchant public key is required")
	}
	if c.AffiliateWallet.IsZero() {
		return fmt.Errorf("affiliate wallet public key is required")
	}
	return nil
}

func BuildRemoveAffiliateInstruction(
	programID solana.PublicKey,
	config RemoveAffiliateInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	// No arguments; the payload is the discriminator alone.
	data, err := borsh.Serialize(struct {
		Discriminator [8]uint8
	}{
		Discriminator: removeAffiliateDiscriminator,
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
		{PublicKey: config.AffiliateWallet, IsSigner: false, IsWritable: true},
		{PublicKey: config.Merchant, IsSigner: true, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
