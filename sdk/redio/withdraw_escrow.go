package redio

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type WithdrawEscrowInstructionConfig struct {
	Merchant solana.PublicKey
	Mint     solana.PublicKey
	Amount   uint64
}

func (c *WithdrawEscrowInstructionConfig) Validate() error {
	if c.Merchant.IsZero() {
		return fmt.Errorf("merchant public key is required")
	}
	if c.Mint.IsZero() {
		return fmt.Errorf("mint public key is required")
	}
	return nil
}

func BuildWithdrawEscrowInstruction(
	programID solana.PublicKey,
	config WithdrawEscrowInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator [8]uint8
		Amount        uint64
	}{
		Discriminator: withdrawEscrowDiscriminator,
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
