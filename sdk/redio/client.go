package redio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// Client is a typed client for the redio affiliate-commission program. It
// derives the addresses each operation needs, builds the byte-exact
// instruction, and hands it to the submitter. All derivation and
// encoding is pure; only the RPC round trip does I/O.
type Client struct {
	log    *slog.Logger
	rpc    RPCClient
	submit *submitter
}

func New(log *slog.Logger, rpc RPCClient, signer *solana.PrivateKey, programID solana.PublicKey) *Client {
	return &Client{
		log:    log,
		rpc:    rpc,
		submit: NewSubmitter(log, rpc, signer, programID),
	}
}

func (c *Client) ProgramID() solana.PublicKey {
	if c.submit == nil {
		return solana.PublicKey{}
	}
	return c.submit.programID
}

func (c *Client) Signer() *solana.PrivateKey {
	if c.submit == nil {
		return nil
	}
	return c.submit.signer
}

// GetPool fetches a merchant's pool account.
func (c *Client) GetPool(ctx context.Context, merchant solana.PublicKey) (*MerchantPool, error) {
	pda, _, err := DerivePoolPDA(c.submit.programID, merchant)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PDA: %w", err)
	}

	account, err := c.rpc.GetAccountInfo(ctx, pda)
	if err != nil {
		if errors.Is(err, solanarpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account data: %w", err)
	}
	if account.Value == nil {
		return nil, ErrAccountNotFound
	}

	pool, err := DeserializeMerchantPool(account.Value.Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize merchant pool: %w", err)
	}
	return pool, nil
}

// GetAffiliate fetches the affiliate account for a wallet within a
// merchant's pool.
func (c *Client) GetAffiliate(ctx context.Context, merchant solana.PublicKey, wallet solana.PublicKey) (*AffiliateAccount, error) {
	poolPDA, _, err := DerivePoolPDA(c.submit.programID, merchant)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pool PDA: %w", err)
	}
	pda, _, err := DeriveAffiliatePDA(c.submit.programID, poolPDA, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to derive affiliate PDA: %w", err)
	}

	account, err := c.rpc.GetAccountInfo(ctx, pda)
	if err != nil {
		if errors.Is(err, solanarpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account data: %w", err)
	}
	if account.Value == nil {
		return nil, ErrAccountNotFound
	}

	affiliate, err := DeserializeAffiliateAccount(account.Value.Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize affiliate account: %w", err)
	}
	return affiliate, nil
}

// GetAffiliates fetches all affiliate accounts for the program, filtered by
// the AffiliateAccount discriminator.
func (c *Client) GetAffiliates(ctx context.Context) ([]AffiliateAccount, error) {
	opts := &solanarpc.GetProgramAccountsOpts{
		Filters: []solanarpc.RPCFilter{
			{
				Memcmp: &solanarpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  solana.Base58(affiliateAccountDiscriminator[:]),
				},
			},
		},
	}

	accounts, err := c.rpc.GetProgramAccountsWithOpts(ctx, c.submit.programID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get program accounts: %w", err)
	}

	affiliates := make([]AffiliateAccount, 0, len(accounts))
	for _, acct := range accounts {
		affiliate, err := DeserializeAffiliateAccount(acct.Account.Data.GetBinary())
		if err != nil {
			c.log.Warn("failed to deserialize affiliate account", "pubkey", acct.Pubkey, "error", err)
			continue
		}
		affiliates = append(affiliates, *affiliate)
	}
	return affiliates, nil
}

// InitializePool creates a merchant pool with its escrow token account.
func (c *Client) InitializePool(
	ctx context.Context,
	config InitializePoolInstructionConfig,
) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	instruction, err := BuildInitializePoolInstruction(c.submit.programID, config)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	sig, res, err := c.submit.Submit(ctx, instruction, &SubmitOptions{
		SkipPreflight: true,
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to submit instruction: %w", err)
	}
	return sig, res, nil
}

// AddAffiliate registers an affiliate wallet in the merchant's pool.
func (c *Client) AddAffiliate(
	ctx context.Context,
	config AddAffiliateInstructionConfig,
) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	instruction, err := BuildAddAffiliateInstruction(c.submit.programID, config)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	sig, res, err := c.submit.Submit(ctx, instruction, nil)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to submit instruction: %w", err)
	}
	return sig, res, nil
}

// ProcessSale records a sale and pays the affiliate's commission from escrow.
func (c *Client) ProcessSale(
	ctx context.Context,
	config ProcessSaleInstructionConfig,
) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	instruction, err := BuildProcessSaleInstruction(c.submit.programID, config)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	sig, res, err := c.submit.Submit(ctx, instruction, &SubmitOptions{
		SkipPreflight: true,
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to submit instruction: %w", err)
	}
	return sig, res, nil
}

// RemoveAffiliate deactivates an affiliate.
func (c *Client) RemoveAffiliate(
	ctx context.Context,
	config RemoveAffiliateInstructionConfig,
) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	instruction, err := BuildRemoveAffiliateInstruction(c.submit.programID, config)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	sig, res, err := c.submit.Submit(ctx, instruction, nil)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to submit instruction: %w", err)
	}
	return sig, res, nil
}

// DepositEscrow moves tokens from the merchant's token account into escrow.
func (c *Client) DepositEscrow(
	ctx context.Context,
	config DepositEscrowInstructionConfig,
) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	instruction, err := BuildDepositEscrowInstruction(c.submit.programID, config)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	sig, res, err := c.submit.Submit(ctx, instruction, nil)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to submit instruction: %w", err)
	}
	return sig, res, nil
}

// WithdrawEscrow moves unused tokens from escrow back to the merchant.
func (c *Client) WithdrawEscrow(
	ctx context.Context,
	config WithdrawEscrowInstructionConfig,
) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	instruction, err := BuildWithdrawEscrowInstruction(c.submit.programID, config)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	sig, res, err := c.submit.Submit(ctx, instruction, nil)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to submit instruction: %w", err)
	}
	return sig, res, nil
}
