package redio_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/ic-n/redio-contract/sdk/redio"
)

func TestSDK_Redio_DerivePoolPDA(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	merchant := solana.NewWallet().PublicKey()

	pda1, bump1, err := redio.DerivePoolPDA(programID, merchant)
	require.NoError(t, err)
	require.False(t, pda1.IsZero(), "PDA should not be zero")
	require.LessOrEqual(t, int(bump1), 255, "Invalid bump seed")

	// Same inputs produce same PDA (determinism)
	pda2, bump2, err := redio.DerivePoolPDA(programID, merchant)
	require.NoError(t, err)
	require.Equal(t, pda1, pda2, "PDA should be deterministic")
	require.Equal(t, bump1, bump2, "Bump should be deterministic")
}

func TestSDK_Redio_DerivePoolPDA_DifferentMerchants(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()

	pda1, _, err := redio.DerivePoolPDA(programID, solana.NewWallet().PublicKey())
	require.NoError(t, err)

	pda2, _, err := redio.DerivePoolPDA(programID, solana.NewWallet().PublicKey())
	require.NoError(t, err)

	require.NotEqual(t, pda1, pda2, "PDAs should be different for different merchants")
}

func TestSDK_Redio_DerivePoolPDA_DifferentPrograms(t *testing.T) {
	t.Parallel()

	merchant := solana.NewWallet().PublicKey()

	pda1, _, err := redio.DerivePoolPDA(solana.NewWallet().PublicKey(), merchant)
	require.NoError(t, err)

	pda2, _, err := redio.DerivePoolPDA(solana.NewWallet().PublicKey(), merchant)
	require.NoError(t, err)

	require.NotEqual(t, pda1, pda2, "PDAs should be different for different program IDs")
}

func TestSDK_Redio_DeriveEscrowAuthorityPDA(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	merchant := solana.NewWallet().PublicKey()

	pool, _, err := redio.DerivePoolPDA(programID, merchant)
	require.NoError(t, err)

	// Deriving twice for the same pool yields identical bytes and bump.
	authority1, bump1, err := redio.DeriveEscrowAuthorityPDA(programID, pool)
	require.NoError(t, err)
	authority2, bump2, err := redio.DeriveEscrowAuthorityPDA(programID, pool)
	require.NoError(t, err)

	require.Equal(t, authority1.Bytes(), authority2.Bytes(), "escrow authority should be deterministic")
	require.Equal(t, bump1, bump2, "bump should be deterministic")
	require.NotEqual(t, pool, authority1, "escrow authority should differ from pool")
}

func TestSDK_Redio_DeriveAffiliatePDA(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	pool := solana.NewWallet().PublicKey()
	wallet := solana.NewWallet().PublicKey()

	pda1, bump1, err := redio.DeriveAffiliatePDA(programID, pool, wallet)
	require.NoError(t, err)
	require.False(t, pda1.IsZero(), "PDA should not be zero")

	pda2, bump2, err := redio.DeriveAffiliatePDA(programID, pool, wallet)
	require.NoError(t, err)
	require.Equal(t, pda1, pda2, "PDA should be deterministic")
	require.Equal(t, bump1, bump2, "Bump should be deterministic")
}

func TestSDK_Redio_DeriveAffiliatePDA_DifferentWallets(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	pool := solana.NewWallet().PublicKey()

	pda1, _, err := redio.DeriveAffiliatePDA(programID, pool, solana.NewWallet().PublicKey())
	require.NoError(t, err)

	pda2, _, err := redio.DeriveAffiliatePDA(programID, pool, solana.NewWallet().PublicKey())
	require.NoError(t, err)

	require.NotEqual(t, pda1, pda2, "PDAs should be different for different wallets")
}

func TestSDK_Redio_DeriveAssociatedTokenAddress(t *testing.T) {
	t.Parallel()

	owner := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	ata1, _, err := redio.DeriveAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	require.False(t, ata1.IsZero(), "ATA should not be zero")

	ata2, _, err := redio.DeriveAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	require.Equal(t, ata1, ata2, "ATA should be deterministic")

	// Matches the canonical derivation in solana-go.
	canonical, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	require.Equal(t, canonical, ata1, "ATA should match the canonical derivation")
}

func TestSDK_Redio_DeriveAssociatedTokenAddress_EscrowAuthorityOwner(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	merchant := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	pool, _, err := redio.DerivePoolPDA(programID, merchant)
	require.NoError(t, err)
	authority, _, err := redio.DeriveEscrowAuthorityPDA(programID, pool)
	require.NoError(t, err)

	// The escrow authority is off-curve; its ATA must still derive.
	ata, _, err := redio.DeriveAssociatedTokenAddress(authority, mint)
	require.NoError(t, err)
	require.False(t, ata.IsZero(), "escrow token address should derive for a PDA owner")
}
