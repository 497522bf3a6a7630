package redio

import (
	"github.com/gagliardetto/solana-go"
)

// DerivePoolPDA derives the PDA for a merchant's pool account.
// Seeds: ["pool", merchant]
func DerivePoolPDA(programID solana.PublicKey, merchant solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		[]byte(PoolSeed),
		merchant[:],
	}
	return solana.FindProgramAddress(seeds, programID)
}

// DeriveEscrowAuthorityPDA derives the PDA that signs for the pool's escrow
// token account. No private key exists for it; only the program can move the
// escrowed balance.
// Seeds: ["escrow_authority", pool]
func DeriveEscrowAuthorityPDA(programID solana.PublicKey, pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		[]byte(EscrowAuthoritySeed),
		pool[:],
	}
	return solana.FindProgramAddress(seeds, programID)
}

// DeriveAffiliatePDA derives the PDA for an affiliate account within a pool.
// Seeds: ["affiliate", pool, wallet]
func DeriveAffiliatePDA(programID solana.PublicKey, pool solana.PublicKey, wallet solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		[]byte(AffiliateSeed),
		pool[:],
		wallet[:],
	}
	return solana.FindProgramAddress(seeds, programID)
}

// DeriveAssociatedTokenAddress derives the associated token account for an
// owner and mint under the SPL associated-token program.
// Seeds: [owner, token program, mint]
func DeriveAssociatedTokenAddress(owner solana.PublicKey, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		owner[:],
		solana.TokenProgramID[:],
		mint[:],
	}
	return solana.FindProgramAddress(seeds, solana.SPLAssociatedTokenAccountProgramID)
}
