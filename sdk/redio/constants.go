package redio

import "github.com/gagliardetto/solana-go"

// RedioProgramID is the deployed affiliate-commission program.
var RedioProgramID = solana.MustPublicKeyFromBase58("CFQoHeX28aKhpgsLCSGM2zpou6RkRrwRoHVToWS2B6tQ")

// PDA seeds for the redio program
const (
	PoolSeed            = "pool"
	EscrowAuthoritySeed = "escrow_authority"
	AffiliateSeed       = "affiliate"
)

// Limits enforced by the on-chain account layouts
const (
	MaxPoolIDLength = 32
	MaxRefIDLength  = 32
)

// CommissionRateDenominator is the basis-point denominator the program uses
// when computing commissions. The encoder does not enforce the 0..=10000
// range; the program does.
const CommissionRateDenominator = 10000

// Anchor instruction discriminators. These are part of the deployed binary
// contract (sha256("global:<name>")[:8]) and must never change without a
// corresponding program deployment. One named tag per operation, referenced
// directly by its builder.
var (
	initializePoolDiscriminator  = [8]byte{95, 180, 10, 172, 84, 174, 232, 40}
	addAffiliateDiscriminator    = [8]byte{221, 239, 60, 159, 213, 45, 221, 87}
	processSaleDiscriminator     = [8]byte{103, 228, 248, 104, 78, 46, 193, 82}
	removeAffiliateDiscriminator = [8]byte{146, 218, 182, 122, 118, 1, 69, 31}
	depositEscrowDiscriminator   = [8]byte{226, 112, 158, 176, 178, 118, 153, 128}
	withdrawEscrowDiscriminator  = [8]byte{81, 84, 226, 128, 245, 47, 96, 104}
)
